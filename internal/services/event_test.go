package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"collegeevents/internal/domain"
	"collegeevents/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventRepo is an in-memory EventRepository whose calls can be made to fail.
type fakeEventRepo struct {
	events  []domain.Event
	listErr error
	getErr  error
}

func (f *fakeEventRepo) List(ctx context.Context) ([]domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Event(nil), f.events...), nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, e := range f.events {
		if e.ID == id {
			e := e
			return &e, nil
		}
	}
	return nil, domain.ErrNotFound
}

// fakeEffect records submitted events and returns err.
type fakeEffect struct {
	submitted []domain.Event
	err       error
}

func (f *fakeEffect) Submit(ctx context.Context, event domain.Event) error {
	f.submitted = append(f.submitted, event)
	return f.err
}

var fixedNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestService(repo domain.EventRepository, effect domain.SubmissionEffect) domain.EventService {
	return NewEventService(repo, effect, testLogger, time.Second,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() (string, error) { return "ev-new", nil }),
	)
}

func validSubmission() domain.RawSubmission {
	return domain.RawSubmission{
		EventName:   "HackState 2025",
		EventDate:   "2025-04-12",
		EventType:   domain.EventTypeHackathon,
		College:     "State University",
		Location:    "Austin, TX",
		Link:        "https://hackstate.example.edu",
		Description: "A weekend of building things with friends.",
	}
}

func TestEventService_ListEvents(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		repo      *fakeEventRepo
		criteria  domain.FilterCriteria
		wantIDs   []string
		wantStats domain.EventStats
		wantErr   bool
	}{
		{
			name:      "all events sorted by date",
			repo:      &fakeEventRepo{events: memory.SampleEvents()},
			criteria:  domain.DefaultCriteria(),
			wantIDs:   []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"},
			wantStats: domain.EventStats{Total: 12, Hackathons: 4, TechTalks: 4, Workshops: 4},
		},
		{
			name:      "stats follow the filtered result",
			repo:      &fakeEventRepo{events: memory.SampleEvents()},
			criteria:  domain.FilterCriteria{Location: ", CA"},
			wantIDs:   []string{"2", "3", "4", "7"},
			wantStats: domain.EventStats{Total: 4, Hackathons: 2, TechTalks: 1, Workshops: 1},
		},
		{
			name:      "no match is an empty list",
			repo:      &fakeEventRepo{events: memory.SampleEvents()},
			criteria:  domain.FilterCriteria{SearchTerm: "underwater basket weaving"},
			wantIDs:   []string{},
			wantStats: domain.EventStats{},
		},
		{
			name:    "repository error",
			repo:    &fakeEventRepo{listErr: errors.New("db down")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.repo, nil)
			got, err := svc.ListEvents(ctx, tt.criteria)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			gotIDs := make([]string, 0, len(got.Events))
			for _, e := range got.Events {
				gotIDs = append(gotIDs, e.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
			assert.Equal(t, tt.wantStats, got.Stats)
		})
	}
}

func TestEventService_GetEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("found with related events", func(t *testing.T) {
		svc := newTestService(&fakeEventRepo{events: memory.SampleEvents()}, nil)
		got, err := svc.GetEvent(ctx, "3")
		require.NoError(t, err)
		assert.Equal(t, "Future of Web Development", got.Event.EventName)
		assert.Equal(t, "Tech Talk", got.TypeLabel)
		assert.Equal(t, "Sunday, February 25, 2024", got.DisplayDate)
		assert.False(t, got.Upcoming)
		relatedIDs := make([]string, 0, len(got.Related))
		for _, e := range got.Related {
			relatedIDs = append(relatedIDs, e.ID)
		}
		assert.Equal(t, []string{"4", "6", "9", "12"}, relatedIDs)
	})

	t.Run("upcoming relative to clock", func(t *testing.T) {
		svc := newTestService(&fakeEventRepo{events: memory.SampleEvents()}, nil)
		got, err := svc.GetEvent(ctx, "4")
		require.NoError(t, err)
		assert.True(t, got.Upcoming)
	})

	t.Run("not found", func(t *testing.T) {
		svc := newTestService(&fakeEventRepo{events: memory.SampleEvents()}, nil)
		got, err := svc.GetEvent(ctx, "404")
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		svc := newTestService(&fakeEventRepo{getErr: errors.New("db down")}, nil)
		_, err := svc.GetEvent(ctx, "1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, err.Error(), "get event")
	})
}

func TestEventService_FilterOptions(t *testing.T) {
	svc := newTestService(&fakeEventRepo{events: memory.SampleEvents()}, nil)
	got, err := svc.FilterOptions(context.Background())
	require.NoError(t, err)
	require.Len(t, got.EventTypes, 4)
	assert.Equal(t, "all", got.EventTypes[0].Value)
	require.Len(t, got.Colleges, 11)
	assert.Equal(t, domain.AllColleges, got.Colleges[0])
}

func TestEventService_SubmitEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted", func(t *testing.T) {
		repo := &fakeEventRepo{events: memory.SampleEvents()}
		effect := &fakeEffect{}
		svc := newTestService(repo, effect)

		got, err := svc.SubmitEvent(ctx, validSubmission())
		require.NoError(t, err)
		assert.Equal(t, "ev-new", got.Event.ID)
		assert.Equal(t, "HackState 2025", got.Event.EventName)
		assert.Equal(t, domain.SubmissionStatusPendingReview, got.Status)
		assert.Equal(t, fixedNow, got.SubmittedAt)
		assert.NotEmpty(t, got.Message)
		require.Len(t, effect.submitted, 1)
		assert.Equal(t, got.Event, effect.submitted[0])

		// Submissions never reach the catalog.
		events, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, events, 12)
	})

	t.Run("validation failure skips the effect", func(t *testing.T) {
		effect := &fakeEffect{}
		svc := newTestService(&fakeEventRepo{}, effect)
		raw := validSubmission()
		raw.EventName = ""
		raw.Description = "short"

		got, err := svc.SubmitEvent(ctx, raw)
		require.Error(t, err)
		assert.Nil(t, got)
		var fe domain.FieldErrors
		require.ErrorAs(t, err, &fe)
		assert.Len(t, fe, 2)
		assert.Empty(t, effect.submitted)
	})

	t.Run("transient failure", func(t *testing.T) {
		svc := newTestService(&fakeEventRepo{}, &fakeEffect{err: domain.ErrSubmissionFailed})
		_, err := svc.SubmitEvent(ctx, validSubmission())
		require.ErrorIs(t, err, domain.ErrSubmissionFailed)
	})

	t.Run("other effect error is wrapped", func(t *testing.T) {
		svc := newTestService(&fakeEventRepo{}, &fakeEffect{err: errors.New("boom")})
		_, err := svc.SubmitEvent(ctx, validSubmission())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "submit event")
	})

	t.Run("id generation failure", func(t *testing.T) {
		svc := NewEventService(&fakeEventRepo{}, nil, testLogger, time.Second,
			WithIDGenerator(func() (string, error) { return "", errors.New("entropy") }))
		_, err := svc.SubmitEvent(ctx, validSubmission())
		require.Error(t, err)
	})

	t.Run("default id is a uuid", func(t *testing.T) {
		svc := NewEventService(&fakeEventRepo{}, nil, testLogger, time.Second)
		got, err := svc.SubmitEvent(ctx, validSubmission())
		require.NoError(t, err)
		assert.Len(t, got.Event.ID, 36)
	})
}
