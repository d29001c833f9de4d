package catalog

import (
	"testing"

	"collegeevents/internal/domain"
	"collegeevents/internal/repository/memory"

	"github.com/stretchr/testify/assert"
)

func TestRelated(t *testing.T) {
	sample := memory.SampleEvents()
	byID := func(id string) domain.Event {
		e, ok := Find(sample, id)
		if !ok {
			t.Fatalf("sample event %s missing", id)
		}
		return e
	}

	tests := []struct {
		name  string
		event domain.Event
		limit int
		want  []string
	}{
		{
			name:  "same type or college in catalog order capped at four",
			event: byID("1"),
			want:  []string{"4", "7", "10"},
		},
		{
			name:  "college match pulls other types",
			event: byID("2"),
			want:  []string{"5", "7", "8", "11"},
		},
		{
			name:  "berkeley tech talk",
			event: byID("3"),
			want:  []string{"4", "6", "9", "12"},
		},
		{
			name:  "explicit smaller limit",
			event: byID("3"),
			limit: 2,
			want:  []string{"4", "6"},
		},
		{
			name:  "nothing shared",
			event: domain.Event{ID: "x", EventType: "meetup", College: "Nowhere"},
			want:  []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Related(sample, tt.event, tt.limit)
			assert.Equal(t, tt.want, ids(got))
			assert.LessOrEqual(t, len(got), MaxRelated)
			for _, e := range got {
				assert.NotEqual(t, tt.event.ID, e.ID)
			}
		})
	}
}

func TestFind(t *testing.T) {
	sample := memory.SampleEvents()
	e, ok := Find(sample, "12")
	assert.True(t, ok)
	assert.Equal(t, "Blockchain and Cryptocurrency", e.EventName)

	_, ok = Find(sample, "13")
	assert.False(t, ok)
}
