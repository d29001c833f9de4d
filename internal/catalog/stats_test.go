package catalog

import (
	"testing"

	"collegeevents/internal/domain"
	"collegeevents/internal/repository/memory"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	assert.Equal(t, domain.EventStats{Total: 12, Hackathons: 4, TechTalks: 4, Workshops: 4}, Summarize(memory.SampleEvents()))
	assert.Equal(t, domain.EventStats{}, Summarize(nil))
}

func TestTypeOptions(t *testing.T) {
	assert.Equal(t, []domain.Option{
		{Value: "all", Label: "All Types"},
		{Value: "hackathon", Label: "Hackathon"},
		{Value: "tech-talk", Label: "Tech Talk"},
		{Value: "workshop", Label: "Workshop"},
	}, TypeOptions())
}

func TestCollegeOptions(t *testing.T) {
	assert.Equal(t, []string{
		"All Colleges",
		"Massachusetts Institute of Technology",
		"Stanford University",
		"University of California, Berkeley",
		"Carnegie Mellon University",
		"Harvard University",
		"Georgia Institute of Technology",
		"New York University",
		"Princeton University",
		"University of Chicago",
		"University of Pennsylvania",
	}, CollegeOptions(memory.SampleEvents()))
	assert.Equal(t, []string{"All Colleges"}, CollegeOptions(nil))
}
