package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeBreadth(t *testing.T) {
	tracker := binaryTracker()
	tracker.RecordAnswer(question("q1", "Formulas"), "A", true)
	tracker.RecordAnswer(question("q2", "Charts"), "B", false)
	tracker.RecordAnswer(question("q3", "VBA"), "B", false)

	summary := Summarize(tracker)

	assert.Equal(t, 3, summary.TotalQuestions)
	assert.Equal(t, 1, summary.CorrectAnswers)
	assert.Equal(t, 2, summary.IncorrectAnswers)
	assert.Equal(t, 3, summary.TopicsAttempted)
	assert.Equal(t, []string{"Formulas"}, summary.SolvedTopics)
	assert.Equal(t, []string{"Charts", "VBA"}, summary.UnsolvedTopics)
	assert.Empty(t, summary.ExpertTopics)

	require.Contains(t, summary.TopicBreakdown, "Formulas")
	stats := summary.TopicBreakdown["Formulas"]
	assert.Equal(t, 1, stats.Correct)
	assert.Equal(t, "solved", stats.Tier)

	rec := summary.Recommendations
	require.NotNil(t, rec)
	assert.Equal(t, "needs_improvement", rec.OverallPerformance)
	assert.Equal(t, []string{"Formulas"}, rec.StrongTopics)
	assert.Equal(t, []string{"Charts", "VBA"}, rec.TopicsToReview)
	require.Len(t, rec.NextSteps, 2)
	assert.Contains(t, rec.NextSteps[1], "Charts, VBA")
}

func TestSummarizeBreadthPerformanceLabels(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		want    string
	}{
		{"excellent at 80 percent", 4, 5, "excellent"},
		{"good at 60 percent", 3, 5, "good"},
		{"needs improvement below 60", 2, 5, "needs_improvement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := binaryTracker()
			for i := 0; i < tt.correct; i++ {
				tracker.RecordAnswer(question("q", "Formulas"), "A", true)
			}
			for i := tt.correct; i < tt.total; i++ {
				tracker.RecordAnswer(question("q", "Formulas"), "B", false)
			}
			summary := Summarize(tracker)
			require.NotNil(t, summary.Recommendations)
			assert.Equal(t, tt.want, summary.Recommendations.OverallPerformance)
		})
	}
}

func TestSummarizeDepth(t *testing.T) {
	tracker := fourTierTracker("Formulas", "VBA")

	// Formulas: 3/3 expert. VBA: 0/3 struggling. Charts: 2/3 proficient.
	for i := 0; i < 3; i++ {
		tracker.RecordAnswer(question("f", "Formulas"), "A", true)
		tracker.RecordAnswer(question("v", "VBA"), "B", false)
	}
	tracker.RecordAnswer(question("c1", "Charts"), "A", true)
	tracker.RecordAnswer(question("c2", "Charts"), "A", true)
	tracker.RecordAnswer(question("c3", "Charts"), "B", false)

	summary := Summarize(tracker)

	assert.Equal(t, []string{"Formulas"}, summary.ExpertTopics)
	assert.Equal(t, []string{"Charts"}, summary.ProficientTopics)
	assert.Equal(t, []string{"VBA"}, summary.StrugglingTopics)
	assert.Equal(t, []string{"Formulas", "Charts"}, summary.CrazyGoodTopics)
	assert.Empty(t, summary.SolvedTopics)

	require.Contains(t, summary.SeedProgression, "Formulas")
	assert.True(t, summary.SeedProgression["Formulas"].MaintainedStrength)
	require.Contains(t, summary.SeedProgression, "VBA")
	assert.False(t, summary.SeedProgression["VBA"].MaintainedStrength)
	assert.NotContains(t, summary.SeedProgression, "Charts")

	rec := summary.Recommendations
	require.NotNil(t, rec)
	assert.Contains(t, rec.NextSteps[0], "expert in: Formulas")
	assert.Contains(t, rec.NextSteps[1], "proficient in: Charts")
}

func TestSummarizeDepthNextStepThresholds(t *testing.T) {
	// One strong topic recommends building depth, none recommends foundations.
	tracker := fourTierTracker()
	tracker.RecordAnswer(question("q1", "Formulas"), "A", true)
	tracker.RecordAnswer(question("q2", "Formulas"), "A", true)

	summary := Summarize(tracker)
	require.NotNil(t, summary.Recommendations)
	assert.Contains(t, summary.Recommendations.NextSteps, "Good progress! Continue building depth in your strong areas.")

	struggling := fourTierTracker()
	struggling.RecordAnswer(question("q1", "VBA"), "B", false)
	struggling.RecordAnswer(question("q2", "VBA"), "B", false)

	summary = Summarize(struggling)
	require.NotNil(t, summary.Recommendations)
	assert.Contains(t, summary.Recommendations.NextSteps, "Focus on strengthening your foundational knowledge before advancing.")
}

func TestSummarizeEmptyTracker(t *testing.T) {
	summary := Summarize(binaryTracker())

	assert.Zero(t, summary.TotalQuestions)
	assert.Zero(t, summary.Accuracy)
	assert.Empty(t, summary.TopicBreakdown)
	require.NotNil(t, summary.Recommendations)
	assert.Equal(t, "needs_improvement", summary.Recommendations.OverallPerformance)
}

func TestSummaryRoundTripsThroughTracker(t *testing.T) {
	tracker := binaryTracker()
	tracker.RecordAnswer(question("q1", "Formulas"), "A", true)

	assert.Equal(t, Summarize(tracker), tracker.Summary())
}
