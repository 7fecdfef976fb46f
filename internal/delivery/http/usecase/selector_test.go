package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreadthPrefersUnattemptedTopics(t *testing.T) {
	tracker := binaryTracker()
	selector := NewTopicSelector(tracker)

	tracker.RecordAnswer(question("q1", "Formulas"), "A", true)

	got := selector.RecommendTopics([]string{"Formulas", "Charts", "VBA"})
	assert.ElementsMatch(t, []string{"Charts", "VBA"}, got)
}

func TestBreadthRevisitsUnsolvedAfterCoverage(t *testing.T) {
	tracker := binaryTracker()
	selector := NewTopicSelector(tracker)

	// Formulas solved twice, Charts missed once: only Charts still needs asks.
	tracker.RecordAnswer(question("q1", "Formulas"), "A", true)
	tracker.RecordAnswer(question("q2", "Formulas"), "A", true)
	tracker.RecordAnswer(question("q3", "Charts"), "B", false)

	got := selector.RecommendTopics([]string{"Formulas", "Charts"})
	assert.Equal(t, []string{"Charts"}, got)
}

func TestBreadthFallsBackToFullSet(t *testing.T) {
	tracker := binaryTracker()
	selector := NewTopicSelector(tracker)

	tracker.RecordAnswer(question("q1", "Formulas"), "A", true)
	tracker.RecordAnswer(question("q2", "Formulas"), "A", true)

	got := selector.RecommendTopics([]string{"Formulas"})
	assert.Equal(t, []string{"Formulas"}, got)
}

func TestDepthPrefersUntestedSeedTopics(t *testing.T) {
	tracker := fourTierTracker("Formulas", "VBA")
	selector := NewTopicSelector(tracker)

	tracker.RecordAnswer(question("q1", "VBA"), "A", true)

	// Formulas is a seed topic with no data yet, it wins over everything.
	got := selector.RecommendTopics([]string{"Formulas", "VBA", "Charts"})
	assert.Equal(t, []string{"Formulas"}, got)
}

func TestDepthPrefersTopicsShortOnEvidence(t *testing.T) {
	tracker := fourTierTracker("VBA")
	selector := NewTopicSelector(tracker)

	// Seed topic has data, so topics below the retry threshold come next.
	tracker.RecordAnswer(question("q1", "VBA"), "A", true)
	tracker.RecordAnswer(question("q2", "Charts"), "A", true)

	got := selector.RecommendTopics([]string{"VBA", "Charts"})
	assert.ElementsMatch(t, []string{"VBA", "Charts"}, got)
}

func TestDepthFallsBackToUnattempted(t *testing.T) {
	tracker := fourTierTracker("VBA")
	selector := NewTopicSelector(tracker)

	for i := 0; i < 3; i++ {
		tracker.RecordAnswer(question("q", "VBA"), "A", true)
	}

	got := selector.RecommendTopics([]string{"VBA", "Charts"})
	assert.Equal(t, []string{"Charts"}, got)
}

func TestShouldContinueTesting(t *testing.T) {
	tests := []struct {
		name    string
		answers []bool
		want    bool
	}{
		{"no data yet", nil, true},
		{"one attempt is below the minimum depth", []bool{true}, true},
		{"two perfect attempts still need confirmation", []bool{true, true}, true},
		{"confirmed expert stops", []bool{true, true, true}, false},
		{"confirmed struggling stops", []bool{false, false, false, false}, false},
		{"three misses keep going", []bool{false, false, false}, true},
		{"mixed mid-tier keeps going", []bool{true, false, true, false}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := fourTierTracker()
			selector := NewTopicSelector(tracker)
			for _, correct := range tt.answers {
				answer := "A"
				if !correct {
					answer = "B"
				}
				tracker.RecordAnswer(question("q", "Pivot Tables"), answer, correct)
			}
			assert.Equal(t, tt.want, selector.ShouldContinueTesting("Pivot Tables"))
		})
	}
}
