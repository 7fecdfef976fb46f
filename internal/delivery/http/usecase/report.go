package usecase

import (
	"fmt"
	"strings"

	"github.com/quivia/quivia-be/internal/delivery/http/entity"
)

// Summarize composes the performance summary from the tracker's final state.
func Summarize(t *MasteryTracker) *entity.PerformanceSummary {
	summary := &entity.PerformanceSummary{
		TopicBreakdown: make(map[string]entity.TopicStats),
	}

	for _, topic := range t.AttemptedTopics() {
		perf, _ := t.Performance(topic)
		summary.CorrectAnswers += perf.Correct
		summary.IncorrectAnswers += perf.Incorrect
		summary.TopicBreakdown[topic] = entity.TopicStats{
			Correct:          perf.Correct,
			Incorrect:        perf.Incorrect,
			Total:            perf.TotalAttempts(),
			Accuracy:         perf.Accuracy(),
			Tier:             string(t.tierOf(perf)),
			FromSeedStrength: perf.FromSeedStrength,
		}
	}

	summary.TotalQuestions = summary.CorrectAnswers + summary.IncorrectAnswers
	summary.TopicsAttempted = len(summary.TopicBreakdown)
	if summary.TotalQuestions > 0 {
		summary.Accuracy = float64(summary.CorrectAnswers) / float64(summary.TotalQuestions)
	}

	if t.Scheme().Kind == entity.SchemeFourTier {
		fillDepthSummary(t, summary)
	} else {
		fillBreadthSummary(t, summary)
	}

	return summary
}

func fillBreadthSummary(t *MasteryTracker, summary *entity.PerformanceSummary) {
	summary.SolvedTopics = t.TopicsByTier(entity.TierSolved)
	summary.UnsolvedTopics = t.TopicsByTier(entity.TierUnsolved)

	rec := &entity.Recommendations{
		OverallPerformance: overallPerformance(summary.Accuracy, t.policy),
		StrongTopics:       summary.SolvedTopics,
		TopicsToReview:     summary.UnsolvedTopics,
	}

	switch rec.OverallPerformance {
	case "excellent":
		rec.NextSteps = append(rec.NextSteps, "You're doing great! Ready for more challenging questions.")
	case "good":
		rec.NextSteps = append(rec.NextSteps, "Good progress! Focus on reviewing the topics you missed.")
	default:
		rec.NextSteps = append(rec.NextSteps, "Consider reviewing the basics for the topics you struggled with.")
	}

	if len(summary.UnsolvedTopics) > 0 {
		highlight := summary.UnsolvedTopics
		if len(highlight) > 3 {
			highlight = highlight[:3]
		}
		rec.NextSteps = append(rec.NextSteps, fmt.Sprintf("Pay special attention to: %s", strings.Join(highlight, ", ")))
	}

	summary.Recommendations = rec
}

func fillDepthSummary(t *MasteryTracker, summary *entity.PerformanceSummary) {
	summary.ExpertTopics = t.TopicsByTier(entity.TierExpert)
	summary.ProficientTopics = t.TopicsByTier(entity.TierProficient)
	summary.DevelopingTopics = t.TopicsByTier(entity.TierDeveloping)
	summary.StrugglingTopics = t.TopicsByTier(entity.TierStruggling)
	summary.CrazyGoodTopics = append(append([]string{}, summary.ExpertTopics...), summary.ProficientTopics...)

	progression := make(map[string]entity.SeedProgress)
	for _, topic := range t.AttemptedTopics() {
		perf, _ := t.Performance(topic)
		if !perf.FromSeedStrength {
			continue
		}
		tier := t.tierOf(perf)
		progression[topic] = entity.SeedProgress{
			WasPriorStrength:   true,
			Tier:               string(tier),
			MaintainedStrength: tier == entity.TierExpert || tier == entity.TierProficient,
		}
	}
	if len(progression) > 0 {
		summary.SeedProgression = progression
	}

	rec := &entity.Recommendations{
		OverallPerformance: overallPerformance(summary.Accuracy, t.policy),
		StrongTopics:       summary.CrazyGoodTopics,
		TopicsToReview:     summary.StrugglingTopics,
	}

	if len(summary.ExpertTopics) > 0 {
		rec.NextSteps = append(rec.NextSteps, fmt.Sprintf("You're an expert in: %s", strings.Join(summary.ExpertTopics, ", ")))
	}
	if len(summary.ProficientTopics) > 0 {
		rec.NextSteps = append(rec.NextSteps, fmt.Sprintf("You're proficient in: %s", strings.Join(summary.ProficientTopics, ", ")))
	}
	switch {
	case len(summary.CrazyGoodTopics) >= 3:
		rec.NextSteps = append(rec.NextSteps, "Ready for advanced level questions!")
	case len(summary.CrazyGoodTopics) >= 1:
		rec.NextSteps = append(rec.NextSteps, "Good progress! Continue building depth in your strong areas.")
	default:
		rec.NextSteps = append(rec.NextSteps, "Focus on strengthening your foundational knowledge before advancing.")
	}

	summary.Recommendations = rec
}

func overallPerformance(accuracy float64, policy MasteryPolicy) string {
	switch {
	case accuracy >= policy.ExpertAccuracy:
		return "excellent"
	case accuracy >= policy.ProficientAccuracy:
		return "good"
	default:
		return "needs_improvement"
	}
}
