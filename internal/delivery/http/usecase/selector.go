package usecase

import (
	"github.com/quivia/quivia-be/internal/delivery/http/entity"
)

// TopicSelector ranks the topics still present in the question pool and
// decides which should supply the next question.
type TopicSelector struct {
	tracker *MasteryTracker
}

func NewTopicSelector(tracker *MasteryTracker) *TopicSelector {
	return &TopicSelector{tracker: tracker}
}

// RecommendTopics returns the prioritized subset of availableTopics for the
// next question. First non-empty priority bucket wins; the final fallback is
// the full available set.
func (s *TopicSelector) RecommendTopics(availableTopics []string) []string {
	if s.tracker.Scheme().Kind == entity.SchemeFourTier {
		return s.recommendDepthTopics(availableTopics)
	}
	return s.recommendBreadthTopics(availableTopics)
}

// Breadth pass: cover as many topics as possible, then revisit the ones that
// still need evidence.
func (s *TopicSelector) recommendBreadthTopics(availableTopics []string) []string {
	unattempted := make([]string, 0, len(availableTopics))
	for _, topic := range availableTopics {
		if !s.tracker.Attempted(topic) {
			unattempted = append(unattempted, topic)
		}
	}
	if len(unattempted) > 0 {
		return unattempted
	}

	needsMore := make([]string, 0, len(availableTopics))
	for _, topic := range availableTopics {
		if s.shouldAskFrom(topic) {
			needsMore = append(needsMore, topic)
		}
	}
	if len(needsMore) > 0 {
		return needsMore
	}

	return availableTopics
}

// Depth pass: untested prior strengths first, then topics short on evidence,
// then anything unattempted.
func (s *TopicSelector) recommendDepthTopics(availableTopics []string) []string {
	untestedSeeds := make([]string, 0)
	for _, topic := range availableTopics {
		if s.tracker.IsSeedTopic(topic) && !s.tracker.Attempted(topic) {
			untestedSeeds = append(untestedSeeds, topic)
		}
	}
	if len(untestedSeeds) > 0 {
		return untestedSeeds
	}

	needsData := make([]string, 0)
	for _, topic := range availableTopics {
		if perf, ok := s.tracker.Performance(topic); ok && perf.TotalAttempts() < s.tracker.policy.RetryUnsolvedAttempts {
			needsData = append(needsData, topic)
		}
	}
	if len(needsData) > 0 {
		return needsData
	}

	unattempted := make([]string, 0)
	for _, topic := range availableTopics {
		if !s.tracker.Attempted(topic) {
			unattempted = append(unattempted, topic)
		}
	}
	return unattempted
}

// shouldAskFrom bounds how many questions are spent per topic in the breadth
// pass: a solved topic gets one confirmation question, an unsolved topic gets
// a couple more chances.
func (s *TopicSelector) shouldAskFrom(topic string) bool {
	perf, ok := s.tracker.Performance(topic)
	if !ok {
		return true
	}

	tier := s.tracker.tierOf(perf)
	if tier == entity.TierSolved && perf.TotalAttempts() >= s.tracker.policy.ConfirmSolvedAttempts {
		return false
	}
	if tier == entity.TierUnsolved && perf.TotalAttempts() < s.tracker.policy.RetryUnsolvedAttempts {
		return true
	}
	return true
}

// ShouldContinueTesting reports whether a depth-pass topic still needs
// questions: confirmed experts and confirmed struggling topics stop early.
func (s *TopicSelector) ShouldContinueTesting(topic string) bool {
	perf, ok := s.tracker.Performance(topic)
	if !ok {
		return true
	}

	if perf.TotalAttempts() < s.tracker.policy.MinDepthAttempts {
		return true
	}

	tier := s.tracker.tierOf(perf)
	if tier == entity.TierExpert && perf.TotalAttempts() >= s.tracker.policy.ExpertStopAttempts {
		return false
	}
	if tier == entity.TierStruggling && perf.TotalAttempts() >= s.tracker.policy.StrugglingStopAttempts {
		return false
	}
	return true
}
