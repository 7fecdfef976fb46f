package usecase

import (
	"sort"

	"github.com/quivia/quivia-be/internal/delivery/http/entity"
)

// MasteryPolicy holds the fixed tuning constants of the adaptive engine.
// They are exposed through quiz.* config keys but default to the values the
// selection and classification rules were calibrated with.
type MasteryPolicy struct {
	ExpertAccuracy     float64 // >= is expert
	ProficientAccuracy float64 // >= is proficient
	DevelopingAccuracy float64 // >= is developing, below is struggling

	ConfirmSolvedAttempts  int // binary: stop asking a solved topic after this many attempts
	RetryUnsolvedAttempts  int // binary: keep retrying an unsolved topic below this many attempts
	MinDepthAttempts       int // four-tier: always want at least this many data points
	ExpertStopAttempts     int // four-tier: expert tier is confirmed at this many attempts
	StrugglingStopAttempts int // four-tier: struggling tier is confirmed at this many attempts

	PoolFactor int // candidate questions fetched per requested question
}

func DefaultMasteryPolicy() MasteryPolicy {
	return MasteryPolicy{
		ExpertAccuracy:         0.8,
		ProficientAccuracy:     0.6,
		DevelopingAccuracy:     0.4,
		ConfirmSolvedAttempts:  2,
		RetryUnsolvedAttempts:  3,
		MinDepthAttempts:       2,
		ExpertStopAttempts:     3,
		StrugglingStopAttempts: 4,
		PoolFactor:             2,
	}
}

// TopicPerformance accumulates per-topic counts within a session.
type TopicPerformance struct {
	Topic            string
	Correct          int
	Incorrect        int
	FromSeedStrength bool

	attempted map[string]struct{}
}

func (p *TopicPerformance) TotalAttempts() int {
	return p.Correct + p.Incorrect
}

func (p *TopicPerformance) Accuracy() float64 {
	total := p.TotalAttempts()
	if total == 0 {
		return 0.0
	}
	return float64(p.Correct) / float64(total)
}

// AnswerRecord is one entry of the in-session answer log.
type AnswerRecord struct {
	Question      entity.Question
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
	Topic         string
}

// MasteryTracker records (topic, correctness) observations and derives
// mastery tiers under the configured scheme. Pure in-memory state, no I/O.
type MasteryTracker struct {
	scheme entity.SchemeConfig
	policy MasteryPolicy
	topics map[string]*TopicPerformance
	seed   map[string]struct{}

	history []AnswerRecord
}

func NewMasteryTracker(scheme entity.SchemeConfig, policy MasteryPolicy) *MasteryTracker {
	seed := make(map[string]struct{}, len(scheme.SeedTopics))
	for _, topic := range scheme.SeedTopics {
		seed[topic] = struct{}{}
	}
	return &MasteryTracker{
		scheme: scheme,
		policy: policy,
		topics: make(map[string]*TopicPerformance),
		seed:   seed,
	}
}

func (t *MasteryTracker) Scheme() entity.SchemeConfig {
	return t.scheme
}

func (t *MasteryTracker) IsSeedTopic(topic string) bool {
	_, ok := t.seed[topic]
	return ok
}

// RecordAnswer updates the topic counts, the attempted-question set, and the
// session history log.
func (t *MasteryTracker) RecordAnswer(question entity.Question, userAnswer string, isCorrect bool) {
	perf, ok := t.topics[question.Topic]
	if !ok {
		perf = &TopicPerformance{
			Topic:            question.Topic,
			FromSeedStrength: t.IsSeedTopic(question.Topic),
			attempted:        make(map[string]struct{}),
		}
		t.topics[question.Topic] = perf
	}

	if isCorrect {
		perf.Correct++
	} else {
		perf.Incorrect++
	}
	perf.attempted[question.ID] = struct{}{}

	t.history = append(t.history, AnswerRecord{
		Question:      question,
		UserAnswer:    userAnswer,
		CorrectAnswer: question.CorrectOption,
		IsCorrect:     isCorrect,
		Topic:         question.Topic,
	})
}

// TierOf classifies a topic under the configured scheme. Unattempted topics
// are UNSOLVED (binary) or DEVELOPING (four-tier).
func (t *MasteryTracker) TierOf(topic string) entity.MasteryTier {
	perf, ok := t.topics[topic]
	if !ok {
		perf = &TopicPerformance{Topic: topic}
	}
	return t.tierOf(perf)
}

func (t *MasteryTracker) tierOf(perf *TopicPerformance) entity.MasteryTier {
	if t.scheme.Kind == entity.SchemeBinary {
		// One correct answer solves a topic for good, later mistakes do not
		// demote it. Intentional, if pedagogically unusual.
		if perf.Correct > 0 {
			return entity.TierSolved
		}
		return entity.TierUnsolved
	}

	if perf.TotalAttempts() == 0 {
		return entity.TierDeveloping
	}

	accuracy := perf.Accuracy()
	switch {
	case accuracy >= t.policy.ExpertAccuracy:
		return entity.TierExpert
	case accuracy >= t.policy.ProficientAccuracy:
		return entity.TierProficient
	case accuracy >= t.policy.DevelopingAccuracy:
		return entity.TierDeveloping
	default:
		return entity.TierStruggling
	}
}

// TopicsByTier returns all attempted topics currently classified as tier,
// sorted for stable output.
func (t *MasteryTracker) TopicsByTier(tier entity.MasteryTier) []string {
	topics := make([]string, 0)
	for topic, perf := range t.topics {
		if t.tierOf(perf) == tier {
			topics = append(topics, topic)
		}
	}
	sort.Strings(topics)
	return topics
}

func (t *MasteryTracker) Performance(topic string) (*TopicPerformance, bool) {
	perf, ok := t.topics[topic]
	return perf, ok
}

func (t *MasteryTracker) Attempted(topic string) bool {
	_, ok := t.topics[topic]
	return ok
}

func (t *MasteryTracker) AttemptedTopics() []string {
	topics := make([]string, 0, len(t.topics))
	for topic := range t.topics {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

func (t *MasteryTracker) History() []AnswerRecord {
	history := make([]AnswerRecord, len(t.history))
	copy(history, t.history)
	return history
}

func (t *MasteryTracker) Summary() *entity.PerformanceSummary {
	return Summarize(t)
}

// Reset drops all accumulated performance data and the session history.
func (t *MasteryTracker) Reset() {
	t.topics = make(map[string]*TopicPerformance)
	t.history = nil
}
