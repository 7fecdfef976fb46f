package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/quivia/quivia-be/internal/delivery/http/entity"
	internalEntity "github.com/quivia/quivia-be/internal/entity"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubRepository is an in-memory QuizQuestionRepository. The audit sink runs
// on a goroutine, so all state is mutex-guarded.
type stubRepository struct {
	mu        sync.Mutex
	questions []internalEntity.QuizQuestion
	answers   []internalEntity.UserAnswer
	summaries map[string]internalEntity.SessionSummary
}

func newStubRepository(questions ...internalEntity.QuizQuestion) *stubRepository {
	return &stubRepository{
		questions: questions,
		summaries: make(map[string]internalEntity.SessionSummary),
	}
}

func bankQuestion(id, topic, difficulty string) internalEntity.QuizQuestion {
	return internalEntity.QuizQuestion{
		QuestionID: id,
		Question:   "question " + id,
		OptionA:    "first",
		OptionB:    "second",
		OptionC:    "third",
		OptionD:    "fourth",
		Answer:     "first",
		Difficulty: difficulty,
		Topic:      topic,
	}
}

func (s *stubRepository) CreateQuestion(db *gorm.DB, question *internalEntity.QuizQuestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = append(s.questions, *question)
	return nil
}

func (s *stubRepository) FindByTopicsAndDifficulty(db *gorm.DB, topics []string, difficulty string, limit int) ([]internalEntity.QuizQuestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wanted := make(map[string]struct{}, len(topics))
	for _, topic := range topics {
		wanted[topic] = struct{}{}
	}
	var out []internalEntity.QuizQuestion
	for _, q := range s.questions {
		if q.Difficulty != difficulty {
			continue
		}
		if _, ok := wanted[q.Topic]; len(topics) > 0 && !ok {
			continue
		}
		out = append(out, q)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *stubRepository) FindRandomByDifficulty(db *gorm.DB, difficulty string, limit int, excludeTopics []string) ([]internalEntity.QuizQuestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	excluded := make(map[string]struct{}, len(excludeTopics))
	for _, topic := range excludeTopics {
		excluded[topic] = struct{}{}
	}
	var out []internalEntity.QuizQuestion
	for _, q := range s.questions {
		if q.Difficulty != difficulty {
			continue
		}
		if _, ok := excluded[q.Topic]; ok {
			continue
		}
		out = append(out, q)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *stubRepository) TopicsForDifficulty(db *gorm.DB, difficulty string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]struct{})
	var topics []string
	for _, q := range s.questions {
		if q.Difficulty != difficulty {
			continue
		}
		if _, ok := seen[q.Topic]; !ok {
			seen[q.Topic] = struct{}{}
			topics = append(topics, q.Topic)
		}
	}
	return topics, nil
}

func (s *stubRepository) CountByDifficulty(db *gorm.DB, difficulty string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, q := range s.questions {
		if q.Difficulty == difficulty {
			count++
		}
	}
	return count, nil
}

func (s *stubRepository) CountAll(db *gorm.DB) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.questions)), nil
}

func (s *stubRepository) TopicDistribution(db *gorm.DB, difficulty string) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	distribution := make(map[string]int64)
	for _, q := range s.questions {
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		distribution[q.Topic]++
	}
	return distribution, nil
}

func (s *stubRepository) CreateUserAnswer(db *gorm.DB, answer *internalEntity.UserAnswer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = append(s.answers, *answer)
	return nil
}

func (s *stubRepository) FindUserAnswersBySessionID(db *gorm.DB, sessionID string) ([]internalEntity.UserAnswer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []internalEntity.UserAnswer
	for _, a := range s.answers {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubRepository) CreateOrUpdateSessionSummary(db *gorm.DB, summary *internalEntity.SessionSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries[summary.SessionID] = *summary
	return nil
}

func (s *stubRepository) FindSessionSummaryBySessionID(db *gorm.DB, sessionID string) (*internalEntity.SessionSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	summary, ok := s.summaries[sessionID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &summary, nil
}

func (s *stubRepository) auditCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

func testUsecase(repo *stubRepository) QuizUsecase {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewQuizUsecase(QuizConfig{
		Repository: repo,
		Log:        log,
		Seed:       7,
	})
}

func TestStartSessionFailsOnEmptyBank(t *testing.T) {
	u := testUsecase(newStubRepository())

	_, err := u.StartSession(context.Background(), entity.StartSessionRequest{MaxQuestions: 3})
	assert.ErrorIs(t, err, ErrNoQuestionsAvailable)
}

func TestStartSessionDefaultsToBinaryScheme(t *testing.T) {
	repo := newStubRepository(
		bankQuestion("q1", "Formulas", "easy"),
		bankQuestion("q2", "Charts", "easy"),
		bankQuestion("q3", "VBA", "medium"),
	)
	u := testUsecase(repo)

	res, err := u.StartSession(context.Background(), entity.StartSessionRequest{MaxQuestions: 2})
	require.NoError(t, err)

	assert.Equal(t, "binary", res.Scheme)
	assert.Equal(t, 2, res.MaxQuestions)
	// Only the easy questions qualify for the breadth pass.
	assert.Equal(t, 2, res.AvailableQuestions)
	assert.Equal(t, "explore_topics", res.Strategy)
	assert.NotEmpty(t, res.SessionID)
}

func TestStartSessionFourTierDrawsFromSeedTopics(t *testing.T) {
	repo := newStubRepository(
		bankQuestion("q1", "Formulas", "medium"),
		bankQuestion("q2", "Formulas", "medium"),
		bankQuestion("q3", "Charts", "medium"),
		bankQuestion("q4", "VBA", "medium"),
	)
	u := testUsecase(repo)

	res, err := u.StartSession(context.Background(), entity.StartSessionRequest{
		MaxQuestions: 2,
		Scheme:       "four_tier",
		SeedTopics:   []string{"Formulas"},
	})
	require.NoError(t, err)

	assert.Equal(t, "four_tier", res.Scheme)
	assert.Equal(t, "test_seed_strengths", res.Strategy)
	assert.Equal(t, []string{"Formulas"}, res.SeedTopics)
	// Seed questions plus top-up to the pool limit of 4.
	assert.Equal(t, 4, res.AvailableQuestions)
}

func TestStartSessionFourTierFallsBackToExplore(t *testing.T) {
	repo := newStubRepository(
		bankQuestion("q1", "Charts", "medium"),
		bankQuestion("q2", "VBA", "medium"),
	)
	u := testUsecase(repo)

	res, err := u.StartSession(context.Background(), entity.StartSessionRequest{
		MaxQuestions: 2,
		Scheme:       "four_tier",
		SeedTopics:   []string{"Formulas"},
	})
	require.NoError(t, err)
	assert.Equal(t, "explore_topics", res.Strategy)
}

func TestUnknownSessionIsRejected(t *testing.T) {
	u := testUsecase(newStubRepository(bankQuestion("q1", "Formulas", "easy")))

	_, err := u.NextQuestion(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = u.SubmitAnswer(context.Background(), "nope", entity.SubmitAnswerRequest{Answer: "A"})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	err = u.ResetSession(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestFullSessionFlowPersistsAuditTrail(t *testing.T) {
	repo := newStubRepository(
		bankQuestion("q1", "Formulas", "easy"),
		bankQuestion("q2", "Charts", "easy"),
		bankQuestion("q3", "VBA", "easy"),
		bankQuestion("q4", "General", "easy"),
	)
	u := testUsecase(repo)
	ctx := context.Background()

	started, err := u.StartSession(ctx, entity.StartSessionRequest{MaxQuestions: 2})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		result, err := u.NextQuestion(ctx, started.SessionID)
		require.NoError(t, err)
		require.NotNil(t, result.Question)

		res, err := u.SubmitAnswer(ctx, started.SessionID, entity.SubmitAnswerRequest{Answer: "a"})
		require.NoError(t, err)
		assert.True(t, res.IsCorrect)
	}

	// The audit sink is fire-and-forget, wait for both writes to land.
	require.Eventually(t, func() bool {
		return repo.auditCount() == 2
	}, time.Second, 10*time.Millisecond)

	history, err := u.SessionHistory(ctx, started.SessionID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "A", history[0].UserAnswer)
	assert.True(t, history[0].IsCorrect)

	status, err := u.Status(ctx, started.SessionID)
	require.NoError(t, err)
	assert.False(t, status.IsActive)
	assert.Equal(t, 2, status.QuestionsAsked)

	summary, err := u.Performance(ctx, started.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.CorrectAnswers)
}

func TestTopicsAndBankStats(t *testing.T) {
	repo := newStubRepository(
		bankQuestion("q1", "Formulas", "easy"),
		bankQuestion("q2", "Formulas", "easy"),
		bankQuestion("q3", "Charts", "easy"),
		bankQuestion("q4", "VBA", "hard"),
	)
	u := testUsecase(repo)
	ctx := context.Background()

	topics, err := u.Topics(ctx, entity.DifficultyEasy)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Formulas", "Charts"}, topics)

	stats, err := u.BankStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalQuestions)
	assert.Equal(t, int64(3), stats.ByDifficulty["easy"])
	assert.Equal(t, int64(0), stats.ByDifficulty["medium"])
	assert.Equal(t, int64(1), stats.ByDifficulty["hard"])
	assert.Equal(t, 3, stats.AvailableTopics)
	// Sorted by count descending, then topic name.
	require.Len(t, stats.TopicDistribution, 3)
	assert.Equal(t, entity.TopicCount{Topic: "Formulas", Count: 2}, stats.TopicDistribution[0])
	assert.Equal(t, entity.TopicCount{Topic: "Charts", Count: 1}, stats.TopicDistribution[1])
	assert.Equal(t, entity.TopicCount{Topic: "VBA", Count: 1}, stats.TopicDistribution[2])
}

func TestSessionNarrativeMissingIsNotFound(t *testing.T) {
	u := testUsecase(newStubRepository())

	_, err := u.SessionNarrative(context.Background(), "unknown")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
