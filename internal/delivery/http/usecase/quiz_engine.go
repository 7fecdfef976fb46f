package usecase

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/quivia/quivia-be/internal/delivery/http/entity"
	"github.com/quivia/quivia-be/internal/delivery/http/repository"
	internalEntity "github.com/quivia/quivia-be/internal/entity"
	"github.com/quivia/quivia-be/internal/pkg/llm"
	"github.com/quivia/quivia-be/internal/pkg/mapper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

const (
	strategySeedStrengths = "test_seed_strengths"
	strategyExplore       = "explore_topics"
)

type QuizUsecase interface {
	StartSession(ctx context.Context, req entity.StartSessionRequest) (*entity.StartSessionResponse, error)
	NextQuestion(ctx context.Context, sessionID string) (*NextQuestionResult, error)
	SubmitAnswer(ctx context.Context, sessionID string, req entity.SubmitAnswerRequest) (*entity.AnswerResponse, error)
	Performance(ctx context.Context, sessionID string) (*entity.PerformanceSummary, error)
	Status(ctx context.Context, sessionID string) (*entity.SessionStatusResponse, error)
	EndSession(ctx context.Context, sessionID string) (*entity.EndSessionResponse, error)
	ResetSession(ctx context.Context, sessionID string) error
	SessionHistory(ctx context.Context, sessionID string) ([]entity.AnswerLogItem, error)
	Topics(ctx context.Context, difficulty entity.Difficulty) ([]string, error)
	BankStats(ctx context.Context) (*entity.BankStats, error)
	SessionNarrative(ctx context.Context, sessionID string) (*entity.SessionNarrative, error)
}

type QuizConfig struct {
	DB         *gorm.DB
	Repository repository.QuizQuestionRepository
	Log        *logrus.Logger
	Config     *viper.Viper
	Gemini     *llm.GeminiClient

	// Seed fixes the random source of every session, zero means time-based.
	Seed int64
}

type quizUsecase struct {
	cfg      QuizConfig
	policy   MasteryPolicy
	registry *SessionRegistry
}

func NewQuizUsecase(cfg QuizConfig) QuizUsecase {
	return &quizUsecase{
		cfg:      cfg,
		policy:   policyFromConfig(cfg.Config),
		registry: NewSessionRegistry(),
	}
}

// policyFromConfig overlays quiz.* keys on the calibrated defaults.
func policyFromConfig(config *viper.Viper) MasteryPolicy {
	policy := DefaultMasteryPolicy()
	if config == nil {
		return policy
	}
	if v := config.GetFloat64("quiz.expert_accuracy"); v > 0 {
		policy.ExpertAccuracy = v
	}
	if v := config.GetFloat64("quiz.proficient_accuracy"); v > 0 {
		policy.ProficientAccuracy = v
	}
	if v := config.GetFloat64("quiz.developing_accuracy"); v > 0 {
		policy.DevelopingAccuracy = v
	}
	if v := config.GetInt("quiz.confirm_solved_attempts"); v > 0 {
		policy.ConfirmSolvedAttempts = v
	}
	if v := config.GetInt("quiz.retry_unsolved_attempts"); v > 0 {
		policy.RetryUnsolvedAttempts = v
	}
	if v := config.GetInt("quiz.expert_stop_attempts"); v > 0 {
		policy.ExpertStopAttempts = v
	}
	if v := config.GetInt("quiz.struggling_stop_attempts"); v > 0 {
		policy.StrugglingStopAttempts = v
	}
	if v := config.GetInt("quiz.pool_factor"); v > 0 {
		policy.PoolFactor = v
	}
	return policy
}

func (u *quizUsecase) StartSession(ctx context.Context, req entity.StartSessionRequest) (*entity.StartSessionResponse, error) {
	scheme := entity.SchemeConfig{
		Kind:       entity.SchemeBinary,
		Difficulty: entity.DifficultyEasy,
	}
	if entity.SchemeKind(req.Scheme) == entity.SchemeFourTier {
		scheme.Kind = entity.SchemeFourTier
		scheme.Difficulty = entity.DifficultyMedium
		scheme.SeedTopics = req.SeedTopics
	}

	limit := req.MaxQuestions * u.policy.PoolFactor
	pool, strategy, err := u.fetchPool(scheme, limit)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	seed := u.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := NewSession(uuid.NewString(), scheme, req.MaxQuestions, pool, u.policy, rand.New(rand.NewSource(seed)))
	u.registry.Put(session)

	return &entity.StartSessionResponse{
		SessionID:          session.ID(),
		Scheme:             string(scheme.Kind),
		MaxQuestions:       req.MaxQuestions,
		AvailableQuestions: len(pool),
		Strategy:           strategy,
		SeedTopics:         scheme.SeedTopics,
	}, nil
}

// fetchPool over-provisions the candidate pool so the selector has room to
// pick without further round trips. Depth sessions draw from the seeded
// strengths first and top up with random medium questions.
func (u *quizUsecase) fetchPool(scheme entity.SchemeConfig, limit int) ([]entity.Question, string, error) {
	if scheme.Kind == entity.SchemeFourTier && len(scheme.SeedTopics) > 0 {
		rows, err := u.cfg.Repository.FindByTopicsAndDifficulty(u.cfg.DB, scheme.SeedTopics, string(scheme.Difficulty), limit)
		if err != nil {
			return nil, "", err
		}
		if len(rows) < limit {
			extra, err := u.cfg.Repository.FindRandomByDifficulty(u.cfg.DB, string(scheme.Difficulty), limit-len(rows), scheme.SeedTopics)
			if err != nil {
				return nil, "", err
			}
			rows = append(rows, extra...)
		}
		strategy := strategySeedStrengths
		if len(rows) > 0 && !hasAnyTopic(rows, scheme.SeedTopics) {
			strategy = strategyExplore
		}
		return mapper.ConvertToQuestions(rows), strategy, nil
	}

	rows, err := u.cfg.Repository.FindRandomByDifficulty(u.cfg.DB, string(scheme.Difficulty), limit, nil)
	if err != nil {
		return nil, "", err
	}
	return mapper.ConvertToQuestions(rows), strategyExplore, nil
}

func hasAnyTopic(rows []internalEntity.QuizQuestion, topics []string) bool {
	set := make(map[string]struct{}, len(topics))
	for _, topic := range topics {
		set[topic] = struct{}{}
	}
	for i := range rows {
		if _, ok := set[rows[i].Topic]; ok {
			return true
		}
	}
	return false
}

func (u *quizUsecase) NextQuestion(ctx context.Context, sessionID string) (*NextQuestionResult, error) {
	session, err := u.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}

	result, err := session.NextQuestion()
	if err != nil {
		return nil, err
	}
	if result.Completed != nil {
		u.enrichAfterCompletion(session, result.Completed.FinalResults)
	}
	return result, nil
}

func (u *quizUsecase) SubmitAnswer(ctx context.Context, sessionID string, req entity.SubmitAnswerRequest) (*entity.AnswerResponse, error) {
	session, err := u.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}

	res, record, err := session.SubmitAnswer(req.Answer)
	if err != nil {
		return nil, err
	}

	// Audit is fire-and-forget: in-memory session state never depends on it.
	go u.auditAnswer(sessionID, record)

	if res.QuizCompleted {
		u.enrichAfterCompletion(session, res.FinalResults)
	}

	return res, nil
}

func (u *quizUsecase) auditAnswer(sessionID string, record *AnswerRecord) {
	answer := &internalEntity.UserAnswer{
		SessionID:     sessionID,
		QuestionID:    record.Question.ID,
		QuestionText:  record.Question.Text,
		UserAnswer:    record.UserAnswer,
		CorrectAnswer: record.CorrectAnswer,
		IsCorrect:     record.IsCorrect,
		Topic:         record.Topic,
		Difficulty:    string(record.Question.Difficulty),
	}
	if err := u.cfg.Repository.CreateUserAnswer(u.cfg.DB, answer); err != nil && u.cfg.Log != nil {
		u.cfg.Log.WithError(err).WithField("session_id", sessionID).Warn("failed to persist answer audit record")
	}
}

func (u *quizUsecase) Performance(ctx context.Context, sessionID string) (*entity.PerformanceSummary, error) {
	session, err := u.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return session.Performance(), nil
}

func (u *quizUsecase) Status(ctx context.Context, sessionID string) (*entity.SessionStatusResponse, error) {
	session, err := u.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return session.Status(), nil
}

func (u *quizUsecase) EndSession(ctx context.Context, sessionID string) (*entity.EndSessionResponse, error) {
	session, err := u.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}

	res, err := session.End()
	if err != nil {
		return nil, err
	}

	u.enrichAfterCompletion(session, res.FinalResults)
	return res, nil
}

func (u *quizUsecase) ResetSession(ctx context.Context, sessionID string) error {
	session, err := u.registry.Get(sessionID)
	if err != nil {
		return err
	}
	session.Reset()
	return nil
}

func (u *quizUsecase) SessionHistory(ctx context.Context, sessionID string) ([]entity.AnswerLogItem, error) {
	answers, err := u.cfg.Repository.FindUserAnswersBySessionID(u.cfg.DB, sessionID)
	if err != nil {
		return nil, err
	}

	items := make([]entity.AnswerLogItem, 0, len(answers))
	for _, answer := range answers {
		items = append(items, entity.AnswerLogItem{
			QuestionID:    answer.QuestionID,
			QuestionText:  answer.QuestionText,
			UserAnswer:    answer.UserAnswer,
			CorrectAnswer: answer.CorrectAnswer,
			IsCorrect:     answer.IsCorrect,
			Topic:         answer.Topic,
			Difficulty:    answer.Difficulty,
			AnsweredAt:    answer.AnsweredAt.Format(time.RFC3339),
		})
	}
	return items, nil
}

func (u *quizUsecase) Topics(ctx context.Context, difficulty entity.Difficulty) ([]string, error) {
	return u.cfg.Repository.TopicsForDifficulty(u.cfg.DB, string(difficulty))
}

func (u *quizUsecase) BankStats(ctx context.Context) (*entity.BankStats, error) {
	total, err := u.cfg.Repository.CountAll(u.cfg.DB)
	if err != nil {
		return nil, err
	}

	byDifficulty := make(map[string]int64, 3)
	for _, difficulty := range []entity.Difficulty{entity.DifficultyEasy, entity.DifficultyMedium, entity.DifficultyHard} {
		count, err := u.cfg.Repository.CountByDifficulty(u.cfg.DB, string(difficulty))
		if err != nil {
			return nil, err
		}
		byDifficulty[string(difficulty)] = count
	}

	distribution, err := u.cfg.Repository.TopicDistribution(u.cfg.DB, "")
	if err != nil {
		return nil, err
	}

	counts := make([]entity.TopicCount, 0, len(distribution))
	for topic, count := range distribution {
		counts = append(counts, entity.TopicCount{Topic: topic, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Topic < counts[j].Topic
	})

	return &entity.BankStats{
		TotalQuestions:    total,
		ByDifficulty:      byDifficulty,
		AvailableTopics:   len(counts),
		TopicDistribution: counts,
	}, nil
}

func (u *quizUsecase) SessionNarrative(ctx context.Context, sessionID string) (*entity.SessionNarrative, error) {
	summary, err := u.cfg.Repository.FindSessionSummaryBySessionID(u.cfg.DB, sessionID)
	if err != nil {
		return nil, err
	}
	return &entity.SessionNarrative{
		SessionID:   summary.SessionID,
		Narrative:   summary.Narrative,
		GeneratedAt: summary.CreatedAt.Format(time.RFC3339),
	}, nil
}
