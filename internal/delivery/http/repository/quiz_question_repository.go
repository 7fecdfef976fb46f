package repository

import (
	"github.com/quivia/quivia-be/internal/entity"
	"gorm.io/gorm"
)

type (
	QuizQuestionRepository interface {
		// Question bank operations
		CreateQuestion(db *gorm.DB, question *entity.QuizQuestion) error
		FindByTopicsAndDifficulty(db *gorm.DB, topics []string, difficulty string, limit int) ([]entity.QuizQuestion, error)
		FindRandomByDifficulty(db *gorm.DB, difficulty string, limit int, excludeTopics []string) ([]entity.QuizQuestion, error)
		TopicsForDifficulty(db *gorm.DB, difficulty string) ([]string, error)
		CountByDifficulty(db *gorm.DB, difficulty string) (int64, error)
		CountAll(db *gorm.DB) (int64, error)
		TopicDistribution(db *gorm.DB, difficulty string) (map[string]int64, error)

		// Answer audit operations
		CreateUserAnswer(db *gorm.DB, answer *entity.UserAnswer) error
		FindUserAnswersBySessionID(db *gorm.DB, sessionID string) ([]entity.UserAnswer, error)

		// Session summary operations
		CreateOrUpdateSessionSummary(db *gorm.DB, summary *entity.SessionSummary) error
		FindSessionSummaryBySessionID(db *gorm.DB, sessionID string) (*entity.SessionSummary, error)
	}

	quizQuestionRepository struct {
		db *gorm.DB
	}
)

func NewQuizQuestionRepository(db *gorm.DB) QuizQuestionRepository {
	return &quizQuestionRepository{db: db}
}

// Question bank operations
func (r *quizQuestionRepository) CreateQuestion(db *gorm.DB, question *entity.QuizQuestion) error {
	if db == nil {
		db = r.db
	}
	return db.Create(question).Error
}

func (r *quizQuestionRepository) FindByTopicsAndDifficulty(db *gorm.DB, topics []string, difficulty string, limit int) ([]entity.QuizQuestion, error) {
	if db == nil {
		db = r.db
	}
	var questions []entity.QuizQuestion
	query := db.Where("difficulty = ?", difficulty)
	if len(topics) > 0 {
		query = query.Where("topic IN ?", topics)
	}
	err := query.Order("RANDOM()").Limit(limit).Find(&questions).Error
	return questions, err
}

func (r *quizQuestionRepository) FindRandomByDifficulty(db *gorm.DB, difficulty string, limit int, excludeTopics []string) ([]entity.QuizQuestion, error) {
	if db == nil {
		db = r.db
	}
	var questions []entity.QuizQuestion
	query := db.Where("difficulty = ?", difficulty)
	if len(excludeTopics) > 0 {
		query = query.Where("topic NOT IN ?", excludeTopics)
	}
	err := query.Order("RANDOM()").Limit(limit).Find(&questions).Error
	return questions, err
}

func (r *quizQuestionRepository) TopicsForDifficulty(db *gorm.DB, difficulty string) ([]string, error) {
	if db == nil {
		db = r.db
	}
	var topics []string
	err := db.Model(&entity.QuizQuestion{}).
		Where("difficulty = ?", difficulty).
		Distinct("topic").
		Order("topic").
		Pluck("topic", &topics).Error
	return topics, err
}

func (r *quizQuestionRepository) CountByDifficulty(db *gorm.DB, difficulty string) (int64, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	err := db.Model(&entity.QuizQuestion{}).Where("difficulty = ?", difficulty).Count(&count).Error
	return count, err
}

func (r *quizQuestionRepository) CountAll(db *gorm.DB) (int64, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	err := db.Model(&entity.QuizQuestion{}).Count(&count).Error
	return count, err
}

func (r *quizQuestionRepository) TopicDistribution(db *gorm.DB, difficulty string) (map[string]int64, error) {
	if db == nil {
		db = r.db
	}
	type row struct {
		Topic string
		Count int64
	}
	var rows []row
	query := db.Model(&entity.QuizQuestion{}).Select("topic, COUNT(*) as count").Group("topic").Order("count DESC")
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	distribution := make(map[string]int64, len(rows))
	for _, r := range rows {
		distribution[r.Topic] = r.Count
	}
	return distribution, nil
}

// Answer audit operations
func (r *quizQuestionRepository) CreateUserAnswer(db *gorm.DB, answer *entity.UserAnswer) error {
	if db == nil {
		db = r.db
	}
	return db.Create(answer).Error
}

func (r *quizQuestionRepository) FindUserAnswersBySessionID(db *gorm.DB, sessionID string) ([]entity.UserAnswer, error) {
	if db == nil {
		db = r.db
	}
	var answers []entity.UserAnswer
	err := db.Where("session_id = ?", sessionID).Order("answered_at ASC").Find(&answers).Error
	return answers, err
}

// Session summary operations
func (r *quizQuestionRepository) CreateOrUpdateSessionSummary(db *gorm.DB, summary *entity.SessionSummary) error {
	if db == nil {
		db = r.db
	}
	// Upsert: update if exists, create if not
	return db.Where("session_id = ?", summary.SessionID).Assign(summary).FirstOrCreate(summary).Error
}

func (r *quizQuestionRepository) FindSessionSummaryBySessionID(db *gorm.DB, sessionID string) (*entity.SessionSummary, error) {
	if db == nil {
		db = r.db
	}
	var summary entity.SessionSummary
	err := db.Where("session_id = ?", sessionID).First(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
