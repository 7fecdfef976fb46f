package entity

import (
	"time"

	"gorm.io/gorm"
)

// QuizQuestion - bank of multiple-choice questions, seeded plus AI-generated
type QuizQuestion struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	QuestionID  string         `gorm:"uniqueIndex;size:100;not null" json:"question_id"`
	Question    string         `gorm:"type:text;not null" json:"question"`
	OptionA     string         `gorm:"type:text;not null" json:"option_a"`
	OptionB     string         `gorm:"type:text;not null" json:"option_b"`
	OptionC     string         `gorm:"type:text;not null" json:"option_c"`
	OptionD     string         `gorm:"type:text;not null" json:"option_d"`
	Answer      string         `gorm:"type:text;not null" json:"answer"` // full text of the correct option
	Difficulty  string         `gorm:"size:20;not null;index" json:"difficulty"`
	Topic       string         `gorm:"size:50;not null;index" json:"topic"`
	GeneratedBy string         `gorm:"size:20;default:seed" json:"generated_by"` // seed, ai
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// UserAnswer - audit record for every submitted answer
type UserAnswer struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	SessionID     string         `gorm:"size:100;not null;index" json:"session_id"`
	QuestionID    string         `gorm:"size:100;not null;index" json:"question_id"`
	QuestionText  string         `gorm:"type:text" json:"question_text"`
	UserAnswer    string         `gorm:"size:5;not null" json:"user_answer"`
	CorrectAnswer string         `gorm:"size:5;not null" json:"correct_answer"`
	IsCorrect     bool           `gorm:"not null" json:"is_correct"`
	Topic         string         `gorm:"size:50;index" json:"topic"`
	Difficulty    string         `gorm:"size:20;index" json:"difficulty"`
	AnsweredAt    time.Time      `gorm:"autoCreateTime" json:"answered_at"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserAnswer) TableName() string {
	return "user_answers"
}

// SessionSummary - cached LLM narrative per completed session
type SessionSummary struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	SessionID       string         `gorm:"uniqueIndex;size:100;not null" json:"session_id"`
	Scheme          string         `gorm:"size:20" json:"scheme"`
	TotalQuestions  int            `gorm:"not null" json:"total_questions"`
	CorrectAnswers  int            `gorm:"not null" json:"correct_answers"`
	Accuracy        float64        `json:"accuracy"`
	StrongTopics    string         `gorm:"type:text" json:"strong_topics"` // JSON array
	WeakTopics      string         `gorm:"type:text" json:"weak_topics"`   // JSON array
	Narrative       string         `gorm:"type:text" json:"narrative"`
	Recommendations string         `gorm:"type:text" json:"recommendations"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (SessionSummary) TableName() string {
	return "session_summaries"
}
