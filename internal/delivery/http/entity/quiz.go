package entity

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type SchemeKind string

const (
	SchemeBinary   SchemeKind = "binary"
	SchemeFourTier SchemeKind = "four_tier"
)

// MasteryTier is derived from accumulated counts, never stored.
type MasteryTier string

const (
	TierSolved     MasteryTier = "solved"
	TierUnsolved   MasteryTier = "unsolved"
	TierExpert     MasteryTier = "expert"
	TierProficient MasteryTier = "proficient"
	TierDeveloping MasteryTier = "developing"
	TierStruggling MasteryTier = "struggling"
)

var OptionLetters = []string{"A", "B", "C", "D"}

// Question is the in-memory quiz question. Options maps A..D to option text.
type Question struct {
	ID            string            `json:"id"`
	Text          string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectOption string            `json:"-"`
	Topic         string            `json:"topic"`
	Difficulty    Difficulty        `json:"difficulty"`
}

// SchemeConfig selects the mastery scheme for a session. Binary sessions run
// the easy breadth pass; four-tier sessions run the medium depth pass seeded
// with the strong topics of a prior session.
type SchemeConfig struct {
	Kind       SchemeKind `json:"kind"`
	Difficulty Difficulty `json:"difficulty"`
	SeedTopics []string   `json:"seed_topics,omitempty"`
}

type StartSessionRequest struct {
	MaxQuestions int      `json:"max_questions" validate:"required,min=1,max=50"`
	Scheme       string   `json:"scheme" validate:"omitempty,oneof=binary four_tier"`
	SeedTopics   []string `json:"seed_topics" validate:"omitempty,dive,min=1"`
}

type StartSessionResponse struct {
	SessionID          string   `json:"session_id"`
	Scheme             string   `json:"scheme"`
	MaxQuestions       int      `json:"max_questions"`
	AvailableQuestions int      `json:"available_questions"`
	Strategy           string   `json:"strategy"`
	SeedTopics         []string `json:"seed_topics,omitempty"`
}

type QuestionResponse struct {
	QuestionID       string            `json:"question_id"`
	Text             string            `json:"question"`
	Options          map[string]string `json:"options"`
	Topic            string            `json:"topic"`
	Difficulty       string            `json:"difficulty"`
	QuestionNumber   int               `json:"question_number"`
	TotalQuestions   int               `json:"total_questions"`
	Progress         float64           `json:"progress"`
	FromSeedStrength bool              `json:"from_seed_strength,omitempty"`
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

type AnswerResponse struct {
	IsCorrect          bool                `json:"is_correct"`
	UserAnswer         string              `json:"user_answer"`
	CorrectAnswer      string              `json:"correct_answer"`
	CorrectOptionText  string              `json:"correct_option_text"`
	Topic              string              `json:"topic"`
	Explanation        string              `json:"explanation"`
	FromSeedStrength   bool                `json:"from_seed_strength,omitempty"`
	QuizCompleted      bool                `json:"quiz_completed"`
	QuestionsRemaining int                 `json:"questions_remaining,omitempty"`
	FinalResults       *PerformanceSummary `json:"final_results,omitempty"`
}

type TopicStats struct {
	Correct          int     `json:"correct"`
	Incorrect        int     `json:"incorrect"`
	Total            int     `json:"total"`
	Accuracy         float64 `json:"accuracy"`
	Tier             string  `json:"tier"`
	FromSeedStrength bool    `json:"from_seed_strength,omitempty"`
}

type SeedProgress struct {
	WasPriorStrength   bool   `json:"was_prior_strength"`
	Tier               string `json:"tier"`
	MaintainedStrength bool   `json:"maintained_strength"`
}

type Recommendations struct {
	OverallPerformance string   `json:"overall_performance"`
	StrongTopics       []string `json:"strong_topics"`
	TopicsToReview     []string `json:"topics_to_review,omitempty"`
	NextSteps          []string `json:"next_steps"`
}

type PerformanceSummary struct {
	TotalQuestions   int     `json:"total_questions"`
	CorrectAnswers   int     `json:"correct_answers"`
	IncorrectAnswers int     `json:"incorrect_answers"`
	Accuracy         float64 `json:"accuracy"`
	TopicsAttempted  int     `json:"topics_attempted"`

	// Binary scheme buckets.
	SolvedTopics   []string `json:"solved_topics,omitempty"`
	UnsolvedTopics []string `json:"unsolved_topics,omitempty"`

	// Four-tier scheme buckets.
	ExpertTopics     []string                `json:"expert_topics,omitempty"`
	ProficientTopics []string                `json:"proficient_topics,omitempty"`
	DevelopingTopics []string                `json:"developing_topics,omitempty"`
	StrugglingTopics []string                `json:"struggling_topics,omitempty"`
	CrazyGoodTopics  []string                `json:"crazy_good_topics,omitempty"`
	SeedProgression  map[string]SeedProgress `json:"prior_round_progression,omitempty"`

	TopicBreakdown  map[string]TopicStats `json:"topic_breakdown"`
	Recommendations *Recommendations      `json:"recommendations,omitempty"`
}

type SessionStatusResponse struct {
	IsActive           bool     `json:"is_active"`
	Scheme             string   `json:"scheme"`
	QuestionsAsked     int      `json:"questions_asked"`
	MaxQuestions       int      `json:"max_questions"`
	HasCurrentQuestion bool     `json:"has_current_question"`
	CurrentQuestionID  string   `json:"current_question_id,omitempty"`
	SeedTopics         []string `json:"seed_topics,omitempty"`
}

type EndSessionResponse struct {
	QuizCompleted     bool                `json:"quiz_completed"`
	QuestionsAnswered int                 `json:"questions_answered"`
	FinalResults      *PerformanceSummary `json:"final_results"`
}

type AnswerLogItem struct {
	QuestionID    string `json:"question_id"`
	QuestionText  string `json:"question_text"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Topic         string `json:"topic"`
	Difficulty    string `json:"difficulty"`
	AnsweredAt    string `json:"answered_at"`
}

type TopicCount struct {
	Topic string `json:"topic"`
	Count int64  `json:"count"`
}

type BankStats struct {
	TotalQuestions    int64            `json:"total_questions"`
	ByDifficulty      map[string]int64 `json:"by_difficulty"`
	AvailableTopics   int              `json:"available_topics"`
	TopicDistribution []TopicCount     `json:"topic_distribution"`
}

type SessionNarrative struct {
	SessionID   string `json:"session_id"`
	Narrative   string `json:"narrative"`
	GeneratedAt string `json:"generated_at"`
}
