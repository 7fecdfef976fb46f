package usecase

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/quivia/quivia-be/internal/delivery/http/entity"
)

var (
	ErrSessionNotFound      = errors.New("quiz session not found")
	ErrNoActiveSession      = errors.New("no active quiz session")
	ErrNoActiveQuestion     = errors.New("no active question to answer")
	ErrInvalidAnswer        = errors.New("invalid answer format, choose A, B, C, or D")
	ErrNoQuestionsAvailable = errors.New("no questions available for the requested criteria")
)

// Session is one user's quiz run. It owns the question pool, the mastery
// tracker, and a private random source; all mutating calls are serialized by
// the session mutex so concurrent users never share engine state.
type Session struct {
	mu sync.Mutex

	id           string
	scheme       entity.SchemeConfig
	policy       MasteryPolicy
	active       bool
	maxQuestions int
	asked        int

	pool           []entity.Question
	current        *entity.Question
	lastQuestionID string

	tracker  *MasteryTracker
	selector *TopicSelector
	rnd      *rand.Rand
}

func NewSession(id string, scheme entity.SchemeConfig, maxQuestions int, pool []entity.Question, policy MasteryPolicy, rnd *rand.Rand) *Session {
	tracker := NewMasteryTracker(scheme, policy)
	return &Session{
		id:           id,
		scheme:       scheme,
		policy:       policy,
		active:       true,
		maxQuestions: maxQuestions,
		pool:         pool,
		tracker:      tracker,
		selector:     NewTopicSelector(tracker),
		rnd:          rnd,
	}
}

func (s *Session) ID() string {
	return s.id
}

// NextQuestionResult carries either the next question or, once the budget is
// exhausted, the completion payload.
type NextQuestionResult struct {
	Question  *entity.QuestionResponse
	Completed *entity.EndSessionResponse
}

func (s *Session) NextQuestion() (*NextQuestionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil, ErrNoActiveSession
	}

	if s.asked >= s.maxQuestions {
		return &NextQuestionResult{Completed: s.complete()}, nil
	}

	next := s.selectNext()
	if next == nil {
		return &NextQuestionResult{Completed: s.complete()}, nil
	}

	s.current = next
	s.asked++

	return &NextQuestionResult{
		Question: &entity.QuestionResponse{
			QuestionID:       next.ID,
			Text:             next.Text,
			Options:          next.Options,
			Topic:            next.Topic,
			Difficulty:       string(next.Difficulty),
			QuestionNumber:   s.asked,
			TotalQuestions:   s.maxQuestions,
			Progress:         float64(s.asked) / float64(s.maxQuestions) * 100,
			FromSeedStrength: s.tracker.IsSeedTopic(next.Topic),
		},
	}, nil
}

// selectNext draws without replacement: recommended topics first, then any
// pool question other than the one just answered, then give up.
func (s *Session) selectNext() *entity.Question {
	if len(s.pool) == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	availableTopics := make([]string, 0)
	for i := range s.pool {
		if _, ok := seen[s.pool[i].Topic]; !ok {
			seen[s.pool[i].Topic] = struct{}{}
			availableTopics = append(availableTopics, s.pool[i].Topic)
		}
	}

	recommended := make(map[string]struct{})
	for _, topic := range s.selector.RecommendTopics(availableTopics) {
		recommended[topic] = struct{}{}
	}

	preferred := make([]int, 0, len(s.pool))
	for i := range s.pool {
		if _, ok := recommended[s.pool[i].Topic]; ok && s.pool[i].ID != s.lastQuestionID {
			preferred = append(preferred, i)
		}
	}

	if len(preferred) == 0 {
		for i := range s.pool {
			if s.pool[i].ID != s.lastQuestionID {
				preferred = append(preferred, i)
			}
		}
	}
	if len(preferred) == 0 {
		return nil
	}

	idx := preferred[s.rnd.Intn(len(preferred))]
	selected := s.pool[idx]
	s.pool = append(s.pool[:idx], s.pool[idx+1:]...)
	return &selected
}

// SubmitAnswer grades the pending question. The returned AnswerRecord is for
// the caller's audit sink and is nil when the submission was rejected.
func (s *Session) SubmitAnswer(answer string) (*entity.AnswerResponse, *AnswerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active || s.current == nil {
		return nil, nil, ErrNoActiveQuestion
	}

	normalized := strings.ToUpper(strings.TrimSpace(answer))
	if !validOptionLetter(normalized) {
		// Rejected input leaves the current question pending for a retry.
		return nil, nil, ErrInvalidAnswer
	}

	question := *s.current
	isCorrect := normalized == question.CorrectOption

	s.tracker.RecordAnswer(question, normalized, isCorrect)

	record := &AnswerRecord{
		Question:      question,
		UserAnswer:    normalized,
		CorrectAnswer: question.CorrectOption,
		IsCorrect:     isCorrect,
		Topic:         question.Topic,
	}

	res := &entity.AnswerResponse{
		IsCorrect:         isCorrect,
		UserAnswer:        normalized,
		CorrectAnswer:     question.CorrectOption,
		CorrectOptionText: question.Options[question.CorrectOption],
		Topic:             question.Topic,
		Explanation:       explanationFor(isCorrect, question.Topic, s.scheme.Kind),
		FromSeedStrength:  s.tracker.IsSeedTopic(question.Topic),
	}

	s.lastQuestionID = question.ID
	s.current = nil

	if s.asked >= s.maxQuestions {
		s.active = false
		res.QuizCompleted = true
		res.FinalResults = Summarize(s.tracker)
	} else {
		res.QuestionsRemaining = s.maxQuestions - s.asked
	}

	return res, record, nil
}

func (s *Session) Performance() *entity.PerformanceSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summarize(s.tracker)
}

func (s *Session) Status() *entity.SessionStatusResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := &entity.SessionStatusResponse{
		IsActive:           s.active,
		Scheme:             string(s.scheme.Kind),
		QuestionsAsked:     s.asked,
		MaxQuestions:       s.maxQuestions,
		HasCurrentQuestion: s.current != nil,
		SeedTopics:         s.scheme.SeedTopics,
	}
	if s.current != nil {
		status.CurrentQuestionID = s.current.ID
	}
	return status
}

// End terminates the session early and produces the final summary from
// whatever was accumulated.
func (s *Session) End() (*entity.EndSessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil, ErrNoActiveSession
	}
	return s.complete(), nil
}

func (s *Session) complete() *entity.EndSessionResponse {
	s.active = false
	s.current = nil
	return &entity.EndSessionResponse{
		QuizCompleted:     true,
		QuestionsAnswered: s.asked,
		FinalResults:      Summarize(s.tracker),
	}
}

// Reset clears pool, counters, and mastery history. Nothing survives a reset.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = false
	s.current = nil
	s.lastQuestionID = ""
	s.pool = nil
	s.asked = 0
	s.tracker.Reset()
}

func (s *Session) History() []AnswerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.History()
}

func validOptionLetter(answer string) bool {
	for _, letter := range entity.OptionLetters {
		if answer == letter {
			return true
		}
	}
	return false
}

func explanationFor(isCorrect bool, topic string, kind entity.SchemeKind) string {
	if kind == entity.SchemeFourTier {
		if isCorrect {
			return fmt.Sprintf("Excellent! You're showing strong depth in %s at medium difficulty.", topic)
		}
		return fmt.Sprintf("Not quite. This medium-level %s question shows an area to strengthen.", topic)
	}
	if isCorrect {
		return fmt.Sprintf("Correct! Great job on this %s question.", topic)
	}
	return fmt.Sprintf("Incorrect. This was a %s question - consider reviewing this topic.", topic)
}

// SessionRegistry keys live sessions by ID so concurrent users each get their
// own engine instance.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*Session)}
}

func (r *SessionRegistry) Put(session *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID()] = session
}

func (r *SessionRegistry) Get(sessionID string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (r *SessionRegistry) Delete(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}
