package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/quivia/quivia-be/internal/delivery/http/entity"
	internalEntity "github.com/quivia/quivia-be/internal/entity"
)

const enrichmentTimeout = 60 * time.Second

// enrichAfterCompletion kicks off the best-effort LLM side channel: a
// narrative write-up of the final summary and fresh question candidates for
// the bank. It never blocks or reworks the already-finalized summary.
func (u *quizUsecase) enrichAfterCompletion(session *Session, summary *entity.PerformanceSummary) {
	if u.cfg.Gemini == nil || summary == nil {
		return
	}

	sessionID := session.ID()
	history := session.History()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), enrichmentTimeout)
		defer cancel()

		if err := u.narrateSummary(ctx, sessionID, session.scheme, summary); err != nil && u.cfg.Log != nil {
			u.cfg.Log.WithError(err).WithField("session_id", sessionID).Warn("summary narration failed")
		}
		if err := u.generateQuestionsFromHistory(ctx, summary, history); err != nil && u.cfg.Log != nil {
			u.cfg.Log.WithError(err).WithField("session_id", sessionID).Warn("question generation failed")
		}
	}()
}

type narrativeJSON struct {
	Narrative       string `json:"narrative"`
	Recommendations string `json:"recommendations"`
}

func (u *quizUsecase) narrateSummary(ctx context.Context, sessionID string, scheme entity.SchemeConfig, summary *entity.PerformanceSummary) error {
	var breakdown strings.Builder
	for topic, stats := range summary.TopicBreakdown {
		fmt.Fprintf(&breakdown, "- %s: %d/%d correct (%.0f%%), tier %s\n", topic, stats.Correct, stats.Total, stats.Accuracy*100, stats.Tier)
	}

	prompt := fmt.Sprintf(`You are an encouraging learning coach. Summarize this quiz session for the learner.

Total Questions: %d
Correct Answers: %d
Accuracy: %.1f%%

Per-topic results:
%s
Task:
1. Write a short, supportive narrative (3-5 sentences) about the learner's performance
2. Give 2-3 concrete study recommendations based on the weaker topics

IMPORTANT: Return ONLY valid JSON, NO markdown, NO code blocks.
JSON format:
{"narrative":"...","recommendations":"..."}`,
		summary.TotalQuestions, summary.CorrectAnswers, summary.Accuracy*100, breakdown.String())

	record := &internalEntity.SessionSummary{
		SessionID:      sessionID,
		Scheme:         string(scheme.Kind),
		TotalQuestions: summary.TotalQuestions,
		CorrectAnswers: summary.CorrectAnswers,
		Accuracy:       summary.Accuracy,
	}
	if summary.Recommendations != nil {
		strong, _ := json.Marshal(summary.Recommendations.StrongTopics)
		weak, _ := json.Marshal(summary.Recommendations.TopicsToReview)
		record.StrongTopics = string(strong)
		record.WeakTopics = string(weak)
	}

	text, err := u.cfg.Gemini.GenerateText(ctx, prompt)
	if err != nil {
		// Cache a plain fallback so the summary endpoint still has content.
		record.Narrative = "Quiz session complete. Keep practicing to improve your weaker topics."
		if saveErr := u.cfg.Repository.CreateOrUpdateSessionSummary(u.cfg.DB, record); saveErr != nil {
			return saveErr
		}
		return err
	}

	var parsed narrativeJSON
	if parseErr := json.Unmarshal([]byte(stripCodeFences(text)), &parsed); parseErr != nil || parsed.Narrative == "" {
		record.Narrative = "Quiz session complete. Keep practicing to improve your weaker topics."
	} else {
		record.Narrative = parsed.Narrative
		record.Recommendations = parsed.Recommendations
	}

	return u.cfg.Repository.CreateOrUpdateSessionSummary(u.cfg.DB, record)
}

type generatedQuestionJSON struct {
	Question   string `json:"question"`
	OptionA    string `json:"option_a"`
	OptionB    string `json:"option_b"`
	OptionC    string `json:"option_c"`
	OptionD    string `json:"option_d"`
	Answer     string `json:"answer"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
}

type generatedBatchJSON struct {
	Questions []generatedQuestionJSON `json:"questions"`
}

// generateQuestionsFromHistory asks the model for new bank candidates
// targeting the session's weak topics and challenging its strong ones.
func (u *quizUsecase) generateQuestionsFromHistory(ctx context.Context, summary *entity.PerformanceSummary, history []AnswerRecord) error {
	if len(history) == 0 || summary.Recommendations == nil {
		return nil
	}

	var observed strings.Builder
	for _, rec := range history {
		fmt.Fprintf(&observed, "- [%s/%s] %q answered %s (correct: %v)\n",
			rec.Topic, rec.Question.Difficulty, rec.Question.Text, rec.UserAnswer, rec.IsCorrect)
	}

	prompt := fmt.Sprintf(`You are an expert quiz question generator for a spreadsheet skills assessment.

Weak topics to target: %s
Strong topics to challenge at higher difficulty: %s

Answered questions this session:
%s
Generate 5 new multiple-choice questions. Each must have exactly 4 options and
the answer text must match one option exactly. Use topics from the lists above
and difficulty easy, medium, or hard.

IMPORTANT: Return ONLY valid JSON, NO markdown, NO code blocks.
JSON format:
{"questions":[{"question":"...","option_a":"...","option_b":"...","option_c":"...","option_d":"...","answer":"...","topic":"...","difficulty":"easy"}]}`,
		strings.Join(summary.Recommendations.TopicsToReview, ", "),
		strings.Join(summary.Recommendations.StrongTopics, ", "),
		observed.String())

	text, err := u.cfg.Gemini.GenerateText(ctx, prompt)
	if err != nil {
		return err
	}

	var parsed generatedBatchJSON
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &parsed); err != nil {
		return fmt.Errorf("AI output is not valid json: %w", err)
	}

	saved := 0
	for _, q := range parsed.Questions {
		row, ok := validateGenerated(q)
		if !ok {
			continue
		}
		if err := u.cfg.Repository.CreateQuestion(u.cfg.DB, row); err != nil {
			// Duplicates are expected, the question id is content-derived.
			continue
		}
		saved++
	}
	if u.cfg.Log != nil {
		u.cfg.Log.WithField("count", saved).Info("stored AI-generated question candidates")
	}
	return nil
}

func validateGenerated(q generatedQuestionJSON) (*internalEntity.QuizQuestion, bool) {
	if q.Question == "" || q.Topic == "" {
		return nil, false
	}
	if !entity.Difficulty(q.Difficulty).Valid() {
		return nil, false
	}
	options := []string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
	answerMatches := false
	for _, opt := range options {
		if opt == "" {
			return nil, false
		}
		if opt == q.Answer {
			answerMatches = true
		}
	}
	if !answerMatches {
		return nil, false
	}

	return &internalEntity.QuizQuestion{
		QuestionID:  generatedQuestionID(q.Question, q.Topic),
		Question:    q.Question,
		OptionA:     q.OptionA,
		OptionB:     q.OptionB,
		OptionC:     q.OptionC,
		OptionD:     q.OptionD,
		Answer:      q.Answer,
		Difficulty:  q.Difficulty,
		Topic:       q.Topic,
		GeneratedBy: "ai",
	}, true
}

func generatedQuestionID(text, topic string) string {
	sum := sha256.Sum256([]byte(text + "|" + topic))
	return "q-" + hex.EncodeToString(sum[:8])
}

func stripCodeFences(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
