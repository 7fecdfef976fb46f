package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/quivia/quivia-be/internal/delivery/http/domain"
	"github.com/quivia/quivia-be/internal/delivery/http/entity"
	"github.com/quivia/quivia-be/internal/delivery/http/usecase"
	"github.com/quivia/quivia-be/internal/pkg/response"
	"github.com/quivia/quivia-be/internal/pkg/validate"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type (
	QuizHandler interface {
		StartSession(ctx *fiber.Ctx) error
		NextQuestion(ctx *fiber.Ctx) error
		SubmitAnswer(ctx *fiber.Ctx) error
		Performance(ctx *fiber.Ctx) error
		Status(ctx *fiber.Ctx) error
		EndSession(ctx *fiber.Ctx) error
		ResetSession(ctx *fiber.Ctx) error
		SessionHistory(ctx *fiber.Ctx) error
		Topics(ctx *fiber.Ctx) error
		BankStats(ctx *fiber.Ctx) error
		SessionNarrative(ctx *fiber.Ctx) error
	}

	quizHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.QuizUsecase
	}
)

func NewQuizHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.QuizUsecase) QuizHandler {
	return &quizHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// statusFor maps engine errors onto HTTP codes: protocol violations are 400,
// missing resources are 404.
func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound),
		errors.Is(err, usecase.ErrNoQuestionsAvailable),
		errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, usecase.ErrNoActiveSession),
		errors.Is(err, usecase.ErrNoActiveQuestion),
		errors.Is(err, usecase.ErrInvalidAnswer):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *quizHandler) fail(ctx *fiber.Ctx, msg string, err error) error {
	return response.NewFailed(msg, fiber.NewError(statusFor(err), err.Error()), h.logger).Send(ctx)
}

// POST /quiz/sessions
func (h *quizHandler) StartSession(ctx *fiber.Ctx) error {
	var req entity.StartSessionRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.QUIZ_START_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.StartSession(ctx.UserContext(), req)
	if err != nil {
		return h.fail(ctx, domain.QUIZ_START_FAILED, err)
	}

	return response.NewSuccess(domain.QUIZ_START_SUCCESS, result, nil).Send(ctx)
}

// GET /quiz/sessions/:session_id/question
func (h *quizHandler) NextQuestion(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")

	result, err := h.usecase.NextQuestion(ctx.UserContext(), sessionID)
	if err != nil {
		return h.fail(ctx, domain.QUIZ_QUESTION_FAILED, err)
	}

	if result.Completed != nil {
		return response.NewSuccess(domain.QUIZ_END_SUCCESS, result.Completed, nil).Send(ctx)
	}
	return response.NewSuccess(domain.QUIZ_QUESTION_SUCCESS, result.Question, nil).Send(ctx)
}

// POST /quiz/sessions/:session_id/answer
func (h *quizHandler) SubmitAnswer(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")

	var req entity.SubmitAnswerRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.QUIZ_ANSWER_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.SubmitAnswer(ctx.UserContext(), sessionID, req)
	if err != nil {
		return h.fail(ctx, domain.QUIZ_ANSWER_FAILED, err)
	}

	return response.NewSuccess(domain.QUIZ_ANSWER_SUCCESS, result, nil).Send(ctx)
}

// GET /quiz/sessions/:session_id/performance
func (h *quizHandler) Performance(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")

	result, err := h.usecase.Performance(ctx.UserContext(), sessionID)
	if err != nil {
		return h.fail(ctx, domain.QUIZ_PERFORMANCE_FAILED, err)
	}

	return response.NewSuccess(domain.QUIZ_PERFORMANCE_SUCCESS, result, nil).Send(ctx)
}

// GET /quiz/sessions/:session_id/status
func (h *quizHandler) Status(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")

	result, err := h.usecase.Status(ctx.UserContext(), sessionID)
	if err != nil {
		return h.fail(ctx, domain.QUIZ_STATUS_FAILED, err)
	}

	return response.NewSuccess(domain.QUIZ_STATUS_SUCCESS, result, nil).Send(ctx)
}

// POST /quiz/sessions/:session_id/end
func (h *quizHandler) EndSession(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")

	result, err := h.usecase.EndSession(ctx.UserContext(), sessionID)
	if err != nil {
		return h.fail(ctx, domain.QUIZ_END_FAILED, err)
	}

	return response.NewSuccess(domain.QUIZ_END_SUCCESS, result, nil).Send(ctx)
}

// POST /quiz/sessions/:session_id/reset
func (h *quizHandler) ResetSession(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")

	if err := h.usecase.ResetSession(ctx.UserContext(), sessionID); err != nil {
		return h.fail(ctx, domain.QUIZ_RESET_FAILED, err)
	}

	return response.NewSuccess(domain.QUIZ_RESET_SUCCESS, nil, nil).Send(ctx)
}

// GET /quiz/sessions/:session_id/history
func (h *quizHandler) SessionHistory(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")

	result, err := h.usecase.SessionHistory(ctx.UserContext(), sessionID)
	if err != nil {
		return h.fail(ctx, domain.QUIZ_HISTORY_FAILED, err)
	}

	return response.NewSuccess(domain.QUIZ_HISTORY_SUCCESS, result, nil).Send(ctx)
}

// GET /quiz/topics?difficulty=easy|medium|hard
func (h *quizHandler) Topics(ctx *fiber.Ctx) error {
	difficulty := entity.DifficultyEasy
	if d := strings.TrimSpace(ctx.Query("difficulty")); d != "" {
		difficulty = entity.Difficulty(strings.ToLower(d))
		if !difficulty.Valid() {
			return response.NewFailed(domain.QUIZ_TOPICS_FAILED, fiber.NewError(fiber.StatusBadRequest, "invalid difficulty"), h.logger).Send(ctx)
		}
	}

	topics, err := h.usecase.Topics(ctx.UserContext(), difficulty)
	if err != nil {
		return h.fail(ctx, domain.QUIZ_TOPICS_FAILED, err)
	}

	return response.NewSuccess(domain.QUIZ_TOPICS_SUCCESS, fiber.Map{
		"available_topics": topics,
		"total_topics":     len(topics),
	}, nil).Send(ctx)
}

// GET /quiz/stats
func (h *quizHandler) BankStats(ctx *fiber.Ctx) error {
	result, err := h.usecase.BankStats(ctx.UserContext())
	if err != nil {
		return h.fail(ctx, domain.QUIZ_STATS_FAILED, err)
	}

	return response.NewSuccess(domain.QUIZ_STATS_SUCCESS, result, nil).Send(ctx)
}

// GET /quiz/sessions/:session_id/summary
func (h *quizHandler) SessionNarrative(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")

	result, err := h.usecase.SessionNarrative(ctx.UserContext(), sessionID)
	if err != nil {
		return h.fail(ctx, domain.QUIZ_NARRATIVE_FAILED, err)
	}

	return response.NewSuccess(domain.QUIZ_NARRATIVE_SUCCESS, result, nil).Send(ctx)
}
