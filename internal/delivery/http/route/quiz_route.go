package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quivia/quivia-be/internal/delivery/http/handler"
	"github.com/quivia/quivia-be/internal/delivery/http/middleware"
)

func SetupQuizRoute(api *fiber.App, handler handler.QuizHandler, m *middleware.Middleware) {
	router := api.Group("/quiz")
	{
		router.Get("/topics", handler.Topics)
		router.Get("/stats", handler.BankStats)
	}

	sessionRouter := router.Group("/sessions")
	{
		sessionRouter.Post("/", handler.StartSession)
		sessionRouter.Get("/:session_id/question", handler.NextQuestion)
		sessionRouter.Post("/:session_id/answer", handler.SubmitAnswer)
		sessionRouter.Get("/:session_id/performance", handler.Performance)
		sessionRouter.Get("/:session_id/status", handler.Status)
		sessionRouter.Post("/:session_id/end", handler.EndSession)
		sessionRouter.Post("/:session_id/reset", handler.ResetSession)
		sessionRouter.Get("/:session_id/history", handler.SessionHistory)
		sessionRouter.Get("/:session_id/summary", handler.SessionNarrative)
	}
}
