package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quivia/quivia-be/internal/delivery/http/handler"
	"github.com/quivia/quivia-be/internal/delivery/http/middleware"
	"github.com/quivia/quivia-be/internal/delivery/http/repository"
	"github.com/quivia/quivia-be/internal/delivery/http/route"
	"github.com/quivia/quivia-be/internal/delivery/http/usecase"
	"github.com/quivia/quivia-be/internal/pkg/llm"
	"github.com/quivia/quivia-be/internal/pkg/validate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB
	Log       *logrus.Logger
	Validator *validate.Validator
}

func Bootstrap(config *BootstrapConfig) {

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	apiKey := ""
	model := ""
	baseURL := ""
	if config.Config != nil {
		apiKey = config.Config.GetString("llm.gemini.api_key")
		model = config.Config.GetString("llm.gemini.model")
		baseURL = config.Config.GetString("llm.gemini.base_url")
	}

	// Without an API key the engine runs fine, it just skips enrichment.
	var gemini *llm.GeminiClient
	if apiKey != "" {
		gemini = llm.NewGeminiClient(apiKey, model, baseURL)
	}

	quizRepo := repository.NewQuizQuestionRepository(config.DB)
	quizUsecase := usecase.NewQuizUsecase(usecase.QuizConfig{
		DB:         config.DB,
		Repository: quizRepo,
		Log:        config.Log,
		Config:     config.Config,
		Gemini:     gemini,
	})
	quizHandler := handler.NewQuizHandler(config.Validator, config.Log, quizUsecase)

	route.Setup(&route.RouteConfig{
		Api:         config.Api,
		Middleware:  mid,
		DB:          config.DB,
		QuizHandler: quizHandler,
	})

}
