package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/andriansah/cv-audit/internal/config"
	"github.com/andriansah/cv-audit/internal/domain/fiber/handler"
	"github.com/andriansah/cv-audit/internal/middleware"
	"github.com/andriansah/cv-audit/internal/repository"
	"github.com/andriansah/cv-audit/internal/service"
	"github.com/andriansah/cv-audit/internal/usecase"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	// A missing credential is fatal at startup, never discovered
	// mid-request.
	llm := newModelService(ctx, appConfig.ModelProvider)

	sessions := repository.NewSessionRepository()
	uc := usecase.NewAnalysisUsecase(sessions, llm)
	handler := handler.NewAnalyzeHandler(uc, sessions)
	handler.RegisterRoutes(app)

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func newModelService(ctx context.Context, provider string) service.ModelService {
	switch provider {
	case "gemini":
		gemini, err := service.NewGeminiService(ctx)
		if err != nil {
			log.Fatal(err)
		}
		return gemini
	case "groq":
		groq, err := service.NewGroqService()
		if err != nil {
			log.Fatal(err)
		}
		return groq
	default:
		log.Fatalf("unknown MODEL_PROVIDER %q", provider)
		return nil
	}
}
