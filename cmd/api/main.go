package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ailoapp/ailo-backend/internal/infra/database"
	"github.com/ailoapp/ailo-backend/internal/infra/http/handlers"
	"github.com/ailoapp/ailo-backend/internal/infra/http/middleware"
	"github.com/ailoapp/ailo-backend/internal/infra/integration/calendly"
	"github.com/ailoapp/ailo-backend/internal/infra/integration/hubspot"
	"github.com/ailoapp/ailo-backend/internal/infra/integration/recaptcha"
	"github.com/ailoapp/ailo-backend/internal/infra/mail"
	"github.com/ailoapp/ailo-backend/internal/infra/queue"
	"github.com/ailoapp/ailo-backend/internal/quiz"
	"github.com/ailoapp/ailo-backend/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatal(err)
	}
	cancel()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	submissionRepo := database.NewSubmissionRepository(db)
	waitlistRepo := database.NewWaitlistRepository(db)
	newsletterRepo := database.NewNewsletterRepository(db)

	// 2. Integrations
	hubspotClient := hubspot.NewClient(os.Getenv("HUBSPOT_API_TOKEN"))
	calendlyClient := calendly.NewClient(os.Getenv("CALENDLY_API_KEY"), os.Getenv("CALENDLY_URL"))
	recaptchaClient := recaptcha.NewClient(os.Getenv("RECAPTCHA_SECRET_KEY"))
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"),
	)

	// 3. Worker: drains booking-confirmed events into HubSpot + SMTP
	worker := queue.NewWorker(rabbitMQ.Ch, hubspotClient, mailSender)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	submitQuizUC := usecase.NewSubmitQuizUseCase(
		submissionRepo, hubspotClient, recaptchaClient, quiz.DefaultScoring(),
	)

	// 5. Handlers. One limiter shared by the public form endpoints so a
	// scripted client cannot rotate between them for extra budget.
	limiter := handlers.NewRateLimiter(5, time.Minute)

	quizHandler := handlers.NewQuizHandler(submitQuizUC, limiter)
	subscriberHandler := handlers.NewSubscriberHandler(waitlistRepo, newsletterRepo, mailSender, limiter)
	bookingHandler := handlers.NewBookingHandler(mailSender)
	availabilityHandler := handlers.NewAvailabilityHandler(calendlyClient)
	webhookHandler := handlers.NewWebhookHandler(producer)
	healthHandler := handlers.NewHealthHandler(
		db, rabbitMQ.Conn,
		os.Getenv("HUBSPOT_API_TOKEN") != "",
		calendlyClient.Configured(),
	)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{envOr("SITE_ORIGIN", "https://ailoapp.com"), "http://localhost:3000"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Post("/quiz-submit", quizHandler.Handle)
	r.Post("/waitlist", subscriberHandler.HandleWaitlist)
	r.Post("/newsletter", subscriberHandler.HandleNewsletter)
	r.Post("/send-booking-confirmation", bookingHandler.Handle)
	r.Get("/calendly-availability", availabilityHandler.Handle)
	r.Post("/webhooks/calendly", webhookHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "8080")
	log.Printf("🔥 AILO backend listening on %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
