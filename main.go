package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"exam-service/internal/db"
	"exam-service/internal/event"
	"exam-service/internal/handlers"
	"exam-service/internal/repository"
	"exam-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)
	defer db.DisconnectMongo()

	// Redis question cache (optional)
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	redisClient := db.InitRedis(os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_PASSWORD"), redisDB)

	// RabbitMQ event publisher (optional)
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.EventPublisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, attempt events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(getEnv("MONGO_DB", "exam_service"))

	// Questions
	questionRepo := repository.NewQuestionRepository(database)
	questionCache := repository.NewQuestionCache(redisClient, questionRepo)
	questionService := service.NewQuestionService(questionRepo, questionCache)
	questionHandler := handlers.NewQuestionHandler(questionService)

	// Proctored attempts
	attemptRepo := repository.NewAttemptRepository(database)
	sectionRepo := repository.NewSectionRepository(database)
	answerRepo := repository.NewAnswerRepository(database)
	attemptService := service.NewAttemptService(attemptRepo, sectionRepo, answerRepo, questionCache, questionRepo)
	attemptHandler := handlers.NewAttemptHandler(attemptService)

	// Practice sessions
	practiceRepo := repository.NewPracticeRepository(database)
	practiceService := service.NewPracticeService(practiceRepo, answerRepo, questionCache, questionRepo)
	practiceHandler := handlers.NewPracticeHandler(practiceService)

	// Public routes
	public := r.Group("/public/exam")
	{
		public.GET("/time", handlers.ServerTime)
		public.GET("/question/", questionHandler.ListQuestions)
		public.GET("/question/:id", questionHandler.GetQuestion)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "exam-service"})
	})

	// Protected routes - the gateway strips untrusted X-User-ID headers and
	// injects the authenticated identity before requests reach this service.
	protectedQuestion := r.Group("/protected/exam/question")
	protectedQuestion.Use(requireUserID())
	{
		protectedQuestion.POST("/", func(c *gin.Context) {
			questionHandler.CreateQuestion(c)
			publish(publisher, "exam.question.created", gin.H{
				"user_id":   c.GetHeader("X-User-ID"),
				"timestamp": time.Now(),
			})
		})
		protectedQuestion.PUT("/:id", func(c *gin.Context) {
			questionHandler.UpdateQuestion(c)
			publish(publisher, "exam.question.updated", gin.H{
				"question_id": c.Param("id"),
				"user_id":     c.GetHeader("X-User-ID"),
				"timestamp":   time.Now(),
			})
		})
		protectedQuestion.DELETE("/:id", func(c *gin.Context) {
			questionHandler.DeleteQuestion(c)
			publish(publisher, "exam.question.deleted", gin.H{
				"question_id": c.Param("id"),
				"user_id":     c.GetHeader("X-User-ID"),
				"timestamp":   time.Now(),
			})
		})
	}

	setupAttemptRoutes(r, attemptHandler, publisher)
	setupPracticeRoutes(r, practiceHandler, publisher)

	r.Run(":" + getEnv("PORT", "6667"))
}

func setupAttemptRoutes(r *gin.Engine, h *handlers.AttemptHandler, publisher *event.EventPublisher) {
	protected := r.Group("/protected/exam/attempt")
	protected.Use(requireUserID())
	{
		protected.POST("/", func(c *gin.Context) {
			h.Start(c)
			publish(publisher, "exam.attempt.started", gin.H{
				"user_id":   c.GetHeader("X-User-ID"),
				"timestamp": time.Now(),
			})
		})

		protected.POST("/:id/answer", func(c *gin.Context) {
			h.SubmitAnswer(c)
			publish(publisher, "exam.answer.submitted", gin.H{
				"attempt_id": c.Param("id"),
				"user_id":    c.GetHeader("X-User-ID"),
				"timestamp":  time.Now(),
			})
		})

		protected.POST("/:id/advance", func(c *gin.Context) {
			h.AdvanceSection(c)
			publish(publisher, "exam.section.advanced", gin.H{
				"attempt_id": c.Param("id"),
				"user_id":    c.GetHeader("X-User-ID"),
				"timestamp":  time.Now(),
			})
		})

		protected.PUT("/:id/position", func(c *gin.Context) {
			h.UpdatePosition(c)
			publish(publisher, "exam.position.updated", gin.H{
				"attempt_id": c.Param("id"),
				"user_id":    c.GetHeader("X-User-ID"),
				"timestamp":  time.Now(),
			})
		})
		protected.GET("/:id/resume", h.Resume)
		protected.GET("/:id/sync", h.Sync)

		protected.POST("/:id/complete", func(c *gin.Context) {
			h.Complete(c)
			publish(publisher, "exam.attempt.completed", gin.H{
				"attempt_id": c.Param("id"),
				"user_id":    c.GetHeader("X-User-ID"),
				"timestamp":  time.Now(),
			})
		})
	}
}

func setupPracticeRoutes(r *gin.Engine, h *handlers.PracticeHandler, publisher *event.EventPublisher) {
	protected := r.Group("/protected/exam/practice")
	protected.Use(requireUserID())
	{
		protected.POST("/", func(c *gin.Context) {
			h.Start(c)
			publish(publisher, "exam.practice.started", gin.H{
				"user_id":   c.GetHeader("X-User-ID"),
				"timestamp": time.Now(),
			})
		})

		protected.POST("/:id/answer", func(c *gin.Context) {
			h.SubmitAnswer(c)
			publish(publisher, "exam.practice_answer.submitted", gin.H{
				"session_id": c.Param("id"),
				"user_id":    c.GetHeader("X-User-ID"),
				"timestamp":  time.Now(),
			})
		})
		protected.PUT("/:id/position", func(c *gin.Context) {
			h.UpdatePosition(c)
			publish(publisher, "exam.practice_position.updated", gin.H{
				"session_id": c.Param("id"),
				"user_id":    c.GetHeader("X-User-ID"),
				"timestamp":  time.Now(),
			})
		})
		protected.GET("/:id/resume", h.Resume)

		protected.POST("/:id/complete", func(c *gin.Context) {
			h.Complete(c)
			publish(publisher, "exam.practice.completed", gin.H{
				"session_id": c.Param("id"),
				"user_id":    c.GetHeader("X-User-ID"),
				"timestamp":  time.Now(),
			})
		})
	}
}

func requireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func publish(publisher *event.EventPublisher, eventType string, payload interface{}) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(eventType, payload); err != nil {
		log.Printf("publish %s failed: %v", eventType, err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
