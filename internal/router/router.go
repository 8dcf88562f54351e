package router

import (
	"interview-service/internal/answer"
	"interview-service/internal/api/middleware"
	"interview-service/internal/audit"
	"interview-service/internal/auth"
	"interview-service/internal/config"
	"interview-service/internal/question"
	"interview-service/internal/topic"
	"interview-service/internal/useranswer"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type Router struct {
	engine            *gin.Engine
	authHandler       *auth.AuthHandler
	topicHandler      *topic.TopicHandler
	questionHandler   *question.QuestionHandler
	answerHandler     *answer.AnswerHandler
	userAnswerHandler *useranswer.UserAnswerHandler
	authMW            *middleware.AuthMiddleware
}

func NewRouter(db *gorm.DB, cfg *config.Config, auditPublisher audit.Publisher) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS())
	engine.Use(middleware.LogApi())

	// Repositories
	userRepo := auth.NewUserRepository(db)
	topicRepo := topic.NewTopicRepository(db)
	questionRepo := question.NewQuestionRepository(db)
	answerRepo := answer.NewAnswerRepository(db)
	userAnswerRepo := useranswer.NewUserAnswerRepository(db)

	// Services
	authService := auth.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.ExpirationTime)
	topicService := topic.NewTopicService(topicRepo, auditPublisher)
	questionService := question.NewQuestionService(questionRepo, auditPublisher)
	answerService := answer.NewAnswerService(answerRepo, auditPublisher)
	userAnswerService := useranswer.NewUserAnswerService(userAnswerRepo, auditPublisher)

	return &Router{
		engine:            engine,
		authHandler:       auth.NewAuthHandler(authService),
		topicHandler:      topic.NewTopicHandler(topicService),
		questionHandler:   question.NewQuestionHandler(questionService),
		answerHandler:     answer.NewAnswerHandler(answerService),
		userAnswerHandler: useranswer.NewUserAnswerHandler(userAnswerService),
		authMW:            middleware.NewAuthMiddleware(cfg.JWT.Secret),
	}
}

func (r *Router) SetupRoutes() {
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.authHandler.RegisterRoutes(api)

	// Every quiz endpoint, reads included, is admin-only
	admin := api.Group("/")
	admin.Use(r.authMW.RequireAdmin())
	{
		r.topicHandler.RegisterRoutes(admin)
		r.questionHandler.RegisterRoutes(admin)
		r.answerHandler.RegisterRoutes(admin)
		r.userAnswerHandler.RegisterRoutes(admin)
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
