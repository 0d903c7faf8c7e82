package router

import (
	"log/slog"
	"net/http"

	"newshub/internal/config"
	"newshub/internal/httpapi/handler"
	"newshub/internal/httpapi/middleware"
	"newshub/internal/httpapi/repository"
	"newshub/internal/httpapi/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// New assembles the Gin engine: global middleware, the /api route tree and
// the fallback 404.
func New(cfg *config.Config, logger *slog.Logger, db *gorm.DB) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORSOrigins
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	if cfg.RateLimitRPS > 0 {
		r.Use(middleware.RateLimit(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))
	}

	endpointsHandler, err := handler.NewEndpointsHandler()
	if err != nil {
		return nil, err
	}

	exists := repository.NewExistenceChecker(db)
	articleService := service.NewArticleService(repository.NewArticleRepository(db), exists)
	commentService := service.NewCommentService(repository.NewCommentRepository(db), exists)
	topicService := service.NewTopicService(repository.NewTopicRepository(db))
	userService := service.NewUserService(repository.NewUserRepository(db))

	api := r.Group("/api")
	endpointsHandler.RegisterRoutes(api)
	handler.NewTopicHandler(topicService).RegisterRoutes(api)
	handler.NewArticleHandler(articleService).RegisterRoutes(api)
	handler.NewCommentHandler(commentService).RegisterRoutes(api)
	handler.NewUserHandler(userService).RegisterRoutes(api)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Path not found"})
	})

	return r, nil
}
