package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"blogapi/config"
	"blogapi/controllers"
	"blogapi/middleware"
	"blogapi/repositories"
	"blogapi/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(middleware.Ginzap(gl, time.RFC3339, true))
		r.Use(middleware.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Location"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	postRepo := repositories.NewPostRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	RegisterRoutes(r, postRepo, commentRepo, cfg.CommentsEmptyAsNotFound)

	return r
}

// RegisterRoutes binds the post and comment endpoints onto the engine.
// emptyCommentsAsNotFound selects the 404 answer for posts without comments.
func RegisterRoutes(r *gin.Engine, postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, emptyCommentsAsNotFound bool) {
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	postController := controllers.NewPostController(postRepo, commentRepo, emptyCommentsAsNotFound)
	commentController := controllers.NewCommentController(commentRepo)

	posts := r.Group("/posts")
	posts.GET("", postController.List)
	posts.POST("", postController.Create)

	// Post-scoped routes reject references to nonexistent posts before the
	// handler runs.
	scoped := posts.Group("/:id", middleware.PostExists(postRepo))
	scoped.GET("", postController.Get)
	scoped.PUT("", postController.Update)
	scoped.DELETE("", postController.Delete)
	scoped.GET("/comments", postController.ListComments)

	comments := r.Group("/comments")
	comments.GET("", commentController.List)
	comments.GET("/:id", commentController.Get)
	comments.POST("", commentController.Create)
	comments.PUT("/:id", commentController.Update)
	comments.DELETE("/:id", commentController.Delete)
}
