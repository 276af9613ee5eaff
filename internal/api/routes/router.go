package routes

import (
	"net/http"

	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/api/handlers"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/api/middleware"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/application"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/cron"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/domain/submission"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/domain/user"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/repository"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/storage"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// RegisterRoutes wires the whole API surface. Every form entity gets
// the same route set driven by its schema descriptor: one public
// submit endpoint plus the admin-only management group.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, store storage.Storage) {
	repos := repository.NewRepositories(db)
	services := application.New(repos, store)
	h := handlers.New(services, r)

	cron.StartCleanupTask(services.Audit)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.GET("/profile", middleware.JWTAuthMiddleware(), h.Auth.Profile)
	}

	for _, s := range submission.All {
		s := s
		entity := api.Group("/" + s.Slug)

		entity.POST("/submit", h.Submission.Submit(s))

		admin := entity.Group("")
		admin.Use(middleware.JWTAuthMiddleware(), middleware.RequireRoles(user.RoleAdmin))
		{
			admin.GET("", h.Submission.List(s))
			admin.GET("/stats", h.Submission.Stats(s))
			admin.GET("/filters", h.Submission.Filters(s))
			admin.GET("/export/csv", h.Submission.ExportCSV(s))
			admin.GET("/:id", h.Submission.Get(s))
			admin.PUT("/:id/status", h.Submission.UpdateStatus(s))
			admin.PATCH("/:id/status", h.Submission.UpdateStatus(s))
			admin.DELETE("/:id", h.Submission.Delete(s))

			for _, att := range s.Attachments {
				att := att
				admin.GET("/:id/"+att.Route, h.Submission.Download(s, att))
			}
		}
	}

	auditLogs := api.Group("/audit-logs")
	auditLogs.Use(middleware.JWTAuthMiddleware(), middleware.RequireRoles(user.RoleAdmin))
	{
		auditLogs.GET("", h.Audit.GetAuditLogs)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
