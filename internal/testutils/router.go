package testutils

import (
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/api/routes"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, store storage.Storage) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, db, store)
	return r
}
