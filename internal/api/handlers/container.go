package handlers

import (
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/application"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth       *AuthHandler
	Submission *SubmissionHandler
	Audit      *AuditHandler
	Router     *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc.Auth),
		Submission: NewSubmissionHandler(svc.Submission),
		Audit:      NewAuditHandler(svc.Audit),
		Router:     router,
	}
}
