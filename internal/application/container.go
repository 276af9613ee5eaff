package application

import (
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/repository"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/storage"
)

type Services struct {
	Auth       *AuthService
	Submission *SubmissionService
	Audit      *AuditService
}

func New(repos *repository.Repos, store storage.Storage) *Services {
	return &Services{
		Auth:       NewAuthService(repos),
		Submission: NewSubmissionService(repos, store),
		Audit:      NewAuditService(repos),
	}
}
