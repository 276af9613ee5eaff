package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path"

	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/domain/audit"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/domain/submission"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/repository"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("submission not found")
	ErrBadStatus = errors.New("invalid status value")
)

// Actor identifies the admin performing a mutation, for the audit
// trail.
type Actor struct {
	UserID    uint
	IPAddress string
	UserAgent string
}

type SubmissionService struct {
	Repos *repository.Repos
	Store storage.Storage
}

func NewSubmissionService(repos *repository.Repos, store storage.Storage) *SubmissionService {
	return &SubmissionService{
		Repos: repos,
		Store: store,
	}
}

// Submit validates a public form payload against the entity descriptor,
// stores any attachments and persists the record. Stored files are
// removed again if the insert fails.
func (s *SubmissionService) Submit(ctx context.Context, sc submission.Schema, payload map[string]any, files map[string]*multipart.FileHeader, ip, userAgent string) (*submission.Submission, error) {
	n, err := submission.Validate(sc, payload)
	if err != nil {
		return nil, err
	}

	var stored []string
	cleanup := func() {
		for _, ref := range stored {
			if err := s.Store.Delete(ctx, ref); err != nil {
				log.Printf("failed to remove stored upload %s: %v", ref, err)
			}
		}
	}

	rec := &submission.Submission{
		Type:        sc.Type,
		Status:      sc.InitialStatus,
		Name:        n.Name,
		Email:       n.Email,
		Phone:       n.Phone,
		ScheduledAt: n.ScheduledAt,
		IPAddress:   ip,
		UserAgent:   userAgent,
	}

	for _, att := range sc.Attachments {
		fh, ok := files[att.Field]
		if !ok || fh == nil {
			if att.Required {
				cleanup()
				return nil, &submission.ValidationError{Field: att.Field, Message: fmt.Sprintf("%s file is required", att.Field)}
			}
			continue
		}
		ref, err := StoreUpload(ctx, s.Store, att, fh)
		if err != nil {
			cleanup()
			return nil, err
		}
		stored = append(stored, ref)
		rec.SetAttachmentPath(att.Kind, ref)
	}

	encoded, err := json.Marshal(n.Fields)
	if err != nil {
		cleanup()
		return nil, err
	}
	rec.Fields = encoded

	if err := s.Repos.Submission.Create(rec); err != nil {
		cleanup()
		return nil, err
	}
	return rec, nil
}

func (s *SubmissionService) Get(sc submission.Schema, id uint) (submission.Submission, error) {
	rec, err := s.Repos.Submission.FindByID(sc.Type, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rec, ErrNotFound
		}
		return rec, err
	}
	return rec, nil
}

func (s *SubmissionService) List(sc submission.Schema, q submission.ListQuery) ([]submission.Submission, int64, error) {
	q.Normalize()
	return s.Repos.Submission.List(sc, q)
}

// UpdateStatus moves a record to any status in the entity's set and
// optionally flips the spam flag. The change lands in the audit trail.
func (s *SubmissionService) UpdateStatus(sc submission.Schema, id uint, status string, isSpam *bool, actor Actor) (submission.Submission, error) {
	if !sc.ValidStatus(status) {
		return submission.Submission{}, ErrBadStatus
	}

	old, err := s.Get(sc, id)
	if err != nil {
		return submission.Submission{}, err
	}

	updates := map[string]any{"status": status}
	if isSpam != nil && sc.HasSpamFlag {
		updates["is_spam"] = *isSpam
	}

	rec, err := s.Repos.Submission.Update(sc.Type, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return submission.Submission{}, ErrNotFound
		}
		return submission.Submission{}, err
	}

	s.recordAudit(actor, audit.ActionStatusChange, sc, id,
		map[string]any{"status": old.Status, "isSpam": old.IsSpam},
		map[string]any{"status": rec.Status, "isSpam": rec.IsSpam},
		fmt.Sprintf("%s #%d status changed from %s to %s", sc.Label, id, old.Status, rec.Status))

	return rec, nil
}

// Delete removes a record and, best effort, its stored attachments.
func (s *SubmissionService) Delete(ctx context.Context, sc submission.Schema, id uint, actor Actor) error {
	rec, err := s.Get(sc, id)
	if err != nil {
		return err
	}

	if err := s.Repos.Submission.Delete(sc.Type, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	for _, ref := range rec.AttachmentPaths() {
		if err := s.Store.Delete(ctx, ref); err != nil {
			log.Printf("failed to remove attachment %s of deleted %s #%d: %v", ref, sc.Type, id, err)
		}
	}

	s.recordAudit(actor, audit.ActionDelete, sc, id,
		map[string]any{"status": rec.Status}, nil,
		fmt.Sprintf("%s #%d deleted", sc.Label, id))

	return nil
}

// OpenAttachment streams a stored attachment of a record. Only the
// base name of the stored reference is trusted; the attachment
// directory is re-derived from the descriptor so a tampered value
// cannot reach outside it.
func (s *SubmissionService) OpenAttachment(ctx context.Context, sc submission.Schema, id uint, att submission.Attachment) (string, io.ReadCloser, int64, error) {
	rec, err := s.Get(sc, id)
	if err != nil {
		return "", nil, 0, err
	}
	stored := rec.AttachmentPath(att.Kind)
	if stored == "" {
		return "", nil, 0, ErrAttachmentMissing
	}
	ref := path.Join("uploads", att.Dir, path.Base(stored))
	rc, size, err := s.Store.Open(ctx, ref)
	if err != nil {
		return "", nil, 0, ErrAttachmentMissing
	}
	return ref, rc, size, nil
}

func (s *SubmissionService) Stats(sc submission.Schema) (submission.Stats, error) {
	return s.Repos.Submission.Stats(sc)
}

// recordAudit writes an audit entry; failures are logged, never
// surfaced to the admin.
func (s *SubmissionService) recordAudit(actor Actor, action string, sc submission.Schema, id uint, oldData, newData map[string]any, description string) {
	entry := &audit.AuditLog{
		ActorID:      actor.UserID,
		Action:       action,
		ResourceType: sc.Type,
		ResourceID:   id,
		Description:  description,
		IPAddress:    actor.IPAddress,
		UserAgent:    actor.UserAgent,
	}
	if oldData != nil {
		entry.OldData, _ = json.Marshal(oldData)
	}
	if newData != nil {
		entry.NewData, _ = json.Marshal(newData)
	}
	if err := s.Repos.Audit.CreateAuditLog(entry); err != nil {
		log.Printf("failed to write audit log for %s #%d: %v", sc.Type, id, err)
	}
}
