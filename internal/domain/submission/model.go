package submission

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Submission is the single backing record for every public form type.
// Common, queryable attributes are real columns; entity-specific answers
// live in the Fields JSON bag keyed by the schema's field names.
type Submission struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Type   string `gorm:"index:idx_submissions_type_created,priority:1;size:64" json:"-"`
	Status string `gorm:"index;size:32" json:"status"`

	Name  string `gorm:"size:255" json:"name"`
	Email string `gorm:"index;size:255" json:"email"`
	Phone string `gorm:"size:32" json:"phone"`

	// Appointment date; nil for every other entity.
	ScheduledAt *time.Time `gorm:"index" json:"scheduledAt,omitempty"`

	Fields datatypes.JSON `json:"-"`

	ResumePath  string `gorm:"size:512" json:"resume,omitempty"`
	LicensePath string `gorm:"size:512" json:"license,omitempty"`
	IDCardPath  string `gorm:"size:512" json:"idCard,omitempty"`

	IsSpam bool `json:"isSpam"`

	IPAddress string `gorm:"size:64" json:"ipAddress"`
	UserAgent string `gorm:"size:512" json:"userAgent"`

	CreatedAt time.Time `gorm:"index:idx_submissions_type_created,priority:2" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DecodedFields unmarshals the JSON bag; an empty bag yields an empty map.
func (s *Submission) DecodedFields() (map[string]any, error) {
	fields := map[string]any{}
	if len(s.Fields) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(s.Fields, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// View merges the typed columns and the field bag into one flat object,
// the shape the admin dashboard consumes.
func (s *Submission) View() map[string]any {
	out, err := s.DecodedFields()
	if err != nil {
		out = map[string]any{}
	}
	out["id"] = s.ID
	out["status"] = s.Status
	if s.Name != "" {
		out["name"] = s.Name
	}
	if s.Email != "" {
		out["email"] = s.Email
	}
	if s.Phone != "" {
		out["phone"] = s.Phone
	}
	if s.ScheduledAt != nil {
		out["date"] = s.ScheduledAt.UTC().Format(time.RFC3339)
	}
	if s.ResumePath != "" {
		out["resume"] = s.ResumePath
	}
	if s.LicensePath != "" {
		out["license"] = s.LicensePath
	}
	if s.IDCardPath != "" {
		out["idCard"] = s.IDCardPath
	}
	out["isSpam"] = s.IsSpam
	out["ipAddress"] = s.IPAddress
	out["userAgent"] = s.UserAgent
	out["createdAt"] = s.CreatedAt.UTC().Format(time.RFC3339)
	out["updatedAt"] = s.UpdatedAt.UTC().Format(time.RFC3339)
	return out
}

// AttachmentPath returns the stored reference for the given kind.
func (s *Submission) AttachmentPath(kind AttachmentKind) string {
	switch kind {
	case AttachmentResume:
		return s.ResumePath
	case AttachmentLicense:
		return s.LicensePath
	case AttachmentIDCard:
		return s.IDCardPath
	}
	return ""
}

// SetAttachmentPath stores the reference for the given kind.
func (s *Submission) SetAttachmentPath(kind AttachmentKind, path string) {
	switch kind {
	case AttachmentResume:
		s.ResumePath = path
	case AttachmentLicense:
		s.LicensePath = path
	case AttachmentIDCard:
		s.IDCardPath = path
	}
}

// AttachmentPaths lists every non-empty stored reference.
func (s *Submission) AttachmentPaths() []string {
	var paths []string
	for _, p := range []string{s.ResumePath, s.LicensePath, s.IDCardPath} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
