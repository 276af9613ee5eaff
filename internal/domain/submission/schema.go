package submission

import "strings"

type FieldKind int

const (
	KindText FieldKind = iota
	KindEmail
	KindPhone
	KindEnum
	KindMulti
	KindDate
	KindBool
	KindNumber
)

// Column targets for fields promoted out of the JSON bag.
const (
	ColumnName        = "name"
	ColumnEmail       = "email"
	ColumnPhone       = "phone"
	ColumnScheduledAt = "scheduled_at"
	ColumnCreatedAt   = "created_at"
)

// Field describes one form field of an entity: how to validate it and
// where it lands on the record.
type Field struct {
	Name     string
	Kind     FieldKind
	Column   string // typed column target; empty means the JSON bag
	Required bool
	Min      int
	Max      int
	Options  []string // allowed values for enum/multi fields; empty = free-form
	Future   bool     // date must not be in the past (appointment booking)
	Pattern  string   // regexp the raw string must match
}

type AttachmentKind string

const (
	AttachmentResume  AttachmentKind = "resume"
	AttachmentLicense AttachmentKind = "license"
	AttachmentIDCard  AttachmentKind = "idCard"
)

// Attachment describes one uploadable file slot of an entity.
type Attachment struct {
	Field     string // multipart field name
	Kind      AttachmentKind
	Dir       string // directory under the uploads root
	Route     string // download route suffix, e.g. "id-card"
	Required  bool
	MIMETypes []string
}

// Filter is one admin-facing exact-match query parameter.
type Filter struct {
	Param  string
	Column string // typed column; empty means fields->>Param
	Bool   bool   // parse the value as a boolean (e.g. isSpam)
}

// SearchField is one target of the free-text search OR group.
type SearchField struct {
	Name   string
	Column string // typed column; empty means fields->>Name
}

// CSVColumn maps one export column header to its value source.
type CSVColumn struct {
	Header string
	Source string // view key: common column name or JSON bag key
}

// Schema is the full descriptor of one submission entity. The seven
// instances in schemas.go drive validation, routing, filtering, the
// status workflow, attachments and CSV export for their entity.
type Schema struct {
	Slug  string // URL segment, e.g. "contacts"
	Type  string // stored type key, e.g. "contact"
	Label string // human name used in messages, e.g. "Contact"
	IDKey string // submit-response id key, e.g. "contactId"

	Fields []Field

	Statuses      []string
	InitialStatus string

	Search     []SearchField
	Filters    []Filter
	DateColumn string // date-range target: created_at or scheduled_at

	Attachments []Attachment

	CSVColumns []CSVColumn

	HasSpamFlag bool // contacts carry an isSpam flag alongside status
}

// ValidStatus reports whether v belongs to the entity's status set.
func (s Schema) ValidStatus(v string) bool {
	for _, st := range s.Statuses {
		if st == v {
			return true
		}
	}
	return false
}

// AttachmentByRoute resolves a download route suffix to its spec.
func (s Schema) AttachmentByRoute(route string) (Attachment, bool) {
	for _, a := range s.Attachments {
		if a.Route == route {
			return a, true
		}
	}
	return Attachment{}, false
}

// FilterOptions exposes the selectable values per filter dimension, the
// payload of the admin GET /filters endpoint.
func (s Schema) FilterOptions() map[string][]string {
	out := map[string][]string{"status": s.Statuses}
	for _, f := range s.Filters {
		if f.Param == "status" || f.Bool {
			continue
		}
		for _, fl := range s.Fields {
			if fl.Name == f.Param && len(fl.Options) > 0 {
				out[f.Param] = fl.Options
			}
		}
	}
	return out
}

// IsAllSentinel reports whether an enum filter value is the dashboard's
// "All ..." placeholder, which means "no filter on this dimension".
func IsAllSentinel(v string) bool {
	return v == "" || strings.HasPrefix(v, "All ") || v == "All"
}
