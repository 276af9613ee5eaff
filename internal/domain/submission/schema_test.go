package submission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBySlug(t *testing.T) {
	s, ok := BySlug("contacts")
	assert.True(t, ok)
	assert.Equal(t, "contact", s.Type)

	_, ok = BySlug("nonsense")
	assert.False(t, ok)
}

func TestSchemas_UniqueSlugsAndTypes(t *testing.T) {
	slugs := map[string]bool{}
	types := map[string]bool{}
	for _, s := range All {
		assert.False(t, slugs[s.Slug], "duplicate slug %s", s.Slug)
		assert.False(t, types[s.Type], "duplicate type %s", s.Type)
		slugs[s.Slug] = true
		types[s.Type] = true
	}
}

func TestSchemas_InitialStatusIsValid(t *testing.T) {
	for _, s := range All {
		assert.True(t, s.ValidStatus(s.InitialStatus), "%s initial status", s.Slug)
	}
}

func TestSchemas_CSVSourcesResolve(t *testing.T) {
	common := map[string]bool{
		"id": true, "name": true, "email": true, "phone": true,
		"status": true, "isSpam": true, "date": true,
		"createdAt": true, "updatedAt": true,
	}
	for _, s := range All {
		fields := map[string]bool{}
		for _, f := range s.Fields {
			fields[f.Name] = true
		}
		for _, col := range s.CSVColumns {
			assert.True(t, common[col.Source] || fields[col.Source],
				"%s csv column %q has no source", s.Slug, col.Header)
		}
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, Contacts.ValidStatus("responded"))
	assert.False(t, Contacts.ValidStatus("confirmed"))
	assert.True(t, Appointments.ValidStatus("confirmed"))
}

func TestAttachmentByRoute(t *testing.T) {
	att, ok := AgentApplications.AttachmentByRoute("id-card")
	assert.True(t, ok)
	assert.Equal(t, AttachmentIDCard, att.Kind)

	_, ok = Contacts.AttachmentByRoute("resume")
	assert.False(t, ok)
}

func TestFilterOptions(t *testing.T) {
	opts := Appointments.FilterOptions()
	assert.Equal(t, appointmentStatuses, opts["status"])
	assert.Contains(t, opts["category"], "Mortgage Services")

	// boolean filters never surface as dropdown options
	copts := Contacts.FilterOptions()
	_, ok := copts["isSpam"]
	assert.False(t, ok)
}

func TestIsAllSentinel(t *testing.T) {
	assert.True(t, IsAllSentinel(""))
	assert.True(t, IsAllSentinel("All"))
	assert.True(t, IsAllSentinel("All Statuses"))
	assert.False(t, IsAllSentinel("pending"))
}
