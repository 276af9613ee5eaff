package application

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/domain/submission"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/repository"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// memStore is an in-memory Storage for service tests.
type memStore struct {
	files map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{files: map[string][]byte{}}
}

func (m *memStore) Save(ctx context.Context, path string, r io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.files[path] = data
	return nil
}

func (m *memStore) Open(ctx context.Context, path string) (io.ReadCloser, int64, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, 0, io.ErrUnexpectedEOF
	}
	return io.NopCloser(bytes.NewReader(data)), int64(len(data)), nil
}

func (m *memStore) Delete(ctx context.Context, path string) error {
	delete(m.files, path)
	return nil
}

func (m *memStore) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := m.files[path]
	return ok, nil
}

func setupSubmissionServiceMocks(t *testing.T) (*SubmissionService, *mock.MockSubmissionRepo, *mock.MockAuditRepo, *memStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockSub := mock.NewMockSubmissionRepo(ctrl)
	mockAudit := mock.NewMockAuditRepo(ctrl)
	repos := &repository.Repos{
		Submission: mockSub,
		Audit:      mockAudit,
	}
	store := newMemStore()
	return NewSubmissionService(repos, store), mockSub, mockAudit, store
}

// makeFileHeader builds a real multipart.FileHeader from raw content.
func makeFileHeader(t *testing.T, field, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	assert.NoError(t, err)
	return form.File[field][0]
}

func validContact() map[string]any {
	return map[string]any{
		"name":           "John Doe",
		"email":          "john@example.com",
		"phone":          "5551234567",
		"subject":        "Selling my home",
		"message":        "Please contact me about listing my property.",
		"recaptchaToken": "token",
	}
}

func TestSubmit_Success(t *testing.T) {
	svc, mockSub, _, _ := setupSubmissionServiceMocks(t)

	mockSub.EXPECT().Create(gomock.Any()).DoAndReturn(func(rec *submission.Submission) error {
		rec.ID = 42
		assert.Equal(t, "contact", rec.Type)
		assert.Equal(t, "new", rec.Status)
		assert.Equal(t, "John Doe", rec.Name)
		return nil
	})

	rec, err := svc.Submit(context.Background(), submission.Contacts, validContact(), nil, "1.2.3.4", "test-agent")
	assert.NoError(t, err)
	assert.Equal(t, uint(42), rec.ID)
	assert.Equal(t, "1.2.3.4", rec.IPAddress)

	fields, err := rec.DecodedFields()
	assert.NoError(t, err)
	assert.Equal(t, "Selling my home", fields["subject"])
}

func TestSubmit_ValidationFailureSkipsRepo(t *testing.T) {
	svc, _, _, _ := setupSubmissionServiceMocks(t)

	payload := validContact()
	delete(payload, "name")

	_, err := svc.Submit(context.Background(), submission.Contacts, payload, nil, "", "")
	var verr *submission.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
}

func validJobApplication() map[string]any {
	return map[string]any{
		"name":                 "Dev Applicant",
		"email":                "dev@example.com",
		"phone":                "5550001111",
		"timeZones":            "Yes",
		"startupExperience":    "Yes",
		"workArrangement":      "Full-time",
		"workSetting":          "Remote",
		"availability":         "Immediately",
		"compensation":         "80000",
		"yearsExperience":      "3-5 years",
		"technicalSkills":      "Backend Development",
		"programmingLanguages": "Node.js, PostgreSQL",
		"whyWorkHere":          "I admire the company mission.",
	}
}

func TestSubmit_RequiredAttachmentMissing(t *testing.T) {
	svc, _, _, _ := setupSubmissionServiceMocks(t)

	_, err := svc.Submit(context.Background(), submission.JobApplications, validJobApplication(), nil, "", "")
	var verr *submission.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "resume", verr.Field)
}

func TestSubmit_StoresAttachment(t *testing.T) {
	svc, mockSub, _, store := setupSubmissionServiceMocks(t)

	pdf := append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte("a"), 600)...)
	files := map[string]*multipart.FileHeader{
		"resume": makeFileHeader(t, "resume", "resume.pdf", "application/pdf", pdf),
	}

	mockSub.EXPECT().Create(gomock.Any()).DoAndReturn(func(rec *submission.Submission) error {
		rec.ID = 7
		assert.NotEmpty(t, rec.ResumePath)
		assert.Contains(t, rec.ResumePath, "uploads/resumes/")
		return nil
	})

	rec, err := svc.Submit(context.Background(), submission.JobApplications, validJobApplication(), files, "", "")
	assert.NoError(t, err)

	ok, _ := store.Exists(context.Background(), rec.ResumePath)
	assert.True(t, ok)
}

func TestSubmit_BadAttachmentType(t *testing.T) {
	svc, _, _, store := setupSubmissionServiceMocks(t)

	files := map[string]*multipart.FileHeader{
		"resume": makeFileHeader(t, "resume", "resume.exe", "application/octet-stream", bytes.Repeat([]byte{0x4D, 0x5A, 0x90}, 300)),
	}

	_, err := svc.Submit(context.Background(), submission.JobApplications, validJobApplication(), files, "", "")
	assert.ErrorIs(t, err, ErrBadFileType)
	assert.Empty(t, store.files, "nothing may remain in storage")
}

func TestSubmit_InsertFailureCleansUpFiles(t *testing.T) {
	svc, mockSub, _, store := setupSubmissionServiceMocks(t)

	pdf := append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte("a"), 600)...)
	files := map[string]*multipart.FileHeader{
		"resume": makeFileHeader(t, "resume", "resume.pdf", "application/pdf", pdf),
	}

	mockSub.EXPECT().Create(gomock.Any()).Return(gorm.ErrInvalidData)

	_, err := svc.Submit(context.Background(), submission.JobApplications, validJobApplication(), files, "", "")
	assert.Error(t, err)
	assert.Empty(t, store.files, "stored upload must be removed when the insert fails")
}

func TestUpdateStatus_Success(t *testing.T) {
	svc, mockSub, mockAudit, _ := setupSubmissionServiceMocks(t)

	old := submission.Submission{ID: 5, Type: "contact", Status: "new"}
	updated := submission.Submission{ID: 5, Type: "contact", Status: "responded"}

	mockSub.EXPECT().FindByID("contact", uint(5)).Return(old, nil)
	mockSub.EXPECT().Update("contact", uint(5), gomock.Any()).DoAndReturn(
		func(_ string, _ uint, updates map[string]any) (submission.Submission, error) {
			assert.Equal(t, "responded", updates["status"])
			return updated, nil
		})
	mockAudit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil)

	rec, err := svc.UpdateStatus(submission.Contacts, 5, "responded", nil, Actor{UserID: 1})
	assert.NoError(t, err)
	assert.Equal(t, "responded", rec.Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc, _, _, _ := setupSubmissionServiceMocks(t)

	_, err := svc.UpdateStatus(submission.Contacts, 5, "confirmed", nil, Actor{})
	assert.Equal(t, ErrBadStatus, err)
}

func TestUpdateStatus_SpamFlagOnlyForContacts(t *testing.T) {
	svc, mockSub, mockAudit, _ := setupSubmissionServiceMocks(t)

	spam := true
	old := submission.Submission{ID: 9, Type: "appointment", Status: "pending"}

	mockSub.EXPECT().FindByID("appointment", uint(9)).Return(old, nil)
	mockSub.EXPECT().Update("appointment", uint(9), gomock.Any()).DoAndReturn(
		func(_ string, _ uint, updates map[string]any) (submission.Submission, error) {
			_, hasSpam := updates["is_spam"]
			assert.False(t, hasSpam, "entities without a spam flag must ignore isSpam")
			return submission.Submission{ID: 9, Type: "appointment", Status: "confirmed"}, nil
		})
	mockAudit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil)

	_, err := svc.UpdateStatus(submission.Appointments, 9, "confirmed", &spam, Actor{UserID: 1})
	assert.NoError(t, err)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, mockSub, _, _ := setupSubmissionServiceMocks(t)

	mockSub.EXPECT().FindByID("contact", uint(404)).Return(submission.Submission{}, gorm.ErrRecordNotFound)

	_, err := svc.UpdateStatus(submission.Contacts, 404, "closed", nil, Actor{})
	assert.Equal(t, ErrNotFound, err)
}

func TestDelete_RemovesAttachmentsAndAudits(t *testing.T) {
	svc, mockSub, mockAudit, store := setupSubmissionServiceMocks(t)

	ref := "uploads/resumes/123-abc.pdf"
	store.files[ref] = []byte("pdf")
	rec := submission.Submission{ID: 3, Type: "job_application", Status: "pending", ResumePath: ref}

	mockSub.EXPECT().FindByID("job_application", uint(3)).Return(rec, nil)
	mockSub.EXPECT().Delete("job_application", uint(3)).Return(nil)
	mockAudit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil)

	err := svc.Delete(context.Background(), submission.JobApplications, 3, Actor{UserID: 2})
	assert.NoError(t, err)
	assert.Empty(t, store.files)
}

func TestList_NormalizesPagination(t *testing.T) {
	svc, mockSub, _, _ := setupSubmissionServiceMocks(t)

	mockSub.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ submission.Schema, q submission.ListQuery) ([]submission.Submission, int64, error) {
			assert.Equal(t, 1, q.Page)
			assert.Equal(t, 100, q.Limit)
			return nil, 0, nil
		})

	_, _, err := svc.List(submission.Contacts, submission.ListQuery{Page: -2, Limit: 5000})
	assert.NoError(t, err)
}

func TestOpenAttachment(t *testing.T) {
	svc, mockSub, _, store := setupSubmissionServiceMocks(t)

	ref := "uploads/resumes/456-def.pdf"
	store.files[ref] = []byte("content")
	rec := submission.Submission{ID: 8, Type: "job_application", ResumePath: ref}
	att, _ := submission.JobApplications.AttachmentByRoute("resume")

	mockSub.EXPECT().FindByID("job_application", uint(8)).Return(rec, nil).Times(2)

	gotRef, rc, size, err := svc.OpenAttachment(context.Background(), submission.JobApplications, 8, att)
	assert.NoError(t, err)
	assert.Equal(t, ref, gotRef)
	assert.Equal(t, int64(7), size)
	data, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "content", string(data))

	// missing file
	store.files = map[string][]byte{}
	_, _, _, err = svc.OpenAttachment(context.Background(), submission.JobApplications, 8, att)
	assert.ErrorIs(t, err, ErrAttachmentMissing)
}

func TestOpenAttachment_IgnoresPathSegmentsInStoredRef(t *testing.T) {
	svc, mockSub, _, store := setupSubmissionServiceMocks(t)

	store.files["uploads/resumes/456-def.pdf"] = []byte("content")
	rec := submission.Submission{ID: 8, Type: "job_application", ResumePath: "uploads/resumes/../../etc/456-def.pdf"}
	att, _ := submission.JobApplications.AttachmentByRoute("resume")

	mockSub.EXPECT().FindByID("job_application", uint(8)).Return(rec, nil)

	gotRef, rc, _, err := svc.OpenAttachment(context.Background(), submission.JobApplications, 8, att)
	assert.NoError(t, err)
	assert.Equal(t, "uploads/resumes/456-def.pdf", gotRef, "only the base name of the stored value is trusted")
	rc.Close()
}

func TestExportQueryBounds(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	q := submission.ListQuery{StartDate: &start}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, int64(3), q.TotalPages(25))
}
