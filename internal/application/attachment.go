package application

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/domain/submission"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/storage"
	"github.com/google/uuid"
)

// MaxUploadSize caps each attachment at 10 MiB.
const MaxUploadSize = 10 << 20

var (
	ErrFileTooLarge      = errors.New("file exceeds the 10MB size limit")
	ErrBadFileType       = errors.New("file type is not allowed")
	ErrAttachmentMissing = errors.New("attachment not found")
)

// extByMIME maps allowed upload MIME types to the stored extension.
var extByMIME = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// contentTypeByExt drives the Content-Type of attachment downloads.
var contentTypeByExt = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// StoreUpload validates one multipart file against the attachment spec
// and writes it to the store. The returned reference is the relative
// path persisted on the record, e.g. "uploads/resumes/<name>".
func StoreUpload(ctx context.Context, store storage.Storage, att submission.Attachment, fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	// Sniff the real content type rather than trusting the client
	// header.
	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && n == 0 {
		return "", err
	}
	detected := http.DetectContentType(head[:n])
	contentType := resolveUploadType(detected, fh)
	if !allowedMIME(att.MIMETypes, contentType) {
		return "", ErrBadFileType
	}
	if _, err := f.Seek(0, 0); err != nil {
		return "", err
	}

	name := uploadName(fh.Filename, contentType)
	ref := path.Join("uploads", att.Dir, name)
	if err := store.Save(ctx, ref, f, fh.Size, contentType); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	return ref, nil
}

// resolveUploadType works around DetectContentType reporting Office
// documents as generic zip/octet streams; the declared header wins for
// those when its extension agrees.
func resolveUploadType(detected string, fh *multipart.FileHeader) string {
	detected = strings.TrimSpace(strings.SplitN(detected, ";", 2)[0])
	if detected != "application/zip" && detected != "application/octet-stream" {
		return detected
	}
	declared := strings.TrimSpace(strings.SplitN(fh.Header.Get("Content-Type"), ";", 2)[0])
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if want, ok := extByMIME[declared]; ok && want == normalizeExt(ext) {
		return declared
	}
	if ct, ok := contentTypeByExt[ext]; ok {
		return ct
	}
	return detected
}

func normalizeExt(ext string) string {
	if ext == ".jpeg" {
		return ".jpg"
	}
	return ext
}

func allowedMIME(allowed []string, ct string) bool {
	for _, a := range allowed {
		if a == ct {
			return true
		}
	}
	return false
}

// uploadName builds a collision-proof stored filename; the original
// client name never reaches the filesystem.
func uploadName(original, contentType string) string {
	ext := extByMIME[contentType]
	if ext == "" {
		ext = normalizeExt(strings.ToLower(filepath.Ext(original)))
	}
	token := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), token, ext)
}

// DownloadContentType resolves the Content-Type for serving a stored
// attachment from its extension.
func DownloadContentType(ref string) string {
	if ct, ok := contentTypeByExt[strings.ToLower(path.Ext(ref))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// DownloadName is the filename offered to the browser; only the base
// name of the stored reference ever leaves the server.
func DownloadName(ref string) string {
	return path.Base(ref)
}
