// internal/app/features/resources/upload.go
package resources

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/filestore"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"github.com/google/uuid"
)

// storeUpload saves one multipart file under a unique path:
// resources/YYYY/MM/uuid-filename.
func storeUpload(ctx context.Context, files filestore.Store, fh *multipart.FileHeader) (models.ResourceFile, error) {
	src, err := fh.Open()
	if err != nil {
		return models.ResourceFile{}, fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer src.Close()

	now := time.Now().UTC()
	name := sanitizeFilename(fh.Filename)
	path := fmt.Sprintf("resources/%04d/%02d/%s-%s", now.Year(), now.Month(), uuid.New().String()[:8], name)

	if err := files.Put(ctx, path, src); err != nil {
		return models.ResourceFile{}, fmt.Errorf("store upload %q: %w", fh.Filename, err)
	}

	return models.ResourceFile{
		Path:        path,
		FileName:    name,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
	}, nil
}

// sanitizeFilename strips path components and characters that could break
// storage keys or download headers.
func sanitizeFilename(filename string) string {
	filename = filepath.Base(filename)

	result := make([]byte, 0, len(filename))
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		if isAllowedFilenameChar(c) {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}

	if len(result) == 0 {
		return "file"
	}
	if len(result) > 100 {
		ext := filepath.Ext(string(result))
		if len(ext) > 0 && len(ext) < 10 {
			result = append(result[:100-len(ext)], ext...)
		} else {
			result = result[:100]
		}
	}
	return string(result)
}

func isAllowedFilenameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.'
}

// withURLs fills the download URL for each attachment.
func withURLs(files filestore.Store, res models.Resource) models.Resource {
	for i := range res.Files {
		res.Files[i].URL = files.URL(res.Files[i].Path)
	}
	return res
}
