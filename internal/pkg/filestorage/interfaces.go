package filestorage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// ErrNoFile is returned when an upload is attempted without a file
var ErrNoFile = errors.New("no file provided")

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFileWithPath stores the file under subPath with a generated unique
	// name and returns its public URL
	SaveFileWithPath(ctx context.Context, fileHeader *multipart.FileHeader, subPath string) (string, error)

	// SaveFileAs stores the file under subPath/name and returns its public URL
	SaveFileAs(ctx context.Context, fileHeader *multipart.FileHeader, subPath, name string) (string, error)

	// DeleteFile removes a previously stored file by its public URL
	DeleteFile(ctx context.Context, fileURL string) error
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SafeName reduces an uploaded filename to a single path element made of
// letters, digits, dot, dash and underscore.
func SafeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeNameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "file"
	}
	return name
}

// TimestampedName prefixes the sanitized original filename with the upload
// time in milliseconds, e.g. "1718000000000_portfolio.pdf".
func TimestampedName(at time.Time, original string) string {
	return fmt.Sprintf("%d_%s", at.UnixMilli(), SafeName(original))
}
