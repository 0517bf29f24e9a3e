package filestorage

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	_, fh, err := req.FormFile(field)
	require.NoError(t, err)
	return fh
}

func TestSafeName(t *testing.T) {
	tests := map[string]string{
		"portfolio.pdf":         "portfolio.pdf",
		"my design (final).fig": "my_design_final_.fig",
		"../../etc/passwd":      "passwd",
		`C:\\Users\\me\\cv.pdf`: "cv.pdf",
		"...":                   "file",
		"":                      "file",
	}
	for in, want := range tests {
		assert.Equal(t, want, SafeName(in), "input %q", in)
	}
}

func TestTimestampedName(t *testing.T) {
	at := time.UnixMilli(1718000000123)
	assert.Equal(t, "1718000000123_my_cv.pdf", TimestampedName(at, "my cv.pdf"))
}

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir, "", zerolog.Nop())
	require.NoError(t, err)

	fh := newFileHeader(t, "portfolioFile", "work.pdf", []byte("hello"))

	url, err := ls.SaveFileAs(context.Background(), fh, "portfolios", "1718_work.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/portfolios/1718_work.pdf", url)

	data, err := os.ReadFile(filepath.Join(dir, "portfolios", "1718_work.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, ls.DeleteFile(context.Background(), url))
	_, err = os.Stat(filepath.Join(dir, "portfolios", "1718_work.pdf"))
	assert.True(t, os.IsNotExist(err))

	// Deleting again is a no-op
	assert.NoError(t, ls.DeleteFile(context.Background(), url))
}

func TestLocalStorage_SaveFileWithPathUsesUniqueNames(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir, "http://localhost:8080/uploads/", zerolog.Nop())
	require.NoError(t, err)

	fh := newFileHeader(t, "profilePhoto", "Me.JPG", []byte("img"))

	first, err := ls.SaveFileWithPath(context.Background(), fh, "profile_photos")
	require.NoError(t, err)
	second, err := ls.SaveFileWithPath(context.Background(), fh, "profile_photos")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "http://localhost:8080/uploads/profile_photos/"))
	assert.True(t, strings.HasSuffix(first, ".jpg"))
}

func TestLocalStorage_StaysInsideRoot(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir, "", zerolog.Nop())
	require.NoError(t, err)

	fh := newFileHeader(t, "f", "x.txt", []byte("x"))
	url, err := ls.SaveFileAs(context.Background(), fh, "../../outside", "../x.txt")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/outside/x.txt", url)
	assert.FileExists(t, filepath.Join(dir, "outside", "x.txt"))

	assert.Equal(t, "", ls.GetFullPath("https://other.example.com/a.txt"))
}

func TestLocalStorage_NilFile(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "", zerolog.Nop())
	require.NoError(t, err)

	_, err = ls.SaveFileWithPath(context.Background(), nil, "x")
	assert.ErrorIs(t, err, ErrNoFile)
}

type fakeUploadAPI struct {
	params    uploader.UploadParams
	destroyed string
	err       error
	result    *uploader.UploadResult
}

func (f *fakeUploadAPI) Upload(_ context.Context, _ interface{}, p uploader.UploadParams) (*uploader.UploadResult, error) {
	f.params = p
	return f.result, f.err
}

func (f *fakeUploadAPI) Destroy(_ context.Context, p uploader.DestroyParams) (*uploader.DestroyResult, error) {
	f.destroyed = p.PublicID
	return &uploader.DestroyResult{Result: "ok"}, nil
}

func TestCloudinaryStorage_Upload(t *testing.T) {
	api := &fakeUploadAPI{result: &uploader.UploadResult{
		SecureURL: "https://res.cloudinary.com/demo/image/upload/v1/gcett/photos/abc.jpg",
		PublicID:  "gcett/photos/abc",
	}}
	cs := &CloudinaryStorage{api: api, folder: "gcett", logger: zerolog.Nop()}

	fh := newFileHeader(t, "profilePhoto", "me.jpg", []byte("img"))
	url, err := cs.SaveFileWithPath(context.Background(), fh, "photos")
	require.NoError(t, err)
	assert.Equal(t, api.result.SecureURL, url)
	assert.Equal(t, "gcett/photos", api.params.Folder)
	require.NotNil(t, api.params.UniqueFilename)
	assert.True(t, *api.params.UniqueFilename)

	_, err = cs.SaveFileAs(context.Background(), fh, "portfolios", "1718_work.pdf")
	require.NoError(t, err)
	assert.Equal(t, "1718_work", api.params.PublicID)

	require.NoError(t, cs.DeleteFile(context.Background(), url))
	assert.Equal(t, "gcett/photos/abc", api.destroyed)
}

func TestCloudinaryStorage_UploadFailure(t *testing.T) {
	api := &fakeUploadAPI{err: errors.New("network down")}
	cs := &CloudinaryStorage{api: api, logger: zerolog.Nop()}

	fh := newFileHeader(t, "profilePhoto", "me.jpg", []byte("img"))
	_, err := cs.SaveFileWithPath(context.Background(), fh, "photos")
	assert.Error(t, err)

	api.err = nil
	api.result = &uploader.UploadResult{}
	_, err = cs.SaveFileWithPath(context.Background(), fh, "photos")
	assert.Error(t, err)
}

func TestPublicIDFromURL(t *testing.T) {
	assert.Equal(t, "gcett/photos/abc", PublicIDFromURL("https://res.cloudinary.com/demo/image/upload/v1712/gcett/photos/abc.jpg"))
	assert.Equal(t, "abc", PublicIDFromURL("https://res.cloudinary.com/demo/image/upload/abc.png"))
	assert.Equal(t, "", PublicIDFromURL("https://example.com/a.png"))
}
