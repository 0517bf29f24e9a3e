package filestorage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog"
)

// CloudinaryConfig holds Cloudinary credentials
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// Enabled reports whether credentials are present
func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

// uploadAPI is the subset of the Cloudinary upload API used here
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, uploadParams uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// CloudinaryStorage stores files in Cloudinary
type CloudinaryStorage struct {
	api    uploadAPI
	folder string
	logger zerolog.Logger
}

// NewCloudinaryStorage creates a Cloudinary-backed FileStorage
func NewCloudinaryStorage(config CloudinaryConfig, logger zerolog.Logger) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(config.CloudName, config.APIKey, config.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryStorage{
		api:    &cld.Upload,
		folder: strings.Trim(config.Folder, "/"),
		logger: logger,
	}, nil
}

// SaveFileWithPath uploads the file to folder/subPath with a Cloudinary
// generated unique name
func (cs *CloudinaryStorage) SaveFileWithPath(ctx context.Context, fileHeader *multipart.FileHeader, subPath string) (string, error) {
	return cs.upload(ctx, fileHeader, subPath, "")
}

// SaveFileAs uploads the file as folder/subPath/name
func (cs *CloudinaryStorage) SaveFileAs(ctx context.Context, fileHeader *multipart.FileHeader, subPath, name string) (string, error) {
	safe := SafeName(name)
	publicID := strings.TrimSuffix(safe, path.Ext(safe))
	return cs.upload(ctx, fileHeader, subPath, publicID)
}

func (cs *CloudinaryStorage) upload(ctx context.Context, fileHeader *multipart.FileHeader, subPath, publicID string) (string, error) {
	if fileHeader == nil {
		return "", ErrNoFile
	}

	f, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	params := uploader.UploadParams{
		Folder:       cs.folderFor(subPath),
		ResourceType: "auto",
	}
	if publicID != "" {
		params.PublicID = publicID
		params.Overwrite = boolPtr(false)
	} else {
		params.UseFilename = boolPtr(true)
		params.UniqueFilename = boolPtr(true)
	}

	res, err := cs.api.Upload(ctx, f, params)
	if err != nil {
		cs.logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Cloudinary upload failed")
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if res == nil || res.SecureURL == "" {
		msg := "empty upload result"
		if res != nil && res.Error.Message != "" {
			msg = res.Error.Message
		}
		cs.logger.Error().Str("filename", fileHeader.Filename).Str("reason", msg).Msg("Cloudinary upload rejected")
		return "", errors.New("cloudinary upload failed: " + msg)
	}

	cs.logger.Info().Str("filename", fileHeader.Filename).Str("public_id", res.PublicID).Msg("File uploaded to Cloudinary")
	return res.SecureURL, nil
}

// DeleteFile destroys the asset behind a Cloudinary delivery URL
func (cs *CloudinaryStorage) DeleteFile(ctx context.Context, fileURL string) error {
	publicID := PublicIDFromURL(fileURL)
	if publicID == "" {
		return fmt.Errorf("invalid cloudinary url: %s", fileURL)
	}
	res, err := cs.api.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy failed: %w", err)
	}
	if res != nil && res.Error.Message != "" {
		return errors.New("cloudinary destroy failed: " + res.Error.Message)
	}
	return nil
}

func (cs *CloudinaryStorage) folderFor(subPath string) string {
	sub := cleanSubPath(subPath)
	switch {
	case cs.folder == "":
		return sub
	case sub == "":
		return cs.folder
	default:
		return cs.folder + "/" + sub
	}
}

// PublicIDFromURL extracts the public id from a delivery URL such as
// https://res.cloudinary.com/demo/image/upload/v1712/gcett/photos/abc.jpg
func PublicIDFromURL(fileURL string) string {
	_, rest, ok := strings.Cut(fileURL, "/upload/")
	if !ok || rest == "" {
		return ""
	}
	segments := strings.Split(rest, "/")
	if len(segments) > 1 && isVersionSegment(segments[0]) {
		segments = segments[1:]
	}
	id := strings.Join(segments, "/")
	return strings.TrimSuffix(id, path.Ext(id))
}

func isVersionSegment(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func boolPtr(b bool) *bool {
	return &b
}
