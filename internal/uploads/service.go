package uploads

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"time"

	"github.com/werealtor/aixx/api/validators"
	"github.com/werealtor/aixx/pkg/db/models"
	pkgerrors "github.com/werealtor/aixx/pkg/errors"
	"github.com/werealtor/aixx/pkg/storage/gcs"
)

const (
	maxUserIDLen      = 100
	maxDeviceModelLen = 100
	defaultUserID     = "anonymous"
	defaultFileName   = "upload"
)

var keyUnsafeRe = regexp.MustCompile(`[^\w.\-]+`)

// Service validates uploads, writes the object, and records metadata.
type Service interface {
	Store(ctx context.Context, input StoreInput) (*StoreResult, error)
}

// StoreInput carries one multipart upload.
type StoreInput struct {
	UserID      string
	DeviceModel string
	FileName    string
	ContentType string
	SizeBytes   int64
	Body        io.Reader
}

// StoreResult reports the public URL of the stored object.
type StoreResult struct {
	URL string
}

type service struct {
	repo     Repository
	store    gcs.ObjectStore
	maxBytes int64
	now      func() time.Time
}

// NewService wires the upload dependencies.
func NewService(repo Repository, store gcs.ObjectStore, maxUploadMB int) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("uploads repository required")
	}
	if store == nil {
		return nil, fmt.Errorf("object store required")
	}
	if maxUploadMB <= 0 {
		return nil, fmt.Errorf("max upload size must be positive")
	}
	return &service{
		repo:     repo,
		store:    store,
		maxBytes: int64(maxUploadMB) << 20,
		now:      time.Now,
	}, nil
}

// Store writes the object, then the metadata row. A metadata failure after
// a successful object write leaves the object orphaned; there is no
// compensating delete.
func (s *service) Store(ctx context.Context, input StoreInput) (*StoreResult, error) {
	if input.Body == nil || input.DeviceModel == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid file or model")
	}
	if input.SizeBytes > s.maxBytes {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "File too large")
	}

	mediaType, err := sniffMimeType(input.ContentType)
	if err != nil || !mimeTypeAllowed(mediaType) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Bad file type")
	}

	key := s.deriveKey(input.FileName)
	if err := s.store.Upload(ctx, key, mediaType, input.Body); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storing upload failed")
	}

	url := s.store.PublicURL(key)

	userID := input.UserID
	if userID == "" {
		userID = defaultUserID
	}

	row := &models.CustomUpload{
		UserID:      validators.SanitizeString(userID, maxUserIDLen),
		FileURL:     url,
		DeviceModel: validators.SanitizeString(input.DeviceModel, maxDeviceModelLen),
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persisting upload metadata")
	}

	return &StoreResult{URL: url}, nil
}

// deriveKey prefixes the sanitized original filename with the upload
// timestamp in epoch milliseconds.
func (s *service) deriveKey(fileName string) string {
	if fileName == "" {
		fileName = defaultFileName
	}
	safe := keyUnsafeRe.ReplaceAllString(fileName, "_")
	return strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + safe
}
