package controllers

import (
	"errors"
	"net/http"

	"github.com/werealtor/aixx/api/responses"
	"github.com/werealtor/aixx/api/validators"
	uploadsvc "github.com/werealtor/aixx/internal/uploads"
	pkgerrors "github.com/werealtor/aixx/pkg/errors"
	"github.com/werealtor/aixx/pkg/logger"
)

const (
	uploadFileField = "image-upload"

	// Headroom above the file cap for the multipart framing around a
	// maximum-size file.
	uploadFramingHeadroom = int64(1) << 20
)

// UploadCustomImage handles custom-case image uploads. The file arrives
// as multipart field "image-upload" alongside a "device_model" value;
// the owning user comes from the user_id query parameter.
func UploadCustomImage(svc uploadsvc.Service, maxUploadMB int, logg *logger.Logger) http.HandlerFunc {
	maxBytes := int64(maxUploadMB) << 20

	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "upload service unavailable"))
			return
		}

		if r.ContentLength > maxBytes+uploadFramingHeadroom {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "File too large"))
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+uploadFramingHeadroom)

		file, header, err := r.FormFile(uploadFileField)
		if err != nil {
			// A body the reader refused to finish is an oversized file,
			// not a missing one.
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "File too large"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid file or model"))
			return
		}
		defer file.Close()

		input := uploadsvc.StoreInput{
			UserID:      validators.QueryStringOr(r, "user_id", ""),
			DeviceModel: r.FormValue("device_model"),
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			SizeBytes:   header.Size,
			Body:        file,
		}

		result, err := svc.Store(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.CacheNoStore(w)
		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"url":     result.URL,
		})
	}
}
