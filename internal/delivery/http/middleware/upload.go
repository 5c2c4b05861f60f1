package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/metrics"
	"job-portal-backend/pkg/storage"
)

// Uploads is the set of files accepted for the current request, by field.
type Uploads map[string]*storage.Accepted

// UploadStage accepts the multipart files named by policies before the handler
// runs. A rejected file aborts the request with 415 or 413. Accepted files are
// removed again when the handler fails, so a failed request never leaves
// orphans on disk. Non-multipart requests pass through untouched.
func UploadStage(store *storage.Local, policies ...storage.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			c.Next()
			return
		}

		// Room for every file at the size limit plus the text fields.
		limit := store.MaxBytes()*int64(len(policies)) + 1<<20
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				metrics.UploadsRejected.WithLabelValues("request", string(storage.ReasonTooLarge)).Inc()
				_ = c.Error(apperror.PayloadTooLarge("Request body too large"))
			} else {
				_ = c.Error(apperror.BadRequest("Malformed multipart form"))
			}
			c.Abort()
			return
		}

		accepted := Uploads{}
		for _, p := range policies {
			files := c.Request.MultipartForm.File[p.Field]
			if len(files) == 0 {
				continue
			}
			out, err := store.Accept(files[0], p)
			if err != nil {
				removeAll(store, accepted)
				_ = c.Error(apperror.Internal(err))
				c.Abort()
				return
			}
			if rej := out.Rejected; rej != nil {
				removeAll(store, accepted)
				metrics.UploadsRejected.WithLabelValues(rej.Field, string(rej.Reason)).Inc()
				if rej.Reason == storage.ReasonTooLarge {
					_ = c.Error(apperror.PayloadTooLarge(rej.Message))
				} else {
					_ = c.Error(apperror.UnsupportedMediaType(rej.Message))
				}
				c.Abort()
				return
			}
			accepted[p.Field] = out.Accepted
		}

		c.Set(string(domain.KeyUploads), accepted)
		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			removeAll(store, accepted)
		}
	}
}

// UploadedPath returns the public path of the accepted file for field, or "".
func UploadedPath(c *gin.Context, field string) string {
	v, ok := c.Get(string(domain.KeyUploads))
	if !ok {
		return ""
	}
	uploads, _ := v.(Uploads)
	if a := uploads[field]; a != nil {
		return a.Path
	}
	return ""
}

func removeAll(store *storage.Local, uploads Uploads) {
	for field, a := range uploads {
		if err := store.Remove(a); err != nil {
			logger.Log.Warn("Failed to remove upload", zap.String("field", field), zap.Error(err))
		}
	}
}
