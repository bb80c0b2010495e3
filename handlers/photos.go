package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/articret/coffee-shop-server/internal/storage"
	"github.com/articret/coffee-shop-server/pkg/apierror"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// multipartOverhead is the body allowance beyond the photo itself for
// boundaries and part headers.
const multipartOverhead = 64 << 10

// PhotoStore is implemented by storage.MinIOStorage and storage.MemoryStorage.
type PhotoStore interface {
	UploadFile(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	DownloadFile(ctx context.Context, key string) (*storage.Object, error)
}

// RegisterPhotoRoutes exposes photo upload and download. Uploaded photos get a
// generated key; the returned URL is what clients store in a coffee or user
// "photo" field.
func RegisterPhotoRoutes(r gin.IRouter, store PhotoStore, maxBytes int64) {
	tooLarge := func(c *gin.Context) {
		_ = c.Error(apierror.New(http.StatusRequestEntityTooLarge, fmt.Sprintf("photo exceeds %d bytes", maxBytes), nil))
	}

	r.POST("/photos", func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+multipartOverhead)
		fh, err := c.FormFile("photo")
		if err != nil {
			var mbe *http.MaxBytesError
			if errors.As(err, &mbe) {
				tooLarge(c)
				return
			}
			_ = c.Error(apierror.BadRequest("multipart field \"photo\" is required", err))
			return
		}
		if fh.Size > maxBytes {
			tooLarge(c)
			return
		}
		f, err := fh.Open()
		if err != nil {
			_ = c.Error(fmt.Errorf("open upload: %w", err))
			return
		}
		defer f.Close()

		mt, err := mimetype.DetectReader(f)
		if err != nil {
			_ = c.Error(fmt.Errorf("detect photo type: %w", err))
			return
		}
		if !strings.HasPrefix(mt.String(), "image/") {
			_ = c.Error(apierror.BadRequest("photo must be an image, got "+mt.String(), nil))
			return
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			_ = c.Error(fmt.Errorf("rewind upload: %w", err))
			return
		}

		key := uuid.NewString() + mt.Extension()
		if err := store.UploadFile(c.Request.Context(), key, f, fh.Size, mt.String()); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"key": key, "url": photoURL(c, key)})
	})

	r.GET("/photos/:key", func(c *gin.Context) {
		obj, err := store.DownloadFile(c.Request.Context(), c.Param("key"))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				_ = c.Error(apierror.NotFound("photo not found"))
				return
			}
			_ = c.Error(err)
			return
		}
		defer obj.Body.Close()
		c.Header("Cache-Control", "public, max-age=86400")
		c.DataFromReader(http.StatusOK, obj.Size, obj.ContentType, obj.Body, nil)
	})
}

func photoURL(c *gin.Context, key string) string {
	scheme := "http"
	if c.Request.TLS != nil || strings.EqualFold(c.GetHeader("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/photos/%s", scheme, c.Request.Host, key)
}
