package media

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/amalynlocs/salon-api/internal/audit"
	"github.com/amalynlocs/salon-api/internal/config"
	"github.com/amalynlocs/salon-api/internal/kv"
	mediapkg "github.com/amalynlocs/salon-api/internal/media"
	"github.com/amalynlocs/salon-api/internal/models"
	"github.com/amalynlocs/salon-api/internal/storage"
	"github.com/amalynlocs/salon-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type UploadInput struct {
	FileName    string
	ContentType string
	Data        []byte
	Type        string // product | gallery | general
	Actor       string
}

// ======================================================
// USE CASE
// ======================================================

type Upload struct {
	store kv.Store
	blobs storage.BlobStore
	cfg   *config.Config
	audit *audit.Dispatcher
}

func NewUpload(
	store kv.Store,
	blobs storage.BlobStore,
	cfg *config.Config,
	audit *audit.Dispatcher,
) *Upload {
	return &Upload{
		store: store,
		blobs: blobs,
		cfg:   cfg,
		audit: audit,
	}
}

// Execute writes the blob first and the metadata record last. If the
// metadata write fails the stored blobs are deleted again, so a successful
// response always means both halves exist and a failure leaves nothing
// behind.
func (uc *Upload) Execute(ctx context.Context, in UploadInput) (*models.Image, error) {

	bucket := uc.cfg.BucketFor(in.Type)
	fileName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeName(in.FileName))
	filePath := in.Type + "/" + fileName

	if err := uc.blobs.Upload(ctx, bucket, filePath, bytes.NewReader(in.Data), in.ContentType); err != nil {
		return nil, err
	}

	img := &models.Image{
		ID:         models.NewID(),
		FileName:   fileName,
		FilePath:   filePath,
		Bucket:     bucket,
		Type:       in.Type,
		UploadedAt: timezone.Stamp(),
	}

	// Thumbnail is best-effort: non-image files simply have none.
	if thumb, err := mediapkg.Make(in.Data); err == nil {
		thumbPath := in.Type + "/thumbs/" + fileName + ".webp"
		if err := uc.blobs.Upload(ctx, bucket, thumbPath, bytes.NewReader(thumb.Data), "image/webp"); err != nil {
			log.Printf("thumbnail upload failed for %s: %v", filePath, err)
		} else {
			img.ThumbPath = thumbPath
			img.Width = thumb.SourceWidth
			img.Height = thumb.SourceHeight
		}
	}

	url, err := uc.blobs.SignedURL(ctx, bucket, filePath, storage.SignedURLTTL)
	if err != nil {
		uc.cleanup(ctx, img)
		return nil, err
	}
	img.URL = url

	if img.ThumbPath != "" {
		if thumbURL, err := uc.blobs.SignedURL(ctx, bucket, img.ThumbPath, storage.SignedURLTTL); err == nil {
			img.ThumbURL = thumbURL
		}
	}

	if err := uc.store.Set(ctx, models.ImageKey(img.ID), img); err != nil {
		uc.cleanup(ctx, img)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Action:   "image_uploaded",
		Entity:   "image",
		EntityID: img.ID,
		Metadata: map[string]string{"bucket": bucket, "path": filePath},
	})

	return img, nil
}

// cleanup is the compensating delete for a half-finished upload.
func (uc *Upload) cleanup(ctx context.Context, img *models.Image) {
	if err := uc.blobs.Remove(ctx, img.Bucket, img.FilePath); err != nil {
		log.Printf("cleanup of %s/%s failed: %v", img.Bucket, img.FilePath, err)
	}
	if img.ThumbPath != "" {
		if err := uc.blobs.Remove(ctx, img.Bucket, img.ThumbPath); err != nil {
			log.Printf("cleanup of %s/%s failed: %v", img.Bucket, img.ThumbPath, err)
		}
	}
}

func sanitizeName(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	base = strings.ReplaceAll(base, " ", "-")
	if base == "" || base == "." || base == "/" {
		return "upload"
	}
	return base
}
