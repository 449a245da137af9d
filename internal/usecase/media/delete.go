package media

import (
	"context"
	"encoding/json"
	"log"

	"github.com/amalynlocs/salon-api/internal/audit"
	"github.com/amalynlocs/salon-api/internal/httperr"
	"github.com/amalynlocs/salon-api/internal/kv"
	"github.com/amalynlocs/salon-api/internal/models"
	"github.com/amalynlocs/salon-api/internal/storage"
)

type Delete struct {
	store kv.Store
	blobs storage.BlobStore
	audit *audit.Dispatcher
}

func NewDelete(store kv.Store, blobs storage.BlobStore, audit *audit.Dispatcher) *Delete {
	return &Delete{
		store: store,
		blobs: blobs,
		audit: audit,
	}
}

// Execute removes the blob and the metadata record. Blob removal is
// best-effort: a storage failure is logged and the record still goes away,
// so the console never shows an image that cannot be cleaned up.
func (uc *Delete) Execute(ctx context.Context, id string, actor string) error {

	raw, err := uc.store.Get(ctx, models.ImageKey(id))
	if err == kv.ErrNotFound {
		return httperr.ErrBusiness("image_not_found")
	}
	if err != nil {
		return err
	}

	var img models.Image
	if err := json.Unmarshal(raw, &img); err != nil {
		return err
	}

	if err := uc.blobs.Remove(ctx, img.Bucket, img.FilePath); err != nil {
		log.Printf("blob removal failed for %s/%s: %v", img.Bucket, img.FilePath, err)
	}
	if img.ThumbPath != "" {
		if err := uc.blobs.Remove(ctx, img.Bucket, img.ThumbPath); err != nil {
			log.Printf("blob removal failed for %s/%s: %v", img.Bucket, img.ThumbPath, err)
		}
	}

	if err := uc.store.Del(ctx, models.ImageKey(id)); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "image_deleted",
		Entity:   "image",
		EntityID: id,
	})

	return nil
}
