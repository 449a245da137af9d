package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/amalynlocs/salon-api/internal/kv"
	"github.com/amalynlocs/salon-api/internal/models"
	"github.com/amalynlocs/salon-api/internal/timezone"
)

type Logger struct {
	store kv.Store
}

func New(store kv.Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(
	actor string,
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		ID:        models.NewID(),
		Actor:     actor,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
		CreatedAt: timezone.Stamp(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return l.store.Set(ctx, models.AuditKey(entry.ID), entry)
}
