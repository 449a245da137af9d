package style

import (
	"context"
	"encoding/json"

	"github.com/amalynlocs/salon-api/internal/audit"
	"github.com/amalynlocs/salon-api/internal/httperr"
	"github.com/amalynlocs/salon-api/internal/kv"
	"github.com/amalynlocs/salon-api/internal/models"
)

// ActivateStyle flips the storefront theme. The active-style pointer record
// is the sole source of truth, so activation is a single write: no
// deactivate-all loop, no window where zero or two styles are active.
type ActivateStyle struct {
	store kv.Store
	audit *audit.Dispatcher
}

func NewActivateStyle(store kv.Store, audit *audit.Dispatcher) *ActivateStyle {
	return &ActivateStyle{
		store: store,
		audit: audit,
	}
}

func (uc *ActivateStyle) Execute(
	ctx context.Context,
	styleID string,
	actor string,
) (*models.Style, error) {

	raw, err := uc.store.Get(ctx, models.StyleKey(styleID))
	if err == kv.ErrNotFound {
		return nil, httperr.ErrBusiness("style_not_found")
	}
	if err != nil {
		return nil, err
	}

	var st models.Style
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, err
	}

	if err := uc.store.Set(ctx, models.ActiveStyleKey, models.ActiveStyle{StyleID: styleID}); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "style_activated",
		Entity:   "style",
		EntityID: styleID,
	})

	st.IsActive = true
	return &st, nil
}

// ActiveID resolves the current pointer. Returns "" when no style has been
// activated yet.
func ActiveID(ctx context.Context, store kv.Store) (string, error) {
	raw, err := store.Get(ctx, models.ActiveStyleKey)
	if err == kv.ErrNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var ptr models.ActiveStyle
	if err := json.Unmarshal(raw, &ptr); err != nil {
		return "", err
	}
	return ptr.StyleID, nil
}
