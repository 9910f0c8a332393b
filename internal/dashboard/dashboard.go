// File: internal/dashboard/dashboard.go
package dashboard

import (
	"context"

	"github.com/AymenS02/united-real-estate/internal/common"
	"github.com/AymenS02/united-real-estate/internal/property"

	"go.uber.org/zap"
)

// Alert texts shown when the API call itself fails or returns no message.
const (
	AlertCreateFailed       = "Failed to create listing; check console for server errors."
	AlertCreateUnreachable  = "Failed to create listing; check console for details."
	AlertPromoteFailed      = "Failed to move listing"
	AlertPromoteUnreachable = "Failed to move listing; check console for details."
)

// Backend is the subset of the listings API the dashboard drives.
type Backend interface {
	ListProperties(ctx context.Context) ([]property.Listing, error)
	CreateProperty(ctx context.Context, payload property.CreatePropertyRequest) (*property.Listing, error)
	PromoteProperty(ctx context.Context, id string) error
	DeleteProperty(ctx context.Context, id string) error
}

// Dashboard holds the state of one dashboard view.
type Dashboard struct {
	backend Backend
	logger  *zap.Logger

	Listings []property.Listing
	Loading  bool
	FormOpen bool
	Draft    Draft
	Errors   FieldErrors
	Alert    string
}

// New returns an empty dashboard with a fresh draft.
func New(backend Backend, logger *zap.Logger) *Dashboard {
	return &Dashboard{
		backend:  backend,
		logger:   logger,
		Listings: []property.Listing{},
		Draft:    NewDraft(),
		Errors:   FieldErrors{},
	}
}

// Mount loads the listings table.
func (d *Dashboard) Mount(ctx context.Context) {
	d.refresh(ctx)
}

func (d *Dashboard) refresh(ctx context.Context) {
	d.Loading = true
	defer func() { d.Loading = false }()

	listings, err := d.backend.ListProperties(ctx)
	if err != nil {
		if _, isAPIErr := common.IsAPIError(err); isAPIErr {
			d.Listings = []property.Listing{}
		}
		d.logger.Error("Error fetching listings", zap.Error(err))
		return
	}
	d.Listings = listings
}

// ToggleForm opens or closes the add-listing form.
func (d *Dashboard) ToggleForm() {
	d.FormOpen = !d.FormOpen
}

// ResetDraft discards the form contents and its errors.
func (d *Dashboard) ResetDraft() {
	d.Draft = NewDraft()
	d.Errors = FieldErrors{}
}

// Submit validates the draft and creates the listing. Validation failures
// never reach the network. On success the form is reset and closed and the
// table reloaded; on failure the draft is kept and Alert is set.
func (d *Dashboard) Submit(ctx context.Context) bool {
	d.Errors = d.Draft.Validate()
	if len(d.Errors) > 0 {
		return false
	}

	d.Loading = true
	_, err := d.backend.CreateProperty(ctx, d.Draft.Payload())
	d.Loading = false
	if err != nil {
		if apiErr, isAPIErr := common.IsAPIError(err); isAPIErr {
			d.logger.Error("Server error creating property", zap.Error(err), zap.Any("details", apiErr.Details))
			d.Alert = messageOr(apiErr.Message, AlertCreateFailed)
		} else {
			d.logger.Error("Error creating listing", zap.Error(err))
			d.Alert = AlertCreateUnreachable
		}
		return false
	}

	d.ResetDraft()
	d.FormOpen = false
	d.refresh(ctx)
	return true
}

// Promote moves the listing to Inventory and reloads the table.
func (d *Dashboard) Promote(ctx context.Context, id string) bool {
	d.Loading = true
	err := d.backend.PromoteProperty(ctx, id)
	d.Loading = false
	if err != nil {
		if apiErr, isAPIErr := common.IsAPIError(err); isAPIErr {
			d.logger.Error("Move to inventory failed", zap.Error(err))
			d.Alert = messageOr(apiErr.Message, AlertPromoteFailed)
		} else {
			d.logger.Error("Error moving to inventory", zap.Error(err))
			d.Alert = AlertPromoteUnreachable
		}
		return false
	}

	d.refresh(ctx)
	return true
}

// Delete removes the listing and drops it from the table without reloading.
// Failures are only logged.
func (d *Dashboard) Delete(ctx context.Context, id string) bool {
	if err := d.backend.DeleteProperty(ctx, id); err != nil {
		d.logger.Error("Failed to delete property", zap.String("id", id), zap.Error(err))
		return false
	}

	kept := make([]property.Listing, 0, len(d.Listings))
	for _, l := range d.Listings {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	d.Listings = kept
	return true
}

func messageOr(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
