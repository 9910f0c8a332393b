// File: internal/property/service.go
package property

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AymenS02/united-real-estate/internal/common"

	"go.uber.org/zap"
)

// Client-facing messages.
const (
	MsgFetchAllFailed     = "Failed to fetch properties"
	MsgFetchFailed        = "Failed to fetch property"
	MsgCreated            = "Property created successfully"
	MsgMissingFields      = "Missing required fields"
	MsgCreateFailed       = "Failed to create property"
	MsgIDRequired         = "Property ID is required"
	MsgDeleted            = "Property deleted successfully"
	MsgDeleteFailed       = "Failed to delete property"
	MsgUpdated            = "Property updated successfully"
	MsgUpdateFailed       = "Failed to update property"
	MsgStatusRequired     = "Status is required"
	MsgInvalidUpdateInput = "Invalid request body"
)

// Service defines the interface for listing business logic.
type Service interface {
	ListProperties(ctx context.Context) ([]Listing, error)
	GetProperty(ctx context.Context, id string) (*Listing, error)
	CreateProperty(ctx context.Context, req CreatePropertyRequest) (*Listing, error)
	DeleteProperty(ctx context.Context, id string) error
	UpdateProperty(ctx context.Context, id string, req UpdatePropertyRequest) (*Listing, error)
}

// ServiceImplementation implements Service on top of a Repository.
type ServiceImplementation struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new listing service.
func NewService(repo Repository, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		repo:   repo,
		logger: logger.Named("property"),
		now:    storeNow,
	}
}

// storeNow returns the current time at the precision every store keeps.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// serverError wraps err in a 500 envelope unless it already is an APIError.
func serverError(message string, err error) error {
	if apiErr, ok := common.IsAPIError(err); ok {
		return apiErr
	}
	return common.ErrInternalServer.WithMessage(message).WithDetails(common.ErrorDetails(err))
}

func (s *ServiceImplementation) ListProperties(ctx context.Context) ([]Listing, error) {
	listings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch properties", zap.Error(err))
		return nil, serverError(MsgFetchAllFailed, err)
	}
	return listings, nil
}

func (s *ServiceImplementation) GetProperty(ctx context.Context, id string) (*Listing, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPropertyNotFound) {
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("Failed to fetch property", zap.String("id", id), zap.Error(err))
		return nil, serverError(MsgFetchFailed, err)
	}
	return l, nil
}

func (s *ServiceImplementation) CreateProperty(ctx context.Context, req CreatePropertyRequest) (*Listing, error) {
	if !req.HasRequiredFields() {
		return nil, common.ErrBadRequest.WithMessage(MsgMissingFields)
	}

	l := req.ToListing()
	ApplyDefaults(l, s.now())

	if err := s.repo.Create(ctx, l); err != nil {
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) {
			s.logger.Warn("Property rejected by schema", zap.String("listingId", l.ListingID), zap.Error(err))
		} else {
			s.logger.Error("Failed to create property", zap.String("listingId", l.ListingID), zap.Error(err))
		}
		return nil, serverError(MsgCreateFailed, err)
	}

	s.logger.Info("Property created", zap.String("id", l.ID), zap.String("listingId", l.ListingID))
	return l, nil
}

func (s *ServiceImplementation) DeleteProperty(ctx context.Context, id string) error {
	if id == "" {
		return common.ErrBadRequest.WithMessage(MsgIDRequired)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete property", zap.String("id", id), zap.Error(err))
		return serverError(MsgDeleteFailed, err)
	}
	s.logger.Info("Property deleted", zap.String("id", id))
	return nil
}

// UpdateProperty applies a status change. Re-sending the current status
// only refreshes updatedAt; moving back from Inventory is a conflict.
func (s *ServiceImplementation) UpdateProperty(ctx context.Context, id string, req UpdatePropertyRequest) (*Listing, error) {
	if req.Status == nil {
		return nil, common.ErrBadRequest.WithMessage(MsgStatusRequired)
	}
	next := Status(*req.Status)
	if !next.IsValid() {
		return nil, common.ErrBadRequest.WithMessage(fmt.Sprintf("`%s` is not a valid status", *req.Status))
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPropertyNotFound) {
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("Failed to load property for update", zap.String("id", id), zap.Error(err))
		return nil, serverError(MsgUpdateFailed, err)
	}
	if !current.Status.CanTransitionTo(next) {
		return nil, common.ErrConflict.WithMessage(
			fmt.Sprintf("Cannot change status from %s to %s", current.Status, next))
	}

	updated, err := s.repo.UpdateStatus(ctx, id, next, s.now())
	if err != nil {
		if errors.Is(err, ErrPropertyNotFound) {
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("Failed to update property", zap.String("id", id), zap.Error(err))
		return nil, serverError(MsgUpdateFailed, err)
	}

	s.logger.Info("Property status updated",
		zap.String("id", id),
		zap.String("from", string(current.Status)),
		zap.String("to", string(next)),
	)
	return updated, nil
}
