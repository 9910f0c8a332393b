package dashboard

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/AymenS02/united-real-estate/internal/common"
	"github.com/AymenS02/united-real-estate/internal/property"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockBackend is a mock implementation of Backend.
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) ListProperties(ctx context.Context) ([]property.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Listing), args.Error(1)
}

func (m *MockBackend) CreateProperty(ctx context.Context, payload property.CreatePropertyRequest) (*property.Listing, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Listing), args.Error(1)
}

func (m *MockBackend) PromoteProperty(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) DeleteProperty(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func listings(ids ...string) []property.Listing {
	out := make([]property.Listing, 0, len(ids))
	for _, id := range ids {
		out = append(out, property.Listing{ID: id, ListingID: "L-" + id, Status: property.StatusGallery})
	}
	return out
}

func TestMount_LoadsListings(t *testing.T) {
	backend := new(MockBackend)
	backend.On("ListProperties", mock.Anything).Return(listings("a", "b"), nil).Once()

	d := New(backend, zap.NewNop())
	d.Mount(context.Background())

	assert.Len(t, d.Listings, 2)
	assert.False(t, d.Loading)
	assert.Empty(t, d.Alert)
	backend.AssertExpectations(t)
}

func TestMount_FailureIsOnlyLogged(t *testing.T) {
	backend := new(MockBackend)
	backend.On("ListProperties", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	d := New(backend, zap.NewNop())
	d.Mount(context.Background())

	assert.Empty(t, d.Listings)
	assert.NotNil(t, d.Listings)
	assert.Empty(t, d.Alert)
	assert.False(t, d.Loading)
}

func TestSubmit_InvalidDraftNeverCallsBackend(t *testing.T) {
	backend := new(MockBackend)
	d := New(backend, zap.NewNop())
	d.FormOpen = true
	d.Draft = NewDraft().WithListingID("P1")

	assert.False(t, d.Submit(context.Background()))
	assert.Equal(t, "Description required", d.Errors["description"])
	assert.True(t, d.FormOpen)
	assert.Equal(t, "P1", d.Draft.ListingID)
	backend.AssertNotCalled(t, "CreateProperty", mock.Anything, mock.Anything)
}

func TestSubmit_SuccessResetsAndRefetches(t *testing.T) {
	backend := new(MockBackend)
	draft := completeDraft()
	backend.On("CreateProperty", mock.Anything, draft.Payload()).
		Return(&property.Listing{ID: "new"}, nil).Once()
	backend.On("ListProperties", mock.Anything).Return(listings("new"), nil).Once()

	d := New(backend, zap.NewNop())
	d.FormOpen = true
	d.Draft = draft

	assert.True(t, d.Submit(context.Background()))
	assert.False(t, d.FormOpen)
	assert.Empty(t, d.Draft.ListingID)
	assert.Empty(t, d.Errors)
	assert.Len(t, d.Listings, 1)
	assert.False(t, d.Loading)
	backend.AssertExpectations(t)
}

func TestSubmit_ServerErrorKeepsDraft(t *testing.T) {
	backend := new(MockBackend)
	serverErr := common.NewAPIError(http.StatusBadRequest, "", "Missing required fields")
	backend.On("CreateProperty", mock.Anything, mock.Anything).Return(nil, serverErr).Once()

	d := New(backend, zap.NewNop())
	d.FormOpen = true
	d.Draft = completeDraft()

	assert.False(t, d.Submit(context.Background()))
	assert.Equal(t, "Missing required fields", d.Alert)
	assert.Equal(t, "P1", d.Draft.ListingID)
	assert.True(t, d.FormOpen)
	backend.AssertNotCalled(t, "ListProperties", mock.Anything)
}

func TestSubmit_FallbackAlerts(t *testing.T) {
	backend := new(MockBackend)
	backend.On("CreateProperty", mock.Anything, mock.Anything).
		Return(nil, common.NewAPIError(http.StatusBadGateway, "", "")).Once()
	backend.On("CreateProperty", mock.Anything, mock.Anything).
		Return(nil, errors.New("dial tcp: connection refused")).Once()

	d := New(backend, zap.NewNop())
	d.Draft = completeDraft()

	d.Submit(context.Background())
	assert.Equal(t, AlertCreateFailed, d.Alert)

	d.Submit(context.Background())
	assert.Equal(t, AlertCreateUnreachable, d.Alert)
}

func TestPromote(t *testing.T) {
	backend := new(MockBackend)
	backend.On("PromoteProperty", mock.Anything, "a").Return(nil).Once()
	backend.On("ListProperties", mock.Anything).Return(listings("a"), nil).Once()

	d := New(backend, zap.NewNop())
	assert.True(t, d.Promote(context.Background(), "a"))
	assert.Len(t, d.Listings, 1)
	backend.AssertExpectations(t)
}

func TestPromote_Failures(t *testing.T) {
	backend := new(MockBackend)
	backend.On("PromoteProperty", mock.Anything, "a").
		Return(common.NewAPIError(http.StatusConflict, "", "Cannot change status from Inventory to Gallery")).Once()
	backend.On("PromoteProperty", mock.Anything, "b").
		Return(common.NewAPIError(http.StatusInternalServerError, "", "")).Once()
	backend.On("PromoteProperty", mock.Anything, "c").Return(errors.New("timeout")).Once()

	d := New(backend, zap.NewNop())

	assert.False(t, d.Promote(context.Background(), "a"))
	assert.Equal(t, "Cannot change status from Inventory to Gallery", d.Alert)

	assert.False(t, d.Promote(context.Background(), "b"))
	assert.Equal(t, AlertPromoteFailed, d.Alert)

	assert.False(t, d.Promote(context.Background(), "c"))
	assert.Equal(t, AlertPromoteUnreachable, d.Alert)

	backend.AssertNotCalled(t, "ListProperties", mock.Anything)
}

func TestDelete_RemovesLocallyWithoutRefetch(t *testing.T) {
	backend := new(MockBackend)
	backend.On("DeleteProperty", mock.Anything, "a").Return(nil).Once()

	d := New(backend, zap.NewNop())
	d.Listings = listings("a", "b")

	assert.True(t, d.Delete(context.Background(), "a"))
	assert.Equal(t, listings("b"), d.Listings)
	backend.AssertNotCalled(t, "ListProperties", mock.Anything)
}

func TestDelete_FailureKeepsTableAndNoAlert(t *testing.T) {
	backend := new(MockBackend)
	backend.On("DeleteProperty", mock.Anything, "a").Return(errors.New("boom")).Once()

	d := New(backend, zap.NewNop())
	d.Listings = listings("a")

	assert.False(t, d.Delete(context.Background(), "a"))
	assert.Len(t, d.Listings, 1)
	assert.Empty(t, d.Alert)
}

func TestResetDraftAndToggleForm(t *testing.T) {
	d := New(new(MockBackend), zap.NewNop())
	d.Draft = completeDraft()
	d.Errors = FieldErrors{"x": "y"}

	d.ToggleForm()
	assert.True(t, d.FormOpen)
	d.ResetDraft()
	assert.Equal(t, NewDraft(), d.Draft)
	assert.Empty(t, d.Errors)
}
