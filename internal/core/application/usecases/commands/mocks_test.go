package commands_test

import (
	"context"
	"testing"
	"time"

	"parcelmarket/internal/core/application/usecases/commands"
	"parcelmarket/internal/core/domain/model/billing"
	"parcelmarket/internal/core/domain/model/carrier"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/core/domain/model/review"
	"parcelmarket/internal/core/domain/services"
	"parcelmarket/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAllPending(ctx context.Context) ([]*parcel.Parcel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetStalledPackaging(ctx context.Context, cutoff time.Time) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

type MockCarrierRepository struct{ mock.Mock }

func (m *MockCarrierRepository) Add(ctx context.Context, c *carrier.Carrier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCarrierRepository) Update(ctx context.Context, c *carrier.Carrier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCarrierRepository) Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.Carrier), args.Error(1)
}

type MockTransactionRepository struct{ mock.Mock }

func (m *MockTransactionRepository) Add(ctx context.Context, tx *billing.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) GetByParcel(ctx context.Context, parcelID kernel.UUID) (*billing.Transaction, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Transaction), args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByParcel(ctx context.Context, parcelID kernel.UUID) (*review.Review, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

func (m *MockReviewRepository) GetAllByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*review.Review, error) {
	args := m.Called(ctx, carrierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*review.Review), args.Error(1)
}

// MockUoW satisfies every unit of work composition the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) CarrierRepository() ports.CarrierRepository {
	args := m.Called()
	return args.Get(0).(ports.CarrierRepository)
}

func (m *MockUoW) TransactionRepository() ports.TransactionRepository {
	args := m.Called()
	return args.Get(0).(ports.TransactionRepository)
}

func (m *MockUoW) ReviewRepository() ports.ReviewRepository {
	args := m.Called()
	return args.Get(0).(ports.ReviewRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockCarrierUoWFactory struct{ mock.Mock }

func (m *MockCarrierUoWFactory) Create() commands.CarrierUoW {
	args := m.Called()
	return args.Get(0).(commands.CarrierUoW)
}

type MockParcelCarrierUoWFactory struct{ mock.Mock }

func (m *MockParcelCarrierUoWFactory) Create() commands.ParcelCarrierUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelCarrierUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	args := m.Called()
	return args.Get(0).(commands.ReviewUoW)
}

// MockEventNotifier records published lifecycle events.
type MockEventNotifier struct{ mock.Mock }

func (m *MockEventNotifier) Notify(ctx context.Context, event string, parcelID kernel.UUID) {
	m.Called(ctx, event, parcelID)
}

// quietNotifier accepts any event without expectations, for tests that do
// not care about notifications.
func quietNotifier() *MockEventNotifier {
	n := new(MockEventNotifier)
	n.On("Notify", mock.Anything, mock.Anything, mock.Anything).Maybe()
	return n
}

// newPendingParcel builds a medium parcel in Pending status with the pickup
// code "042731" and the 4.00/0.80/3.20 split.
func newPendingParcel(t *testing.T, vendorID kernel.UUID) *parcel.Parcel {
	t.Helper()

	point, err := kernel.NewGeoPoint(48.8566, 2.3522)
	require.NoError(t, err)

	dropoff, err := parcel.NewDropoff("office", "Acme Inc", "12 Main St")
	require.NoError(t, err)

	pricing, err := services.NewPricingEngine().Price(parcel.SizeMedium)
	require.NoError(t, err)

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	window, err := kernel.NewTimeWindow(start, start.Add(2*time.Hour))
	require.NoError(t, err)

	code, err := parcel.PickupCodeFromString("042731")
	require.NoError(t, err)

	p, err := parcel.NewParcel(kernel.NewUUID(), vendorID, "7 Warehouse Rd",
		point, dropoff, parcel.SizeMedium, pricing, window, code, start.Add(-24*time.Hour))
	require.NoError(t, err)

	return p
}

// newAcceptedParcel builds a parcel already held by the given carrier.
func newAcceptedParcel(t *testing.T, vendorID, carrierID kernel.UUID) *parcel.Parcel {
	t.Helper()

	p := newPendingParcel(t, vendorID)
	require.NoError(t, p.Accept(carrierID, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)))
	return p
}

// newPickedUpParcel builds a parcel past the packaging handshake and pickup.
func newPickedUpParcel(t *testing.T, vendorID, carrierID kernel.UUID) *parcel.Parcel {
	t.Helper()

	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	p := newAcceptedParcel(t, vendorID, carrierID)
	require.NoError(t, p.SubmitPackaging(carrierID, "https://img.example/pack.jpg", now))
	require.NoError(t, p.VendorConfirmPackaging(vendorID, now))
	require.NoError(t, p.ConfirmPickup(carrierID, "042731", now))
	return p
}

func newTestCarrier(t *testing.T, id kernel.UUID) *carrier.Carrier {
	t.Helper()

	point, err := kernel.NewGeoPoint(48.85, 2.35)
	require.NoError(t, err)

	c, err := carrier.NewCarrier(id, "Alice", point, 10)
	require.NoError(t, err)
	c.SetAvailability(true)
	return c
}
