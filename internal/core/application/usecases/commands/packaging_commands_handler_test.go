package commands_test

import (
	"testing"

	"parcelmarket/internal/core/application/usecases/commands"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/core/ports"
	"parcelmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parcelUoWFixture wires a parcel-only unit of work that returns the given
// aggregate and expects a successful update and commit.
func parcelUoWFixture(t *testing.T, p *parcel.Parcel) (*MockParcelUoWFactory, *MockUoW, *MockParcelRepository) {
	t.Helper()
	ctx := t.Context()

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo)
	parcelRepo.On("Get", ctx, p.ID()).Return(p, nil).Once()
	parcelRepo.On("Update", ctx, p).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow, parcelRepo
}

// parcelUoWFailureFixture wires a parcel-only unit of work for a handler run
// expected to fail before the update.
func parcelUoWFailureFixture(t *testing.T, p *parcel.Parcel) (*MockParcelUoWFactory, *MockUoW) {
	t.Helper()
	ctx := t.Context()

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo)
	parcelRepo.On("Get", ctx, p.ID()).Return(p, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow
}

func TestSubmitPackagingCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	p := newAcceptedParcel(t, kernel.NewUUID(), carrierID)

	cmd, err := commands.NewSubmitPackagingCommand(p.ID(), carrierID, "https://img.example/pack.jpg")
	require.NoError(t, err)

	factory, uow, _ := parcelUoWFixture(t, p)
	notifier := new(MockEventNotifier)
	notifier.On("Notify", ctx, ports.EventPackagingSubmitted, p.ID()).Once()

	handler := commands.NewSubmitPackagingCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.PackagingPending, p.Packaging())
	require.NotNil(t, p.PackagingSubmittedAt())
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestSubmitPackagingCommand_RequiresPhoto(t *testing.T) {
	_, err := commands.NewSubmitPackagingCommand(kernel.NewUUID(), kernel.NewUUID(), "")

	assert.ErrorIs(t, err, commands.ErrPhotoURLIsRequired)
}

func TestConfirmPackagingCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	vendorID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	p := newAcceptedParcel(t, vendorID, carrierID)
	require.NoError(t, p.SubmitPackaging(carrierID, "https://img.example/pack.jpg", p.CreatedAt()))

	cmd, err := commands.NewConfirmPackagingCommand(p.ID(), vendorID)
	require.NoError(t, err)

	factory, uow, _ := parcelUoWFixture(t, p)
	notifier := new(MockEventNotifier)
	notifier.On("Notify", ctx, ports.EventPackagingConfirmed, p.ID()).Once()

	handler := commands.NewConfirmPackagingCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.PackagingConfirmed, p.Packaging())
	uow.AssertExpectations(t)
}

func TestConfirmPackagingCommandHandler_Handle_NotVendor(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	p := newAcceptedParcel(t, kernel.NewUUID(), carrierID)
	require.NoError(t, p.SubmitPackaging(carrierID, "https://img.example/pack.jpg", p.CreatedAt()))

	cmd, err := commands.NewConfirmPackagingCommand(p.ID(), kernel.NewUUID())
	require.NoError(t, err)

	factory, uow := parcelUoWFailureFixture(t, p)

	handler := commands.NewConfirmPackagingCommandHandler(factory, new(MockEventNotifier))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, parcel.PackagingPending, p.Packaging())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRejectPackagingCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	vendorID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	p := newAcceptedParcel(t, vendorID, carrierID)
	require.NoError(t, p.SubmitPackaging(carrierID, "https://img.example/pack.jpg", p.CreatedAt()))

	cmd, err := commands.NewRejectPackagingCommand(p.ID(), vendorID, "tape is loose")
	require.NoError(t, err)

	factory, uow, _ := parcelUoWFixture(t, p)
	notifier := new(MockEventNotifier)
	notifier.On("Notify", ctx, ports.EventPackagingRejected, p.ID()).Once()

	handler := commands.NewRejectPackagingCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.PackagingNone, p.Packaging())
	assert.Equal(t, "tape is loose", p.PackagingRejectReason())
	assert.Equal(t, parcel.Accepted, p.Status())
	uow.AssertExpectations(t)
}

func TestRejectPackagingCommand_RequiresReason(t *testing.T) {
	_, err := commands.NewRejectPackagingCommand(kernel.NewUUID(), kernel.NewUUID(), "")

	assert.ErrorIs(t, err, commands.ErrRejectReasonIsRequired)
}

func TestStartJourneyCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	p := newAcceptedParcel(t, kernel.NewUUID(), carrierID)

	from, err := kernel.NewGeoPoint(48.80, 2.30)
	require.NoError(t, err)
	cmd, err := commands.NewStartJourneyCommand(p.ID(), carrierID, from)
	require.NoError(t, err)

	factory, uow, _ := parcelUoWFixture(t, p)
	notifier := new(MockEventNotifier)
	notifier.On("Notify", ctx, ports.EventJourneyStarted, p.ID()).Once()

	handler := commands.NewStartJourneyCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.Accepted, p.Status())
	require.NotNil(t, p.DepartedAt())
	require.NotNil(t, p.DeparturePoint())
	uow.AssertExpectations(t)
}

func TestArriveAtPickupCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	p := newAcceptedParcel(t, kernel.NewUUID(), carrierID)

	cmd, err := commands.NewArriveAtPickupCommand(p.ID(), carrierID)
	require.NoError(t, err)

	factory, uow, _ := parcelUoWFixture(t, p)
	notifier := new(MockEventNotifier)
	notifier.On("Notify", ctx, ports.EventArrivedAtPickup, p.ID()).Once()

	handler := commands.NewArriveAtPickupCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, p.ArrivedAt())
	uow.AssertExpectations(t)
}

func TestCancelParcelCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	vendorID := kernel.NewUUID()
	p := newPendingParcel(t, vendorID)

	cmd, err := commands.NewCancelParcelCommand(p.ID(), vendorID, "changed my mind")
	require.NoError(t, err)

	factory, uow, _ := parcelUoWFixture(t, p)
	notifier := new(MockEventNotifier)
	notifier.On("Notify", ctx, ports.EventParcelCancelled, p.ID()).Once()

	handler := commands.NewCancelParcelCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.Cancelled, p.Status())
	uow.AssertExpectations(t)
}

func TestCancelParcelCommandHandler_Handle_Stranger(t *testing.T) {
	ctx := t.Context()
	p := newAcceptedParcel(t, kernel.NewUUID(), kernel.NewUUID())

	cmd, err := commands.NewCancelParcelCommand(p.ID(), kernel.NewUUID(), "")
	require.NoError(t, err)

	factory, uow := parcelUoWFailureFixture(t, p)

	handler := commands.NewCancelParcelCommandHandler(factory, new(MockEventNotifier))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, parcel.Accepted, p.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}
