package commands_test

import (
	"testing"
	"time"

	"parcelmarket/internal/core/application/usecases/commands"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/core/ports"
	"parcelmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func confirmPickupFixture(t *testing.T, p *parcel.Parcel, carrierID kernel.UUID, code string) (commands.ConfirmPickupCommandHandler, *MockUoW, *MockParcelRepository, *MockEventNotifier, commands.ConfirmPickupCommand) {
	t.Helper()
	ctx := t.Context()

	cmd, err := commands.NewConfirmPickupCommand(p.ID(), carrierID, code)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo)
	parcelRepo.On("Get", ctx, p.ID()).Return(p, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockEventNotifier)
	handler := commands.NewConfirmPickupCommandHandler(factory, notifier)
	return handler, uow, parcelRepo, notifier, cmd
}

func TestConfirmPickupCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	vendorID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	p := newAcceptedParcel(t, vendorID, carrierID)
	require.NoError(t, p.SubmitPackaging(carrierID, "https://img.example/pack.jpg", now))
	require.NoError(t, p.VendorConfirmPackaging(vendorID, now))

	handler, uow, parcelRepo, notifier, cmd := confirmPickupFixture(t, p, carrierID, "042731")
	parcelRepo.On("Update", ctx, p).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	notifier.On("Notify", ctx, ports.EventParcelPickedUp, p.ID()).Once()

	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.PickedUp, p.Status())
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestConfirmPickupCommandHandler_Handle_WrongCode(t *testing.T) {
	ctx := t.Context()
	vendorID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	p := newAcceptedParcel(t, vendorID, carrierID)
	require.NoError(t, p.SubmitPackaging(carrierID, "https://img.example/pack.jpg", now))
	require.NoError(t, p.VendorConfirmPackaging(vendorID, now))

	handler, uow, parcelRepo, notifier, cmd := confirmPickupFixture(t, p, carrierID, "000000")

	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidCode)
	assert.Equal(t, parcel.Accepted, p.Status())
	parcelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmPickupCommandHandler_Handle_PackagingNotConfirmed(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	p := newAcceptedParcel(t, kernel.NewUUID(), carrierID)
	require.NoError(t, p.SubmitPackaging(carrierID, "https://img.example/pack.jpg", now))

	// right code, but the handshake is still pending
	handler, _, _, _, cmd := confirmPickupFixture(t, p, carrierID, "042731")

	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateConflict)
	assert.Equal(t, parcel.Accepted, p.Status())
}

func TestNewConfirmPickupCommand_RequiresCode(t *testing.T) {
	_, err := commands.NewConfirmPickupCommand(kernel.NewUUID(), kernel.NewUUID(), "")

	assert.ErrorIs(t, err, commands.ErrPickupCodeIsRequired)
}
