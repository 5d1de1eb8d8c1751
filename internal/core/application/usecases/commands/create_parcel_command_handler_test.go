package commands_test

import (
	"errors"
	"testing"

	"parcelmarket/internal/core/application/usecases/commands"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/core/domain/services"
	"parcelmarket/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	point, dropoff, window := validCreateParcelParts(t)
	parcelID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(parcelID, kernel.NewUUID(),
		"7 Warehouse Rd", point, dropoff, parcel.SizeMedium, window)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo)
	parcelRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockEventNotifier)
	notifier.On("Notify", ctx, ports.EventParcelCreated, parcelID).Once()

	handler := commands.NewCreateParcelCommandHandler(factory, services.NewPricingEngine(), notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)

	// the stored parcel is pending with the medium split captured
	stored := parcelRepo.Calls[0].Arguments.Get(1).(*parcel.Parcel)
	assert.Equal(t, parcel.Pending, stored.Status())
	assert.Equal(t, parcel.PackagingNone, stored.Packaging())
	assert.Equal(t, int64(400), stored.Pricing().Base().Cents())
	assert.Equal(t, int64(80), stored.Pricing().Fee().Cents())
	assert.Equal(t, int64(320), stored.Pricing().Payout().Cents())
	assert.Len(t, stored.PickupCode().String(), 6)
}

func TestCreateParcelCommandHandler_Handle_AddFails(t *testing.T) {
	ctx := t.Context()
	point, dropoff, window := validCreateParcelParts(t)
	cmd, err := commands.NewCreateParcelCommand(kernel.NewUUID(), kernel.NewUUID(),
		"7 Warehouse Rd", point, dropoff, parcel.SizeSmall, window)
	require.NoError(t, err)

	repoErr := errors.New("insert failed")
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo)
	parcelRepo.On("Add", ctx, mock.Anything).Return(repoErr).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockEventNotifier)

	handler := commands.NewCreateParcelCommandHandler(factory, services.NewPricingEngine(), notifier)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, repoErr)
	uow.AssertNotCalled(t, "Commit", ctx)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateParcelCommandHandler_Handle_UnconstructedCommand(t *testing.T) {
	handler := commands.NewCreateParcelCommandHandler(
		new(MockParcelUoWFactory), services.NewPricingEngine(), quietNotifier())

	err := handler.Handle(t.Context(), commands.CreateParcelCommand{})

	assert.ErrorIs(t, err, commands.ErrCreateParcelCommandIsNotConstructed)
}
