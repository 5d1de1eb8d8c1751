package commands_test

import (
	"testing"

	"parcelmarket/internal/core/application/usecases/commands"
	"parcelmarket/internal/core/domain/model/billing"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/core/ports"
	"parcelmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeliverParcelCommandHandler_Handle_MediumParcelScenario(t *testing.T) {
	// A medium parcel costs 4.00; delivery releases a 3.20 payout and keeps
	// a 0.80 platform fee, exactly as split when the parcel was created.
	ctx := t.Context()
	vendorID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	p := newPickedUpParcel(t, vendorID, carrierID)
	assignee := newTestCarrier(t, carrierID)
	deliveriesBefore := assignee.DeliveriesCount()

	cmd, err := commands.NewDeliverParcelCommand(p.ID(), carrierID, "https://img.example/door.jpg", "left at reception")
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	carrierRepo := new(MockCarrierRepository)
	txRepo := new(MockTransactionRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("CarrierRepository").Return(carrierRepo)
	uow.On("TransactionRepository").Return(txRepo)
	parcelRepo.On("Get", ctx, p.ID()).Return(p, nil).Once()
	parcelRepo.On("Update", ctx, p).Return(nil).Once()
	txRepo.On("Add", ctx, mock.AnythingOfType("*billing.Transaction")).Return(nil).Once()
	carrierRepo.On("Get", ctx, carrierID).Return(assignee, nil).Once()
	carrierRepo.On("Update", ctx, assignee).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockEventNotifier)
	notifier.On("Notify", ctx, ports.EventParcelDelivered, p.ID()).Once()
	notifier.On("Notify", ctx, ports.EventPaymentReleased, p.ID()).Once()

	handler := commands.NewDeliverParcelCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.Delivered, p.Status())
	assert.Equal(t, deliveriesBefore+1, assignee.DeliveriesCount())
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)

	var record *billing.Transaction
	for _, call := range txRepo.Calls {
		if call.Method == "Add" {
			record = call.Arguments.Get(1).(*billing.Transaction)
		}
	}
	require.NotNil(t, record)
	assert.Equal(t, int64(400), record.Amount().Cents())
	assert.Equal(t, int64(80), record.Fee().Cents())
	assert.Equal(t, int64(320), record.Payout().Cents())
	assert.True(t, record.ParcelID().IsEqual(p.ID()))
	assert.True(t, record.VendorID().IsEqual(vendorID))
	assert.True(t, record.CarrierID().IsEqual(carrierID))
}

func TestDeliverParcelCommandHandler_Handle_NotPickedUp(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	p := newAcceptedParcel(t, kernel.NewUUID(), carrierID)

	cmd, err := commands.NewDeliverParcelCommand(p.ID(), carrierID, "", "")
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo)
	parcelRepo.On("Get", ctx, p.ID()).Return(p, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeliverParcelCommandHandler(factory, new(MockEventNotifier))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateConflict)
	assert.Equal(t, parcel.Accepted, p.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestDeliverParcelCommandHandler_Handle_WrongCarrier(t *testing.T) {
	ctx := t.Context()
	p := newPickedUpParcel(t, kernel.NewUUID(), kernel.NewUUID())
	stranger := kernel.NewUUID()

	cmd, err := commands.NewDeliverParcelCommand(p.ID(), stranger, "", "")
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo)
	parcelRepo.On("Get", ctx, p.ID()).Return(p, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeliverParcelCommandHandler(factory, new(MockEventNotifier))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, parcel.PickedUp, p.Status())
}
