package commands_test

import (
	"errors"
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

func newStalledParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	carrierID := kernel.NewUUID()
	p := newAcceptedParcel(t, kernel.NewUUID(), carrierID)
	submittedAt := time.Now().UTC().Add(-13 * time.Hour)
	require.NoError(t, p.SubmitPackaging(carrierID, "https://img.example/pack.jpg", submittedAt))
	return p
}

func TestSweepStalledPackagingCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	stalledA := newStalledParcel(t)
	stalledB := newStalledParcel(t)
	// this one got vendor attention between the listing and the confirm
	raced := newStalledParcel(t)
	require.NoError(t, raced.VendorConfirmPackaging(raced.VendorID(), time.Now().UTC()))

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("ParcelRepository").Return(parcelRepo)

	parcelRepo.On("GetStalledPackaging", ctx, mock.AnythingOfType("time.Time")).
		Return([]*parcel.Parcel{stalledA, stalledB, raced}, nil).Once()
	parcelRepo.On("Get", ctx, stalledA.ID()).Return(stalledA, nil).Once()
	parcelRepo.On("Get", ctx, stalledB.ID()).Return(stalledB, nil).Once()
	parcelRepo.On("Get", ctx, raced.ID()).Return(raced, nil).Once()
	parcelRepo.On("Update", ctx, stalledA).Return(nil).Once()
	parcelRepo.On("Update", ctx, stalledB).Return(nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow)

	notifier := new(MockEventNotifier)
	notifier.On("Notify", ctx, ports.EventPackagingConfirmed, stalledA.ID()).Once()
	notifier.On("Notify", ctx, ports.EventPackagingConfirmed, stalledB.ID()).Once()

	handler := commands.NewSweepStalledPackagingCommandHandler(factory, notifier)
	result, err := handler.Handle(ctx, commands.NewSweepStalledPackagingCommand())

	require.NoError(t, err)
	assert.Equal(t, 3, result.Processed)
	require.Len(t, result.Outcomes, 3)

	assert.NoError(t, result.Outcomes[0].Err)
	assert.NoError(t, result.Outcomes[1].Err)
	// the raced mission is skipped as a conflict, not an error of the pass
	assert.ErrorIs(t, result.Outcomes[2].Err, errs.ErrStateConflict)

	assert.Equal(t, parcel.PackagingConfirmed, stalledA.Packaging())
	assert.Equal(t, parcel.PackagingConfirmed, stalledB.Packaging())
	notifier.AssertExpectations(t)
}

func TestSweepStalledPackagingCommandHandler_Handle_OneFailureDoesNotAbortPass(t *testing.T) {
	ctx := t.Context()

	failing := newStalledParcel(t)
	healthy := newStalledParcel(t)
	updateErr := errors.New("connection reset")

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("ParcelRepository").Return(parcelRepo)

	parcelRepo.On("GetStalledPackaging", ctx, mock.AnythingOfType("time.Time")).
		Return([]*parcel.Parcel{failing, healthy}, nil).Once()
	parcelRepo.On("Get", ctx, failing.ID()).Return(failing, nil).Once()
	parcelRepo.On("Get", ctx, healthy.ID()).Return(healthy, nil).Once()
	parcelRepo.On("Update", ctx, failing).Return(updateErr).Once()
	parcelRepo.On("Update", ctx, healthy).Return(nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow)

	notifier := new(MockEventNotifier)
	notifier.On("Notify", ctx, ports.EventPackagingConfirmed, healthy.ID()).Once()

	handler := commands.NewSweepStalledPackagingCommandHandler(factory, notifier)
	result, err := handler.Handle(ctx, commands.NewSweepStalledPackagingCommand())

	require.NoError(t, err)
	require.Len(t, result.Outcomes, 2)
	assert.ErrorIs(t, result.Outcomes[0].Err, updateErr)
	assert.NoError(t, result.Outcomes[1].Err)
	assert.Equal(t, parcel.PackagingConfirmed, healthy.Packaging())
	notifier.AssertExpectations(t)
}

func TestSweepStalledPackagingCommandHandler_Handle_EmptyPool(t *testing.T) {
	ctx := t.Context()

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("ParcelRepository").Return(parcelRepo)

	parcelRepo.On("GetStalledPackaging", ctx, mock.AnythingOfType("time.Time")).
		Return([]*parcel.Parcel{}, nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewSweepStalledPackagingCommandHandler(factory, quietNotifier())
	result, err := handler.Handle(ctx, commands.NewSweepStalledPackagingCommand())

	require.NoError(t, err)
	assert.Zero(t, result.Processed)
	assert.Empty(t, result.Outcomes)
}
