package commands

import (
	"context"
	"time"

	"parcelmarket/internal/core/ports"
)

// AcceptParcelCommandHandler handles mission acceptance.
//
// Exactly-once semantics: the domain transition only succeeds from Pending,
// and the repository's conditional update makes the losing side of two
// concurrent accepts fail with a StateConflictError when both loaded the
// parcel as Pending.
type AcceptParcelCommandHandler struct {
	uowFactory ParcelCarrierUoWFactory
	notifier   ports.EventNotifier
}

// NewAcceptParcelCommandHandler creates a handler for mission acceptance.
func NewAcceptParcelCommandHandler(
	uowFactory ParcelCarrierUoWFactory,
	notifier ports.EventNotifier,
) AcceptParcelCommandHandler {
	return AcceptParcelCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the acceptance command.
// The carrier must exist; the parcel must still be Pending.
func (h *AcceptParcelCommandHandler) Handle(ctx context.Context, cmd AcceptParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CarrierRepository().Get(ctx, cmd.CarrierID()); err != nil {
		return err
	}

	aggregate, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = aggregate.Accept(cmd.CarrierID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.EventParcelAccepted, aggregate.ID())
	return nil
}
