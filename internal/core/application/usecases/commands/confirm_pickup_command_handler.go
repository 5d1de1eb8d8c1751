package commands

import (
	"context"
	"time"

	"parcelmarket/internal/core/ports"
)

// ConfirmPickupCommandHandler handles pickup-code verification.
// On success the parcel moves to PickedUp and the carrier holds it.
// A wrong code fails with an InvalidCodeError and changes nothing; an
// unconfirmed packaging handshake fails with a StateConflictError before the
// code is even compared.
type ConfirmPickupCommandHandler struct {
	uowFactory ParcelUoWFactory
	notifier   ports.EventNotifier
}

// NewConfirmPickupCommandHandler creates a handler for pickup verification.
func NewConfirmPickupCommandHandler(
	uowFactory ParcelUoWFactory,
	notifier ports.EventNotifier,
) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the pickup verification command.
func (h *ConfirmPickupCommandHandler) Handle(ctx context.Context, cmd ConfirmPickupCommand) error {
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

	aggregate, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = aggregate.ConfirmPickup(cmd.CarrierID(), cmd.Code(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.EventParcelPickedUp, aggregate.ID())
	return nil
}
