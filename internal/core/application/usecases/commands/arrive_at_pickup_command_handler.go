package commands

import (
	"context"
	"time"

	"parcelmarket/internal/core/ports"
)

// ArriveAtPickupCommandHandler records the carrier's arrival at the pickup
// address. Informational transition: the parcel stays Accepted and the
// packaging handshake begins next.
type ArriveAtPickupCommandHandler struct {
	uowFactory ParcelUoWFactory
	notifier   ports.EventNotifier
}

// NewArriveAtPickupCommandHandler creates a handler for pickup arrival.
func NewArriveAtPickupCommandHandler(
	uowFactory ParcelUoWFactory,
	notifier ports.EventNotifier,
) ArriveAtPickupCommandHandler {
	return ArriveAtPickupCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the pickup arrival command.
func (h *ArriveAtPickupCommandHandler) Handle(ctx context.Context, cmd ArriveAtPickupCommand) error {
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

	if err = aggregate.ArriveAtPickup(cmd.CarrierID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.EventArrivedAtPickup, aggregate.ID())
	return nil
}
