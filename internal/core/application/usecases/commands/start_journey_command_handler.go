package commands

import (
	"context"
	"time"

	"parcelmarket/internal/core/ports"
)

// StartJourneyCommandHandler records the carrier's departure toward pickup.
// Informational transition: the parcel stays Accepted.
type StartJourneyCommandHandler struct {
	uowFactory ParcelUoWFactory
	notifier   ports.EventNotifier
}

// NewStartJourneyCommandHandler creates a handler for journey departure.
func NewStartJourneyCommandHandler(
	uowFactory ParcelUoWFactory,
	notifier ports.EventNotifier,
) StartJourneyCommandHandler {
	return StartJourneyCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the journey departure command.
func (h *StartJourneyCommandHandler) Handle(ctx context.Context, cmd StartJourneyCommand) error {
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

	if err = aggregate.StartJourney(cmd.CarrierID(), cmd.From(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.EventJourneyStarted, aggregate.ID())
	return nil
}
