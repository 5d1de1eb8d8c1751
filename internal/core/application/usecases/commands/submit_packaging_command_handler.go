package commands

import (
	"context"
	"time"

	"parcelmarket/internal/core/ports"
)

// SubmitPackagingCommandHandler handles packaging evidence submission.
// Moves the handshake sub-state to pending; resubmission while still pending
// replaces the evidence and restarts the confirmation clock.
type SubmitPackagingCommandHandler struct {
	uowFactory ParcelUoWFactory
	notifier   ports.EventNotifier
}

// NewSubmitPackagingCommandHandler creates a handler for packaging submission.
func NewSubmitPackagingCommandHandler(
	uowFactory ParcelUoWFactory,
	notifier ports.EventNotifier,
) SubmitPackagingCommandHandler {
	return SubmitPackagingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the packaging submission command.
func (h *SubmitPackagingCommandHandler) Handle(ctx context.Context, cmd SubmitPackagingCommand) error {
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

	if err = aggregate.SubmitPackaging(cmd.CarrierID(), cmd.PhotoURL(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.EventPackagingSubmitted, aggregate.ID())
	return nil
}
