package commands

import (
	"context"
	"time"

	"parcelmarket/internal/core/ports"
)

// ConfirmPackagingCommandHandler handles vendor packaging approval, which
// unlocks pickup-code verification for the carrier.
type ConfirmPackagingCommandHandler struct {
	uowFactory ParcelUoWFactory
	notifier   ports.EventNotifier
}

// NewConfirmPackagingCommandHandler creates a handler for packaging approval.
func NewConfirmPackagingCommandHandler(
	uowFactory ParcelUoWFactory,
	notifier ports.EventNotifier,
) ConfirmPackagingCommandHandler {
	return ConfirmPackagingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the packaging approval command.
func (h *ConfirmPackagingCommandHandler) Handle(ctx context.Context, cmd ConfirmPackagingCommand) error {
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

	if err = aggregate.VendorConfirmPackaging(cmd.VendorID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.EventPackagingConfirmed, aggregate.ID())
	return nil
}
