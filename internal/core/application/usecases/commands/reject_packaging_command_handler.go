package commands

import (
	"context"
	"time"

	"parcelmarket/internal/core/ports"
)

// RejectPackagingCommandHandler handles vendor packaging rejection: the
// handshake resets and the carrier must redo packaging. The parcel stays
// Accepted.
type RejectPackagingCommandHandler struct {
	uowFactory ParcelUoWFactory
	notifier   ports.EventNotifier
}

// NewRejectPackagingCommandHandler creates a handler for packaging rejection.
func NewRejectPackagingCommandHandler(
	uowFactory ParcelUoWFactory,
	notifier ports.EventNotifier,
) RejectPackagingCommandHandler {
	return RejectPackagingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the packaging rejection command.
func (h *RejectPackagingCommandHandler) Handle(ctx context.Context, cmd RejectPackagingCommand) error {
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

	if err = aggregate.VendorRejectPackaging(cmd.VendorID(), cmd.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.EventPackagingRejected, aggregate.ID())
	return nil
}
