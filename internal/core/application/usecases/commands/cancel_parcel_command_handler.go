package commands

import (
	"context"
	"time"

	"parcelmarket/internal/core/ports"
)

// CancelParcelCommandHandler handles mission cancellation.
// The aggregate enforces who may cancel and from which states; the parcel is
// soft-cancelled and never physically deleted.
type CancelParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	notifier   ports.EventNotifier
}

// NewCancelParcelCommandHandler creates a handler for mission cancellation.
func NewCancelParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	notifier ports.EventNotifier,
) CancelParcelCommandHandler {
	return CancelParcelCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command.
func (h *CancelParcelCommandHandler) Handle(ctx context.Context, cmd CancelParcelCommand) error {
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

	if err = aggregate.Cancel(cmd.CallerID(), cmd.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.EventParcelCancelled, aggregate.ID())
	return nil
}
