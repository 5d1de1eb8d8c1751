package commands

import (
	"context"
	"time"

	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/core/domain/services"
	"parcelmarket/internal/core/ports"
)

// CreateParcelCommandHandler handles the business logic for parcel creation.
// Prices the parcel by its size class, generates the pickup code and stores
// the aggregate in Pending status, making it visible to the matcher.
type CreateParcelCommandHandler struct {
	uowFactory    ParcelUoWFactory
	pricingEngine services.PricingEngine
	notifier      ports.EventNotifier
}

// NewCreateParcelCommandHandler creates a handler for parcel creation.
func NewCreateParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	pricingEngine services.PricingEngine,
	notifier ports.EventNotifier,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory:    uowFactory,
		pricingEngine: pricingEngine,
		notifier:      notifier,
	}
}

// Handle processes the parcel creation command.
// The pricing split and the pickup code are captured here once and never
// regenerated later in the lifecycle.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pricing, err := h.pricingEngine.Price(cmd.Size())
	if err != nil {
		return err
	}

	pickupCode, err := parcel.NewPickupCode()
	if err != nil {
		return err
	}

	aggregate, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.VendorID(),
		cmd.PickupAddress(),
		cmd.PickupPoint(),
		cmd.Dropoff(),
		cmd.Size(),
		pricing,
		cmd.Window(),
		pickupCode,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.EventParcelCreated, aggregate.ID())
	return nil
}
