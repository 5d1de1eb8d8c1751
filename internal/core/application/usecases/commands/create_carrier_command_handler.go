package commands

import (
	"context"

	"parcelmarket/internal/core/domain/model/carrier"
)

// CreateCarrierCommandHandler handles carrier registration.
// New carriers start unavailable; they opt in to matching through
// UpdateCarrierStatus.
type CreateCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewCreateCarrierCommandHandler creates a handler for carrier registration.
func NewCreateCarrierCommandHandler(uowFactory CarrierUoWFactory) CreateCarrierCommandHandler {
	return CreateCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the carrier registration command.
func (h *CreateCarrierCommandHandler) Handle(ctx context.Context, cmd CreateCarrierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := carrier.NewCarrier(cmd.CarrierID(), cmd.Name(), cmd.Location(), cmd.CoverageRadiusKm())
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

	if err = uow.CarrierRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
