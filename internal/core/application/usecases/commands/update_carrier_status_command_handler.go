package commands

import (
	"context"
)

// UpdateCarrierStatusCommandHandler applies matching-profile changes:
// availability, position and coverage radius. The changes feed the matcher
// on the next feed build; missions already accepted are unaffected.
type UpdateCarrierStatusCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewUpdateCarrierStatusCommandHandler creates a handler for profile updates.
func NewUpdateCarrierStatusCommandHandler(uowFactory CarrierUoWFactory) UpdateCarrierStatusCommandHandler {
	return UpdateCarrierStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update command.
func (h *UpdateCarrierStatusCommandHandler) Handle(ctx context.Context, cmd UpdateCarrierStatusCommand) error {
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

	aggregate, err := uow.CarrierRepository().Get(ctx, cmd.CarrierID())
	if err != nil {
		return err
	}

	if cmd.Available() != nil {
		aggregate.SetAvailability(*cmd.Available())
	}
	if cmd.Location() != nil {
		if err = aggregate.MoveTo(*cmd.Location()); err != nil {
			return err
		}
	}
	if cmd.CoverageRadiusKm() != nil {
		if err = aggregate.SetCoverageRadius(*cmd.CoverageRadiusKm()); err != nil {
			return err
		}
	}

	if err = uow.CarrierRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
