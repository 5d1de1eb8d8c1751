package commands

import (
	"context"
	"time"

	"parcelmarket/internal/core/domain/model/billing"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/ports"
)

// DeliverParcelCommandHandler completes a mission in one transaction:
// the parcel moves to Delivered, the billing record is written with the
// split captured at creation, and the carrier's delivery counter grows.
//
// Repricing never happens here: the transaction copies the parcel's stored
// PricingResult, so a tariff change between creation and delivery cannot
// desynchronize the vendor charge from the carrier payout.
type DeliverParcelCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.EventNotifier
}

// NewDeliverParcelCommandHandler creates a handler for mission completion.
func NewDeliverParcelCommandHandler(
	uowFactory DeliveryUoWFactory,
	notifier ports.EventNotifier,
) DeliverParcelCommandHandler {
	return DeliverParcelCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the delivery command.
func (h *DeliverParcelCommandHandler) Handle(ctx context.Context, cmd DeliverParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

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

	if err = aggregate.Deliver(cmd.CarrierID(), cmd.ProofPhotoURL(), cmd.Notes(), now); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	pricing := aggregate.Pricing()
	record, err := billing.NewTransaction(
		kernel.NewUUID(),
		aggregate.ID(),
		aggregate.VendorID(),
		cmd.CarrierID(),
		pricing.Total(),
		pricing.Fee(),
		pricing.Payout(),
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.TransactionRepository().Add(ctx, record); err != nil {
		return err
	}

	assignee, err := uow.CarrierRepository().Get(ctx, cmd.CarrierID())
	if err != nil {
		return err
	}

	assignee.RecordDelivery()
	if err = uow.CarrierRepository().Update(ctx, assignee); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.EventParcelDelivered, aggregate.ID())
	h.notifier.Notify(ctx, ports.EventPaymentReleased, aggregate.ID())
	return nil
}
