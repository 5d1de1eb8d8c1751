package commands

import (
	"context"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/core/domain/model/review"
	"parcelmarket/internal/pkg/errs"
)

// SubmitReviewCommandHandler handles vendor reviews of completed missions.
//
// The review insert and the carrier's rating recompute run in one
// transaction. The rating summary is recomputed as a full scan over the
// carrier's reviews; fine at review-creation frequency, and the review store
// is the single source of truth for it.
type SubmitReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewSubmitReviewCommandHandler creates a handler for review submission.
func NewSubmitReviewCommandHandler(uowFactory ReviewUoWFactory) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command.
// Only the parcel's vendor may review, only after delivery, and only once
// per parcel (the second insert fails on the uniqueness rule).
func (h *SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) error {
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

	if !aggregate.VendorID().IsEqual(cmd.VendorID()) {
		return errs.NewForbiddenError("caller is not the parcel vendor")
	}
	if aggregate.Status() != parcel.Delivered {
		return errs.NewStateConflictError("parcel", aggregate.Status().String())
	}

	carrierID := aggregate.CarrierID()

	newReview, err := review.NewReview(
		kernel.NewUUID(),
		aggregate.ID(),
		cmd.VendorID(),
		*carrierID,
		cmd.Rating(),
		cmd.Comment(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.ReviewRepository().Add(ctx, newReview); err != nil {
		return err
	}

	all, err := uow.ReviewRepository().GetAllByCarrier(ctx, *carrierID)
	if err != nil {
		return err
	}

	total := 0
	for _, r := range all {
		total += r.Rating()
	}
	average := float64(total) / float64(len(all))

	assignee, err := uow.CarrierRepository().Get(ctx, *carrierID)
	if err != nil {
		return err
	}

	if err = assignee.Rerate(average, len(all)); err != nil {
		return err
	}

	if err = uow.CarrierRepository().Update(ctx, assignee); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
