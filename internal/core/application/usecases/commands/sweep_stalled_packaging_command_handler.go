package commands

import (
	"context"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/ports"
)

// PackagingGracePeriod is how long a packaging submission may await vendor
// confirmation before the sweep confirms it on the vendor's behalf.
const PackagingGracePeriod = 12 * time.Hour

// SweepOutcome records the result of confirming one stalled mission.
type SweepOutcome struct {
	ParcelID kernel.UUID
	Err      error
}

// SweepResult summarizes one sweep pass.
type SweepResult struct {
	// Processed counts the stalled missions the sweep attempted.
	Processed int
	// Outcomes has one entry per attempted mission, in processing order.
	Outcomes []SweepOutcome
}

// SweepStalledPackagingCommandHandler force-confirms packaging submissions
// that the vendor has ignored past the grace period, so carriers are not
// blocked indefinitely.
//
// Each mission is confirmed in its own transaction: one failing mission
// never aborts the rest of the pass. Confirmation goes through the same
// sub-state precondition as the vendor path, so a mission the vendor
// confirmed (or rejected) between the query and the write is simply skipped
// as a conflict, making overlapping sweeps idempotent.
type SweepStalledPackagingCommandHandler struct {
	uowFactory ParcelUoWFactory
	notifier   ports.EventNotifier
}

// NewSweepStalledPackagingCommandHandler creates a handler for the sweep.
func NewSweepStalledPackagingCommandHandler(
	uowFactory ParcelUoWFactory,
	notifier ports.EventNotifier,
) SweepStalledPackagingCommandHandler {
	return SweepStalledPackagingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle runs one sweep pass and reports per-mission outcomes.
// The returned error covers only the pass itself (listing the stalled
// missions); per-mission confirmation failures land in the result.
func (h *SweepStalledPackagingCommandHandler) Handle(
	ctx context.Context,
	_ SweepStalledPackagingCommand,
) (SweepResult, error) {
	now := time.Now().UTC()
	cutoff := now.Add(-PackagingGracePeriod)

	stalled, err := h.listStalled(ctx, cutoff)
	if err != nil {
		return SweepResult{}, err
	}

	result := SweepResult{
		Processed: len(stalled),
		Outcomes:  make([]SweepOutcome, 0, len(stalled)),
	}

	for _, id := range stalled {
		confirmErr := h.confirmOne(ctx, id, now)
		result.Outcomes = append(result.Outcomes, SweepOutcome{ParcelID: id, Err: confirmErr})

		if confirmErr == nil {
			h.notifier.Notify(ctx, ports.EventPackagingConfirmed, id)
		}
	}

	return result, nil
}

// listStalled collects the identifiers of missions whose packaging stalled
// before the cutoff. Only identifiers leave this transaction; each mission
// is re-read under its own transaction in confirmOne so the confirmation
// races on fresh state.
func (h *SweepStalledPackagingCommandHandler) listStalled(ctx context.Context, cutoff time.Time) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stalled, err := uow.ParcelRepository().GetStalledPackaging(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(stalled))
	for _, p := range stalled {
		ids = append(ids, p.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}

func (h *SweepStalledPackagingCommandHandler) confirmOne(ctx context.Context, id kernel.UUID, now time.Time) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ParcelRepository().Get(ctx, id)
	if err != nil {
		return err
	}

	if err = aggregate.SystemConfirmPackaging(now); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
