package http

import (
	"net/http"
	"time"

	"parcelmarket/internal/core/application/usecases/commands"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateParcelRequest is the body of POST /parcels.
type CreateParcelRequest struct {
	VendorID      string    `json:"vendor_id"`
	PickupAddress string    `json:"pickup_address"`
	PickupLat     float64   `json:"pickup_lat"`
	PickupLon     float64   `json:"pickup_lon"`
	DropoffKind   string    `json:"dropoff_kind"`
	DropoffName   string    `json:"dropoff_name"`
	DropoffAddr   string    `json:"dropoff_address"`
	Size          string    `json:"size"`
	WindowStart   time.Time `json:"window_start"`
	WindowEnd     time.Time `json:"window_end"`
}

// CreateParcelResponse returns the identifier of the new mission.
type CreateParcelResponse struct {
	ID string `json:"id"`
}

// CreateParcel handles POST /parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var req CreateParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	vendorID, err := kernel.UUIDFromString(req.VendorID)
	if err != nil {
		return respondError(ctx, err)
	}

	pickupPoint, err := kernel.NewGeoPoint(req.PickupLat, req.PickupLon)
	if err != nil {
		return respondError(ctx, err)
	}

	dropoff, err := parcel.NewDropoff(req.DropoffKind, req.DropoffName, req.DropoffAddr)
	if err != nil {
		return respondError(ctx, err)
	}

	size, err := parcel.SizeFromString(req.Size)
	if err != nil {
		return respondError(ctx, err)
	}

	window, err := kernel.NewTimeWindow(req.WindowStart, req.WindowEnd)
	if err != nil {
		return respondError(ctx, err)
	}

	parcelID := kernel.NewUUID()

	cmd, err := commands.NewCreateParcelCommand(
		parcelID, vendorID, req.PickupAddress, pickupPoint, dropoff, size, window)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateParcelResponse{ID: parcelID.String()})
}

// CarrierActionRequest is the body of the carrier-authored transition
// endpoints (accept, arrival).
type CarrierActionRequest struct {
	CarrierID string `json:"carrier_id"`
}

// AcceptParcel handles POST /parcels/:id/accept.
func (s *Server) AcceptParcel(ctx echo.Context) error {
	parcelID, carrierID, err := bindCarrierAction(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptParcelCommand(parcelID, carrierID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.acceptParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// StartJourneyRequest is the body of POST /parcels/:id/journey.
type StartJourneyRequest struct {
	CarrierID string  `json:"carrier_id"`
	FromLat   float64 `json:"from_lat"`
	FromLon   float64 `json:"from_lon"`
}

// StartJourney handles POST /parcels/:id/journey.
func (s *Server) StartJourney(ctx echo.Context) error {
	parcelID, err := parcelIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req StartJourneyRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	carrierID, err := kernel.UUIDFromString(req.CarrierID)
	if err != nil {
		return respondError(ctx, err)
	}

	from, err := kernel.NewGeoPoint(req.FromLat, req.FromLon)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartJourneyCommand(parcelID, carrierID, from)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.startJourneyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ArriveAtPickup handles POST /parcels/:id/arrival.
func (s *Server) ArriveAtPickup(ctx echo.Context) error {
	parcelID, carrierID, err := bindCarrierAction(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewArriveAtPickupCommand(parcelID, carrierID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.arriveAtPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// SubmitPackagingRequest is the body of POST /parcels/:id/packaging.
type SubmitPackagingRequest struct {
	CarrierID string `json:"carrier_id"`
	PhotoURL  string `json:"photo_url"`
}

// SubmitPackaging handles POST /parcels/:id/packaging.
func (s *Server) SubmitPackaging(ctx echo.Context) error {
	parcelID, err := parcelIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req SubmitPackagingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	carrierID, err := kernel.UUIDFromString(req.CarrierID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSubmitPackagingCommand(parcelID, carrierID, req.PhotoURL)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.submitPackagingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// VendorActionRequest is the body of the vendor-authored packaging
// confirmation endpoint.
type VendorActionRequest struct {
	VendorID string `json:"vendor_id"`
}

// ConfirmPackaging handles POST /parcels/:id/packaging/confirm.
func (s *Server) ConfirmPackaging(ctx echo.Context) error {
	parcelID, err := parcelIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req VendorActionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	vendorID, err := kernel.UUIDFromString(req.VendorID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewConfirmPackagingCommand(parcelID, vendorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.confirmPackagingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RejectPackagingRequest is the body of POST /parcels/:id/packaging/reject.
type RejectPackagingRequest struct {
	VendorID string `json:"vendor_id"`
	Reason   string `json:"reason"`
}

// RejectPackaging handles POST /parcels/:id/packaging/reject.
func (s *Server) RejectPackaging(ctx echo.Context) error {
	parcelID, err := parcelIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req RejectPackagingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	vendorID, err := kernel.UUIDFromString(req.VendorID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRejectPackagingCommand(parcelID, vendorID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.rejectPackagingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ConfirmPickupRequest is the body of POST /parcels/:id/pickup.
type ConfirmPickupRequest struct {
	CarrierID string `json:"carrier_id"`
	Code      string `json:"code"`
}

// ConfirmPickup handles POST /parcels/:id/pickup.
func (s *Server) ConfirmPickup(ctx echo.Context) error {
	parcelID, err := parcelIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req ConfirmPickupRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	carrierID, err := kernel.UUIDFromString(req.CarrierID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewConfirmPickupCommand(parcelID, carrierID, req.Code)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.confirmPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeliverParcelRequest is the body of POST /parcels/:id/delivery.
type DeliverParcelRequest struct {
	CarrierID     string `json:"carrier_id"`
	ProofPhotoURL string `json:"proof_photo_url"`
	Notes         string `json:"notes"`
}

// DeliverParcel handles POST /parcels/:id/delivery.
func (s *Server) DeliverParcel(ctx echo.Context) error {
	parcelID, err := parcelIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req DeliverParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	carrierID, err := kernel.UUIDFromString(req.CarrierID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeliverParcelCommand(parcelID, carrierID, req.ProofPhotoURL, req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deliverParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelParcelRequest is the body of POST /parcels/:id/cancel. The caller
// may be the vendor or the assigned carrier; the use case decides who is
// allowed to cancel at the current stage.
type CancelParcelRequest struct {
	CallerID string `json:"caller_id"`
	Reason   string `json:"reason"`
}

// CancelParcel handles POST /parcels/:id/cancel.
func (s *Server) CancelParcel(ctx echo.Context) error {
	parcelID, err := parcelIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CancelParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	callerID, err := kernel.UUIDFromString(req.CallerID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelParcelCommand(parcelID, callerID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// SubmitReviewRequest is the body of POST /parcels/:id/review.
type SubmitReviewRequest struct {
	VendorID string `json:"vendor_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// SubmitReview handles POST /parcels/:id/review.
func (s *Server) SubmitReview(ctx echo.Context) error {
	parcelID, err := parcelIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req SubmitReviewRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	vendorID, err := kernel.UUIDFromString(req.VendorID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSubmitReviewCommand(parcelID, vendorID, req.Rating, req.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.submitReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

func parcelIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func bindCarrierAction(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	parcelID, err := parcelIDParam(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	var req CarrierActionRequest
	if err := ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidError("request body")
	}

	carrierID, err := kernel.UUIDFromString(req.CarrierID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return parcelID, carrierID, nil
}
