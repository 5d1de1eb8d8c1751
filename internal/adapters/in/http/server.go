// Package http provides the inbound HTTP adapter: thin echo handlers that
// bind JSON, build commands and queries, and translate domain error kinds
// into HTTP status codes. No business rules live here.
package http

import (
	"errors"
	"net/http"

	"parcelmarket/internal/core/application/usecases/commands"
	"parcelmarket/internal/core/application/usecases/queries"
	"parcelmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server holds the command and query handlers behind the HTTP surface.
type Server struct {
	createParcelHandler     commands.CreateParcelCommandHandler
	acceptParcelHandler     commands.AcceptParcelCommandHandler
	startJourneyHandler     commands.StartJourneyCommandHandler
	arriveAtPickupHandler   commands.ArriveAtPickupCommandHandler
	submitPackagingHandler  commands.SubmitPackagingCommandHandler
	confirmPackagingHandler commands.ConfirmPackagingCommandHandler
	rejectPackagingHandler  commands.RejectPackagingCommandHandler
	confirmPickupHandler    commands.ConfirmPickupCommandHandler
	deliverParcelHandler    commands.DeliverParcelCommandHandler
	cancelParcelHandler     commands.CancelParcelCommandHandler
	submitReviewHandler     commands.SubmitReviewCommandHandler
	createCarrierHandler    commands.CreateCarrierCommandHandler
	updateCarrierHandler    commands.UpdateCarrierStatusCommandHandler

	findAvailableMissionsHandler queries.FindAvailableMissionsQueryHandler
	getCarrierMissionsHandler    queries.GetCarrierMissionsQueryHandler
}

// NewServer creates the HTTP server over the given use case handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	acceptParcelHandler commands.AcceptParcelCommandHandler,
	startJourneyHandler commands.StartJourneyCommandHandler,
	arriveAtPickupHandler commands.ArriveAtPickupCommandHandler,
	submitPackagingHandler commands.SubmitPackagingCommandHandler,
	confirmPackagingHandler commands.ConfirmPackagingCommandHandler,
	rejectPackagingHandler commands.RejectPackagingCommandHandler,
	confirmPickupHandler commands.ConfirmPickupCommandHandler,
	deliverParcelHandler commands.DeliverParcelCommandHandler,
	cancelParcelHandler commands.CancelParcelCommandHandler,
	submitReviewHandler commands.SubmitReviewCommandHandler,
	createCarrierHandler commands.CreateCarrierCommandHandler,
	updateCarrierHandler commands.UpdateCarrierStatusCommandHandler,
	findAvailableMissionsHandler queries.FindAvailableMissionsQueryHandler,
	getCarrierMissionsHandler queries.GetCarrierMissionsQueryHandler,
) *Server {
	return &Server{
		createParcelHandler:          createParcelHandler,
		acceptParcelHandler:          acceptParcelHandler,
		startJourneyHandler:          startJourneyHandler,
		arriveAtPickupHandler:        arriveAtPickupHandler,
		submitPackagingHandler:       submitPackagingHandler,
		confirmPackagingHandler:      confirmPackagingHandler,
		rejectPackagingHandler:       rejectPackagingHandler,
		confirmPickupHandler:         confirmPickupHandler,
		deliverParcelHandler:         deliverParcelHandler,
		cancelParcelHandler:          cancelParcelHandler,
		submitReviewHandler:          submitReviewHandler,
		createCarrierHandler:         createCarrierHandler,
		updateCarrierHandler:         updateCarrierHandler,
		findAvailableMissionsHandler: findAvailableMissionsHandler,
		getCarrierMissionsHandler:    getCarrierMissionsHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/parcels", s.CreateParcel)
	api.POST("/parcels/:id/accept", s.AcceptParcel)
	api.POST("/parcels/:id/journey", s.StartJourney)
	api.POST("/parcels/:id/arrival", s.ArriveAtPickup)
	api.POST("/parcels/:id/packaging", s.SubmitPackaging)
	api.POST("/parcels/:id/packaging/confirm", s.ConfirmPackaging)
	api.POST("/parcels/:id/packaging/reject", s.RejectPackaging)
	api.POST("/parcels/:id/pickup", s.ConfirmPickup)
	api.POST("/parcels/:id/delivery", s.DeliverParcel)
	api.POST("/parcels/:id/cancel", s.CancelParcel)
	api.POST("/parcels/:id/review", s.SubmitReview)

	api.POST("/carriers", s.CreateCarrier)
	api.PATCH("/carriers/:id", s.UpdateCarrierStatus)
	api.GET("/carriers/:id/feed", s.FindAvailableMissions)
	api.GET("/carriers/:id/missions", s.GetCarrierMissions)
}

// ErrorResponse is the JSON body of every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps a domain error kind to its HTTP status.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrStateConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidCode):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrNoCarrierChangesRequested):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
