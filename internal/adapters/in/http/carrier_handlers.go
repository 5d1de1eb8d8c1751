package http

import (
	"net/http"
	"strconv"
	"time"

	"parcelmarket/internal/core/application/usecases/commands"
	"parcelmarket/internal/core/application/usecases/queries"
	"parcelmarket/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateCarrierRequest is the body of POST /carriers.
type CreateCarrierRequest struct {
	Name             string  `json:"name"`
	LocationLat      float64 `json:"location_lat"`
	LocationLon      float64 `json:"location_lon"`
	CoverageRadiusKm float64 `json:"coverage_radius_km"`
}

// CreateCarrierResponse returns the identifier of the new profile.
type CreateCarrierResponse struct {
	ID string `json:"id"`
}

// CreateCarrier handles POST /carriers. New carriers start unavailable and
// flip themselves on through PATCH when ready to take missions.
func (s *Server) CreateCarrier(ctx echo.Context) error {
	var req CreateCarrierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	location, err := kernel.NewGeoPoint(req.LocationLat, req.LocationLon)
	if err != nil {
		return respondError(ctx, err)
	}

	carrierID := kernel.NewUUID()

	cmd, err := commands.NewCreateCarrierCommand(carrierID, req.Name, location, req.CoverageRadiusKm)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createCarrierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateCarrierResponse{ID: carrierID.String()})
}

// UpdateCarrierStatusRequest is the body of PATCH /carriers/:id.
// Absent fields are left as they are; at least one must be present.
type UpdateCarrierStatusRequest struct {
	Available        *bool    `json:"available"`
	LocationLat      *float64 `json:"location_lat"`
	LocationLon      *float64 `json:"location_lon"`
	CoverageRadiusKm *float64 `json:"coverage_radius_km"`
}

// UpdateCarrierStatus handles PATCH /carriers/:id.
func (s *Server) UpdateCarrierStatus(ctx echo.Context) error {
	carrierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateCarrierStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	// Latitude and longitude only make sense together.
	if (req.LocationLat == nil) != (req.LocationLon == nil) {
		return badRequest(ctx, "location requires both location_lat and location_lon")
	}

	var location *kernel.GeoPoint
	if req.LocationLat != nil {
		point, err := kernel.NewGeoPoint(*req.LocationLat, *req.LocationLon)
		if err != nil {
			return respondError(ctx, err)
		}
		location = &point
	}

	cmd, err := commands.NewUpdateCarrierStatusCommand(carrierID, req.Available, location, req.CoverageRadiusKm)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateCarrierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// MissionFeedEntry is one pending mission in the carrier's feed.
type MissionFeedEntry struct {
	ID             string    `json:"id"`
	PickupAddress  string    `json:"pickup_address"`
	PickupLat      float64   `json:"pickup_lat"`
	PickupLon      float64   `json:"pickup_lon"`
	DropoffName    string    `json:"dropoff_name"`
	DropoffAddress string    `json:"dropoff_address"`
	Size           string    `json:"size"`
	PayoutCents    int64     `json:"payout_cents"`
	WindowStart    time.Time `json:"window_start"`
	WindowEnd      time.Time `json:"window_end"`
	DistanceKm     float64   `json:"distance_km"`
}

// FindAvailableMissions handles GET /carriers/:id/feed. The optional
// radius_km query parameter overrides the carrier's coverage radius for
// this one request.
func (s *Server) FindAvailableMissions(ctx echo.Context) error {
	carrierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var radiusKm *float64
	if raw := ctx.QueryParam("radius_km"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return badRequest(ctx, "radius_km must be a number")
		}
		radiusKm = &parsed
	}

	query, err := queries.NewFindAvailableMissionsQuery(carrierID, radiusKm)
	if err != nil {
		return respondError(ctx, err)
	}

	missions, err := s.findAvailableMissionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	feed := make([]MissionFeedEntry, 0, len(missions))
	for _, m := range missions {
		feed = append(feed, MissionFeedEntry{
			ID:             m.ID.String(),
			PickupAddress:  m.PickupAddress,
			PickupLat:      m.PickupPoint.Lat(),
			PickupLon:      m.PickupPoint.Lon(),
			DropoffName:    m.DropoffName,
			DropoffAddress: m.DropoffAddress,
			Size:           m.Size,
			PayoutCents:    m.PayoutCents,
			WindowStart:    m.WindowStart,
			WindowEnd:      m.WindowEnd,
			DistanceKm:     m.DistanceKm,
		})
	}

	return ctx.JSON(http.StatusOK, feed)
}

// MissionBoardEntry is one active mission on the carrier's board.
type MissionBoardEntry struct {
	ID             string     `json:"id"`
	PickupAddress  string     `json:"pickup_address"`
	PickupLat      float64    `json:"pickup_lat"`
	PickupLon      float64    `json:"pickup_lon"`
	DropoffName    string     `json:"dropoff_name"`
	DropoffAddress string     `json:"dropoff_address"`
	Size           string     `json:"size"`
	PayoutCents    int64      `json:"payout_cents"`
	WindowStart    time.Time  `json:"window_start"`
	WindowEnd      time.Time  `json:"window_end"`
	Status         string     `json:"status"`
	Packaging      string     `json:"packaging"`
	AcceptedAt     *time.Time `json:"accepted_at,omitempty"`
	DepartedAt     *time.Time `json:"departed_at,omitempty"`
	ArrivedAt      *time.Time `json:"arrived_at,omitempty"`
	PickedUpAt     *time.Time `json:"picked_up_at,omitempty"`
}

// GetCarrierMissions handles GET /carriers/:id/missions.
func (s *Server) GetCarrierMissions(ctx echo.Context) error {
	carrierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCarrierMissionsQuery(carrierID)
	if err != nil {
		return respondError(ctx, err)
	}

	missions, err := s.getCarrierMissionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	board := make([]MissionBoardEntry, 0, len(missions))
	for _, m := range missions {
		board = append(board, MissionBoardEntry{
			ID:             m.ID.String(),
			PickupAddress:  m.PickupAddress,
			PickupLat:      m.PickupPoint.Lat(),
			PickupLon:      m.PickupPoint.Lon(),
			DropoffName:    m.DropoffName,
			DropoffAddress: m.DropoffAddress,
			Size:           m.Size,
			PayoutCents:    m.PayoutCents,
			WindowStart:    m.WindowStart,
			WindowEnd:      m.WindowEnd,
			Status:         m.Status,
			Packaging:      m.Packaging,
			AcceptedAt:     m.AcceptedAt,
			DepartedAt:     m.DepartedAt,
			ArrivedAt:      m.ArrivedAt,
			PickedUpAt:     m.PickedUpAt,
		})
	}

	return ctx.JSON(http.StatusOK, board)
}
