// Package http exposes the parcel tracker over HTTP using echo. JSON
// endpoints drive the delivery lifecycle; two HTML pages let the customer
// share their position from a phone browser.
package http

import (
	"errors"
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Error is the JSON body returned on every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ConfigStatus reports which environment variables were set at startup.
// Served by the root endpoint for quick deployment debugging; values are
// never echoed back, only their presence.
type ConfigStatus struct {
	DatabaseURLSet  bool
	ServerURLSet    bool
	TwilioSIDSet    bool
	TwilioAuthSet   bool
	TwilioNumberSet bool
}

// CustomValidator adapts go-playground/validator to echo's Validator hook.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate runs struct validation on a bound request body.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// NewEcho creates an echo instance configured for the tracker: request body
// validation is handled by go-playground/validator.
func NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	return e
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	configStatus ConfigStatus

	// Command handlers
	createDeliveryHandler commands.CreateDeliveryCommandHandler
	submitLocationHandler commands.SubmitLocationCommandHandler
	changeStatusHandler   commands.ChangeStatusCommandHandler

	// Query handlers
	getDeliveryHandler    queries.GetDeliveryQueryHandler
	listDeliveriesHandler queries.ListDeliveriesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	configStatus ConfigStatus,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	submitLocationHandler commands.SubmitLocationCommandHandler,
	changeStatusHandler commands.ChangeStatusCommandHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
	listDeliveriesHandler queries.ListDeliveriesQueryHandler,
) *Server {
	return &Server{
		configStatus:          configStatus,
		createDeliveryHandler: createDeliveryHandler,
		submitLocationHandler: submitLocationHandler,
		changeStatusHandler:   changeStatusHandler,
		getDeliveryHandler:    getDeliveryHandler,
		listDeliveriesHandler: listDeliveriesHandler,
	}
}

// RegisterRoutes binds every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/", s.Root)
	e.POST("/create_delivery", s.CreateDelivery)
	e.GET("/deliveries", s.ListDeliveries)
	e.GET("/deliveries/:order_id", s.GetDelivery)
	e.POST("/deliveries/:order_id/location", s.SubmitLocation)
	e.POST("/deliveries/:order_id/status/:new_status", s.UpdateStatus)
	e.GET("/share/:order_id", s.SharePage)
	e.GET("/thankyou/:order_id", s.ThankYouPage)
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

func envStatus(set bool) string {
	if set {
		return "✅ SET"
	}
	return "❌ MISSING"
}

// Root handles GET / - reports which environment variables are configured.
func (s *Server) Root(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"service_status":       "Running",
		"message":              "Checking environment variable configuration...",
		"database_url_is_set":  envStatus(s.configStatus.DatabaseURLSet),
		"server_url_is_set":    envStatus(s.configStatus.ServerURLSet),
		"twilio_sid_is_set":    envStatus(s.configStatus.TwilioSIDSet),
		"twilio_auth_is_set":   envStatus(s.configStatus.TwilioAuthSet),
		"twilio_number_is_set": envStatus(s.configStatus.TwilioNumberSet),
	})
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// createDeliveryRequest is the body of POST /create_delivery.
type createDeliveryRequest struct {
	OrderID         string `json:"order_id"         validate:"required"`
	PickupLocation  string `json:"pickup_location"  validate:"required"`
	DropLocation    string `json:"drop_location"    validate:"required"`
	CustomerContact string `json:"customer_contact" validate:"required,min=6"`
}

// createDeliveryResponse is the stored record plus a human-readable note.
// The record's own status field takes the place of a separate outcome flag.
type createDeliveryResponse struct {
	Message string `json:"message"`
	queries.DeliveryResponse
}

// CreateDelivery handles POST /create_delivery - registers a delivery.
// Re-posting an order id updates the existing row instead of duplicating it.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req createDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		req.OrderID, req.PickupLocation, req.DropLocation, req.CustomerContact,
	)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	}

	stored, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err, "Failed to create delivery")
	}

	return ctx.JSON(http.StatusOK, createDeliveryResponse{
		Message:          "Delivery task created ✅ & SMS sent",
		DeliveryResponse: deliveryJSON(stored),
	})
}

// ListDeliveries handles GET /deliveries - retrieves all deliveries, newest first.
func (s *Server) ListDeliveries(ctx echo.Context) error {
	records, err := s.listDeliveriesHandler.Handle(ctx.Request().Context(), queries.NewListDeliveriesQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve deliveries",
		})
	}

	return ctx.JSON(http.StatusOK, records)
}

// GetDelivery handles GET /deliveries/:order_id - retrieves one delivery.
func (s *Server) GetDelivery(ctx echo.Context) error {
	query, err := queries.NewGetDeliveryQuery(ctx.Param("order_id"))
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	}

	record, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err, "Failed to retrieve delivery")
	}

	return ctx.JSON(http.StatusOK, record)
}

// locationRequest is the body of POST /deliveries/:order_id/location.
// Coordinates are pointers so that a missing field is distinguishable from a
// legitimate zero coordinate.
type locationRequest struct {
	Lat *float64 `json:"lat" validate:"required"`
	Lon *float64 `json:"lon" validate:"required"`
}

// SubmitLocation handles POST /deliveries/:order_id/location - stores the
// customer-shared position and moves the delivery to location_received.
func (s *Server) SubmitLocation(ctx echo.Context) error {
	var req locationRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	}

	cmd, err := commands.NewSubmitLocationCommand(ctx.Param("order_id"), *req.Lat, *req.Lon)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	}

	stored, err := s.submitLocationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err, "Failed to store location")
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"status":         "ok",
		"order_id":       stored.OrderID(),
		"lat":            *req.Lat,
		"lon":            *req.Lon,
		"current_status": stored.Status().String(),
	})
}

// UpdateStatus handles POST /deliveries/:order_id/status/:new_status - moves
// the delivery to the supplied status. Completed and failed statuses trigger
// the terminal customer SMS; every other value is stored silently.
func (s *Server) UpdateStatus(ctx echo.Context) error {
	cmd, err := commands.NewChangeStatusCommand(
		ctx.Param("order_id"),
		delivery.Status(ctx.Param("new_status")),
	)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	}

	stored, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err, "Failed to update status")
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"status":         "ok",
		"order_id":       stored.OrderID(),
		"current_status": stored.Status().String(),
	})
}

// mapError translates use case errors onto the HTTP error contract:
// unknown order ids are 404, rejected values 422, everything else 500.
func (s *Server) mapError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "order not found",
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}

// deliveryJSON maps the aggregate onto the wire read model.
func deliveryJSON(d *delivery.Delivery) queries.DeliveryResponse {
	record := queries.DeliveryResponse{
		ID:              d.ID(),
		OrderID:         d.OrderID(),
		PickupLocation:  d.PickupLocation(),
		DropLocation:    d.DropLocation(),
		CustomerContact: d.CustomerContact(),
		Status:          d.Status().String(),
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	}

	if target := d.Target(); target != nil {
		lat, lon := target.Lat(), target.Lon()
		record.TargetLat = &lat
		record.TargetLon = &lon
	}

	return record
}
