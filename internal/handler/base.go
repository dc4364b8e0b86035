package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/resource-api/internal/middleware"
	"github.com/deppfellow/resource-api/internal/server"
	"github.com/deppfellow/resource-api/internal/validation"
)

// Handler is the base handler type that holds shared application
// dependencies.
//
// It is embedded by concrete handlers (ResourceHandler, HealthHandler) so
// they can access shared resources via *server.Server (config, logger,
// stores).
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
//
// It returns the struct by value; it only contains a pointer field, so
// copying is cheap and still points to the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// --- Generic typed handler plumbing -----------------------------------------

// HandlerFunc represents a typed endpoint function that receives a
// validated request payload (Req) and returns a response (Res) or an error.
//
// Req must satisfy validation.Validatable. In practice Req is a POINTER
// type, e.g. *UpdateResourceRequest, because Echo's Bind requires a
// pointer to populate fields.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler defines how a successful handler result is written to
// the HTTP response, and names the operation for structured logging.
type ResponseHandler interface {
	// Handle writes the HTTP response for the given result.
	Handle(c echo.Context, result interface{}) error

	// GetOperation returns an operation name used for structured logging.
	GetOperation() string
}

// JSONResponseHandler writes JSON responses with a given status code.
//
// Success responses also carry the wide-open CORS header the API
// promises; error responses go through the global error handler instead
// and do not.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, "*")

	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// handleRequest is the shared execution pipeline for all typed handlers.
//
// It eliminates endpoint boilerplate by centralizing:
//
//   - request binding + validation
//   - structured logging (with request context)
//   - timing (validation duration, handler duration, total duration)
//   - response writing
//
// Errors are returned, not written: the global error handler owns every
// error response shape.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	method := c.Request().Method
	path := c.Path()

	// Request-scoped logger set by the ContextEnhancer middleware; already
	// carries request_id and peer fields.
	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", method).
		Str("route", path).
		Logger()

	logger.Info().Msg("handling request")

	// ---------------- Validation phase ---------------------------------------
	validationStart := time.Now()

	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Warn().
			Err(err).
			Dur("validation_duration", time.Since(validationStart)).
			Msg("request validation failed")

		// Let the global error handler format the response.
		return err
	}

	validationDuration := time.Since(validationStart)

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Msg("request validation successful")

	// ---------------- Handler execution phase --------------------------------
	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")

		return err
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler with validation, error handling, logging,
// and timing, returning an echo.HandlerFunc for route registration.
//
// newReq builds a fresh request payload per invocation. A shared prototype
// would leak bound fields between concurrent requests, so the constructor
// is mandatory.
//
// Usage pattern:
//
//	r.PATCH("/x/:id", handler.Handle(h.Handler, h.UpdateX, http.StatusOK,
//		func() *UpdateXRequest { return &UpdateXRequest{} }))
func Handle[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Adapt the typed handler (Res) into the generic interface{} pipeline.
		return handleRequest(c, newReq(), func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}
