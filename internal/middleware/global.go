package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/resource-api/internal/errs"
	"github.com/deppfellow/resource-api/internal/server"
	"github.com/deppfellow/resource-api/internal/storeerr"
)

// GlobalMiddlewares groups "global" middleware and the global error handler.
//
// A struct so middleware functions can access shared app dependencies from
// *server.Server, especially config.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the middleware bundle.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns Echo's CORS middleware configured by server config.
// The default config allows any origin, matching the wide-open
// Access-Control-Allow-Origin: * the API promises on success responses.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger returns Echo's request logger middleware with a custom
// LogValuesFunc, producing one structured log line per request with
// severity based on status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// When a handler returns an error, Echo has not written the
			// final status yet; the global error handler decides it later.
			// Derive the status from the error type so error requests are
			// not logged as status=200.
			if v.Error != nil {
				var httpErr *errs.HTTPError
				var echoErr *echo.HTTPError

				if errors.As(v.Error, &httpErr) {
					statusCode = httpErr.Status
				} else if errors.As(v.Error, &echoErr) {
					statusCode = echoErr.Code
				} else {
					// Unclassified errors always end up as 500s.
					statusCode = http.StatusInternalServerError
				}
			}

			logger := GetLogger(c)

			// 5xx = server fault, 4xx = client fault.
			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover returns Echo's panic recovery middleware. A panicking handler
// becomes an error into the global error handler instead of killing the
// process.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure returns Echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the final error funnel for the entire HTTP server.
//
// Every error ends up here, regardless of where it happened, and is
// translated into exactly one of the API's response shapes:
//
//   - *errs.HTTPError: already classified, serialized as-is
//   - Echo's route 404: {"error": "Route not found"}
//   - panics and other Echo 5xx: the "Internal server error" shape
//   - store SDK errors and anything unclassified: storeerr.HandleError
//     decides between the store-failure and internal shapes
//
// Nothing escapes to the client unmapped.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	// Keep the original error for logging; the client may get a
	// sanitized version.
	originalErr := err

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			httpErr = convertEchoError(echoErr)
		} else {
			// Driver/store/unknown errors. HandleError always returns an
			// *errs.HTTPError, so the assignment below cannot miss.
			converted := storeerr.HandleError(err)
			errors.As(converted, &httpErr)
		}
	}

	logger := GetLogger(c)

	logger.Error().Stack().
		Err(originalErr).
		Int("status", httpErr.Status).
		Str("store_error_code", string(storeerr.ErrCode(originalErr))).
		Msg(httpErr.Message)

	// Only write if the handler has not already written a response.
	if !c.Response().Committed {
		_ = c.JSON(httpErr.Status, httpErr)
	}
}

// convertEchoError maps Echo's own error type into the API taxonomy.
func convertEchoError(echoErr *echo.HTTPError) *errs.HTTPError {
	// The user hit a route that doesn't exist.
	if echoErr.Code == http.StatusNotFound {
		return &errs.HTTPError{
			Status:  http.StatusNotFound,
			Message: "Route not found",
		}
	}

	// Recovered panics surface as Echo 500s; map them to the unexpected-
	// failure shape with whatever detail is available.
	if echoErr.Code >= http.StatusInternalServerError {
		details := ""
		if echoErr.Internal != nil {
			details = echoErr.Internal.Error()
		}
		return errs.NewInternalServerError(details)
	}

	// Remaining cases are routing-level client errors (e.g. 405).
	message := http.StatusText(echoErr.Code)
	if msg, ok := echoErr.Message.(string); ok {
		message = msg
	}

	return &errs.HTTPError{
		Status:  echoErr.Code,
		Message: message,
	}
}
