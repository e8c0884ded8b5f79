package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// RouterDependencies collects handler dependencies.
type RouterDependencies struct {
	Tax            *TaxHandlers
	AllowedOrigins []string
}

// NewRouter wires the HTTP routes exposed by the calculator API.
func NewRouter(logger logrus.FieldLogger, deps RouterDependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(logger))
	if len(deps.AllowedOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: deps.AllowedOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderContentType},
		}))
	}

	e.GET("/healthz", Health)

	if deps.Tax != nil {
		tax := e.Group("/tax")
		tax.POST("/calculations", deps.Tax.Calculate)
		tax.POST("/calculations/form", deps.Tax.CalculateForm)
		tax.GET("/expense-allowance", deps.Tax.ExpenseAllowance)
		tax.GET("/counter-step", deps.Tax.CounterStep)
		tax.GET("/brackets", deps.Tax.Brackets)
	}

	return e
}

func requestLogger(logger logrus.FieldLogger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency_ms": v.Latency.Milliseconds(),
				"request_id": v.RequestID,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request failed")
				return nil
			}
			entry.Info("request completed")
			return nil
		},
	})
}
