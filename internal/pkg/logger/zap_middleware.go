package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ZapEchoMiddleware creates middleware for Echo framework using Zap logger
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status

			if raw != "" {
				path = path + "?" + raw
			}

			fields := []zap.Field{
				zap.String("method", c.Request().Method),
				zap.String("path", path),
				zap.Int("status", statusCode),
				zap.Duration("latency", latency),
				zap.String("client_ip", c.RealIP()),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}

			switch {
			case statusCode >= 500:
				logger.Logger.Error("HTTP request", fields...)
			case statusCode >= 400:
				logger.Logger.Warn("HTTP request", fields...)
			default:
				logger.Logger.Info("HTTP request", fields...)
			}

			return err
		}
	}
}
