package telegram

import (
	"github.com/m3rciful/cryptonews/core/telegram/middleware"
)

// DefaultMiddlewares builds the middleware chain applied to every update.
func DefaultMiddlewares() []Middleware {
	return []Middleware{
		{Name: "recover", Use: middleware.RecoverMiddleware},
		{Name: "logger", Use: middleware.LoggerMiddleware},
		{Name: "metrics", Use: middleware.MessageMetricsMiddleware},
	}
}
