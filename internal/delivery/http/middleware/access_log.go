package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

// Middleware logs one line per request and tags it with a request id. An
// inbound X-Request-ID is honored so board clients can correlate calls
// across retries; otherwise one is minted here.
func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		reqID := c.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set("X-Request-ID", reqID)

		err := c.Next()

		if m == nil || m.logger == nil {
			return err
		}

		m.logger.Printf(
			"%s %s | status=%d dur=%s req_id=%s ip=%s bytes_out=%d ua=%q",
			c.Method(), c.OriginalURL(),
			c.Response().StatusCode(), time.Since(start).Round(time.Microsecond),
			reqID, c.IP(),
			c.Response().Header.ContentLength(), c.Get("User-Agent"),
		)

		return err
	}
}
