package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlimiter "github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/edustaff/staffhub/pkg/config"
)

// RateLimit limits requests per client. Authenticated clients are keyed by
// user ID so a shared school NAT does not exhaust the budget for everyone.
func RateLimit(cfg config.RateLimitingConfig) fiber.Handler {
	maxRequests := 120
	if cfg.MaxRequests > 0 {
		maxRequests = cfg.MaxRequests
	}

	window := time.Minute
	if cfg.Window > 0 {
		window = cfg.Window
	}

	return fiberlimiter.New(fiberlimiter.Config{
		Max:        maxRequests,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if cfg.ByUser {
				if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
					return userID
				}
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded, try again later",
			})
		},
	})
}
