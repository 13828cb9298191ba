package events

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/routes/auth"
	"github.com/N-SreeVijay/Finance-Student-DashBoard/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// SetupEventRoutes exposes the live notification channel as a Server-Sent
// Events stream at /api/events.
func SetupEventRoutes(app *fiber.App, hub *services.Broadcast) {
	events := app.Group("/api/events")
	events.Use(auth.AuthMiddleware)

	events.Get("/", func(c *fiber.Ctx) error {
		return StreamEventsAPI(c, hub)
	})
}

// StreamEventsAPI subscribes the client to the broadcast hub and writes each
// published event as one SSE message. Every subscriber receives every event;
// there is no per-subscriber filtering and duplicates are possible after a
// watcher restart, so clients render events idempotently.
func StreamEventsAPI(c *fiber.Ctx, hub *services.Broadcast) error {
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	ch := hub.Subscribe()

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer hub.Unsubscribe(ch)

		for ev := range ch {
			data, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "event: paymentVerified\ndata: %s\n\n", data); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				// Client disconnected.
				return
			}
		}
	}))

	return nil
}
