package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// Router builds the fiber app with all routes and middleware attached.
func (s *Server) Router() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "todo-server",
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	// Any origin may call the API.
	app.Use(cors.New())
	app.Use(s.logRequests)

	app.Get("/", s.HandleHome)
	app.Get("/api/message", s.HandleMessage)
	app.Post("/api/post-message", s.HandlePostMessage)
	app.Get("/api/todos", s.HandleListTodos)
	app.Post("/api/todos", s.HandleCreateTodo)
	app.Get("/api/plot", s.HandleSinePlot)

	return app
}

// handleError is the fiber error handler: anything a handler did not turn
// into a response itself becomes a JSON error here.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	s.log.Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("request failed")

	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func (s *Server) logRequests(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	s.log.Info().
		Str("request_id", requestID(c)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("request")

	return err
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
		return id
	}
	return ""
}
