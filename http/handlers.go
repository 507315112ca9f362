package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"todoserver/chart"
	"todoserver/store"
)

type Server struct {
	store *store.Store
	log   zerolog.Logger
}

func NewServer(st *store.Store, log zerolog.Logger) *Server {
	return &Server{store: st, log: log}
}

// HandleHome serves the informational root page.
func (s *Server) HandleHome(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString("<h1>Todo Backend Running!</h1><p>Database endpoints available at <a href='/api/todos'>/api/todos</a></p>")
}

// HandleMessage is the status check. It has no side effects and does not
// touch the store.
func (s *Server) HandleMessage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Initial connection check successful. Database initialized.",
	})
}

func (s *Server) HandleListTodos(c *fiber.Ctx) error {
	todos, err := s.store.ListTodos(c.Context())
	if err != nil {
		return err
	}

	s.log.Info().Int("count", len(todos)).Msg("listing todos")
	return c.JSON(todos)
}

func (s *Server) HandleCreateTodo(c *fiber.Ctx) error {
	var req struct {
		Text *string `json:"text"`
	}

	// A *string distinguishes a missing key from an empty string; only the
	// former is rejected.
	if err := c.BodyParser(&req); err != nil || req.Text == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": `Missing "text" field in JSON payload.`,
		})
	}

	todo, err := s.store.CreateTodo(c.Context(), *req.Text)
	if err != nil {
		return err
	}

	s.log.Info().Int64("id", todo.ID).Str("text", todo.Text).Msg("todo added")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "To-Do item added successfully.",
		"text":    todo.Text,
	})
}

// HandlePostMessage echoes a message back to the caller.
func (s *Server) HandlePostMessage(c *fiber.Ctx) error {
	var req struct {
		Message *string `json:"message"`
	}

	if err := c.BodyParser(&req); err != nil || req.Message == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": `Missing JSON payload or "message" field.`,
		})
	}

	return c.JSON(fiber.Map{
		"status":           "success",
		"message":          fmt.Sprintf("Received your message: '%s'. Processed successfully.", *req.Message),
		"original_message": *req.Message,
	})
}

// HandleSinePlot renders a sine-wave demo plot and returns it as Base64 PNG.
func (s *Server) HandleSinePlot(c *fiber.Ctx) error {
	amplitude, err := strconv.ParseFloat(c.Query("amplitude", "1.0"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid amplitude provided.",
		})
	}

	image, err := chart.SineWavePNG(amplitude)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"image": image})
}
