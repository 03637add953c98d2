package stub

import (
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/rfhold/partpick/internal/catalog"
)

// Options configures a stub Server
type Options struct {
	// Preseed starts the server with the fixture parts already loaded.
	// Otherwise the catalog is empty until POST /api/seed.
	Preseed bool
	// LogOutput receives one access log line per request; nil disables logging
	LogOutput io.Writer
}

// Server serves the catalog and evaluation contract from a fixture.
// The evaluate endpoint echoes a canned verdict and never inspects compatibility.
type Server struct {
	mu       sync.RWMutex
	seedSet  []catalog.Component
	parts    []catalog.Component
	verdict  CannedEvaluation
	app      *fiber.App
	seedHits int
}

// New builds a Server from a fixture
func New(f *Fixture, opts Options) (*Server, error) {
	parts, err := f.Components()
	if err != nil {
		return nil, err
	}

	s := &Server{
		seedSet: parts,
		verdict: f.Evaluation,
	}
	if opts.Preseed {
		s.parts = append([]catalog.Component(nil), parts...)
	}

	app := fiber.New(fiber.Config{
		AppName:               "partpick-stub",
		DisableStartupMessage: true,
	})
	app.Use(helmet.New())
	if opts.LogOutput != nil {
		app.Use(logger.New(logger.Config{
			Format: "${time} | ${latency} | ${status} - ${method} ${path} ${queryParams}\n",
			Output: opts.LogOutput,
		}))
	}

	api := app.Group("/api")
	api.Get("/components", s.handleListComponents)
	api.Post("/seed", s.handleSeed)
	api.Post("/evaluate", s.handleEvaluate)

	s.app = app
	return s, nil
}

// App returns the underlying Fiber application
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown stops a listening server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// SeedCount returns how many times the seed endpoint was hit
func (s *Server) SeedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seedHits
}

// Transport returns an http.RoundTripper that dispatches requests to the
// app in-process, without opening a socket
func (s *Server) Transport() http.RoundTripper {
	return appTransport{app: s.app}
}

type appTransport struct {
	app *fiber.App
}

func (t appTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.app.Test(req, -1)
}

func (s *Server) handleListComponents(c *fiber.Ctx) error {
	var filter catalog.ComponentType
	if raw := c.Query("type"); raw != "" {
		t, err := catalog.ParseComponentType(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		filter = t
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Component, 0, len(s.parts))
	for _, part := range s.parts {
		if filter == "" || part.Type == filter {
			out = append(out, part)
		}
	}
	return c.JSON(out)
}

func (s *Server) handleSeed(c *fiber.Ctx) error {
	s.mu.Lock()
	s.parts = append([]catalog.Component(nil), s.seedSet...)
	s.seedHits++
	n := len(s.parts)
	s.mu.Unlock()

	return c.JSON(fiber.Map{"seeded": n})
}

type evaluateBody struct {
	Selections map[string]string `json:"selections"`
}

func (s *Server) handleEvaluate(c *fiber.Ctx) error {
	var body evaluateBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}

	s.mu.RLock()
	byID := make(map[string]catalog.Component, len(s.parts))
	for _, part := range s.parts {
		byID[part.ID] = part
	}
	verdict := s.verdict
	s.mu.RUnlock()

	issues := append([]string{}, verdict.Issues...)
	valid := verdict.IsValid
	var total float64
	for _, t := range catalog.AllTypes() {
		id, ok := body.Selections[string(t)]
		if !ok {
			continue
		}
		part, found := byID[id]
		if !found {
			issues = append(issues, fmt.Sprintf("Unknown %s: %s", t, id))
			valid = false
			continue
		}
		total += part.Price
	}

	return c.JSON(fiber.Map{
		"is_valid":          valid,
		"issues":            issues,
		"estimated_power_w": verdict.EstimatedPowerW,
		"total_price":       total,
	})
}
