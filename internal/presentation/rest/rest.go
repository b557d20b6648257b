package rest

import (
	"time"

	"github.com/Builder-Lawyers/text-corrector/internal/application"
	"github.com/Builder-Lawyers/text-corrector/internal/application/consts"
	"github.com/Builder-Lawyers/text-corrector/internal/application/dto"
	"github.com/Builder-Lawyers/text-corrector/internal/infra/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

type Server struct {
	handlers *application.Handlers
	log      *zap.Logger
}

func NewServer(handlers *application.Handlers, log *zap.Logger) *Server {
	return &Server{handlers: handlers, log: log}
}

// NewApp builds the fiber application serving the correction page with the given views.
func NewApp(server *Server, views fiber.Views) *fiber.App {
	app := fiber.New(fiber.Config{
		IdleTimeout:           5 * time.Second,
		Immutable:             true,
		Views:                 views,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(RequestLogger(server.log))
	RegisterHandlers(app, server)
	return app
}

func RegisterHandlers(router fiber.Router, server *Server) {
	router.Get("/", server.Index)
	router.Post("/correct", server.Correct)
}

func (s Server) Index(c *fiber.Ctx) error {
	return s.render(c, dto.CorrectionPage{})
}

func (s Server) Correct(c *fiber.Ctx) error {
	var req dto.CorrectTextRequest
	if err := c.BodyParser(&req); err != nil {
		logger.FromContext(c.UserContext(), s.log).Debug("unreadable form body, treating text as empty", zap.Error(err))
		req = dto.CorrectTextRequest{}
	}

	correction := s.handlers.CorrectText.Execute(c.UserContext(), req)

	return s.render(c, dto.NewCorrectionPage(correction))
}

func (s Server) render(c *fiber.Ctx, page dto.CorrectionPage) error {
	return c.Status(fiber.StatusOK).Render(consts.IndexView, fiber.Map{
		"corrected":    page.Corrected,
		"originalText": page.OriginalText,
	})
}
