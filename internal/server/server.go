package server

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sashishekhar/Meeting-Notes-Summarizer/internal/config"
	"github.com/sashishekhar/Meeting-Notes-Summarizer/internal/exporter"
	"github.com/sashishekhar/Meeting-Notes-Summarizer/internal/logger"
	"github.com/sashishekhar/Meeting-Notes-Summarizer/internal/mailer"
	"github.com/sashishekhar/Meeting-Notes-Summarizer/internal/prompts"
	"github.com/sashishekhar/Meeting-Notes-Summarizer/internal/summarizer"
	"github.com/sashishekhar/Meeting-Notes-Summarizer/web"
)

// Server wires the HTTP surface: the embedded single-page client plus the
// summarize, send-email, and export endpoints.
type Server struct {
	cfg        *config.Config
	summarizer summarizer.Summarizer
	mailer     mailer.Mailer
	exporter   exporter.Exporter
	prompts    prompts.Store
	logger     logger.Logger
	router     *gin.Engine
	index      []byte
}

// New creates the server and registers all routes.
func New(cfg *config.Config, sum summarizer.Summarizer, mail mailer.Mailer, exp exporter.Exporter, tmpl prompts.Store, log logger.Logger) (*Server, error) {
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		cfg:        cfg,
		summarizer: sum,
		mailer:     mail,
		exporter:   exp,
		prompts:    tmpl,
		logger:     log,
		router:     router,
	}

	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		return nil, err
	}
	index, err := fs.ReadFile(static, "index.html")
	if err != nil {
		return nil, err
	}
	s.index = index

	router.GET("/", s.handleIndex)
	router.StaticFS("/static", http.FS(static))

	api := router.Group("/api")
	{
		api.POST("/summarize", s.handleSummarize)
		api.POST("/sendEmail", s.handleSendEmail)
		api.POST("/export", s.handleExport)
	}

	return s, nil
}

// Handler exposes the router for testing and for the HTTP server in main.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", s.index)
}
