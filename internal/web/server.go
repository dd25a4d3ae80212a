// Package web is the HTTP front-end: thin JSON handlers over the analysis
// pipeline and the history store.
package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyank-82/Meet-Minding/internal/history"
	"github.com/priyank-82/Meet-Minding/internal/meeting"
)

// Analyzer is the pipeline entry point the handlers call into.
type Analyzer interface {
	Analyze(ctx context.Context, transcript, teamID string) (*meeting.Record, error)
}

// Mirror uploads a saved record to object storage. Optional.
type Mirror interface {
	Upload(ctx context.Context, teamID string, rec *meeting.Record) error
}

// Server wires the HTTP routes.
type Server struct {
	analyzer Analyzer
	store    *history.Store
	mirror   Mirror
	router   *gin.Engine
}

// NewServer builds the route table. mirror may be nil.
func NewServer(analyzer Analyzer, store *history.Store, mirror Mirror) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())

	s := &Server{
		analyzer: analyzer,
		store:    store,
		mirror:   mirror,
		router:   router,
	}

	router.POST("/process_transcript", s.handleProcessTranscript)
	router.POST("/upload_transcript", s.handleUploadTranscript)
	router.GET("/teams", s.handleTeams)
	router.GET("/team/:team_id/history", s.handleTeamHistory)
	router.GET("/health", s.handleHealth)

	return s
}

// Run starts the HTTP server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
