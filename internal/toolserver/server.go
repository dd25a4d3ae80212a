// Package toolserver exposes the extraction utilities as named tools over a
// small local HTTP endpoint, and supervises that endpoint as a child
// process. The tools delegate to the same linked extraction code the
// pipeline uses; the process boundary exists only for consumers that need
// isolation from the main service.
package toolserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServerVersion is reported by the capabilities endpoint.
const ServerVersion = "1.0.0"

// Server serves the tool endpoint. It holds no state beyond its router;
// every tool is a pure function of its arguments.
type Server struct {
	router *gin.Engine
}

// NewServer builds the tool server routes.
func NewServer() *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{router: router}

	router.GET("/capabilities", s.handleCapabilities)
	router.POST("/tools/call", s.handleCallTool)

	return s
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleCapabilities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"name":    "meetminding-tools",
		"version": ServerVersion,
		"tools":   Tools(),
	})
}

type callRequest struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

func (s *Server) handleCallTool(c *gin.Context) {
	var req callRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "tool name required",
		})
		return
	}

	result, err := Call(req.Name, req.Arguments)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  result,
	})
}
