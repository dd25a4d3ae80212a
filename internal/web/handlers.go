package web

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/priyank-82/Meet-Minding/internal/analyze"
	"github.com/priyank-82/Meet-Minding/internal/meeting"
)

const maxTranscriptSize = 10 << 20 // 10MB

type processRequest struct {
	Transcript string `json:"transcript"`
	TeamID     string `json:"team_id"`
}

func (s *Server) handleProcessTranscript(c *gin.Context) {
	var req processRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.process(c, req.Transcript, req.TeamID)
}

func (s *Server) handleUploadTranscript(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxTranscriptSize))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.process(c, string(content), c.PostForm("team_id"))
}

// process runs the pipeline and, when a team is given, persists and mirrors
// the result. A storage write error is reported distinctly: the analysis
// itself succeeded, so the record is still returned alongside the error.
func (s *Server) process(c *gin.Context, transcript, teamID string) {
	rec, err := s.analyzer.Analyze(c.Request.Context(), transcript, teamID)
	if err != nil {
		if errors.Is(err, analyze.ErrEmptyTranscript) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No transcript provided"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if teamID != "" {
		if _, err := s.store.Save(teamID, rec); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":  "analysis succeeded but saving failed: " + err.Error(),
				"result": rec,
			})
			return
		}

		if s.mirror != nil {
			if err := s.mirror.Upload(c.Request.Context(), teamID, rec); err != nil {
				log.Printf("warning: mirror upload for %q: %v", teamID, err)
			}
		}
	}

	resp := gin.H{
		"result": rec,
		"status": "success",
	}
	if teamID != "" {
		resp["team_id"] = teamID
	} else {
		resp["team_id"] = nil
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleTeams(c *gin.Context) {
	teams, err := s.store.ListTeams()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if teams == nil {
		teams = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"teams":  teams,
		"status": "success",
	})
}

func (s *Server) handleTeamHistory(c *gin.Context) {
	teamID := c.Param("team_id")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 {
		limit = 5
	}

	records, err := s.store.List(teamID, limit, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if records == nil {
		records = []*meeting.Record{}
	}

	c.JSON(http.StatusOK, gin.H{
		"team_id": teamID,
		"history": records,
		"status":  "success",
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
