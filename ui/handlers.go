package ui

import (
	"log"
	"net/http"

	"hrdash/internal/errors"

	"github.com/gin-gonic/gin"
)

// handleIndex renders the HTML dashboard. Invalid numeric query values are
// ignored with a notice so the page always renders.
func (s *Server) handleIndex(c *gin.Context) {
	sel, err := ParseSelection(s.service.DefaultSelection(), c.Request.URL.Query())
	notice := ""
	if err != nil {
		log.Printf("[Server] %s: %v", c.GetString("request_id"), err)
		notice = err.Error()
	}

	d := s.service.Render(sel)
	observeRender(d)
	s.renderTemplate(c, "dashboard.html", newDashboardPage(d, notice))
}

// handleDashboard returns the full rendered dashboard as JSON
func (s *Server) handleDashboard(c *gin.Context) {
	sel, err := ParseSelection(s.service.DefaultSelection(), c.Request.URL.Query())
	if err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	d := s.service.Render(sel)
	observeRender(d)
	c.JSON(http.StatusOK, d)
}

// handleOptions returns the sidebar choices for the requested department
func (s *Server) handleOptions(c *gin.Context) {
	c.JSON(http.StatusOK, s.service.Options(departmentParam(c.Request.URL.Query())))
}

func (s *Server) handleHealth(c *gin.Context) {
	table := s.service.Table()
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"source":    table.Source,
		"employees": table.Len(),
	})
}

func (s *Server) writeError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, errorBody(err))
}

// errorBody is the JSON error shape shared by both routers
func errorBody(err error) map[string]string {
	return map[string]string{
		"error":   errors.GetCodeOr(err, errors.CodeInternalError),
		"message": err.Error(),
	}
}
