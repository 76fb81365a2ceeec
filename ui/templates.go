package ui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"hrdash/domain/dashboard"
	"hrdash/internal/analysis/summary"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFiles embed.FS

// parseTemplates loads the embedded page templates with the dashboard helpers
func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"currency": summary.FormatCurrency,
		"corr": func(c dashboard.Correlation) string {
			return c.String()
		},
		// Heat color for a correlation cell; undefined cells stay grey.
		"corrColor": func(c dashboard.Correlation) template.CSS {
			if !c.Defined() {
				return "background:#e5e7eb"
			}
			v := float64(c)
			alpha := v
			if alpha < 0 {
				alpha = -alpha
			}
			if v >= 0 {
				return template.CSS(fmt.Sprintf("background:rgba(220,38,38,%.2f)", alpha))
			}
			return template.CSS(fmt.Sprintf("background:rgba(37,99,235,%.2f)", alpha))
		},
		// Bar width as a percentage of the largest value in the chart.
		"pct": func(v interface{}, max float64) float64 {
			if max <= 0 {
				return 0
			}
			switch t := v.(type) {
			case int:
				return float64(t) / max * 100
			case float64:
				return t / max * 100
			default:
				return 0
			}
		},
		"apiLink": func(sel dashboard.Selection) template.URL {
			return template.URL("/api/dashboard?" + EncodeSelection(sel).Encode())
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return templates, nil
}

// renderTemplate executes a template with the given data
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	// Render to a buffer first so a template error never leaves a half-written page
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		log.Printf("[Server] Template error for %s: %v", templateName, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Template rendering failed", "details": err.Error()})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Writer.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(c.Writer); err != nil {
		log.Printf("[Server] Error writing template response: %v", err)
	}
}
