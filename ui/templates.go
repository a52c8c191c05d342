package ui

import (
	"bytes"
	"html/template"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
)

const introMarkdown = "### Explore relationships between features and fraud status\n"

func renderMarkdown(md string) template.HTML {
	return template.HTML(markdown.ToHTML([]byte(md), nil, nil))
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"float": func(v float64) string {
			return strconv.FormatFloat(v, 'f', 2, 64)
		},
	}
}

// renderTemplate executes a template into a buffer first so a failing
// template never leaves a half-written page
func (s *Server) renderTemplate(c *gin.Context, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("template %s failed: %v", name, err)
		c.String(500, "Template rendering failed")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
