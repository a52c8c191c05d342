package ui

import (
	"bytes"
	"html/template"
	"net/http"

	"frauddash/app"
	"frauddash/domain/dataset"
	"frauddash/internal/analysis"
	"frauddash/internal/errors"
	"frauddash/internal/render"

	"github.com/gin-gonic/gin"
)

const pageTitle = "Fraud Detection - Data Insights Dashboard"

type option struct {
	Name     string
	Selected bool
}

type numericalView struct {
	Feature string
	Title   string
	Chart   template.HTML
	Groups  []analysis.SeriesGroup
	Empty   []dataset.Label
	Error   string
}

type categoricalView struct {
	Feature string
	Title   string
	Chart   template.HTML
	Table   analysis.CountTable
	Error   string
}

type pageData struct {
	Title              string
	Intro              template.HTML
	RenderID           string
	NumericalOptions   []option
	CategoricalOptions []option
	Overview           analysis.Overview
	Partitions         app.PartitionSizes
	Numerical          numericalView
	Categorical        categoricalView
	Heatmap            render.Heatmap
}

type errorPage struct {
	Title   string
	Status  int
	Code    string
	Message string
}

func (s *Server) handleIndex(c *gin.Context) {
	sel := dataset.Selection{
		Numerical:   c.Query("numerical"),
		Categorical: c.Query("categorical"),
	}

	dash, err := s.service.Render(c.Request.Context(), sel)
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.renderTemplate(c, http.StatusOK, "dashboard.html", s.buildPage(dash))
}

func (s *Server) buildPage(dash *app.Dashboard) pageData {
	page := pageData{
		Title:              pageTitle,
		Intro:              s.intro,
		RenderID:           dash.RenderID.String(),
		NumericalOptions:   options(dataset.NumericalFeatures, dash.Selection.Numerical),
		CategoricalOptions: options(dataset.CategoricalFeatures, dash.Selection.Categorical),
		Overview:           dash.Overview,
		Partitions:         dash.Partitions,
		Heatmap:            render.BuildHeatmap(dash.Correlation.Matrix),
		Numerical: numericalView{
			Feature: dash.Numerical.Feature,
			Title:   render.DensityTitle(dash.Numerical.Feature),
		},
		Categorical: categoricalView{
			Feature: dash.Categorical.Feature,
			Title:   render.CategoricalTitle(dash.Categorical.Feature),
		},
	}

	if err := dash.Numerical.Err; err != nil {
		page.Numerical.Error = err.Error()
	} else {
		page.Numerical.Groups = dash.Numerical.Series.Groups
		page.Numerical.Empty = dash.Numerical.EmptyGroups()
		page.Numerical.Chart = s.inlineSVG(func(buf *bytes.Buffer) error {
			return render.DensityChart(buf, dash.Numerical.Feature, labeledCurves(dash.Numerical.Curves))
		})
	}

	if err := dash.Categorical.Err; err != nil {
		page.Categorical.Error = err.Error()
	} else {
		page.Categorical.Table = dash.Categorical.Table
		page.Categorical.Chart = s.inlineSVG(func(buf *bytes.Buffer) error {
			return render.CategoricalChart(buf, dash.Categorical.Table)
		})
	}
	return page
}

// inlineSVG runs draw and returns its output for embedding in the page.
// A failed chart degrades to an empty figure rather than failing the page.
func (s *Server) inlineSVG(draw func(*bytes.Buffer) error) template.HTML {
	var buf bytes.Buffer
	if err := draw(&buf); err != nil {
		s.logger.Warn("chart render failed: %v", err)
		return ""
	}
	return template.HTML(buf.String())
}

func (s *Server) renderError(c *gin.Context, err error) {
	err = errors.FromDomain(err)
	status := errors.HTTPStatus(err)
	s.renderTemplate(c, status, "error.html", errorPage{
		Title:   pageTitle,
		Status:  status,
		Code:    errors.GetCode(err),
		Message: err.Error(),
	})
}

func (s *Server) handleDensityChart(c *gin.Context) {
	feature := c.Query("feature")
	section, err := s.service.Numerical(c.Request.Context(), feature)
	if err != nil {
		s.chartError(c, render.DensityTitle(feature), err)
		return
	}

	var buf bytes.Buffer
	if err := render.DensityChart(&buf, feature, labeledCurves(section.Curves)); err != nil {
		s.chartError(c, render.DensityTitle(feature), err)
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", buf.Bytes())
}

func (s *Server) handleCategoricalChart(c *gin.Context) {
	feature := c.Query("feature")
	section, err := s.service.Categorical(c.Request.Context(), feature)
	if err != nil {
		s.chartError(c, render.CategoricalTitle(feature), err)
		return
	}

	var buf bytes.Buffer
	if err := render.CategoricalChart(&buf, section.Table); err != nil {
		s.chartError(c, render.CategoricalTitle(feature), err)
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", buf.Bytes())
}

// chartError answers with the error's status and a placeholder image
// carrying the message
func (s *Server) chartError(c *gin.Context, title string, err error) {
	err = errors.FromDomain(err)
	status := errors.HTTPStatus(err)

	var buf bytes.Buffer
	if perr := render.Placeholder(&buf, title, err.Error()); perr != nil {
		s.logger.Error("placeholder render failed: %v", perr)
		c.String(status, err.Error())
		return
	}
	c.Data(status, "image/svg+xml", buf.Bytes())
}

func labeledCurves(curves []app.GroupCurve) []render.LabeledCurve {
	out := make([]render.LabeledCurve, len(curves))
	for i, gc := range curves {
		out[i] = render.LabeledCurve{Label: gc.Label, Curve: gc.Curve}
	}
	return out
}

func options(names []string, selected string) []option {
	out := make([]option, len(names))
	for i, name := range names {
		out[i] = option{Name: name, Selected: name == selected}
	}
	return out
}
