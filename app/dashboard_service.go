package app

import (
	"context"
	"fmt"
	"time"

	"frauddash/domain/core"
	"frauddash/domain/dataset"
	"frauddash/internal"
	"frauddash/internal/analysis"
	"frauddash/internal/errors"
	"frauddash/ports"

	"golang.org/x/sync/errgroup"
)

// DashboardConfig carries the analysis settings a render pass needs
type DashboardConfig struct {
	FlagColumn    string
	NullPolicy    dataset.NullPolicy
	DensityPoints int
	HeadRows      int
}

// DefaultDashboardConfig mirrors the configuration defaults
func DefaultDashboardConfig() DashboardConfig {
	return DashboardConfig{
		FlagColumn:    "flag",
		NullPolicy:    dataset.NullsExclude,
		DensityPoints: 500,
		HeadRows:      5,
	}
}

// DashboardService runs one synchronous render pass per request over the
// shared relation: partition, summarize, then hand chart-ready data back.
type DashboardService struct {
	source ports.RelationSource
	config DashboardConfig
	logger *internal.Logger
}

// NewDashboardService creates a service reading from source
func NewDashboardService(source ports.RelationSource, config DashboardConfig, logger *internal.Logger) *DashboardService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DashboardService{
		source: source,
		config: config,
		logger: logger,
	}
}

// Config returns the settings the service was built with
func (s *DashboardService) Config() DashboardConfig {
	return s.config
}

// PartitionSizes reports how many rows fell on each side of the flag
type PartitionSizes struct {
	Legitimate int `json:"legitimate"`
	Fraud      int `json:"fraud"`
}

// NumericalSection is the density view of one numerical feature
type NumericalSection struct {
	Feature string                   `json:"feature"`
	Series  analysis.NumericalSeries `json:"series"`
	Curves  []GroupCurve             `json:"curves"`
	Err     error                    `json:"-"`
}

// GroupCurve is the density estimate of one partition
type GroupCurve struct {
	Label dataset.Label         `json:"label"`
	Curve analysis.DensityCurve `json:"curve"`
}

// EmptyGroups lists partitions with no values to estimate from
func (n NumericalSection) EmptyGroups() []dataset.Label {
	var out []dataset.Label
	for _, c := range n.Curves {
		if c.Curve.IsEmpty() {
			out = append(out, c.Label)
		}
	}
	return out
}

// CategoricalSection is the grouped count view of one categorical feature
type CategoricalSection struct {
	Feature string              `json:"feature"`
	Table   analysis.CountTable `json:"table"`
	Err     error               `json:"-"`
}

// CorrelationSection is the heatmap view
type CorrelationSection struct {
	Matrix analysis.CorrelationMatrix `json:"matrix"`
	Err    error                      `json:"-"`
}

// Dashboard is everything one page render shows. Section errors are kept
// on their section so the remaining sections still render.
type Dashboard struct {
	RenderID    core.RenderID      `json:"render_id"`
	Selection   dataset.Selection  `json:"selection"`
	Overview    analysis.Overview  `json:"overview"`
	Partitions  PartitionSizes     `json:"partitions"`
	Numerical   NumericalSection   `json:"numerical"`
	Categorical CategoricalSection `json:"categorical"`
	Correlation CorrelationSection `json:"correlation"`
	Duration    time.Duration      `json:"duration"`
}

// Render builds the full dashboard for sel. Empty selection fields take
// their defaults. An unknown feature is INVALID_INPUT and an unloadable
// dataset is DATA_UNAVAILABLE; both fail the whole render.
func (s *DashboardService) Render(ctx context.Context, sel dataset.Selection) (*Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sel = sel.WithDefaults()
	if err := sel.Validate(); err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, err)
	}

	start := time.Now()
	dash := &Dashboard{RenderID: core.NewRenderID(), Selection: sel}
	logger := s.logger.With("render_id", dash.RenderID.String())

	rel, err := s.load()
	if err != nil {
		logger.Error("render failed: %v", err)
		return nil, err
	}

	dash.Overview = analysis.BuildOverview(rel, s.config.HeadRows)
	dash.Numerical.Feature = sel.Numerical
	dash.Categorical.Feature = sel.Categorical

	legit, fraud, partErr := analysis.Partition(rel, s.config.FlagColumn)
	if partErr != nil {
		partErr = errors.FromDomain(partErr)
		logger.Warn("partition on %q failed: %v", s.config.FlagColumn, partErr)
		dash.Numerical.Err = partErr
		dash.Categorical.Err = partErr
	} else {
		dash.Partitions = PartitionSizes{Legitimate: legit.Len(), Fraud: fraud.Len()}
	}

	// Sections only read rel, so they run side by side.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		dash.Correlation.Matrix = analysis.Correlation(rel)
		return gctx.Err()
	})
	if partErr == nil {
		g.Go(func() error {
			dash.Numerical = s.numerical(legit, fraud, sel.Numerical)
			return gctx.Err()
		})
		g.Go(func() error {
			dash.Categorical = s.categorical(rel, legit, fraud, sel.Categorical)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if dash.Numerical.Err != nil && partErr == nil {
		logger.Warn("numerical section %s: %v", sel.Numerical, dash.Numerical.Err)
	}
	if dash.Categorical.Err != nil && partErr == nil {
		logger.Warn("categorical section %s: %v", sel.Categorical, dash.Categorical.Err)
	}

	dash.Duration = time.Since(start)
	logger.Debug("rendered numerical=%s categorical=%s legit=%d fraud=%d in %s",
		sel.Numerical, sel.Categorical, dash.Partitions.Legitimate, dash.Partitions.Fraud, dash.Duration)
	return dash, nil
}

// Numerical summarizes one numerical feature. Unlike Render, column errors
// are returned rather than attached.
func (s *DashboardService) Numerical(ctx context.Context, feature string) (*NumericalSection, error) {
	_, legit, fraud, err := s.partitioned(ctx, dataset.FeatureNumerical, feature)
	if err != nil {
		return nil, err
	}
	section := s.numerical(legit, fraud, feature)
	if section.Err != nil {
		return nil, section.Err
	}
	return &section, nil
}

// Categorical counts one categorical feature per partition
func (s *DashboardService) Categorical(ctx context.Context, feature string) (*CategoricalSection, error) {
	rel, legit, fraud, err := s.partitioned(ctx, dataset.FeatureCategorical, feature)
	if err != nil {
		return nil, err
	}
	section := s.categorical(rel, legit, fraud, feature)
	if section.Err != nil {
		return nil, section.Err
	}
	return &section, nil
}

// Correlation computes the matrix over every numeric column
func (s *DashboardService) Correlation(ctx context.Context) (*analysis.CorrelationMatrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rel, err := s.load()
	if err != nil {
		return nil, err
	}
	m := analysis.Correlation(rel)
	return &m, nil
}

// Overview reports dataset shape, leading rows and column profiles
func (s *DashboardService) Overview(ctx context.Context) (*analysis.Overview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rel, err := s.load()
	if err != nil {
		return nil, err
	}
	ov := analysis.BuildOverview(rel, s.config.HeadRows)
	return &ov, nil
}

// FeatureStatus tells whether a selector entry can be summarized against
// the loaded relation
type FeatureStatus struct {
	Name      string              `json:"name"`
	Kind      dataset.FeatureKind `json:"kind"`
	Present   bool                `json:"present"`
	Column    dataset.ColumnKind  `json:"column_kind,omitempty"`
	Available bool                `json:"available"`
}

// Features lists both selectors with their availability in the relation
func (s *DashboardService) Features(ctx context.Context) ([]FeatureStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rel, err := s.load()
	if err != nil {
		return nil, err
	}

	var out []FeatureStatus
	add := func(kind dataset.FeatureKind, names []string) {
		for _, name := range names {
			st := FeatureStatus{Name: name, Kind: kind}
			if col, ok := rel.Column(name); ok {
				st.Present = true
				st.Column = col.Kind()
				st.Available = kind == dataset.FeatureCategorical || col.IsNumeric()
			}
			out = append(out, st)
		}
	}
	add(dataset.FeatureNumerical, dataset.NumericalFeatures)
	add(dataset.FeatureCategorical, dataset.CategoricalFeatures)
	return out, nil
}

func (s *DashboardService) load() (*dataset.Relation, error) {
	rel, err := s.source.Load()
	if err != nil {
		return nil, errors.FromDomain(err)
	}
	if rel == nil {
		return nil, errors.FromDomain(core.NewDataUnavailableError("relation source", nil))
	}
	return rel, nil
}

func (s *DashboardService) partitioned(ctx context.Context, kind dataset.FeatureKind, feature string) (*dataset.Relation, dataset.Partition, dataset.Partition, error) {
	var none dataset.Partition
	if err := ctx.Err(); err != nil {
		return nil, none, none, err
	}
	if !dataset.IsFeature(kind, feature) {
		return nil, none, none, errors.InvalidInput(fmt.Sprintf("unknown %s feature %q", kind, feature))
	}

	rel, err := s.load()
	if err != nil {
		return nil, none, none, err
	}
	legit, fraud, err := analysis.Partition(rel, s.config.FlagColumn)
	if err != nil {
		return nil, none, none, errors.FromDomain(err)
	}
	return rel, legit, fraud, nil
}

func (s *DashboardService) numerical(legit, fraud dataset.Partition, feature string) NumericalSection {
	section := NumericalSection{Feature: feature}
	series, err := analysis.NumericalSummary(legit, fraud, feature, s.config.NullPolicy)
	if err != nil {
		section.Err = errors.FromDomain(err)
		return section
	}
	section.Series = series
	for _, g := range series.Groups {
		section.Curves = append(section.Curves, GroupCurve{
			Label: g.Label,
			Curve: analysis.Density(g.Values, s.config.DensityPoints),
		})
	}
	return section
}

func (s *DashboardService) categorical(rel *dataset.Relation, legit, fraud dataset.Partition, feature string) CategoricalSection {
	section := CategoricalSection{Feature: feature}
	table, err := analysis.CategoricalSummary(rel, legit, fraud, feature)
	if err != nil {
		section.Err = errors.FromDomain(err)
		return section
	}
	section.Table = table
	return section
}
