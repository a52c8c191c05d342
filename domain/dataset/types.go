package dataset

import (
	"fmt"
	"slices"
)

// Label names a partition of the relation by fraud flag
type Label string

const (
	LabelLegitimate Label = "Legitimate"
	LabelFraud      Label = "Fraud"
)

// NullPolicy controls how numerical summaries treat null cells
type NullPolicy string

const (
	NullsExclude NullPolicy = "exclude"
	NullsKeep    NullPolicy = "keep"
)

// Valid reports whether the policy is one of the known values
func (p NullPolicy) Valid() bool {
	return p == NullsExclude || p == NullsKeep
}

// Flag values of the binary label column
const (
	FlagLegitimate = 0
	FlagFraud      = 1
)

// Partition is a read-only view over the relation rows sharing one flag value.
type Partition struct {
	Label    Label
	Flag     int
	relation *Relation
	rows     []int
}

// NewPartition creates a view over the given row indices, in the given order.
func NewPartition(rel *Relation, label Label, flag int, rows []int) Partition {
	if rows == nil {
		rows = []int{}
	}
	return Partition{Label: label, Flag: flag, relation: rel, rows: rows}
}

// Relation returns the relation the partition was derived from
func (p Partition) Relation() *Relation { return p.relation }

// Len returns the number of rows in the partition
func (p Partition) Len() int { return len(p.rows) }

// IsEmpty reports whether no row carries this flag value
func (p Partition) IsEmpty() bool { return len(p.rows) == 0 }

// Rows returns a copy of the row indices in original order
func (p Partition) Rows() []int {
	out := make([]int, len(p.rows))
	copy(out, p.rows)
	return out
}

// FeatureKind is the selector a feature belongs to
type FeatureKind string

const (
	FeatureNumerical   FeatureKind = "numerical"
	FeatureCategorical FeatureKind = "categorical"
)

// Fixed selector lists
var (
	NumericalFeatures = []string{
		"session_duration",
		"transaction_amount",
		"time_spent_on_payment_page",
	}

	CategoricalFeatures = []string{
		"transaction_status",
		"transaction_type",
		"customer_ip_location",
		"payment_method",
		"login_status",
		"visit_origin",
		"device_type",
	}
)

// Selection is the pair of features chosen in the two selectors
type Selection struct {
	Numerical   string `json:"numerical"`
	Categorical string `json:"categorical"`
}

// DefaultSelection returns the first entry of each selector
func DefaultSelection() Selection {
	return Selection{
		Numerical:   NumericalFeatures[0],
		Categorical: CategoricalFeatures[0],
	}
}

// WithDefaults fills empty fields from DefaultSelection
func (s Selection) WithDefaults() Selection {
	def := DefaultSelection()
	if s.Numerical == "" {
		s.Numerical = def.Numerical
	}
	if s.Categorical == "" {
		s.Categorical = def.Categorical
	}
	return s
}

// Validate checks both features come from the fixed lists
func (s Selection) Validate() error {
	if !IsFeature(FeatureNumerical, s.Numerical) {
		return fmt.Errorf("unknown numerical feature %q", s.Numerical)
	}
	if !IsFeature(FeatureCategorical, s.Categorical) {
		return fmt.Errorf("unknown categorical feature %q", s.Categorical)
	}
	return nil
}

// IsFeature reports whether name is on the selector list for kind
func IsFeature(kind FeatureKind, name string) bool {
	switch kind {
	case FeatureNumerical:
		return slices.Contains(NumericalFeatures, name)
	case FeatureCategorical:
		return slices.Contains(CategoricalFeatures, name)
	default:
		return false
	}
}
