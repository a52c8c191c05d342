package ports

import (
	"frauddash/domain/dataset"
)

// RelationSource provides the dataset every view is computed from.
// Implementations must return the same relation on every call.
type RelationSource interface {
	Load() (*dataset.Relation, error)
}
