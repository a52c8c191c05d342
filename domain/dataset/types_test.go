package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionDefaultsAndValidation(t *testing.T) {
	sel := Selection{}.WithDefaults()
	assert.Equal(t, "session_duration", sel.Numerical)
	assert.Equal(t, "transaction_status", sel.Categorical)
	assert.NoError(t, sel.Validate())

	sel = Selection{Numerical: "transaction_amount"}.WithDefaults()
	assert.Equal(t, "transaction_amount", sel.Numerical)
	assert.Equal(t, "transaction_status", sel.Categorical)

	assert.Error(t, Selection{Numerical: "device_type", Categorical: "device_type"}.Validate())
	assert.Error(t, Selection{Numerical: "session_duration", Categorical: "amount"}.Validate())
}

func TestFeatureCatalog(t *testing.T) {
	assert.Len(t, NumericalFeatures, 3)
	assert.Len(t, CategoricalFeatures, 7)
	assert.True(t, IsFeature(FeatureCategorical, "device_type"))
	assert.False(t, IsFeature(FeatureNumerical, "device_type"))
	assert.False(t, IsFeature(FeatureKind("other"), "device_type"))
}

func TestPartitionIsReadOnlyView(t *testing.T) {
	p := NewPartition(nil, LabelFraud, FlagFraud, []int{2, 3})
	assert.Equal(t, 2, p.Len())
	assert.False(t, p.IsEmpty())

	rows := p.Rows()
	rows[0] = 99
	assert.Equal(t, []int{2, 3}, p.Rows())

	empty := NewPartition(nil, LabelLegitimate, FlagLegitimate, nil)
	assert.True(t, empty.IsEmpty())
	assert.NotNil(t, empty.Rows())
}
