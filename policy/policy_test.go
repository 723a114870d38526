package policy_test

import (
	"testing"

	"github.com/dkovalov/roadskeleton/policy"
	"github.com/stretchr/testify/assert"
)

func TestFromWidthDistributionEmptyDefaultsToUrban(t *testing.T) {
	p := policy.FromWidthDistribution(nil)
	assert.Equal(t, policy.DefaultMedianWidth, p.MedianWidthM)
	assert.Equal(t, policy.Urban, p.Regime)
}

func TestFromWidthDistributionRuralRegime(t *testing.T) {
	p := policy.FromWidthDistribution([]float64{12, 14, 16})
	assert.Equal(t, policy.Rural, p.Regime)
	assert.Equal(t, 3, p.GraphSmoothIterations)
}

func TestFromWidthDistributionUrbanRegime(t *testing.T) {
	p := policy.FromWidthDistribution([]float64{4, 6, 8})
	assert.Equal(t, policy.Urban, p.Regime)
	assert.Equal(t, 2, p.GraphSmoothIterations)
}

func TestMinLaneWidthClamped(t *testing.T) {
	low := policy.FromWidthDistribution([]float64{1, 1, 1})
	assert.Equal(t, 1.4, low.MinLaneWidthM)

	high := policy.FromWidthDistribution([]float64{100, 100, 100})
	assert.Equal(t, 3.5, high.MinLaneWidthM)
}

func TestSelectorFieldsArePopulated(t *testing.T) {
	p := policy.FromWidthDistribution([]float64{6, 8, 10})
	assert.Greater(t, p.SelectorMinQualityScore, 0.0)
	assert.Greater(t, p.SelectorKeepTopRatio, 0.0)
	assert.Equal(t, 2.5, p.SelectorLengthRefFactor)
	assert.Greater(t, p.SelectorInsideSampleStepM, 0.0)
}
