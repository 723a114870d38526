package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalov/roadskeleton/config"
)

func TestDefaultMatchesDocumentedValues(t *testing.T) {
	cfg := config.Default()
	assert.False(t, cfg.DebugExportIntermediate)
	assert.Equal(t, 1.5, cfg.TopologyIntersectionMergeThresholdM)
	assert.Equal(t, 15.0, cfg.TopologyIntersectionParallelAngleDeg)
	assert.Equal(t, 0.05, cfg.TopologySimplifyMainToleranceM)
	assert.Equal(t, 0.12, cfg.TopologySimplifyJunctionToleranceM)
	assert.Equal(t, 3, cfg.TopologyJunctionMinDegree)
	assert.Equal(t, 0.5, cfg.SnapThreshold)
}

func TestLoadWithNoFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadMissingYAMLFileFallsBackToDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadOverlaysYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
topology_intersection_merge_threshold_m: 2.0
topology_junction_min_degree: 4
debug_export_intermediate: true
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.TopologyIntersectionMergeThresholdM)
	assert.Equal(t, 4, cfg.TopologyJunctionMinDegree)
	assert.True(t, cfg.DebugExportIntermediate)
	// Untouched fields keep their defaults.
	assert.Equal(t, 0.05, cfg.TopologySimplifyMainToleranceM)
}

func TestLoadOverlaysEnvironmentOverYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`topology_intersection_merge_threshold_m: 2.0`), 0o644))

	t.Setenv("GIS_TOPOLOGY_INTERSECTION_MERGE_THRESHOLD_M", "3.5")
	t.Setenv("GIS_SNAP_THRESHOLD", "0.75")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3.5, cfg.TopologyIntersectionMergeThresholdM)
	assert.Equal(t, 0.75, cfg.SnapThreshold)
}
