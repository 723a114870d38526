// Package config loads GISConfig: the five pipeline-wide runtime
// thresholds (spec §9), a YAML file overlay, and a GIS_-prefixed
// environment variable overlay — in that precedence order, the nearest
// Go equivalent of the source's pydantic-settings BaseSettings with
// env_prefix="GIS_". Grounded on original_source/Service/config.py.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// GISConfig is the pipeline-wide configuration record (spec §6, §9).
type GISConfig struct {
	DebugExportIntermediate bool `yaml:"debug_export_intermediate"`

	TopologyIntersectionMergeThresholdM  float64 `yaml:"topology_intersection_merge_threshold_m"`
	TopologyIntersectionParallelAngleDeg float64 `yaml:"topology_intersection_parallel_angle_deg"`
	TopologySimplifyMainToleranceM       float64 `yaml:"topology_simplify_main_tolerance_m"`
	TopologySimplifyJunctionToleranceM   float64 `yaml:"topology_simplify_junction_tolerance_m"`
	TopologyJunctionMinDegree            int     `yaml:"topology_junction_min_degree"`

	// SnapThreshold resolves spec §9 Open Question (a): the source
	// validator reads this via getattr(config, "snap_threshold", 0.5)
	// without GISConfig ever declaring it. It is declared here explicitly.
	SnapThreshold float64 `yaml:"snap_threshold"`
}

// Default returns GISConfig populated with config.py's documented field
// defaults.
func Default() GISConfig {
	return GISConfig{
		DebugExportIntermediate:              false,
		TopologyIntersectionMergeThresholdM:  1.5,
		TopologyIntersectionParallelAngleDeg: 15.0,
		TopologySimplifyMainToleranceM:       0.05,
		TopologySimplifyJunctionToleranceM:   0.12,
		TopologyJunctionMinDegree:            3,
		SnapThreshold:                        0.5,
	}
}

const envPrefix = "GIS_"

// Load builds a GISConfig starting from Default, overlaid by yamlPath (if
// non-empty and present) and then by GIS_-prefixed environment variables
// (loading a .env file into the process environment first, when one is
// present and not already loaded) — the same precedence order as the
// source's pydantic-settings env_file + env_prefix behavior.
func Load(yamlPath string) (GISConfig, error) {
	cfg := Default()

	if yamlPath != "" {
		data, err := os.ReadFile(yamlPath)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return GISConfig{}, err
			}
		} else if !os.IsNotExist(err) {
			return GISConfig{}, err
		}
	}

	_ = godotenv.Load() // .env is optional; ignore "file not found"

	overlayFromEnv(&cfg)
	return cfg, nil
}

func overlayFromEnv(cfg *GISConfig) {
	if v, ok := envBool("DEBUG_EXPORT_INTERMEDIATE"); ok {
		cfg.DebugExportIntermediate = v
	}
	if v, ok := envFloat("TOPOLOGY_INTERSECTION_MERGE_THRESHOLD_M"); ok {
		cfg.TopologyIntersectionMergeThresholdM = v
	}
	if v, ok := envFloat("TOPOLOGY_INTERSECTION_PARALLEL_ANGLE_DEG"); ok {
		cfg.TopologyIntersectionParallelAngleDeg = v
	}
	if v, ok := envFloat("TOPOLOGY_SIMPLIFY_MAIN_TOLERANCE_M"); ok {
		cfg.TopologySimplifyMainToleranceM = v
	}
	if v, ok := envFloat("TOPOLOGY_SIMPLIFY_JUNCTION_TOLERANCE_M"); ok {
		cfg.TopologySimplifyJunctionToleranceM = v
	}
	if v, ok := envInt("TOPOLOGY_JUNCTION_MIN_DEGREE"); ok {
		cfg.TopologyJunctionMinDegree = v
	}
	if v, ok := envFloat("SNAP_THRESHOLD"); ok {
		cfg.SnapThreshold = v
	}
}

func envBool(name string) (bool, bool) {
	raw, ok := os.LookupEnv(envPrefix + name)
	if !ok {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	return v, err == nil
}

func envFloat(name string) (float64, bool) {
	raw, ok := os.LookupEnv(envPrefix + name)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	return v, err == nil
}

func envInt(name string) (int, bool) {
	raw, ok := os.LookupEnv(envPrefix + name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	return v, err == nil
}
