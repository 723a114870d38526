package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalov/roadskeleton/config"
	"github.com/dkovalov/roadskeleton/pipeline"
)

const metricWKT = `PROJCS["UTM",GEOGCS["WGS84"],UNIT["metre",1],AUTHORITY["EPSG","32652"]]`

func writeInput(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "roads.wkt")
	body := "POLYGON ((0 0, 60 0, 60 6, 0 6, 0 0))\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "roads.wkt.prj"), []byte(metricWKT), 0o644))
	return path
}

func TestRunProducesCenterlineFromRectangularRoad(t *testing.T) {
	dir := t.TempDir()
	inPath := writeInput(t, dir)
	outPath := filepath.Join(dir, "out", "roads_centerline.wkt")

	cfg := config.Default()
	outcome, err := pipeline.Run(context.Background(), zerolog.Nop(), cfg, inPath, outPath)
	require.NoError(t, err)
	assert.Equal(t, outPath, outcome)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "LINESTRING")

	prj, err := os.ReadFile(filepath.Join(dir, "out", "roads_centerline.wkt.prj"))
	require.NoError(t, err)
	assert.Equal(t, metricWKT, string(prj))
}

func TestRunOnMissingInputReturnsError(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	_, err := pipeline.Run(context.Background(), zerolog.Nop(), cfg, filepath.Join(dir, "missing.wkt"), filepath.Join(dir, "out.wkt"))
	assert.Error(t, err)
}

func TestRunObservesCancelledContextBetweenStages(t *testing.T) {
	dir := t.TempDir()
	inPath := writeInput(t, dir)
	outPath := filepath.Join(dir, "out.wkt")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := config.Default()
	_, err := pipeline.Run(ctx, zerolog.Nop(), cfg, inPath, outPath)
	assert.ErrorIs(t, err, context.Canceled)
}
