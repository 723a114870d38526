package gisio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalov/roadskeleton/geom2d"
	"github.com/dkovalov/roadskeleton/gisio"
)

const metricWKT = `PROJCS["UTM",GEOGCS["WGS84"],UNIT["metre",1],AUTHORITY["EPSG","32652"]]`

func writeSidecarFiles(t *testing.T, dir, name, body, prj string) string {
	t.Helper()
	path := filepath.Join(dir, name+".wkt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".wkt.prj"), []byte(prj), 0o644))
	return path
}

func TestLoadParsesPolygonsAndCRS(t *testing.T) {
	dir := t.TempDir()
	path := writeSidecarFiles(t, dir, "roads",
		"POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))\n",
		metricWKT)

	l := gisio.Loader{Log: zerolog.Nop()}
	polys, crs, err := l.Load(path)
	require.NoError(t, err)
	require.Len(t, polys, 1)
	assert.Len(t, polys[0].Exterior, 4)
	assert.Equal(t, 32652, crs.EPSG)
	assert.True(t, crs.IsMeterUnit())
}

func TestLoadRejectsNonMetricCRS(t *testing.T) {
	dir := t.TempDir()
	path := writeSidecarFiles(t, dir, "roads",
		"POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))\n",
		`GEOGCS["WGS84",UNIT["degree",0.0174532925199433]]`)

	l := gisio.Loader{Log: zerolog.Nop()}
	_, _, err := l.Load(path)
	assert.ErrorIs(t, err, gisio.ErrNonMetricCRS)
}

func TestLoadRejectsEmptyData(t *testing.T) {
	dir := t.TempDir()
	path := writeSidecarFiles(t, dir, "roads", "\n", metricWKT)

	l := gisio.Loader{Log: zerolog.Nop()}
	_, _, err := l.Load(path)
	assert.ErrorIs(t, err, gisio.ErrEmptyData)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	l := gisio.Loader{Log: zerolog.Nop()}
	_, _, err := l.Load(filepath.Join(t.TempDir(), "missing.wkt"))
	assert.ErrorIs(t, err, gisio.ErrFileNotFound)
}

func TestWriteThenLoadRoundTripsLines(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "nested", "out.wkt")
	lines := []geom2d.LineString{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
	}
	crs := gisio.CRS{WKT: metricWKT, EPSG: 32652}

	w := gisio.Writer{Log: zerolog.Nop()}
	require.NoError(t, w.Write(outPath, lines, crs))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "LINESTRING (0 0, 10 0, 10 10)")

	prj, err := os.ReadFile(filepath.Join(dir, "nested", "out.wkt.prj"))
	require.NoError(t, err)
	assert.Equal(t, metricWKT, string(prj))
}

func TestWriteRejectsDegenerateLine(t *testing.T) {
	dir := t.TempDir()
	w := gisio.Writer{Log: zerolog.Nop()}
	err := w.Write(filepath.Join(dir, "out.wkt"), []geom2d.LineString{{{X: 0, Y: 0}}}, gisio.CRS{WKT: metricWKT})
	assert.ErrorIs(t, err, gisio.ErrNotLinear)
}
