// Package gisio implements the load/save contract spec §6 names as an
// external collaborator (shapefile/geopackage I/O), realized here against
// a plain-text WKT sidecar format rather than a real shapefile driver: a
// `.wkt` file holding one WKT geometry per line, plus a `.wkt.prj`
// sidecar holding the raw CRS WKT string. Swapping in a real shapefile
// backend means satisfying Loader/Writer with the same method shapes.
// Grounded on original_source/Service/gis_modules/gis_io.py's GISIO
// (load/save validation rules) and Service/schemas.py (path-extension
// validation).
package gisio

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dkovalov/roadskeleton/geom2d"
)

// Sentinel errors for the load/save hard-fail cases spec §6/§4.12(a)
// names explicitly.
var (
	ErrEmptyData      = errors.New("gisio: loaded data is empty")
	ErrNoCRS          = errors.New("gisio: input has no CRS")
	ErrNonMetricCRS   = errors.New("gisio: input CRS units are not metres")
	ErrWrongExtension = errors.New("gisio: path does not have the expected extension")
	ErrNotLinear      = errors.New("gisio: geometry is not LineString/MultiLineString")
	ErrFileNotFound   = errors.New("gisio: file does not exist")
)

// CRS carries a coordinate reference system as its raw WKT text plus a
// best-effort EPSG code (0 if it could not be determined), mirroring
// GISIO._try_to_epsg's best-effort extraction.
type CRS struct {
	WKT  string
	EPSG int
}

// IsMeterUnit reports whether the CRS WKT declares metre units, the same
// case-insensitive substring test as GISIO._is_meter_unit.
func (c CRS) IsMeterUnit() bool {
	lower := strings.ToLower(c.WKT)
	return strings.Contains(lower, `unit["metre"`) || strings.Contains(lower, `unit["meter"`) ||
		strings.Contains(lower, "unit[metre") || strings.Contains(lower, "unit[meter")
}

const geometryExt = ".wkt"
const prjExt = ".wkt.prj"

// Loader reads a polygon collection from the WKT sidecar format.
type Loader struct {
	Log zerolog.Logger
}

// Load reads path (must end in .wkt) and its .wkt.prj sidecar, enforcing
// the hard-fail contract: file must exist, extension must match, data
// must be non-empty, a CRS must be present, and its units must be
// metres — any violation is a fatal error for the whole pipeline (spec
// §4.12(a)), not a locally-skippable one.
func (l Loader) Load(path string) (geom2d.MultiPolygon, CRS, error) {
	if filepath.Ext(path) != geometryExt {
		return nil, CRS{}, fmt.Errorf("%w: %s (need %s)", ErrWrongExtension, path, geometryExt)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, CRS{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, CRS{}, err
	}
	defer f.Close()

	var polys geom2d.MultiPolygon
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		poly, err := parseWKTPolygon(line)
		if err != nil {
			l.Log.Warn().Err(err).Msg("gisio: skipping unparsable polygon record")
			continue
		}
		polys = append(polys, poly)
	}
	if err := scanner.Err(); err != nil {
		return nil, CRS{}, err
	}
	if len(polys) == 0 {
		return nil, CRS{}, ErrEmptyData
	}

	crs, err := loadCRS(path)
	if err != nil {
		return nil, CRS{}, err
	}
	if crs.WKT == "" {
		return nil, CRS{}, ErrNoCRS
	}
	if !crs.IsMeterUnit() {
		return nil, CRS{}, fmt.Errorf("%w: %s", ErrNonMetricCRS, crs.WKT)
	}

	l.Log.Info().Int("count", len(polys)).Int("epsg", crs.EPSG).Msg("gisio: load complete")
	return polys, crs, nil
}

func loadCRS(geometryPath string) (CRS, error) {
	prjPath := strings.TrimSuffix(geometryPath, geometryExt) + prjExt
	data, err := os.ReadFile(prjPath)
	if err != nil {
		return CRS{}, nil // no sidecar: caller treats as "no CRS"
	}
	wkt := strings.TrimSpace(string(data))
	return CRS{WKT: wkt, EPSG: epsgFromWKT(wkt)}, nil
}

func epsgFromWKT(wkt string) int {
	idx := strings.LastIndex(wkt, `AUTHORITY["EPSG","`)
	if idx < 0 {
		return 0
	}
	rest := wkt[idx+len(`AUTHORITY["EPSG","`):]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return 0
	}
	code, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0
	}
	return code
}

// Writer persists a line collection to the WKT sidecar format.
type Writer struct {
	Log zerolog.Logger
}

// Write validates path's extension and every geometry's linearity (the
// slice type already forbids anything but LineString, so this enforces
// non-degeneracy instead — spec §6's write guard), creates parent
// directories, and writes one WKT record per line plus the CRS sidecar.
func (w Writer) Write(path string, lines []geom2d.LineString, crs CRS) error {
	if filepath.Ext(path) != geometryExt {
		return fmt.Errorf("%w: %s (need %s)", ErrWrongExtension, path, geometryExt)
	}
	if len(lines) == 0 {
		w.Log.Warn().Msg("gisio: writing empty result")
	}
	for _, ln := range lines {
		if len(ln) < 2 {
			return ErrNotLinear
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	for _, ln := range lines {
		if _, err := bw.WriteString(lineStringWKT(ln) + "\n"); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	prjPath := strings.TrimSuffix(path, geometryExt) + prjExt
	if err := os.WriteFile(prjPath, []byte(crs.WKT), 0o644); err != nil {
		return err
	}

	w.Log.Info().Str("path", path).Int("count", len(lines)).Msg("gisio: save complete")
	return nil
}

func lineStringWKT(ln geom2d.LineString) string {
	var sb strings.Builder
	sb.WriteString("LINESTRING (")
	for i, p := range ln {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}

// parseWKTPolygon parses a single "POLYGON ((...), (...), ...)" record
// (exterior ring first, holes after), the only shape this loader accepts.
func parseWKTPolygon(s string) (geom2d.Polygon, error) {
	s = strings.TrimSpace(s)
	upper := strings.ToUpper(s)
	if !strings.HasPrefix(upper, "POLYGON") {
		return geom2d.Polygon{}, fmt.Errorf("gisio: not a POLYGON record: %q", s)
	}
	open := strings.IndexByte(s, '(')
	closeIdx := strings.LastIndexByte(s, ')')
	if open < 0 || closeIdx < 0 || closeIdx <= open {
		return geom2d.Polygon{}, fmt.Errorf("gisio: malformed POLYGON record: %q", s)
	}
	body := s[open+1 : closeIdx]

	rings, err := splitRings(body)
	if err != nil {
		return geom2d.Polygon{}, err
	}
	if len(rings) == 0 {
		return geom2d.Polygon{}, fmt.Errorf("gisio: POLYGON record has no rings: %q", s)
	}

	poly := geom2d.Polygon{Exterior: rings[0]}
	if len(rings) > 1 {
		poly.Holes = rings[1:]
	}
	return poly, nil
}

// splitRings splits a "(x y, x y, ...), (x y, ...)" ring list on its
// top-level parenthesis groups and parses each into a Ring.
func splitRings(body string) ([]geom2d.Ring, error) {
	var rings []geom2d.Ring
	depth := 0
	start := -1
	for i, c := range body {
		switch c {
		case '(':
			if depth == 0 {
				start = i + 1
			}
			depth++
		case ')':
			depth--
			if depth == 0 && start >= 0 {
				ring, err := parseRing(body[start:i])
				if err != nil {
					return nil, err
				}
				rings = append(rings, ring)
				start = -1
			}
		}
	}
	return rings, nil
}

func parseRing(s string) (geom2d.Ring, error) {
	parts := strings.Split(s, ",")
	ring := make(geom2d.Ring, 0, len(parts))
	for _, part := range parts {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) < 2 {
			continue
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("gisio: bad x coordinate %q: %w", fields[0], err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("gisio: bad y coordinate %q: %w", fields[1], err)
		}
		ring = append(ring, geom2d.Point{X: x, Y: y})
	}
	// WKT rings repeat the closing point; geom2d.Ring is the open
	// representation (spec §6's coordinate model), so drop it if present.
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		ring = ring[:len(ring)-1]
	}
	if len(ring) < 3 {
		return nil, fmt.Errorf("gisio: ring has fewer than 3 distinct points")
	}
	return ring, nil
}
