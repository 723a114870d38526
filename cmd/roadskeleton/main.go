// Command roadskeleton runs the road-polygon-to-centerline pipeline
// against a single input file (spec §3's CLI entrypoint). Grounded on
// original_source/Service/container.py's build_app wiring shape, and on
// duynguyendang-gca's main.go for the stdlib-flag CLI idiom.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/dkovalov/roadskeleton/config"
	"github.com/dkovalov/roadskeleton/pipeline"
)

func main() {
	inputPath := flag.String("input", "", "path to the input .wkt road polygon file (required)")
	outputPath := flag.String("output", "", "path to write the centerline .wkt result (default: <input>_centerline.wkt)")
	configPath := flag.String("config", "", "optional YAML config file overlay")
	verbose := flag.Bool("verbose", false, "enable debug-level logging")
	flag.Parse()

	_ = godotenv.Load()

	logLevel := zerolog.InfoLevel
	if *verbose {
		logLevel = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(logLevel).With().Timestamp().Logger()

	runID := uuid.NewString()
	log = log.With().Str("run_id", runID).Logger()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: --input is required")
		flag.Usage()
		os.Exit(1)
	}

	out := *outputPath
	if out == "" {
		ext := filepath.Ext(*inputPath)
		stem := strings.TrimSuffix(*inputPath, ext)
		out = stem + "_centerline.wkt"
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("roadskeleton: failed to load config")
	}

	finalPath, err := pipeline.Run(context.Background(), log, cfg, *inputPath, out)
	if err != nil {
		log.Fatal().Err(err).Msg("roadskeleton: pipeline failed")
	}

	fmt.Println(finalPath)
}
