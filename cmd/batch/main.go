package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jeonsilai/guardrails-server/internal/batch"
	"github.com/jeonsilai/guardrails-server/internal/setup"
	logsetup "github.com/jeonsilai/guardrails-server/internal/setup/logger"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// batchResult is one output line: either a verdict or a parse error.
type batchResult struct {
	Line           int      `json:"line"`
	Valid          bool     `json:"valid"`
	Errors         []string `json:"errors,omitempty"`
	NormalizedText *string  `json:"normalizedText,omitempty"`
	ParseError     string   `json:"parseError,omitempty"`
}

func main() {
	startTime := time.Now()

	input := flag.String("input", "", "Input JSONL file, or '-' for stdin")
	output := flag.String("output", "", "Output JSONL file, defaults to stdout")
	flag.Parse()

	envErr := godotenv.Load()

	cfg := setup.LoadConfig()

	// Results go to stdout, so logs go to stderr.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logsetup.New(cfg.LogLevel).Output(os.Stderr)

	if *input == "" {
		log.Fatal().Msg("required flag -input not provided")
	}
	if envErr != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := setup.Wire(ctx, cfg, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	var inputFile io.Reader
	if *input == "-" {
		inputFile = os.Stdin
	} else {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatal().Err(err).Str("path", *input).Msg("Failed to open input file")
		}
		defer f.Close()
		inputFile = f
	}

	var outputFile io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatal().Err(err).Str("path", *output).Msg("Failed to create output file")
		}
		defer f.Close()
		outputFile = f
	}

	reader := batch.NewReader(inputFile, &log.Logger)
	encoder := json.NewEncoder(outputFile)

	var total, valid, invalid, parseErrors int
	for record := range reader.ReadAll(ctx) {
		total++
		result := batchResult{Line: record.Line}

		if record.Error != nil {
			parseErrors++
			result.ParseError = record.Error.Error()
		} else {
			verdict := deps.InputRail.Validate(record.Request)
			result.Valid = verdict.Valid
			result.Errors = verdict.Errors
			result.NormalizedText = verdict.NormalizedText
			if verdict.Valid {
				valid++
			} else {
				invalid++
			}
		}

		if err := encoder.Encode(result); err != nil {
			log.Fatal().Err(err).Msg("Failed to write result")
		}
	}

	log.Info().
		Int("total", total).
		Int("valid", valid).
		Int("invalid", invalid).
		Int("parse_errors", parseErrors).
		Dur("duration", time.Since(startTime)).
		Msg("Batch validation complete")
}
