package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jeonsilai/guardrails-server/internal/models"
	"github.com/rs/zerolog"
)

// Record is one JSONL line of the batch input. A line that fails to parse
// carries its error here instead of aborting the whole run.
type Record struct {
	Line    int
	Request models.InputValidationRequest
	Error   error
}

type Reader struct {
	source io.Reader
	logger *zerolog.Logger
}

func NewReader(source io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		source: source,
		logger: logger,
	}
}

// ReadAll streams records over a channel until the input is exhausted or
// the context is cancelled. Blank lines are skipped.
func (r *Reader) ReadAll(ctx context.Context) <-chan Record {
	out := make(chan Record)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(r.source)
		scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

		line := 0
		for scanner.Scan() {
			line++
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}

			rec := Record{Line: line}
			if err := json.Unmarshal([]byte(text), &rec.Request); err != nil {
				rec.Error = fmt.Errorf("line %d: %w", line, err)
			}

			select {
			case out <- rec:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			r.logger.Error().Err(err).Msg("Failed to read batch input")
		}
	}()

	return out
}
