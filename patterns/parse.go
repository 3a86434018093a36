// Package patterns produces initial live sets, either parsed from coordinate files or built in.
package patterns

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/sparse-gol/model"
)

// ErrMalformedLine is wrapped by every coordinate parse failure
var ErrMalformedLine = errors.New("malformed coordinate line")

/*
ParseCoordinates reads one "row,col" pair per line from r.

Whitespace around either number is ignored, as are blank lines. Anything else,
including numbers outside the int32 range, stops parsing with an error naming
the offending line.
*/
func ParseCoordinates(r io.Reader) (model.LiveSet, error) {
	var (
		live    = model.LiveSet{}
		scanner = bufio.NewScanner(r)
		lineNo  = 0
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		c, err := parseCoordinate(line)
		if err != nil {
			return nil, errors.Wrapf(err, "[ParseCoordinates] line %d %q", lineNo, line)
		}
		live.Add(c)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, errors.Wrapf(ErrMalformedLine, "[ParseCoordinates] line %d: longer than %d bytes", lineNo+1, bufio.MaxScanTokenSize)
		}
		return nil, errors.Wrap(err, "[ParseCoordinates] failed to read input")
	}
	return live, nil
}

func parseCoordinate(line string) (model.Coordinate, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return model.Coordinate{}, errors.Wrapf(ErrMalformedLine, "expected 2 fields, got %d", len(parts))
	}

	row, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return model.Coordinate{}, errors.Wrapf(ErrMalformedLine, "bad row: %v", err)
	}
	col, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil {
		return model.Coordinate{}, errors.Wrapf(ErrMalformedLine, "bad col: %v", err)
	}
	return model.Coordinate{Row: int32(row), Col: int32(col)}, nil
}

// LoadFile parses the coordinate file at path
func LoadFile(path string) (model.LiveSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to open file: %+v", path)
	}
	defer f.Close()

	live, err := ParseCoordinates(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] %s", path)
	}
	return live, nil
}

// LoadFiles parses every file concurrently and returns the union of their cells.
// The first failure cancels the remaining loads.
func LoadFiles(ctx context.Context, paths ...string) (model.LiveSet, error) {
	var (
		sets     = make([]model.LiveSet, len(paths))
		eg, gctx = errgroup.WithContext(ctx)
	)
	for i, path := range paths {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return errors.Wrapf(err, "[LoadFiles] skipped %s", path)
			}
			live, err := LoadFile(path)
			if err != nil {
				return err
			}
			sets[i] = live
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	merged := model.LiveSet{}
	for _, live := range sets {
		merged = merged.Union(live)
	}
	return merged, nil
}
