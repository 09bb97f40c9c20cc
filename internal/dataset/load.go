// Package dataset streams chess positions out of .fen, .epd and .pgn
// files.
package dataset

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Files resolves path to dataset files: the file itself, or every
// supported file directly inside a folder.
func Files(path string) ([]string, error) {
	var st, err = os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return []string{path}, nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var result []string
	for _, de := range entries {
		if de.IsDir() {
			continue
		}
		switch filepath.Ext(de.Name()) {
		case ".fen", ".epd", ".pgn":
			result = append(result, filepath.Join(path, de.Name()))
		}
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("dataset: no .fen, .epd or .pgn files in %v", path)
	}
	return result, nil
}

// WalkPositions streams the FEN of every position found in path (a file
// or a folder) to fn. It stops early when ctx is cancelled or fn returns
// an error.
func WalkPositions(ctx context.Context, path string, fn func(fen string) error) error {
	files, err := Files(path)
	if err != nil {
		return err
	}
	for _, file := range files {
		var err error
		if filepath.Ext(file) == ".pgn" {
			err = walkPgnPositions(ctx, file, fn)
		} else {
			err = walkLineFile(ctx, file, fn)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// LoadFens reads every position of path into memory.
func LoadFens(path string) ([]string, error) {
	var result []string
	var err = WalkPositions(context.Background(), path, func(fen string) error {
		result = append(result, fen)
		return nil
	})
	return result, err
}

// walkLineFile reads one position per line. It accepts plain FEN, EPD
// lines with opcodes after the fourth field, and "fen;score;..." lines
// the scoring tool itself writes. Lines that cannot hold a position are
// skipped.
func walkLineFile(ctx context.Context, path string, fn func(fen string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var scanner = bufio.NewScanner(file)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.IndexByte(line, ';'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		var fields = strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		var fen = strings.Join(fields[:4], " ")
		if len(fields) >= 6 {
			if _, err := strconv.Atoi(fields[4]); err == nil {
				fen = strings.Join(fields[:6], " ")
			}
		}
		if err := fn(fen); err != nil {
			return err
		}
	}
	return scanner.Err()
}
