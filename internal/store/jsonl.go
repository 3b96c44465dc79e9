// Package store reads and writes character record sets on disk: JSONL files
// for offline sources and exports, and SQLite files for exports.
package store

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/rmtable/pkg/types"
)

// readJSONL reads a JSONL file and returns each non-empty, valid JSON line as
// a json.RawMessage. Malformed lines are skipped.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically writes records to a JSONL file using the temp-file,
// fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			return fail(fmt.Errorf("writing record: %w", err))
		}
		if err := w.WriteByte('\n'); err != nil {
			return fail(fmt.Errorf("writing newline: %w", err))
		}
	}
	if err := w.Flush(); err != nil {
		return fail(fmt.Errorf("flushing buffer: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("syncing temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// ReadCharactersJSONL loads one character per line from path. Lines that are
// not valid JSON, or do not decode into a character, are skipped.
func ReadCharactersJSONL(path string) ([]types.Character, error) {
	raw, err := readJSONL(path)
	if err != nil {
		return nil, err
	}
	out := make([]types.Character, 0, len(raw))
	for _, rec := range raw {
		var ch types.Character
		if err := json.Unmarshal(rec, &ch); err != nil {
			continue
		}
		out = append(out, ch)
	}
	return out, nil
}

// WriteCharactersJSONL replaces path with one JSON object per record.
func WriteCharactersJSONL(path string, records []types.Character) error {
	raw := make([]json.RawMessage, 0, len(records))
	for _, ch := range records {
		b, err := json.Marshal(ch)
		if err != nil {
			return fmt.Errorf("marshal character %d: %w", ch.ID, err)
		}
		raw = append(raw, b)
	}
	return writeJSONL(path, raw)
}

// JSONLSource is a types.Source reading a JSONL file, for offline use.
type JSONLSource struct {
	Path string
}

// Fetch reads the file. Read failures wrap types.ErrFetch.
func (s JSONLSource) Fetch(ctx context.Context) ([]types.Character, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrFetch, err)
	}
	records, err := ReadCharactersJSONL(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrFetch, err)
	}
	return records, nil
}
