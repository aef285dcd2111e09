// Package source reads the whole content of input sources.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// StdinName is the source identifier that reads standard input.
const StdinName = "-"

// Sentinel errors. Both are recoverable per input.
var (
	ErrNotFound = errors.New("file not found")
	ErrTooLarge = errors.New("file too large")
)

// Reader reads the whole content of a source.
type Reader interface {
	Read(ctx context.Context, id string) (string, error)
}

// FileReader reads files from the local filesystem.
type FileReader struct {
	Stdin   io.Reader // used for "-"; nil means os.Stdin
	MaxSize int64     // 0 = unlimited
}

// Read returns the content of the file at id.
func (r FileReader) Read(ctx context.Context, id string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if id == StdinName {
		return r.readStdin()
	}

	info, err := os.Stat(id)
	if err != nil {
		return "", fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s: is a directory: %w", id, ErrNotFound)
	}
	if r.MaxSize > 0 && info.Size() > r.MaxSize {
		return "", fmt.Errorf("%s: %d bytes: %w", id, info.Size(), ErrTooLarge)
	}

	data, err := os.ReadFile(id)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return "", fmt.Errorf("%s: %w", id, ErrNotFound)
		}
		return "", fmt.Errorf("%s: %w: %v", id, ErrNotFound, err)
	}
	return string(data), nil
}

func (r FileReader) readStdin() (string, error) {
	in := r.Stdin
	if in == nil {
		in = os.Stdin
	}
	if r.MaxSize > 0 {
		in = io.LimitReader(in, r.MaxSize+1)
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %v", StdinName, ErrNotFound, err)
	}
	if r.MaxSize > 0 && int64(len(data)) > r.MaxSize {
		return "", fmt.Errorf("%s: %w", StdinName, ErrTooLarge)
	}
	return string(data), nil
}

// MapReader serves in-memory content keyed by source identifier.
type MapReader map[string]string

// Read returns the content stored for id.
func (m MapReader) Read(ctx context.Context, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	content, ok := m[id]
	if !ok {
		return "", fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return content, nil
}

// Recoverable reports whether err only affects the current input.
func Recoverable(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrTooLarge)
}
