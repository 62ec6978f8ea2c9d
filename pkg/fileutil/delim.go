package fileutil

import (
	"bufio"
	"context"
	"fmt"

	"github.com/viant/afs"
)

// DelimReader provides a helper/utility to read line-oriented delimited
// file(s). Files are addressed by URL so tests can use mem:// assets and
// callers can pass plain paths.
type DelimReader struct {
	fs  afs.Service
	URL string
}

// NewDelimReader returns a DelimReader for the specified file URL
func NewDelimReader(fs afs.Service, URL string) *DelimReader {
	if fs == nil {
		fs = afs.New()
	}
	return &DelimReader{
		fs:  fs,
		URL: URL,
	}
}

// FirstLine reads ONLY the first line of the file. The second return
// value is false when the file holds no lines at all.
func (r *DelimReader) FirstLine(ctx context.Context) (string, bool, error) {
	rc, err := r.fs.OpenURL(ctx, r.URL)
	if err != nil {
		return "", false, fmt.Errorf("opening %s: %w", r.URL, err)
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", false, fmt.Errorf("reading first line of %s: %w", r.URL, err)
		}
		return "", false, nil
	}
	return sc.Text(), true, nil
}

// EachLine reads and processes the file line by line, allows for
// streaming large file(s). Line numbers passed to processorFn are
// one-based file line numbers.
func (r *DelimReader) EachLine(ctx context.Context, processorFn func(lineno int, line string) error) error {
	rc, err := r.fs.OpenURL(ctx, r.URL)
	if err != nil {
		return fmt.Errorf("opening %s: %w", r.URL, err)
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	lineno := 0
	for sc.Scan() {
		lineno++
		if err := processorFn(lineno, sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", r.URL, err)
	}
	return nil
}
