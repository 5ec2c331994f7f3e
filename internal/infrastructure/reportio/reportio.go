// Package reportio reads analyzer reports from files or standard input.
//
// Reports may be stored compressed; gzip and zstd content is detected by
// its magic bytes and decompressed transparently.
package reportio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/felixgeelhaar/cxxcodes/pkg/pathutil"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// DefaultMaxSize bounds the decompressed size of a report.
const DefaultMaxSize int64 = 256 << 20

// ErrTooLarge is returned when a report exceeds the size limit.
var ErrTooLarge = errors.New("report exceeds size limit")

// Encoding is the compression detected on a report.
type Encoding string

const (
	EncodingNone Encoding = "none"
	EncodingGzip Encoding = "gzip"
	EncodingZstd Encoding = "zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Loader reads reports.
type Loader struct {
	stdin   io.Reader
	maxSize int64
}

// Option configures a Loader.
type Option func(*Loader)

// WithStdin replaces the reader used for the "-" path.
func WithStdin(r io.Reader) Option {
	return func(l *Loader) {
		l.stdin = r
	}
}

// WithMaxSize sets the decompressed size limit. Values <= 0 keep the default.
func WithMaxSize(n int64) Option {
	return func(l *Loader) {
		if n > 0 {
			l.maxSize = n
		}
	}
}

// NewLoader creates a loader reading "-" from os.Stdin.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		stdin:   os.Stdin,
		maxSize: DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the report at path, or standard input when path is "-".
func (l *Loader) Load(path string) ([]byte, error) {
	if pathutil.IsStdin(path) {
		return l.Read(l.stdin)
	}

	cleaned, err := pathutil.ValidateFile(path)
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}

	f, err := os.Open(cleaned) // #nosec G304 - path validated above
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer f.Close()

	data, err := l.Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Read reads a complete report from r, decompressing it if needed.
func (l *Loader) Read(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(zstdMagic))

	var src io.Reader = br
	switch Detect(head) {
	case EncodingGzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip reader error: %w", err)
		}
		defer zr.Close()
		src = zr
	case EncodingZstd:
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("zstd reader error: %w", err)
		}
		defer dec.Close()
		src = dec
	}

	data, err := io.ReadAll(io.LimitReader(src, l.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("decompress error: %w", err)
	}
	if int64(len(data)) > l.maxSize {
		return nil, fmt.Errorf("%w (%d bytes)", ErrTooLarge, l.maxSize)
	}
	return data, nil
}

// Detect reports the compression of a stream starting with head.
func Detect(head []byte) Encoding {
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		return EncodingZstd
	case bytes.HasPrefix(head, gzipMagic):
		return EncodingGzip
	default:
		return EncodingNone
	}
}

// Load reads a report with the default loader.
func Load(path string) ([]byte, error) {
	return NewLoader().Load(path)
}
