package reportio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/felixgeelhaar/cxxcodes/pkg/pathutil"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `<?xml version="1.0"?><results version="2"><errors/></results>`

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zstdBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

func TestDetect(t *testing.T) {
	assert.Equal(t, EncodingGzip, Detect([]byte{0x1f, 0x8b, 0x08}))
	assert.Equal(t, EncodingZstd, Detect([]byte{0x28, 0xb5, 0x2f, 0xfd}))
	assert.Equal(t, EncodingNone, Detect([]byte("<?xm")))
	assert.Equal(t, EncodingNone, Detect(nil))
}

func TestLoader_Read(t *testing.T) {
	tests := []struct {
		name  string
		input func(t *testing.T) []byte
	}{
		{"plain", func(*testing.T) []byte { return []byte(doc) }},
		{"gzip", func(t *testing.T) []byte { return gzipBytes(t, []byte(doc)) }},
		{"zstd", func(t *testing.T) []byte { return zstdBytes(t, []byte(doc)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := NewLoader().Read(bytes.NewReader(tt.input(t)))

			require.NoError(t, err)
			assert.Equal(t, doc, string(data))
		})
	}
}

func TestLoader_Read_Empty(t *testing.T) {
	data, err := NewLoader().Read(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLoader_Read_CorruptGzip(t *testing.T) {
	_, err := NewLoader().Read(bytes.NewReader([]byte{0x1f, 0x8b, 0x00, 0x00}))

	assert.Error(t, err)
}

func TestLoader_Read_TooLarge(t *testing.T) {
	_, err := NewLoader(WithMaxSize(8)).Read(strings.NewReader(doc))

	assert.True(t, errors.Is(err, ErrTooLarge))
}

func TestLoader_Read_ExactlyAtLimit(t *testing.T) {
	data, err := NewLoader(WithMaxSize(int64(len(doc)))).Read(strings.NewReader(doc))

	require.NoError(t, err)
	assert.Len(t, data, len(doc))
}

func TestLoader_Load_File(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "report.xml")
	packed := filepath.Join(dir, "report.xml.gz")
	require.NoError(t, os.WriteFile(plain, []byte(doc), 0o600))
	require.NoError(t, os.WriteFile(packed, gzipBytes(t, []byte(doc)), 0o600))

	for _, p := range []string{plain, packed} {
		data, err := Load(p)
		require.NoError(t, err)
		assert.Equal(t, doc, string(data))
	}
}

func TestLoader_Load_Stdin(t *testing.T) {
	l := NewLoader(WithStdin(strings.NewReader(doc)))

	data, err := l.Load(pathutil.Stdin)

	require.NoError(t, err)
	assert.Equal(t, doc, string(data))
}

func TestLoader_Load_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.xml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = Load(dir)
	assert.True(t, errors.Is(err, pathutil.ErrIsDirectory))

	_, err = Load("")
	assert.True(t, errors.Is(err, pathutil.ErrEmptyPath))
}
