package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// ErrNotSingleByte is returned by LookupCharmap for encodings that are not
// single-byte character maps.
var ErrNotSingleByte = errors.New("document: encoding is not a single-byte charmap")

// EncodeError reports a code the charmap cannot represent.
type EncodeError struct {
	Index int
	Code  rune
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("document: code %U at index %d is not encodable", e.Code, e.Index)
}

// Option configures Decode and Encode.
type Option func(*config)

type config struct {
	charmap *charmap.Charmap
}

func defaultConfig() config {
	return config{charmap: charmap.ISO8859_1}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithCharmap selects the character map. Nil keeps the default.
func WithCharmap(cm *charmap.Charmap) Option {
	return func(c *config) {
		if cm != nil {
			c.charmap = cm
		}
	}
}

// LookupCharmap resolves an IANA charset name such as "windows-1252".
func LookupCharmap(name string) (*charmap.Charmap, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("document: charset %q: %w", name, err)
	}
	cm, ok := enc.(*charmap.Charmap)
	if !ok {
		return nil, fmt.Errorf("document: charset %q: %w", name, ErrNotSingleByte)
	}
	return cm, nil
}

// Decode reads a whole document and returns its codes.
func Decode(r io.Reader, opts ...Option) ([]rune, error) {
	cfg := newConfig(opts)

	data, err := io.ReadAll(transform.NewReader(r, cfg.charmap.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("document: decode: %w", err)
	}
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	return []rune(string(data)), nil
}

// Encode writes codes to w. Nothing is written if any code is not
// representable.
func Encode(w io.Writer, codes []rune, opts ...Option) error {
	cfg := newConfig(opts)

	out := make([]byte, len(codes))
	for i, c := range codes {
		b, ok := cfg.charmap.EncodeRune(c)
		if !ok {
			return &EncodeError{Index: i, Code: c}
		}
		out[i] = b
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("document: encode: %w", err)
	}
	return nil
}
