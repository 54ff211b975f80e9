package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const peekSize = 4096

type bom struct {
	prefix  []byte
	decoder *encoding.Decoder
	// skip is the number of prefix bytes to discard when no decoding
	// is needed (UTF-8 BOM).
	skip int
}

func boms() []bom {
	return []bom{
		{prefix: []byte{0xEF, 0xBB, 0xBF}, skip: 3},
		{prefix: []byte{0xFF, 0xFE}, decoder: unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()},
		{prefix: []byte{0xFE, 0xFF}, decoder: unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()},
	}
}

// NewUTF8Reader wraps r in a reader that yields UTF-8, whatever the
// source charset. Spreadsheet exports arrive as UTF-8, UTF-16, or a
// legacy single-byte codepage depending on the tool that wrote them.
//
// Detection order: BOM, UTF-8 validation, chardet heuristics, then a
// Windows-1252 fallback.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	buf, err := br.Peek(peekSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	for _, b := range boms() {
		if !bytes.HasPrefix(buf, b.prefix) {
			continue
		}

		if b.decoder != nil {
			return transform.NewReader(br, b.decoder), nil
		}

		_, _ = br.Discard(b.skip)

		return br, nil
	}

	if utf8.Valid(buf) {
		return br, nil
	}

	if dec := detectCharmap(buf); dec != nil {
		return transform.NewReader(br, dec), nil
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}

func detectCharmap(buf []byte) *encoding.Decoder {
	result, err := chardet.NewTextDetector().DetectBest(buf)
	if err != nil {
		return nil
	}

	switch result.Charset {
	case "ISO-8859-1", "windows-1252":
		return charmap.Windows1252.NewDecoder()
	case "ISO-8859-9":
		return charmap.ISO8859_9.NewDecoder()
	case "ISO-8859-15":
		return charmap.ISO8859_15.NewDecoder()
	}

	return nil
}
