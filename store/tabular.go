package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Row is one record of a tabular resource, keyed by folded (lowercased,
// trimmed) header name.
type Row map[string]string

// Get returns the value for a header name, or "" if absent.
func (r Row) Get(key string) string {
	return r[strings.ToLower(strings.TrimSpace(key))]
}

// GetAny returns the first present value among alternate header names.
func (r Row) GetAny(keys ...string) string {
	for _, k := range keys {
		if v, ok := r[strings.ToLower(strings.TrimSpace(k))]; ok {
			return v
		}
	}
	return ""
}

// Table is a fully loaded tabular resource. Header keeps the file's column
// names verbatim so a rewrite can preserve columns the app never consumed.
type Table struct {
	Header []string
	Rows   []Row
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load reads a comma-separated resource. A missing file is an empty
// resource, not an error. Reads tolerate UTF-8 and UTF-16 byte-order marks
// (spreadsheet exports carry them). Rows shorter than the header are padded;
// ragged rows never abort the load.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	text, err := decodeBOM(raw)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	reader := csv.NewReader(bytes.NewReader(text))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: read header: %w", path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	t := &Table{Header: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// single bad line must not kill the resource
			continue
		}
		row := make(Row, len(header))
		for i, h := range header {
			val := ""
			if i < len(record) {
				val = record[i]
			}
			row[strings.ToLower(h)] = val
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// decodeBOM strips a UTF-8 BOM or transcodes UTF-16 input to UTF-8.
func decodeBOM(raw []byte) ([]byte, error) {
	if bytes.HasPrefix(raw, utf8BOM) {
		return raw[len(utf8BOM):], nil
	}
	if len(raw) >= 2 {
		var enc encoding.Encoding
		switch {
		case raw[0] == 0xFF && raw[1] == 0xFE:
			enc = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
		case raw[0] == 0xFE && raw[1] == 0xFF:
			enc = unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
		}
		if enc != nil {
			decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
			if err != nil {
				return nil, fmt.Errorf("decode utf-16: %w", err)
			}
			return decoded, nil
		}
	}
	return raw, nil
}

// Save rewrites a resource in full: UTF-8 BOM, header line, then records.
// encoding/csv quote-escapes embedded commas and doubles embedded quotes.
func Save(path string, header []string, records [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	werr := writeCSV(f, header, records)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("save %s: %w", path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("save %s: %w", path, cerr)
	}
	return nil
}

func writeCSV(f *os.File, header []string, records [][]string) error {
	if _, err := f.Write(utf8BOM); err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
