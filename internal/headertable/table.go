// Package headertable builds a table of pre-encoded header values, the
// kind a server keeps for response headers it writes on every request.
package headertable

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"golang.org/x/text/encoding"

	"github.com/map-protocol/strvals"
)

// DefaultCharset is used when neither the table nor a header names one.
const DefaultCharset = "UTF-8"

// HeaderConfig is one header as written in configuration.  Value and
// Values may both be set; Value comes first.
type HeaderConfig struct {
	Name    string
	Value   *string
	Values  []string
	Charset string
}

type Config struct {
	Charset string
	Headers []HeaderConfig
}

// Entry is one built header.
type Entry struct {
	Name    string
	Charset string
	Value   strvals.PreEncoded
}

// Table holds entries in first-seen order of their names.
type Table struct {
	entries []Entry
}

// Build encodes every header in cfg.  Headers repeated under the same
// name (case-insensitively) are merged in order, the way repeated header
// fields combine.  A header that ends up with no values is an error.
func Build(cfg Config) (*Table, error) {
	defaultCharset := strings.TrimSpace(cfg.Charset)
	if defaultCharset == "" {
		defaultCharset = DefaultCharset
	}

	type pending struct {
		name    string
		charset string
		values  strvals.Values
	}
	var order []*pending
	byName := make(map[string]*pending, len(cfg.Headers))

	for i, h := range cfg.Headers {
		name := strings.TrimSpace(h.Name)
		if name == "" {
			return nil, fmt.Errorf("header %d: missing name", i)
		}
		charset := strings.TrimSpace(h.Charset)
		if charset == "" {
			charset = defaultCharset
		}
		vals := strvals.Concat(strvals.FromStringPtr(h.Value), strvals.FromSlice(h.Values))

		key := strings.ToLower(name)
		if p, ok := byName[key]; ok {
			if !strings.EqualFold(p.charset, charset) {
				return nil, fmt.Errorf("header %q: conflicting charsets %q and %q", name, p.charset, charset)
			}
			p.values = strvals.Concat(p.values, vals)
			continue
		}
		p := &pending{name: name, charset: charset, values: vals}
		byName[key] = p
		order = append(order, p)
	}

	encodings := make(map[string]encoding.Encoding)
	t := &Table{entries: make([]Entry, 0, len(order))}
	for _, p := range order {
		enc, ok := encodings[strings.ToLower(p.charset)]
		if !ok {
			var err error
			enc, err = strvals.LookupEncoding(p.charset)
			if err != nil {
				return nil, fmt.Errorf("header %q: %w", p.name, err)
			}
			encodings[strings.ToLower(p.charset)] = enc
		}
		pe, err := strvals.NewPreEncoded(p.values, enc)
		if err != nil {
			return nil, fmt.Errorf("header %q: %w", p.name, err)
		}
		t.entries = append(t.entries, Entry{Name: p.name, Charset: p.charset, Value: pe})
	}
	return t, nil
}

// Len returns the number of distinct headers.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns the entries in table order.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Lookup finds a header by case-insensitive name.
func (t *Table) Lookup(name string) (Entry, bool) {
	for _, e := range t.entries {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Entry{}, false
}

// Size returns the total number of encoded value bytes in the table.
func (t *Table) Size() int {
	n := 0
	for _, e := range t.entries {
		b, _, _ := e.Value.TryGetPreEncoded()
		n += len(b)
	}
	return n
}

// WriteText writes one "Name: value" line per header.  With dump set each
// line is followed by the encoded size and a hex dump of the bytes.
func (t *Table) WriteText(w io.Writer, dump bool) error {
	for _, e := range t.entries {
		if _, err := fmt.Fprintf(w, "%s: %s\n", e.Name, e.Value.String()); err != nil {
			return err
		}
		if !dump {
			continue
		}
		b, _, _ := e.Value.TryGetPreEncoded()
		if _, err := fmt.Fprintf(w, "  %s %s: %s\n", humanize.Bytes(uint64(len(b))), e.Charset, hex.EncodeToString(b)); err != nil {
			return err
		}
	}
	return nil
}

type jsonEntry struct {
	Name    string         `json:"name"`
	Values  strvals.Values `json:"values"`
	Charset string         `json:"charset"`
	Size    int            `json:"size"`
	Hash    string         `json:"hash"`
}

// WriteJSON writes the table as a JSON array.
func (t *Table) WriteJSON(w io.Writer) error {
	out := make([]jsonEntry, len(t.entries))
	for i, e := range t.entries {
		b, _, _ := e.Value.TryGetPreEncoded()
		out[i] = jsonEntry{
			Name:    e.Name,
			Values:  e.Value.Values(),
			Charset: e.Charset,
			Size:    len(b),
			Hash:    fmt.Sprintf("%016x", e.Value.Values().Hash()),
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
