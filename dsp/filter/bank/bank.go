package bank

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-telemetry/dsp/filter/iir"
)

// BypassID is the id of the entry that applies no filtering.
const BypassID = 0

const defaultBypassDescription = "No filter"

var (
	// ErrInvalidEntry reports a coefficient set that failed validation.
	ErrInvalidEntry = errors.New("bank: invalid filter entry")

	// ErrDecode reports a malformed bank document.
	ErrDecode = errors.New("bank: malformed bank document")
)

//go:embed default.json
var defaultBankJSON []byte

// Entry is one coefficient set registered under an id.
type Entry struct {
	ID int
	iir.Coefficients
}

// Bank is an ordered, read-only list of coefficient sets. Entry 0 is the
// bypass marker. A Bank is safe for concurrent use once built.
type Bank struct {
	entries []Entry
}

type bankConfig struct {
	bypassDescription string
}

func defaultBankConfig() bankConfig {
	return bankConfig{bypassDescription: defaultBypassDescription}
}

// Option configures a Bank.
type Option func(*bankConfig)

// WithBypassDescription sets the label of entry 0. Empty strings are ignored.
func WithBypassDescription(desc string) Option {
	return func(cfg *bankConfig) {
		if desc != "" {
			cfg.bypassDescription = desc
		}
	}
}

// New builds a bank from coefficient sets. The sets receive ids 1..len(sets)
// in order; id 0 is the bypass entry. Every set is validated.
func New(sets []iir.Coefficients, opts ...Option) (*Bank, error) {
	cfg := defaultBankConfig()
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	entries := make([]Entry, 0, len(sets)+1)
	entries = append(entries, Entry{
		ID:           BypassID,
		Coefficients: iir.Coefficients{Description: cfg.bypassDescription},
	})

	for i, c := range sets {
		id := i + 1
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("%w %d (%q): %w", ErrInvalidEntry, id, c.Description, err)
		}

		entries = append(entries, Entry{ID: id, Coefficients: c})
	}

	return &Bank{entries: entries}, nil
}

// document is the on-disk representation of a bank.
type document struct {
	Filters []struct {
		Description string    `json:"description"`
		ACoeff      []float64 `json:"acoeff"`
		BCoeff      []float64 `json:"bcoeff"`
	} `json:"filters"`
}

// Load decodes a JSON bank document and validates every entry.
func Load(r io.Reader, opts ...Option) (*Bank, error) {
	var doc document

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	sets := make([]iir.Coefficients, len(doc.Filters))
	for i, f := range doc.Filters {
		sets[i] = iir.Coefficients{
			Feedforward: f.ACoeff,
			Feedback:    f.BCoeff,
			Description: f.Description,
		}
	}

	return New(sets, opts...)
}

// LoadFile reads a bank document from path.
func LoadFile(path string, opts ...Option) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bank: %w", err)
	}
	defer f.Close()

	b, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return b, nil
}

// Default returns the bank compiled into the package.
func Default() *Bank {
	b, err := Load(bytes.NewReader(defaultBankJSON))
	if err != nil {
		panic("bank: embedded default bank is invalid: " + err.Error())
	}

	return b
}

// Len returns the number of entries including the bypass entry.
func (b *Bank) Len() int { return len(b.entries) }

// Entries returns a copy of the entry list. The coefficient slices are shared
// with the bank and must not be modified.
func (b *Bank) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)

	return out
}

// Select returns the entry registered under id. Ids outside [0, Len()) fall
// back to the bypass entry; ok reports whether id was found. A zero Bank
// holds only an implicit bypass entry and reports every id as missing.
func (b *Bank) Select(id int) (e Entry, ok bool) {
	if len(b.entries) == 0 {
		return Entry{
			ID:           BypassID,
			Coefficients: iir.Coefficients{Description: defaultBypassDescription},
		}, false
	}

	if id < 0 || id >= len(b.entries) {
		return b.entries[BypassID], false
	}

	return b.entries[id], true
}

// NewFilter selects id and builds a fresh filter for it. The fallback rule of
// [Bank.Select] applies.
func (b *Bank) NewFilter(id int) (*iir.Filter, Entry, bool, error) {
	e, ok := b.Select(id)

	f, err := iir.New(e.Coefficients)
	if err != nil {
		return nil, e, ok, fmt.Errorf("bank: entry %d: %w", e.ID, err)
	}

	return f, e, ok, nil
}
