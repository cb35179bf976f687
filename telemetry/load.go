package telemetry

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	colTime        = 1
	colCurrent     = 2
	colTemperature = 3

	temperatureRowWidth = 4
)

var (
	// ErrMissingHeader reports an input without even a header row.
	ErrMissingHeader = errors.New("telemetry: missing header row")

	// ErrShortRow reports a data row without time and current columns.
	ErrShortRow = errors.New("telemetry: short row")
)

// Log holds the series read from one telemetry file.
type Log struct {
	Current     Series
	Temperature Series

	// BadFields counts numeric fields that failed to parse and were read as 0.
	BadFields int
}

type loadConfig struct {
	delimiter rune
}

func defaultLoadConfig() loadConfig {
	return loadConfig{delimiter: ';'}
}

// Option configures Load.
type Option func(*loadConfig)

// WithDelimiter sets the field separator. Default is ';'. The decimal comma
// is only recognized when the delimiter is not ','.
func WithDelimiter(r rune) Option {
	return func(cfg *loadConfig) {
		if r != 0 && r != '\n' && r != '\r' && r != '"' {
			cfg.delimiter = r
		}
	}
}

// Load reads a telemetry log. The first row is a header and is skipped.
func Load(r io.Reader, opts ...Option) (*Log, error) {
	cfg := defaultLoadConfig()
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	cr := csv.NewReader(r)
	cr.Comma = cfg.delimiter
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingHeader
		}

		return nil, fmt.Errorf("telemetry: read header: %w", err)
	}

	p := parser{decimalComma: cfg.delimiter != ','}
	log := &Log{}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("telemetry: %w", err)
		}

		if len(row) <= colCurrent {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d fields", ErrShortRow, line, len(row))
		}

		t := p.float(row[colTime])
		log.Current.append(t, p.float(row[colCurrent]))

		if len(row) == temperatureRowWidth {
			log.Temperature.append(t, p.float(row[colTemperature]))
		}
	}

	log.BadFields = p.bad

	return log, nil
}

// LoadFile reads a telemetry log from path.
func LoadFile(path string, opts ...Option) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}
	defer f.Close()

	log, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return log, nil
}

type parser struct {
	decimalComma bool
	bad          int
}

// float parses s, accepting a decimal comma. Unparsable input yields 0.
func (p *parser) float(s string) float64 {
	s = strings.TrimSpace(s)
	if p.decimalComma {
		s = strings.ReplaceAll(s, ",", ".")
	}

	v, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return v // ±Inf or rounded to zero
	}
	if err != nil {
		p.bad++
		return 0
	}

	return v
}
