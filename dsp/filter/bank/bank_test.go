package bank

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-telemetry/dsp/filter/iir"
	"github.com/google/go-cmp/cmp"
)

const sampleDoc = `{
  "filters": [
    {"description": "avg", "acoeff": [0.25, 0.25, 0.25, 0.25], "bcoeff": [1, 0, 0, 0]},
    {"description": "smooth", "acoeff": [0.2, 0.2, 0.2, 0.2], "bcoeff": [0, 0.1, 0.1, 0.1]}
  ]
}`

func TestLoad_AssignsIDs(t *testing.T) {
	b, err := Load(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []Entry{
		{ID: 0, Coefficients: iir.Coefficients{Description: "No filter"}},
		{ID: 1, Coefficients: iir.Coefficients{
			Feedforward: []float64{0.25, 0.25, 0.25, 0.25},
			Feedback:    []float64{1, 0, 0, 0},
			Description: "avg",
		}},
		{ID: 2, Coefficients: iir.Coefficients{
			Feedforward: []float64{0.2, 0.2, 0.2, 0.2},
			Feedback:    []float64{0, 0.1, 0.1, 0.1},
			Description: "smooth",
		}},
	}
	if diff := cmp.Diff(want, b.Entries()); diff != "" {
		t.Errorf("Entries mismatch (-want +got):\n%s", diff)
	}
	if b.Len() != 3 {
		t.Errorf("Len: got %d, want 3", b.Len())
	}
}

func TestLoad_RejectsInvalidEntry(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "length mismatch",
			doc:  `{"filters":[{"description":"bad","acoeff":[1,0,0,0],"bcoeff":[1,0,0]}]}`,
			want: iir.ErrLengthMismatch,
		},
		{
			name: "order too low",
			doc:  `{"filters":[{"description":"bad","acoeff":[1,0],"bcoeff":[1,0]}]}`,
			want: iir.ErrOrderTooLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			if !errors.Is(err, ErrInvalidEntry) {
				t.Fatalf("got %v, want ErrInvalidEntry", err)
			}
			if !errors.Is(err, tt.want) || !errors.Is(err, iir.ErrConfiguration) {
				t.Fatalf("got %v, want wrapped %v", err, tt.want)
			}
		})
	}
}

func TestLoad_EmptyEntryIsBypass(t *testing.T) {
	b, err := Load(strings.NewReader(`{"filters":[{"description":"pass"}]}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	e, ok := b.Select(1)
	if !ok || !e.IsBypass() || e.Description != "pass" {
		t.Fatalf("Select(1) = %+v, %v", e, ok)
	}
}

func TestLoad_Malformed(t *testing.T) {
	for _, doc := range []string{`{`, `{"filters": 3}`, `{"filterz": []}`} {
		if _, err := Load(strings.NewReader(doc)); !errors.Is(err, ErrDecode) {
			t.Errorf("Load(%q): got %v, want ErrDecode", doc, err)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o600); err != nil {
		t.Fatal(err)
	}

	b, err := LoadFile(path, WithBypassDescription("raw"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if e, _ := b.Select(0); e.Description != "raw" {
		t.Errorf("bypass description: got %q, want %q", e.Description, "raw")
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v, want os.ErrNotExist", err)
	}
}

func TestSelect_FallsBackToBypass(t *testing.T) {
	b := Default()

	for _, id := range []int{-1, b.Len(), b.Len() + 10, 1 << 30} {
		e, ok := b.Select(id)
		if ok {
			t.Errorf("Select(%d): ok = true, want false", id)
		}
		if e.ID != BypassID || !e.IsBypass() {
			t.Errorf("Select(%d): got entry %d, want bypass", id, e.ID)
		}
	}

	for id := range b.Len() {
		e, ok := b.Select(id)
		if !ok || e.ID != id {
			t.Errorf("Select(%d) = (%d, %v), want (%d, true)", id, e.ID, ok, id)
		}
	}
}

func TestDefault_AllEntriesBuild(t *testing.T) {
	b := Default()
	if b.Len() < 2 {
		t.Fatalf("default bank has %d entries", b.Len())
	}

	for _, e := range b.Entries() {
		f, _, ok, err := b.NewFilter(e.ID)
		if err != nil || !ok {
			t.Fatalf("NewFilter(%d): ok=%v err=%v", e.ID, ok, err)
		}
		if f.IsBypass() != (e.ID == BypassID) {
			t.Errorf("entry %d: IsBypass = %v", e.ID, f.IsBypass())
		}
	}
}

func TestNew_FiltersShareCoefficients(t *testing.T) {
	ff := []float64{0.2, 0.2, 0.2, 0.2}
	fb := []float64{0, 0.1, 0.1, 0.1}
	b, err := New([]iir.Coefficients{{Feedforward: ff, Feedback: fb}})
	if err != nil {
		t.Fatal(err)
	}

	f1, _, _, _ := b.NewFilter(1)
	f2, _, _, _ := b.NewFilter(1)
	if &f1.Coefficients().Feedforward[0] != &ff[0] || &f2.Coefficients().Feedforward[0] != &ff[0] {
		t.Error("filters do not borrow the bank's coefficient slices")
	}
	if f1 == f2 {
		t.Error("NewFilter returned the same filter twice")
	}
}

func TestSelect_ZeroBank(t *testing.T) {
	var b Bank

	for _, id := range []int{0, 1, -1} {
		e, ok := b.Select(id)
		if ok || e.ID != BypassID || !e.IsBypass() {
			t.Errorf("Select(%d) on zero Bank = (%+v, %v), want bypass, false", id, e, ok)
		}
	}

	f, _, ok, err := b.NewFilter(2)
	if err != nil || ok || !f.IsBypass() {
		t.Errorf("NewFilter on zero Bank: bypass=%v ok=%v err=%v", f != nil && f.IsBypass(), ok, err)
	}
}
