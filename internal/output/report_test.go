package output_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	stddec "github.com/shopspring/decimal"

	"github.com/thaitax/pit-calculator/internal/config"
	"github.com/thaitax/pit-calculator/internal/domain"
	"github.com/thaitax/pit-calculator/internal/output"
)

func TestSaveConfigurationRoundTrip(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	path := filepath.Join(t.TempDir(), "filings.yaml")

	if err := output.SaveConfiguration(cfg, path); err != nil {
		t.Fatalf("SaveConfiguration error: %v", err)
	}
	loaded, err := parser.LoadFromFile(path)
	if err != nil {
		t.Fatalf("saved configuration does not load: %v", err)
	}
	if len(loaded.Filings) != len(cfg.Filings) {
		t.Fatalf("filings = %d, want %d", len(loaded.Filings), len(cfg.Filings))
	}
	if !loaded.Filings[1].Input.WithholdingTax.Equal(stddec.NewFromInt(25000)) {
		t.Fatalf("withholding tax lost: %s", loaded.Filings[1].Input.WithholdingTax)
	}
}

func TestGenerateReport_JSON_CSV(t *testing.T) {
	sc := &domain.FilingComparison{
		TaxYear: 2024,
		Filings: []domain.FilingResult{
			{Name: "Baseline", Result: &domain.TaxResult{Variant: domain.VariantSimple}},
		},
	}
	dir := t.TempDir()

	for _, format := range []string{"json", "csv"} {
		files, err := output.GenerateReport(sc, format, dir)
		if err != nil {
			t.Fatalf("GenerateReport %s error: %v", format, err)
		}
		if len(files) != 1 || !strings.HasSuffix(files[0], "."+format) {
			t.Fatalf("GenerateReport %s wrote %v", format, files)
		}
	}
}

func TestGenerateReport_All(t *testing.T) {
	sc := &domain.FilingComparison{
		TaxYear: 2024,
		Filings: []domain.FilingResult{
			{Name: "Baseline", Result: &domain.TaxResult{Variant: domain.VariantSimple}},
		},
	}
	dir := t.TempDir()

	files, err := output.GenerateReport(sc, "all", dir)
	if err != nil {
		t.Fatalf("GenerateReport all error: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %v", files)
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			t.Fatalf("missing report %s: %v", f, err)
		}
	}
}
