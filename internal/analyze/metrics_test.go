package analyze

import (
	"context"
	"testing"

	"github.com/greenstamp/greenstamp/internal/model"
)

func TestMetricExtractor_CarbonEmissions(t *testing.T) {
	m := NewMetricExtractor()

	bundle, err := m.Extract(context.Background(), "This year we emitted 500 tons CO2 across all sites.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	values := bundle.Environmental["carbon_emissions"]
	if len(values) != 1 {
		t.Fatalf("expected 1 carbon metric, got %d", len(values))
	}
	if values[0].Value != "500" || values[0].Unit != "tons CO2e" {
		t.Errorf("unexpected metric: %+v", values[0])
	}
}

func TestMetricExtractor_PatternVariants(t *testing.T) {
	m := NewMetricExtractor()

	tests := []struct {
		text string
		want string
	}{
		{"emissions of 1,250.5 tons CO2e", "1,250.5"},
		{"roughly 42 t CO2", "42"},
		{"12000 carbon units offset", "12000"},
		{"3.5 tons of CO2 per employee", "3.5"},
	}

	for _, tt := range tests {
		bundle, _ := m.Extract(context.Background(), model.ExtractedText(tt.text))
		values := bundle.Environmental["carbon_emissions"]
		if len(values) == 0 {
			t.Errorf("no match for %q", tt.text)
			continue
		}
		if values[0].Value != tt.want {
			t.Errorf("text %q: expected value %q, got %q", tt.text, tt.want, values[0].Value)
		}
	}
}

func TestMetricExtractor_AllSlotsAlwaysPresent(t *testing.T) {
	m := NewMetricExtractor()

	bundle, _ := m.Extract(context.Background(), "no metrics in this text")

	for _, name := range environmentalMetrics {
		if bundle.Environmental[name] == nil {
			t.Errorf("environmental slot %s absent", name)
		}
	}
	for _, name := range socialMetrics {
		if bundle.Social[name] == nil {
			t.Errorf("social slot %s absent", name)
		}
	}
	for _, name := range governanceMetrics {
		if bundle.Governance[name] == nil {
			t.Errorf("governance slot %s absent", name)
		}
	}

	if len(bundle.Environmental["carbon_emissions"]) != 0 {
		t.Error("expected empty carbon metric list for unmatched text")
	}
}
