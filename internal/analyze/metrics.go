package analyze

import (
	"context"
	"regexp"

	"github.com/greenstamp/greenstamp/internal/model"
)

// carbonPattern matches a number (optional thousands separator and
// decimal part), an optional "tons"/"t" token, then "CO2e" or "carbon"
var carbonPattern = regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?)\s*(?:tons?|t)?\s*(?:of\s+)?(?:CO2e?|carbon)`)

// Metric slot names per pillar. Only carbon emissions has an extraction
// pattern today; the remaining slots are a known gap and always come back
// empty, never absent. Adding a pattern means adding it here and in
// extractors below.
var (
	environmentalMetrics = []string{
		"carbon_emissions",
		"energy_consumption",
		"water_usage",
		"waste_generated",
	}
	socialMetrics = []string{
		"employee_diversity",
		"training_hours",
		"safety_incidents",
		"community_investment",
	}
	governanceMetrics = []string{
		"board_diversity",
		"ethics_violations",
		"compliance_rate",
	}
)

// MetricExtractor pattern-matches numeric ESG metrics in text. It calls
// no engine and cannot fail; the error return keeps the stage contract
// uniform.
type MetricExtractor struct{}

// NewMetricExtractor creates the metric stage
func NewMetricExtractor() *MetricExtractor {
	return &MetricExtractor{}
}

// Extract returns the fixed three-pillar bundle with every slot present
func (m *MetricExtractor) Extract(_ context.Context, text model.ExtractedText) (model.MetricBundle, error) {
	bundle := model.MetricBundle{
		Environmental: emptySlots(environmentalMetrics),
		Social:        emptySlots(socialMetrics),
		Governance:    emptySlots(governanceMetrics),
	}

	for _, match := range carbonPattern.FindAllStringSubmatch(string(text), -1) {
		bundle.Environmental["carbon_emissions"] = append(bundle.Environmental["carbon_emissions"], model.MetricValue{
			Value: match[1],
			Unit:  "tons CO2e",
		})
	}

	return bundle, nil
}

func emptySlots(names []string) map[string][]model.MetricValue {
	slots := make(map[string][]model.MetricValue, len(names))
	for _, name := range names {
		slots[name] = []model.MetricValue{}
	}
	return slots
}
