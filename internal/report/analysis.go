package report

import (
	"strings"

	"github.com/greenstamp/greenstamp/internal/model"
)

// requiredElements are the five sections an ESG report is expected to
// name verbatim. Presence is a literal, case-insensitive substring check
// against the raw text.
var requiredElements = []string{
	"environmental_metrics",
	"social_metrics",
	"governance_metrics",
	"risk_assessment",
	"compliance_statement",
}

// AnalyzeReport extends a pipeline result with report-level scoring:
// completeness from the five required elements, quality from four
// boolean factors, and the title-cased list of what is missing.
func AnalyzeReport(text string, analysis model.AnalysisResult, reportType, industrySector string) model.ReportAnalysis {
	lower := strings.ToLower(text)

	present := 0
	missing := []string{}
	for _, elem := range requiredElements {
		if strings.Contains(lower, elem) {
			present++
		} else {
			missing = append(missing, titleCase(elem))
		}
	}

	qualityFactors := []bool{
		len(analysis.Metrics.Environmental["carbon_emissions"]) > 0,
		len(analysis.Risks.Environmental) > 0,
		len(analysis.Compliance.StandardsMet) > 0,
		len(analysis.Topics.Environmental) > 0 || len(analysis.Topics.Social) > 0 || len(analysis.Topics.Governance) > 0,
	}
	quality := 0
	for _, ok := range qualityFactors {
		if ok {
			quality++
		}
	}

	return model.ReportAnalysis{
		AnalysisResult:    analysis,
		ReportType:        reportType,
		IndustrySector:    industrySector,
		CompletenessScore: 100 * float64(present) / float64(len(requiredElements)),
		QualityScore:      100 * float64(quality) / float64(len(qualityFactors)),
		MissingElements:   missing,
	}
}
