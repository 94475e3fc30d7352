package report

import (
	"fmt"
	"sort"

	"github.com/greenstamp/greenstamp/internal/model"
)

// Generate assembles display-ready report sections from already-computed
// analysis pieces. Only non-empty metric lists become entries; risks are
// flattened per bucket; one gap recommendation per missing requirement.
func Generate(metrics model.MetricBundle, risks model.RiskResult, check model.RequirementCheck) model.ReportSections {
	sections := model.ReportSections{
		EnvironmentalPerformance: metricEntries(metrics.Environmental),
		SocialImpact:             metricEntries(metrics.Social),
		GovernancePractices:      metricEntries(metrics.Governance),
		RiskAssessment:           []model.RiskEntry{},
		Recommendations:          []string{},
	}

	riskBuckets := []struct {
		name  string
		risks []model.LabeledScore
	}{
		{"environmental_risks", risks.Environmental},
		{"social_risks", risks.Social},
		{"governance_risks", risks.Governance},
		{"opportunities", risks.Opportunities},
	}
	for _, bucket := range riskBuckets {
		for _, ls := range bucket.risks {
			sections.RiskAssessment = append(sections.RiskAssessment, model.RiskEntry{
				Type:        titleCase(bucket.name),
				Risk:        ls.Label,
				Probability: ls.Score,
			})
		}
	}

	for _, req := range check.MissingRequirements {
		sections.Recommendations = append(sections.Recommendations, "Address compliance gap in: "+req)
	}

	envCount := len(sections.EnvironmentalPerformance)
	socialCount := len(sections.SocialImpact)
	govCount := len(sections.GovernancePractices)
	sections.ExecutiveSummary = fmt.Sprintf(
		"ESG Performance Overview\n"+
			"Total Metrics Tracked: %d\n"+
			"Environmental Metrics: %d\n"+
			"Social Metrics: %d\n"+
			"Governance Metrics: %d\n"+
			"Risk Factors Identified: %d\n"+
			"Recommendations: %d",
		envCount+socialCount+govCount,
		envCount,
		socialCount,
		govCount,
		len(sections.RiskAssessment),
		len(sections.Recommendations),
	)

	return sections
}

// metricEntries keeps only metrics with at least one occurrence, in a
// stable order so identical input assembles identical sections
func metricEntries(pillar map[string][]model.MetricValue) []model.MetricEntry {
	entries := []model.MetricEntry{}
	for _, name := range sortedKeys(pillar) {
		values := pillar[name]
		if len(values) == 0 {
			continue
		}
		entries = append(entries, model.MetricEntry{
			Metric: titleCase(name),
			Values: values,
		})
	}
	return entries
}

func sortedKeys(m map[string][]model.MetricValue) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
