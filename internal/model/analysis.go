package model

import "time"

// LabeledScore is the common unit emitted by every classification-style
// stage: a label with a calibrated confidence in [0,1]. Multi-label
// outputs carry several of these, each scored independently (scores are
// not a probability distribution).
type LabeledScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Answer is the shape a question-answering engine returns
type Answer struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// SentimentResult holds one whole-text score plus one entry per non-empty
// sentence, in source order
type SentimentResult struct {
	Overall       LabeledScore   `json:"overall"`
	SentenceLevel []LabeledScore `json:"sentence_level"`
}

// TopicResult partitions kept topic labels into the three ESG buckets.
// A label never lands in more than one bucket.
type TopicResult struct {
	Environmental []LabeledScore `json:"environmental"`
	Social        []LabeledScore `json:"social"`
	Governance    []LabeledScore `json:"governance"`
}

// RiskResult partitions kept risk labels. The opportunities bucket exists
// in the schema but the current bucketing rule never populates it.
type RiskResult struct {
	Environmental []LabeledScore `json:"environmental_risks"`
	Social        []LabeledScore `json:"social_risks"`
	Governance    []LabeledScore `json:"governance_risks"`
	Opportunities []LabeledScore `json:"opportunities"`
}

// MetricValue is one numeric occurrence found in text
type MetricValue struct {
	Value string `json:"value"` // Matched number, kept as the source string
	Unit  string `json:"unit"`
}

// MetricBundle maps named metrics to their occurrences per ESG pillar.
// Absent metrics map to an empty sequence, never to a missing key.
type MetricBundle struct {
	Environmental map[string][]MetricValue `json:"environmental"`
	Social        map[string][]MetricValue `json:"social"`
	Governance    map[string][]MetricValue `json:"governance"`
}

// ComplianceResult lists requirement verdicts. Each entry names a
// "<framework>: <requirement>" pair. A requirement that scored below the
// acceptance threshold appears in neither list; downstream reconciliation
// rebuilds that third bucket by set subtraction.
type ComplianceResult struct {
	StandardsMet        []string `json:"standards_met"`
	PotentialViolations []string `json:"potential_violations"`
	Recommendations     []string `json:"recommendations"`
}

// AnalysisResult is the aggregate output of one pipeline run. When the
// run succeeds every field is populated; there is no partial result.
type AnalysisResult struct {
	Summary    string           `json:"summary"`
	Sentiment  SentimentResult  `json:"sentiment"`
	Topics     TopicResult      `json:"topics"`
	Metrics    MetricBundle     `json:"metrics"`
	Compliance ComplianceResult `json:"compliance"`
	Risks      RiskResult       `json:"risks"`
	Timestamp  time.Time        `json:"timestamp"`
}

// ReportAnalysis extends an AnalysisResult with report-level scoring
type ReportAnalysis struct {
	AnalysisResult

	ReportType        string   `json:"report_type"`
	IndustrySector    string   `json:"industry_sector,omitempty"`
	CompletenessScore float64  `json:"completeness_score"`
	QualityScore      float64  `json:"quality_score"`
	MissingElements   []string `json:"missing_elements"`
}

// RequirementCheck is the reconciled per-requirement view built on top of
// a ComplianceResult
type RequirementCheck struct {
	MetRequirements     []string           `json:"met_requirements"`
	MissingRequirements []string           `json:"missing_requirements"`
	PartialRequirements []string           `json:"partial_requirements"`
	FrameworkScores     map[string]float64 `json:"framework_scores"`
}

// ReportSections is the assembled human-readable report
type ReportSections struct {
	ExecutiveSummary         string        `json:"executive_summary"`
	EnvironmentalPerformance []MetricEntry `json:"environmental_performance"`
	SocialImpact             []MetricEntry `json:"social_impact"`
	GovernancePractices      []MetricEntry `json:"governance_practices"`
	RiskAssessment           []RiskEntry   `json:"risk_assessment"`
	Recommendations          []string      `json:"recommendations"`
}

// MetricEntry is one displayable metric row in a report section
type MetricEntry struct {
	Metric string        `json:"metric"` // Title-cased display name
	Values []MetricValue `json:"values"`
}

// RiskEntry is one flattened risk row in a report section
type RiskEntry struct {
	Type        string  `json:"type"` // Title-cased bucket name
	Risk        string  `json:"risk"`
	Probability float64 `json:"probability"`
}
