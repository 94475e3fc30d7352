package server

import (
	"net/http"

	"github.com/greenstamp/greenstamp/internal/model"
	"github.com/greenstamp/greenstamp/internal/report"
)

type reportGenerateRequest struct {
	Metrics           model.MetricBundle     `json:"metrics"`
	Topics            model.TopicResult      `json:"topics"`
	ComplianceResults model.RequirementCheck `json:"compliance_results"`
	Risks             model.RiskResult       `json:"risks"`
	IndustrySector    string                 `json:"industry_sector"`
	TimePeriod        string                 `json:"time_period"`
}

type reportAnalyzeRequest struct {
	Text           string `json:"text" validate:"required"`
	ReportType     string `json:"report_type" validate:"required"`
	IndustrySector string `json:"industry_sector"`
}

func (s *Server) handleReportGenerate(w http.ResponseWriter, r *http.Request) {
	var req reportGenerateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sections := report.Generate(req.Metrics, req.Risks, req.ComplianceResults)
	WriteJSON(w, http.StatusOK, sections)
}

func (s *Server) handleReportAnalyze(w http.ResponseWriter, r *http.Request) {
	var req reportAnalyzeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	analysis, err := s.pipeline.AnalyzeText(r.Context(), model.ExtractedText(req.Text))
	if err != nil {
		respondError(w, err)
		return
	}

	result := report.AnalyzeReport(req.Text, *analysis, req.ReportType, req.IndustrySector)
	WriteJSON(w, http.StatusOK, result)
}

func (s *Server) handleReportTemplates(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"templates": report.Templates(),
	})
}
