package server

import (
	"net/http"

	"github.com/greenstamp/greenstamp/internal/model"
	"github.com/greenstamp/greenstamp/internal/report"
)

type complianceRequest struct {
	Text           string   `json:"text" validate:"required"`
	Frameworks     []string `json:"frameworks"`
	IndustrySector string   `json:"industry_sector"`
}

func (s *Server) handleComplianceValidate(w http.ResponseWriter, r *http.Request) {
	var req complianceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	compliance, err := s.pipeline.AnalyzeCompliance(r.Context(), model.ExtractedText(req.Text))
	if err != nil {
		respondError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, compliance)
}

func (s *Server) handleFrameworks(w http.ResponseWriter, r *http.Request) {
	frameworks := s.pipeline.KnowledgeBase().Frameworks()
	summaries := make([]model.FrameworkSummary, 0, len(frameworks))
	for _, fw := range frameworks {
		summaries = append(summaries, fw.Summary())
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"frameworks": summaries,
	})
}

func (s *Server) handleFrameworkRequirements(w http.ResponseWriter, r *http.Request) {
	fw, err := s.pipeline.KnowledgeBase().Requirements(r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, fw)
}

func (s *Server) handleCheckRequirements(w http.ResponseWriter, r *http.Request) {
	var req complianceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	compliance, err := s.pipeline.AnalyzeCompliance(r.Context(), model.ExtractedText(req.Text))
	if err != nil {
		respondError(w, err)
		return
	}

	check, err := report.CheckRequirements(s.pipeline.KnowledgeBase(), compliance, req.Frameworks)
	if err != nil {
		respondError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, check)
}
