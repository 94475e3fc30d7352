package server

import "net/http"

// setupRoutes registers all endpoints
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleWelcome)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Analysis
	mux.HandleFunc("POST /analyze-text", s.handleAnalyzeText)
	mux.HandleFunc("POST /extract-metrics", s.handleExtractMetrics)
	mux.HandleFunc("POST /validate-compliance", s.handleValidateCompliance)
	mux.HandleFunc("POST /analyze-document", s.handleAnalyzeDocument)

	// Compliance catalog
	mux.HandleFunc("POST /compliance/validate", s.handleComplianceValidate)
	mux.HandleFunc("GET /compliance/frameworks", s.handleFrameworks)
	mux.HandleFunc("GET /compliance/requirements/{id}", s.handleFrameworkRequirements)
	mux.HandleFunc("POST /compliance/check-requirements", s.handleCheckRequirements)

	// Reporting
	mux.HandleFunc("POST /reporting/generate", s.handleReportGenerate)
	mux.HandleFunc("POST /reporting/analyze", s.handleReportAnalyze)
	mux.HandleFunc("GET /reporting/templates", s.handleReportTemplates)

	// Chatbot
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("GET /chat/history/{user}", s.handleChatHistory)

	// Report registry
	mux.HandleFunc("POST /reports/upload", s.handleReportUpload)
	mux.HandleFunc("GET /reports", s.handleReportList)
	mux.HandleFunc("GET /reports/{id}", s.handleReportGet)

	return mux
}
