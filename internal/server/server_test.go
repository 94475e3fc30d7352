package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/greenstamp/greenstamp/internal/chatbot"
	"github.com/greenstamp/greenstamp/internal/inference"
	"github.com/greenstamp/greenstamp/internal/model"
	"github.com/greenstamp/greenstamp/internal/pipeline"
	"github.com/greenstamp/greenstamp/internal/provenance"
)

const sampleText = "Our company reduced carbon emissions significantly this year. " +
	"We achieved strong progress on renewable energy and resource management. " +
	"The board maintains direct oversight of climate matters."

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := model.DefaultConfig()
	cfg.Limiter.RequestsPerSecond = 1000
	cfg.Limiter.Burst = 1000
	cfg.UploadDir = t.TempDir()

	p, err := pipeline.New(cfg)
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}

	engine := p.Engine()
	bot := chatbot.New(p.KnowledgeBase(), engine, func() (inference.Generator, error) {
		return engine, nil
	}, cfg.Chatbot.HistoryLimit)
	registrar := provenance.NewRegistrar(engine, provenance.NewMemoryLedger(), provenance.NewStore())

	return New(cfg, p, bot, registrar)
}

func doJSON(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response: %v\n%s", err, rec.Body.String())
	}
}

func TestWelcomeAndHealth(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("GET / = %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("GET /health = %d", rec.Code)
	}
	var health map[string]interface{}
	decodeBody(t, rec, &health)
	if health["status"] != "healthy" || health["provider"] != "keyword" {
		t.Errorf("health = %v", health)
	}
}

func TestAnalyzeText(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/analyze-text", map[string]string{"text": sampleText})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var result model.AnalysisResult
	decodeBody(t, rec, &result)
	if result.Summary == "" || result.Timestamp.IsZero() {
		t.Errorf("incomplete result: %+v", result)
	}
}

func TestAnalyzeText_InvalidBody(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze-text", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d", rec.Code)
	}

	// Valid JSON but missing the required text field.
	rec = doJSON(t, srv, http.MethodPost, "/analyze-text", map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty text status = %d", rec.Code)
	}
}

func TestExtractMetrics(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/extract-metrics", map[string]string{
		"text": "We emitted 500 tons CO2 in the period.",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var bundle model.MetricBundle
	decodeBody(t, rec, &bundle)
	carbon := bundle.Environmental["carbon_emissions"]
	if len(carbon) != 1 || carbon[0].Value != "500" {
		t.Errorf("carbon = %+v", carbon)
	}
}

func TestValidateCompliance(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/validate-compliance", map[string]interface{}{
		"text":      sampleText,
		"standards": []string{"GRI"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var compliance model.ComplianceResult
	decodeBody(t, rec, &compliance)
	if compliance.StandardsMet == nil || compliance.PotentialViolations == nil {
		t.Error("compliance lists must be present")
	}
}

func TestFrameworksCatalog(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/compliance/frameworks", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Frameworks []model.FrameworkSummary `json:"frameworks"`
	}
	decodeBody(t, rec, &body)
	if len(body.Frameworks) != 3 {
		t.Errorf("frameworks = %+v", body.Frameworks)
	}
}

func TestFrameworkRequirements(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/compliance/requirements/TCFD", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var fw model.Framework
	decodeBody(t, rec, &fw)
	if fw.ID != "TCFD" || len(fw.Requirements) != 3 {
		t.Errorf("framework = %+v", fw)
	}

	rec = doJSON(t, srv, http.MethodGet, "/compliance/requirements/ISO14001", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown framework status = %d", rec.Code)
	}
}

func TestCheckRequirements(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/compliance/check-requirements", map[string]interface{}{
		"text":       sampleText,
		"frameworks": []string{"TCFD"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var check model.RequirementCheck
	decodeBody(t, rec, &check)
	total := len(check.MetRequirements) + len(check.MissingRequirements) + len(check.PartialRequirements)
	if total != 8 {
		t.Errorf("classified %d of 8 TCFD requirements", total)
	}
	if _, ok := check.FrameworkScores["TCFD"]; !ok {
		t.Error("missing TCFD score")
	}
}

func TestReportTemplates(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/reporting/templates", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "standard_esg") {
		t.Errorf("templates body = %s", rec.Body.String())
	}
}

func TestReportAnalyze(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/reporting/analyze", map[string]string{
		"text":        "environmental_metrics social_metrics risk_assessment. " + sampleText,
		"report_type": "annual",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var result model.ReportAnalysis
	decodeBody(t, rec, &result)
	if result.CompletenessScore != 60.0 {
		t.Errorf("completeness = %v", result.CompletenessScore)
	}
	if result.ReportType != "annual" {
		t.Errorf("report type = %q", result.ReportType)
	}
}

func TestReportGenerate(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/reporting/generate", map[string]interface{}{
		"metrics": model.MetricBundle{
			Environmental: map[string][]model.MetricValue{
				"carbon_emissions": {{Value: "500", Unit: "tons CO2e"}},
			},
		},
		"compliance_results": model.RequirementCheck{
			MissingRequirements: []string{"TCFD: Board oversight"},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var sections model.ReportSections
	decodeBody(t, rec, &sections)
	if len(sections.EnvironmentalPerformance) != 1 {
		t.Errorf("sections = %+v", sections)
	}
	if !strings.Contains(sections.ExecutiveSummary, "Total Metrics Tracked: 1") {
		t.Errorf("summary = %q", sections.ExecutiveSummary)
	}
}

func TestChatAndHistory(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/chat", map[string]string{
		"user_id": "u1",
		"message": "Tell me about GRI",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var reply model.ChatReply
	decodeBody(t, rec, &reply)
	if reply.Type != "regulation" || reply.Regulation != "GRI" {
		t.Errorf("reply = %+v", reply)
	}

	rec = doJSON(t, srv, http.MethodGet, "/chat/history/u1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("history status = %d", rec.Code)
	}
	var body struct {
		History []model.ChatMessage `json:"history"`
	}
	decodeBody(t, rec, &body)
	if len(body.History) != 2 {
		t.Errorf("history = %+v", body.History)
	}
}

func uploadRequest(t *testing.T, path, filename, content string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAnalyzeDocument(t *testing.T) {
	srv := newTestServer(t)

	req := uploadRequest(t, "/analyze-document", "report.txt", sampleText)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var result model.AnalysisResult
	decodeBody(t, rec, &result)
	if result.Summary == "" {
		t.Error("missing summary")
	}
}

func TestAnalyzeDocument_MissingFile(t *testing.T) {
	srv := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/analyze-document", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestReportRegistry(t *testing.T) {
	srv := newTestServer(t)

	req := uploadRequest(t, "/reports/upload", "report.txt",
		"Carbon emissions fell. Water usage improved across all sites.")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("upload status = %d: %s", rec.Code, rec.Body.String())
	}

	var uploaded struct {
		Report  model.StoredReport  `json:"report"`
		Receipt model.LedgerReceipt `json:"receipt"`
	}
	decodeBody(t, rec, &uploaded)
	if uploaded.Report.ID != 1 || uploaded.Receipt.TxID == "" {
		t.Errorf("uploaded = %+v", uploaded)
	}

	rec = doJSON(t, srv, http.MethodGet, "/reports", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var list []model.StoredReport
	decodeBody(t, rec, &list)
	if len(list) != 1 {
		t.Errorf("list = %+v", list)
	}

	rec = doJSON(t, srv, http.MethodGet, "/reports/1", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("get status = %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodGet, "/reports/99", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing report status = %d", rec.Code)
	}
}
