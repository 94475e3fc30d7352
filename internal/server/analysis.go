package server

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/phuslu/log"

	"github.com/greenstamp/greenstamp/internal/model"
)

type analyzeTextRequest struct {
	Text string `json:"text" validate:"required"`
}

type validateComplianceRequest struct {
	Text      string   `json:"text" validate:"required"`
	Standards []string `json:"standards"`
}

func (s *Server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to GreenStamp API",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"provider": s.pipeline.Engine().Name(),
	})
}

func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req analyzeTextRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := s.pipeline.AnalyzeText(r.Context(), model.ExtractedText(req.Text))
	if err != nil {
		respondError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

func (s *Server) handleExtractMetrics(w http.ResponseWriter, r *http.Request) {
	var req analyzeTextRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	metrics, err := s.pipeline.ExtractMetrics(r.Context(), model.ExtractedText(req.Text))
	if err != nil {
		respondError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, metrics)
}

// handleValidateCompliance checks the text against the full catalog. The
// requested standards list is accepted for interface compatibility; the
// compliance stage always evaluates every framework.
func (s *Server) handleValidateCompliance(w http.ResponseWriter, r *http.Request) {
	var req validateComplianceRequest
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

func (s *Server) handleAnalyzeDocument(w http.ResponseWriter, r *http.Request) {
	path, name, ok := s.stageUpload(w, r)
	if !ok {
		return
	}
	defer s.removeStaged(path)

	result, err := s.pipeline.AnalyzeDocument(r.Context(), model.Document{Path: path, Name: name})
	if err != nil {
		respondError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// stageUpload writes the uploaded file to the staging dir and returns its
// path plus the client-supplied filename. A false return means the error
// response has been written. The caller owns cleanup.
func (s *Server) stageUpload(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	if err := r.ParseMultipartForm(s.config.Server.MaxUploadBytes); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return "", "", false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "missing file field: "+err.Error())
		return "", "", false
	}
	defer func() { _ = file.Close() }()

	dir := s.config.UploadDir
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "greenstamp-uploads")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		respondError(w, err)
		return "", "", false
	}

	// Random staging name; the original extension drives kind detection
	path := filepath.Join(dir, uuid.NewString()+filepath.Ext(header.Filename))
	dst, err := os.Create(path)
	if err != nil {
		respondError(w, err)
		return "", "", false
	}

	if _, err := io.Copy(dst, file); err != nil {
		_ = dst.Close()
		s.removeStaged(path)
		respondError(w, err)
		return "", "", false
	}
	if err := dst.Close(); err != nil {
		s.removeStaged(path)
		respondError(w, err)
		return "", "", false
	}

	return path, header.Filename, true
}

func (s *Server) removeStaged(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn().Str("path", path).Err(err).Msg("staged upload cleanup failed")
	}
}
