package server

import (
	"net/http"
	"strconv"

	"github.com/greenstamp/greenstamp/internal/model"
)

func (s *Server) handleReportUpload(w http.ResponseWriter, r *http.Request) {
	path, name, ok := s.stageUpload(w, r)
	if !ok {
		return
	}
	defer s.removeStaged(path)

	text, err := s.pipeline.ExtractText(r.Context(), model.Document{Path: path, Name: name})
	if err != nil {
		respondError(w, err)
		return
	}

	stored, receipt, err := s.registrar.Register(r.Context(), path, text)
	if err != nil {
		respondError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"report":  stored,
		"receipt": receipt,
	})
}

func (s *Server) handleReportList(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.registrar.Store().List())
}

func (s *Server) handleReportGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	stored, err := s.registrar.Store().Get(id)
	if err != nil {
		respondError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stored)
}
