package server

import "net/http"

type chatRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reply, err := s.bot.Respond(r.Context(), req.UserID, req.Message)
	if err != nil {
		respondError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, reply)
}

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"history": s.bot.History(r.PathValue("user")),
	})
}
