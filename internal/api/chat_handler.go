package api

import (
	"encoding/json"
	"net/http"
)

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// ChatHandler routes a chat message through the intent responder.
func (a *API) ChatHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	reply, err := a.responder.Respond(r.Context(), req.Message)
	if err != nil {
		a.storeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, ChatResponse{Response: reply})
}
