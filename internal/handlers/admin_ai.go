// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"proposalpress/internal/ai"
)

// suggestRequest is the body of POST /admin/api/suggest.
type suggestRequest struct {
	Proposal string `json:"proposal"`
	Field    string `json:"field"`
	Current  string `json:"current"`
}

// APISuggest asks the configured AI provider for replacement copy for one
// editable field. The suggestion is returned to the editor; nothing is
// written to the draft until the admin applies it.
func (a *Admin) APISuggest(w http.ResponseWriter, r *http.Request) {
	if !a.aiRegistry.Enabled() {
		writeJSONError(w, http.StatusServiceUnavailable, "No AI provider is configured.")
		return
	}

	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Malformed request body.")
		return
	}
	if req.Field == "" {
		writeJSONError(w, http.StatusBadRequest, "A field path is required.")
		return
	}

	// The client name gives the model something concrete to write toward.
	var clientName string
	if eng, err := a.engineFor(r, req.Proposal); err == nil {
		if doc := eng.Persisted(); doc != nil {
			clientName = doc.Hero.ClientName
		}
	}

	text, err := ai.Suggest(r.Context(), a.aiRegistry, req.Field, req.Current, clientName)
	if err != nil {
		if errors.Is(err, ai.ErrNoProvider) {
			writeJSONError(w, http.StatusServiceUnavailable, "No AI provider is configured.")
			return
		}
		slog.Error("ai suggestion failed", "error", err, "field", req.Field)
		writeJSONError(w, http.StatusBadGateway, "The AI provider did not answer.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}
