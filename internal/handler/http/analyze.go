// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/models"
)

// analyze runs one incremental turn. The response carries operations only;
// the caller merges them into its own block list.
func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.AnalysisRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	response, err := h.services.AnalysisService.Analyze(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if response.Blocks == nil {
		response.Blocks = []models.BlockOperation{}
	}

	log.Debug().
		Int("operations", len(response.Blocks)).
		Int("used", response.Usage.Used).
		Int("limit", response.Usage.Limit).
		Msg("analysis turn completed")

	writeResponse(w, r, response, http.StatusOK)
}
