// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-insight-keeper/models"
	"github.com/go-chi/chi/v5"
)

var knownMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns a handler intended for [chi.Mux.MethodNotAllowed].
//
// It answers 405 with a JSON error body and an Allow header listing the
// methods the matched path does support. The lookup uses [chi.Mux.Match],
// so parameterised routes and routes below a mount are resolved the same
// way as during routing. The bare path of a mount point itself matches
// every method, so leaf routes must not sit directly on a mount.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, method := range knownMethods {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		writeResponse(w, r, models.ErrorResponse{Error: "method not allowed"}, http.StatusMethodNotAllowed)
	}
}

// notFound replaces chi's plain-text 404 with a JSON body.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, r, models.ErrorResponse{Error: "not found"}, http.StatusNotFound)
}
