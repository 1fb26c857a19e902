// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-web-scaffold/internal/web"
)

// NotFound is registered as both the NotFound and the MethodNotAllowed
// handler of the root router. A path served only for other methods is
// therefore reported as missing instead of leaking its existence with a
// 405.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) error {
	return web.NotFound(r)
}
