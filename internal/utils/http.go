// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the handlers and middleware
// of the scaffold: JSON response writing and collision-resistant file name
// generation.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with the given status
// code and an "application/json; charset=utf-8" content type.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error. Nothing is written when the header was already
// sent by a previous stage; the status is then ignored by net/http.
//
// Example usage:
//
//	utils.WriteJSON(w, http.StatusOK, models.UploadResponse{URL: url, Ext: ext})
func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if _, err = w.Write(jsonData); err != nil {
		return fmt.Errorf("error writing JSON response: %w", err)
	}
	return nil
}
