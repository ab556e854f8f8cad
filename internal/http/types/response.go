// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope of every JSON body returned by the API.
type Response struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Meta    any    `json:"_meta,omitempty"`
}

// ErrorResponse carries only the status and a human readable message.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(body)
}

func WriteData(w http.ResponseWriter, status int, message string, data any) error {
	return WriteJSON(w, status, Response{Data: data, Message: message, Status: status})
}

func WritePage(w http.ResponseWriter, message string, data any, meta any) error {
	return WriteJSON(w, http.StatusOK, Response{Data: data, Message: message, Status: http.StatusOK, Meta: meta})
}

func WriteError(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, ErrorResponse{Status: status, Message: message})
}

// DecodeJSON rejects bodies with fields the target does not declare.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
