// Package respond provides the JSON response envelope used by all handlers.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type successResponse struct {
	Result interface{} `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func write(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

// OK writes a 200 response with the given payload.
func OK(w http.ResponseWriter, result interface{}) {
	write(w, http.StatusOK, successResponse{Result: result})
}

// Created writes a 201 response with the given payload.
func Created(w http.ResponseWriter, result interface{}) {
	write(w, http.StatusCreated, successResponse{Result: result})
}

// Fail writes an error response with the given status.
func Fail(w http.ResponseWriter, status int, err error) {
	write(w, status, errorResponse{Error: err.Error()})
}
