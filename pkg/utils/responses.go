package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every JSON body is wrapped in.
type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func ResponseJSON(w http.ResponseWriter, code int, status bool, message string, data, errors any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(Response{
		Status:  status,
		Message: message,
		Data:    data,
		Errors:  errors,
	})
}

func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusOK, true, message, data, nil)
}

func ResponseCreated(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusCreated, true, message, data, nil)
}

// ResponseNoContent answers a successful delete; no body is written.
func ResponseNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func responseError(w http.ResponseWriter, code int, message string, errors any) {
	ResponseJSON(w, code, false, message, nil, errors)
}

// ResponseBadRequest carries per-field messages in errors, keyed by the
// json name of the offending field.
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	responseError(w, http.StatusBadRequest, message, errors)
}

func ResponseUnauthorized(w http.ResponseWriter, message string) {
	responseError(w, http.StatusUnauthorized, message, nil)
}

func ResponseForbidden(w http.ResponseWriter, message string) {
	responseError(w, http.StatusForbidden, message, nil)
}

func ResponseNotFound(w http.ResponseWriter, message string) {
	responseError(w, http.StatusNotFound, message, nil)
}

// ResponseInternalError never includes the underlying error; callers log it.
func ResponseInternalError(w http.ResponseWriter, message string) {
	responseError(w, http.StatusInternalServerError, message, nil)
}
