package http

import (
	"encoding/json"
	"net/http"

	"shortlink/pkg/problemdetails"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeProblem writes an RFC 7807 Problem Details response
func writeProblem(w http.ResponseWriter, problem *problemdetails.ProblemDetail) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(problem.Status)
	json.NewEncoder(w).Encode(problem)
}

// ShortenRequest is the body of POST /shorten
type ShortenRequest struct {
	URL string `json:"url"`
}

// BatchShortenRequest is the body of POST /shorten/batch
type BatchShortenRequest struct {
	URLs []string `json:"urls"`
}

// LinkResponse represents an issued short link
type LinkResponse struct {
	Code        string `json:"code"`
	ShortURL    string `json:"shortUrl"`
	OriginalURL string `json:"originalUrl"`
}

type BatchShortenResponse struct {
	Results []LinkResponse `json:"results"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}
