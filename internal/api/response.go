package api

import (
	"encoding/json"
	"log"
	"net/http"
)

// ResultKind tags which branch of the envelope a handler produced.
type ResultKind int

const (
	KindSuccess ResultKind = iota
	KindClientError
	KindServerError
)

// Result is the single response envelope. Handlers build it only through
// the constructors below, so every response carries the same headers and
// one of the three supported status codes.
type Result struct {
	Kind   ResultKind
	Status int
	Body   any
}

// MessageBody is the body shape for every error response.
type MessageBody struct {
	Message string `json:"message"`
}

func Success(body any) Result {
	return Result{Kind: KindSuccess, Status: http.StatusOK, Body: body}
}

func ClientError(message string) Result {
	return Result{Kind: KindClientError, Status: http.StatusBadRequest, Body: MessageBody{Message: message}}
}

func ServerError(message string) Result {
	return Result{Kind: KindServerError, Status: http.StatusInternalServerError, Body: MessageBody{Message: message}}
}

// Write serializes the envelope: JSON content type, permissive CORS, the
// tagged status code, body as JSON.
func (res Result) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "*")
	w.WriteHeader(res.Status)
	if err := json.NewEncoder(w).Encode(res.Body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
