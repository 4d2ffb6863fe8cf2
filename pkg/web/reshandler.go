/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package web

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/sgtin96"
)

// TraceHeader carries the request's trace ID back to the client.
const TraceHeader = "X-Trace-ID"

// JSONError is the response for errors that occur within the API.
//swagger:response internalError
type JSONError struct {
	// The error message
	//in:body
	Error string `json:"error"`
}

var (
	// ErrNotFound occurs when no route or entity matches the request.
	ErrNotFound = errors.New("Entity not found")

	// ErrValidation occurs when there are validation errors.
	ErrValidation = errors.New("Validation errors occurred")

	// ErrInvalidInput occurs when the input data is invalid
	ErrInvalidInput = errors.New("Invalid input data")

	// ErrEntityTooLarge occurs when the request body exceeds the size limit
	ErrEntityTooLarge = errors.New("Request entity too large")
)

// Error handles all error responses for the API.
func Error(ctx context.Context, writer http.ResponseWriter, err error) {

	// Handling client errors
	switch errors.Cause(err) {
	case ErrNotFound:
		RespondError(ctx, writer, err, http.StatusNotFound)
		return

	case ErrValidation:
		RespondError(ctx, writer, err, http.StatusBadRequest)
		return

	case ErrInvalidInput:
		RespondError(ctx, writer, err, http.StatusBadRequest)
		return

	case ErrEntityTooLarge:
		RespondError(ctx, writer, err, http.StatusRequestEntityTooLarge)
		return

	case sgtin96.ErrRange, sgtin96.ErrArgument, sgtin96.ErrFormat:
		RespondError(ctx, writer, err, http.StatusBadRequest)
		return
	}

	// Handler server error
	contextValues := Values(ctx)
	// Log errors
	log.WithFields(log.Fields{
		"Method":     contextValues.Method,
		"RequestURI": contextValues.RequestURI,
		"TraceID":    contextValues.TraceID,
		"Code":       http.StatusInternalServerError,
		"Error":      err.Error(),
	}).Error("Server error")

	//Send a general error to the client
	serverError := errors.New("an error has occurred. Try again")
	RespondError(ctx, writer, serverError, http.StatusInternalServerError)
}

// RespondError sends JSON describing the error
func RespondError(ctx context.Context, writer http.ResponseWriter, err error, code int) {
	Respond(ctx, writer, JSONError{Error: err.Error()}, code)
}

// Respond sends JSON to the client.
// If code is StatusNoContent, v is expected to be nil.
func Respond(ctx context.Context, writer http.ResponseWriter, data interface{}, code int) {

	contextValues := Values(ctx)
	contextValues.StatusCode = code
	if contextValues.TraceID != "" {
		writer.Header().Set(TraceHeader, contextValues.TraceID)
	}

	// Just set the status code and we are done.
	if code == http.StatusNoContent || (code == http.StatusOK && data == nil) {
		writer.WriteHeader(code)
		return
	}
	if code == http.StatusCreated && data == nil {
		data = "Successful"
	}

	// Set the content type.
	writer.Header().Set("Content-Type", "application/json")

	// Write the status code to the response
	writer.WriteHeader(code)

	// Marshal the response data
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.WithFields(log.Fields{
			"Function": "web.response",
			"Action":   "MarshalIndent",
			"TraceID":  contextValues.TraceID,
			"Error":    err.Error(),
		}).Error("Error Marshalling JSON response")
		jsonData = []byte("{}")
	}

	// Send the result back to the client.
	_, err = writer.Write(jsonData)
	if err != nil {
		log.WithFields(log.Fields{
			"Function":   "web.response",
			"Action":     "ResponseWriter write()",
			"Method":     contextValues.Method,
			"RequestURI": contextValues.RequestURI,
			"TraceID":    contextValues.TraceID,
			"Error":      err.Error(),
		}).Error("Error writing JSON response")
	}
}
