/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package web

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type ctxKey int

// KeyValues is how request values are stored and retrieved.
const KeyValues ctxKey = 1

// ContextValues carries the per-request state shared by the middlewares,
// the handlers and the response helpers.
type ContextValues struct {
	Method     string
	RequestURI string
	TraceID    string
	StartTime  time.Time
	StatusCode int
}

// Handler is the signature used by all application handlers in this service.
type Handler func(ctx context.Context, writer http.ResponseWriter, request *http.Request) error

// ServeHTTP seeds the request context with a trace ID and turns a returned
// error into an error response.
func (fn Handler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	values := ContextValues{
		Method:     request.Method,
		RequestURI: request.RequestURI,
		TraceID:    uuid.New().String(),
		StartTime:  time.Now(),
	}
	ctx := context.WithValue(request.Context(), KeyValues, &values)

	if err := fn(ctx, writer, request); err != nil {
		Error(ctx, writer, err)
	}
}

// Values returns the request values stored in ctx, or a zero value when the
// context did not come through ServeHTTP.
func Values(ctx context.Context) *ContextValues {
	if values, ok := ctx.Value(KeyValues).(*ContextValues); ok {
		return values
	}
	return &ContextValues{}
}
