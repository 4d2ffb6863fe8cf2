/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/sgtin96"
)

func serve(t *testing.T, handler Handler) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest("GET", "/test", nil))
	return recorder
}

func TestServeHTTPSetsContextValues(t *testing.T) {
	var seen *ContextValues
	recorder := serve(t, func(ctx context.Context, writer http.ResponseWriter, request *http.Request) error {
		seen = Values(ctx)
		Respond(ctx, writer, map[string]string{"status": "ok"}, http.StatusOK)
		return nil
	})

	require.NotNil(t, seen)
	assert.Equal(t, "GET", seen.Method)
	assert.Equal(t, "/test", seen.RequestURI)
	assert.NotEmpty(t, seen.TraceID)
	assert.Equal(t, http.StatusOK, seen.StatusCode)
	assert.Equal(t, seen.TraceID, recorder.Header().Get(TraceHeader))
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestErrorStatusCodes(t *testing.T) {
	testCases := []struct {
		err  error
		code int
	}{
		{errors.Wrap(ErrNotFound, "no tag"), http.StatusNotFound},
		{errors.Wrap(ErrValidation, "bad json"), http.StatusBadRequest},
		{errors.Wrap(ErrInvalidInput, "bad epc"), http.StatusBadRequest},
		{ErrEntityTooLarge, http.StatusRequestEntityTooLarge},
		{errors.Wrap(sgtin96.ErrRange, "serial"), http.StatusBadRequest},
		{sgtin96.ErrFormat, http.StatusBadRequest},
		{errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, testCase := range testCases {
		err := testCase.err
		recorder := serve(t, func(ctx context.Context, writer http.ResponseWriter, request *http.Request) error {
			return err
		})
		assert.Equal(t, testCase.code, recorder.Code, err.Error())

		var body JSONError
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		if testCase.code == http.StatusInternalServerError {
			assert.Equal(t, "an error has occurred. Try again", body.Error)
		} else {
			assert.Equal(t, err.Error(), body.Error)
		}
	}
}

func TestRespondNoContent(t *testing.T) {
	recorder := serve(t, func(ctx context.Context, writer http.ResponseWriter, request *http.Request) error {
		Respond(ctx, writer, nil, http.StatusOK)
		return nil
	})
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}

func TestValuesWithoutServeHTTP(t *testing.T) {
	values := Values(context.Background())
	require.NotNil(t, values)
	assert.Empty(t, values.TraceID)
}
