/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package middlewares

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/metrics"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/web"
)

// max size limit of body 1MB; a full decode batch is far below this
const (
	requestMaxSize = 1 << 20
)

// Bodylimiter middleware
func Bodylimiter(next web.Handler) web.Handler {
	return web.Handler(func(ctx context.Context, writer http.ResponseWriter, request *http.Request) error {
		if request.Method != http.MethodPost && request.Method != http.MethodPut {
			return next(ctx, writer, request)
		}

		// check based on content length
		headerSet := request.Header.Get("Content-Length")
		if headerSet != "" && request.ContentLength > requestMaxSize {
			return tooLarge(ctx, request)
		}

		// If header not set, set content length based on actual size of the body
		if headerSet == "" {
			var buf bytes.Buffer
			reqBody := http.MaxBytesReader(writer, request.Body, requestMaxSize)
			bodySize, err := buf.ReadFrom(reqBody)
			if err != nil {
				return tooLarge(ctx, request)
			}
			request.ContentLength = bodySize
			request.Header.Set("Content-Length", strconv.FormatInt(bodySize, 10))
			request.Body = io.NopCloser(&buf)
		}
		return next(ctx, writer, request)
	})
}

func tooLarge(ctx context.Context, request *http.Request) error {
	metrics.Mark("Sgtin.Bodylimiter.EntityTooLarge")
	log.WithFields(log.Fields{
		"Method":     request.Method,
		"RequestURI": request.RequestURI,
		"TraceID":    web.Values(ctx).TraceID,
		"Code":       http.StatusRequestEntityTooLarge,
	}).Error("Request entity too large")
	return errors.Wrapf(web.ErrEntityTooLarge, "limit is %d bytes", requestMaxSize)
}
