/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package middlewares

import (
	"context"
	"net/http"
	"runtime/debug"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/metrics"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/web"
)

// Recover turns a panic in the wrapped handler into an error, so the client
// gets a 500 response instead of a dropped connection.
func Recover(next web.Handler) web.Handler {
	return web.Handler(func(ctx context.Context, writer http.ResponseWriter, request *http.Request) (err error) {
		defer func() {
			if r := recover(); r != nil {
				metrics.Mark("Sgtin.Recover.Panic")
				log.WithFields(log.Fields{
					"Method":     request.Method,
					"RequestURI": request.RequestURI,
					"TraceID":    web.Values(ctx).TraceID,
					"Panic":      r,
					"Stack":      string(debug.Stack()),
				}).Error("Recovered from panic")
				err = errors.Errorf("panic: %v", r)
			}
		}()
		return next(ctx, writer, request)
	})
}
