/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package middlewares

import (
	"context"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/metrics"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/web"
)

// Logger writes one debug line per request and records its latency under
// the route name.
func Logger(name string, next web.Handler) web.Handler {
	return web.Handler(func(ctx context.Context, writer http.ResponseWriter, request *http.Request) error {
		err := next(ctx, writer, request)

		values := web.Values(ctx)
		elapsed := time.Since(values.StartTime)
		metrics.Timer("Sgtin." + name + ".Latency").Observe(elapsed.Seconds())
		fields := log.Fields{
			"Method":     request.Method,
			"RequestURI": request.RequestURI,
			"TraceID":    values.TraceID,
			"Code":       values.StatusCode,
			"Duration":   elapsed.String(),
		}
		// the error response is written after this returns
		if err != nil {
			fields["Error"] = err.Error()
		}
		log.WithFields(fields).Debug("Request handled")

		return err
	})
}
