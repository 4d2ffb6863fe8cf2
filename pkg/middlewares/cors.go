/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package middlewares

import (
	"context"
	"net/http"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/web"
)

// CORS middleware. Preflight requests are answered here without reaching
// the wrapped handler.
func CORS(origin string, next web.Handler) web.Handler {
	return web.Handler(func(ctx context.Context, writer http.ResponseWriter, request *http.Request) error {
		writer.Header().Set("Access-Control-Allow-Origin", origin)
		writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		writer.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding")
		writer.Header().Set("Access-Control-Expose-Headers", web.TraceHeader)

		if request.Method == http.MethodOptions {
			writer.WriteHeader(http.StatusNoContent)
			return nil
		}
		return next(ctx, writer, request)
	})
}
