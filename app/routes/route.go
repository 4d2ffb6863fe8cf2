/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/app/config"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/app/routes/handlers"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/metrics"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/middlewares"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/web"
)

// Route struct holds attributes to declare routes
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc web.Handler
}

// NewRouter creates the routes for GET and POST from the loaded AppConfig
func NewRouter() *mux.Router {
	sgtin := handlers.Sgtin{
		Decoders:           config.AppConfig.TagDecoders,
		EpcFilters:         config.AppConfig.EpcFilters,
		HexPrefixLength:    config.AppConfig.HexPrefixLength,
		MaxSize:            config.AppConfig.ResponseLimit,
		Strict:             config.AppConfig.StrictDecoding,
		ContraEpcPartition: config.AppConfig.ContraEpcPartition,
	}

	var routes = []Route{
		//swagger:operation GET / default Healthcheck
		//
		// Healthcheck Endpoint
		//
		// Endpoint that is used to determine if the application is ready to take web requests
		//
		// ---
		// produces:
		// - application/json
		//
		// responses:
		//   '200':
		//     description: OK
		//
		{
			"Index",
			"GET",
			"/",
			sgtin.Index,
		},
		//swagger:route POST /sgtin96/encode sgtin96 encode
		//
		// Encode an SGTIN-96
		//
		// Builds the 96-bit EPC from its fields. The filter defaults to 1.
		//
		// Example Input:
		// ```
		// {
		//   "filter": 3,
		//   "partition": 5,
		//   "company_prefix": 614141,
		//   "item_reference": 812345,
		//   "serial": 6789
		// }
		// ```
		//
		//     Consumes:
		//     - application/json
		//
		//     Produces:
		//     - application/json
		//
		//     Responses:
		//       200: Representation
		//       400: schemaValidation
		//       413: entityTooLarge
		//
		{
			"Encode",
			"POST",
			"/sgtin96/encode",
			sgtin.Encode,
		},
		//swagger:route POST /sgtin96/decode sgtin96 decodeBatch
		//
		// Decode a list of SGTIN-96 EPCs
		//
		// Every EPC gets either a result or an error, in request order.
		//
		//     Consumes:
		//     - application/json
		//
		//     Produces:
		//     - application/json
		//
		//     Responses:
		//       200: DecodeResponse
		//       400: schemaValidation
		//       413: entityTooLarge
		//
		{
			"DecodeBatch",
			"POST",
			"/sgtin96/decode",
			sgtin.DecodeBatch,
		},
		//swagger:route POST /sgtin96/contraepc sgtin96 createContraEpc
		//
		// Generate contra-epcs
		//
		// Generates SGTIN-96 EPCs with the reserved filter 5 and a random serial for a GTIN-14.
		//
		//     Consumes:
		//     - application/json
		//
		//     Produces:
		//     - application/json
		//
		//     Responses:
		//       201: CreateContraEpcResponse
		//       400: schemaValidation
		//       500: internalError
		//
		{
			"CreateContraEpc",
			"POST",
			"/sgtin96/contraepc",
			sgtin.CreateContraEpc,
		},
		//swagger:route GET /sgtin96/{epc} sgtin96 getEpc
		//
		// Decode an SGTIN-96 EPC
		//
		// The EPC is 24 hex digits, optionally preceded by "0x".
		//
		//     Produces:
		//     - application/json
		//
		//     Responses:
		//       200: Representation
		//       400: internalError
		//
		{
			"GetEpc",
			"GET",
			"/sgtin96/{epc}",
			sgtin.GetEpc,
		},
		//swagger:route POST /events events postEvent
		//
		// Decode the tags of an EdgeX event
		//
		// Handles inventory_data, inventory_event and controller_heartbeat readings; others are skipped.
		//
		//     Consumes:
		//     - application/json
		//
		//     Produces:
		//     - application/json
		//
		//     Responses:
		//       200: Result
		//       400: schemaValidation
		//
		{
			"PostEvent",
			"POST",
			"/events",
			sgtin.PostEvent,
		},
	}

	router := mux.NewRouter().StrictSlash(true)
	for _, route := range routes {

		var handler = route.HandlerFunc
		handler = middlewares.Recover(handler)
		handler = middlewares.Logger(route.Name, handler)
		handler = middlewares.Bodylimiter(handler)

		methods := []string{route.Method}
		if config.AppConfig.EnableCORS {
			handler = middlewares.CORS(config.AppConfig.CORSOrigin, handler)
			methods = append(methods, http.MethodOptions)
		}

		router.
			Methods(methods...).
			Path(route.Pattern).
			Name(route.Name).
			Handler(handler)
	}

	router.
		Methods("GET").
		Path("/metrics").
		Name("Metrics").
		Handler(metrics.Handler())

	router.NotFoundHandler = middlewares.Recover(sgtin.NotFound)

	return router
}
