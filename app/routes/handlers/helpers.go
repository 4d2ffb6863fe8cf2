/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/app/routes/schemas"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/sgtin96"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/web"
)

// readAndValidateRequest validates the request body against schema before
// unmarshalling it into v. Schema violations are returned as an ErrorList
// for the client; any other failure is returned as an error.
func readAndValidateRequest(request *http.Request, schema string, v interface{}) (*schemas.ErrorList, error) {
	// Reading request
	body, err := io.ReadAll(request.Body)
	if err != nil {
		return nil, errors.Wrap(web.ErrValidation, err.Error())
	}

	// Validate json against schema
	schemaValidatorResult, err := schemas.ValidateSchemaRequest(body, schema)
	if err != nil {
		return nil, err
	}
	if !schemaValidatorResult.Valid() {
		result := schemas.BuildErrorsString(schemaValidatorResult.Errors())
		return &result, nil
	}

	if err = json.Unmarshal(body, v); err != nil {
		return nil, errors.Wrap(web.ErrValidation, err.Error())
	}

	return nil, nil
}

// parseEpc parses epc, skipping prefixLen characters first. A "0x" prefix is
// recognized when prefixLen is 0. When strict, the decoded fields must also
// fit the decimal lengths of their partition.
func parseEpc(epc string, prefixLen int, strict bool) (*sgtin96.Record, error) {
	if prefixLen == 0 && len(epc) > sgtin96.TransportPrefixLen && strings.EqualFold(epc[:sgtin96.TransportPrefixLen], "0x") {
		prefixLen = sgtin96.TransportPrefixLen
	}

	record, err := sgtin96.ParseWithPrefix(epc, prefixLen)
	if err != nil {
		return nil, err
	}
	if strict {
		if err := record.Validate(); err != nil {
			return nil, err
		}
	}
	return record, nil
}
