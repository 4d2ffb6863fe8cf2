/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package schemas

import (
	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/web"
)

// ValidateSchemaRequest validates the api request body with the required json schema
func ValidateSchemaRequest(jsonBody []byte, schema string) (*gojsonschema.Result, error) {
	if len(jsonBody) == 0 {
		return nil, errors.Wrapf(web.ErrInvalidInput, "request body cannot be empty")
	}

	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(jsonBody)

	validatorResult, err := gojsonschema.Validate(schemaLoader, documentLoader)

	if err != nil {
		return nil, errors.Wrap(web.ErrInvalidInput, err.Error())
	}

	return validatorResult, nil
}

// ErrorList provides a collection of errors for processing
//swagger:response schemaValidation
type ErrorList struct {
	// The error list
	//in:body
	Errors []ErrReport `json:"errors"`
}

//ErrReport is used to wrap schema validation errors int json object
type ErrReport struct {
	Field       string      `json:"field"`
	ErrorType   string      `json:"errortype"`
	Value       interface{} `json:"value"`
	Description string      `json:"description"`
}

// BuildErrorsString concatenates errors and builds pretty error strings
func BuildErrorsString(resultsErrors []gojsonschema.ResultError) ErrorList {
	var errorList ErrorList

	for _, err := range resultsErrors {

		// err.Field() is not set for "required" error
		var field string
		if property, ok := err.Details()["property"].(string); ok {
			field = property
		} else {
			field = err.Field()
		}

		// ignore extraneous "number_one_of" error
		if err.Type() == "number_one_of" {
			continue
		}
		errorList.Errors = append(errorList.Errors, ErrReport{
			Field:       field,
			Description: err.Description(),
			ErrorType:   err.Type(),
			Value:       err.Value(),
		})
	}

	return errorList
}
