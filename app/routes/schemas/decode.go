/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package schemas

// DecodeSchema is the json-schema for batch Decode requests. Malformed EPCs
// are reported per item in the response, not here.
const DecodeSchema = `{
	"type": "object",
	"required": [
		"epcs"
	],
	"properties": {
		"epcs": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "string"
			}
		},
		"prefix_length": {
			"type": "integer",
			"minimum": 0
		}
	},
	"additionalProperties": false
}`
