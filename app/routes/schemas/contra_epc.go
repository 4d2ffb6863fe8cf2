/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package schemas

// CreateContraEpcSchema is the json-schema for CreateContraEpc requests
const CreateContraEpcSchema = `{
	"type": "object",
	"required": [
		"gtin"
	],
	"properties": {
		"gtin": {
			"type": "string",
			"pattern": "^\\d{14}$"
		},
		"partition": {
			"type": "integer",
			"minimum": 0,
			"maximum": 6
		},
		"count": {
			"type": "integer",
			"minimum": 1,
			"maximum": 1000
		}
	},
	"additionalProperties": false
}`
