/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package schemas

// EncodeSchema is the json-schema for Encode requests. Bounds that depend on
// the partition are checked by the codec.
const EncodeSchema = `{
	"type": "object",
	"required": [
		"partition", "company_prefix", "item_reference", "serial"
	],
	"properties": {
		"filter": {
			"type": "integer",
			"minimum": 0,
			"maximum": 7
		},
		"partition": {
			"type": "integer",
			"minimum": 0,
			"maximum": 6
		},
		"company_prefix": {
			"type": "integer",
			"minimum": 0
		},
		"item_reference": {
			"type": "integer",
			"minimum": 0
		},
		"serial": {
			"type": "integer",
			"minimum": 0,
			"maximum": 274877906943
		}
	},
	"additionalProperties": false
}`
