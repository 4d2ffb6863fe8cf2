/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package schemas

// EventSchema is the json-schema for the EdgeX events posted to /events.
// Only the parts the service reads are constrained.
const EventSchema = `{
	"type": "object",
	"required": [
		"readings"
	],
	"properties": {
		"device": {
			"type": "string"
		},
		"readings": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": [
					"name", "value"
				],
				"properties": {
					"name": {
						"type": "string"
					},
					"value": {
						"type": "string"
					}
				}
			}
		}
	}
}`
