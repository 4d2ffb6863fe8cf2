/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

// SGTIN Service.
//
// Encodes, decodes and generates SGTIN-96 RFID tag EPCs.
//
//     Schemes: http
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//
// swagger:meta
package main

// Request Entity Too Large
//swagger:response entityTooLarge
type entityTooLarge struct {
}

