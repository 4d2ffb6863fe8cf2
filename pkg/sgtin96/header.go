/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package sgtin96

import "fmt"

// Header is the 8-bit EPC header identifying the tag class. The set of
// known headers is closed; only SGTIN-96 is modelled.
type Header uint8

const (
	// HeaderSGTIN96 is 0011 0000.
	HeaderSGTIN96 Header = 0x30
)

type headerInfo struct {
	name      string
	totalBits int
}

var knownHeaders = map[Header]headerInfo{
	HeaderSGTIN96: {name: "SGTIN-96", totalBits: 96},
}

// IsKnown reports whether h is one of the modelled tag classes.
func (h Header) IsKnown() bool {
	_, ok := knownHeaders[h]
	return ok
}

// TotalBits is the encoded length of the tag class, or 0 if unknown.
func (h Header) TotalBits() int {
	return knownHeaders[h].totalBits
}

func (h Header) String() string {
	if info, ok := knownHeaders[h]; ok {
		return info.name
	}
	return fmt.Sprintf("Header(0x%02X)", uint8(h))
}
