/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package tag

// Tag is the model containing a decoded EPC
//swagger:model Tag
type Tag struct {
	// SGTIN EPC code, as read
	Epc string `json:"epc"`
	// URI string representation of tag
	URI string `json:"uri"`
	// ProductID, the GTIN-14 of an SGTIN
	ProductID string `json:"product_id"`
	// Part of EPC, denotes packaging level of the item
	FilterValue int `json:"filter_value"`
	// Name of the decoder that understood the tag
	EpcEncodeFormat string `json:"encode_format"`
	// Facility ID
	FacilityID string `json:"facility_id,omitempty"`
	// Event reported with the tag, if any
	Event string `json:"event,omitempty"`
	// Tag last read time in milliseconds epoch
	LastRead int64 `json:"last_read,omitempty"`
	// Device or gateway the tag was reported by
	Source string `json:"source,omitempty"`
}

// IsDecoded reports whether any decoder understood the tag.
func (tag *Tag) IsDecoded() bool {
	return tag.URI != encodingInvalid
}
