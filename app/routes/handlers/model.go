/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package handlers

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/sgtin96"
)

// EncodeRequest is the body of an encode request
type EncodeRequest struct {
	// Defaults to 1, point of sale trade item
	Filter        *int  `json:"filter,omitempty"`
	Partition     int   `json:"partition"`
	CompanyPrefix int64 `json:"company_prefix"`
	ItemReference int64 `json:"item_reference"`
	Serial        int64 `json:"serial"`
}

// DecodeRequest is the body of a batch decode request
type DecodeRequest struct {
	Epcs []string `json:"epcs"`
	// Characters to skip at the front of every EPC, e.g. 2 for "0x"
	PrefixLength int `json:"prefix_length,omitempty"`
}

// Representation holds the fields and every textual form of an SGTIN-96
//swagger:model Representation
type Representation struct {
	sgtin96.Fields
	// 24 hex digits
	Epc string `json:"epc"`
	// tag URN with plain decimal fields
	URN string `json:"urn"`
	// GS1 EPC Tag URI
	TagURI string `json:"tag_uri"`
	// GS1 EPC Pure Identity URI
	PureURI string `json:"pure_uri"`
	// GTIN-14, absent when the fields exceed their decimal lengths
	Gtin string `json:"gtin,omitempty"`
	// 96 bits, grouped in nibbles
	Bits string `json:"bits"`
}

// DecodeResult is the outcome for one EPC of a batch decode request
type DecodeResult struct {
	Epc    string          `json:"epc"`
	Result *Representation `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// DecodeResponse lists a DecodeResult per requested EPC, in request order
type DecodeResponse struct {
	Results []DecodeResult `json:"results"`
}

func newRepresentation(record *sgtin96.Record) *Representation {
	representation := &Representation{
		Fields:  record.Fields(),
		Epc:     record.Hex(),
		URN:     record.String(),
		TagURI:  record.TagURI(),
		PureURI: record.PureIdentityURI(),
		Bits:    record.BitString(),
	}
	if gtin, err := record.GTIN14(); err == nil {
		representation.Gtin = gtin
	}
	return representation
}
