/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package tag

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/encodingscheme"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/metrics"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/sgtin96"
)

const (
	// UndefinedProductID is the constant to set the product id when it cannot be decoded
	UndefinedProductID = "undefined"
	// encodingInvalid is the constant to set when epc encoding cannot be decoded
	encodingInvalid = "encoding:invalid"
)

// NewTag decodes epc into a Tag with the first of the given decoders that
// accepts it. When none does, ProductID and URI are set to encodingInvalid.
func NewTag(decoders []encodingscheme.TagDecoder, epc string) Tag {
	tag := Tag{Epc: epc}
	tag.ProductID, tag.URI, tag.EpcEncodeFormat = decode(decoders, epc)

	if tag.EpcEncodeFormat == sgtin96.HeaderSGTIN96.String() {
		if record, err := sgtin96.Parse(epc); err == nil {
			tag.FilterValue = record.Filter()
		}
	}
	return tag
}

func decode(decoders []encodingscheme.TagDecoder, tagData string) (productID, URI, format string) {
	for idx, decoder := range decoders {
		var err error
		if productID, URI, err = decoder.Decode(tagData); err == nil {
			// a lenient decoder can return a URI without a product
			if productID == "" {
				productID = UndefinedProductID
			}
			return productID, URI, decoder.Type()
		}
		log.Warnf("decoder %d (%s) unable to decode tag data: %s",
			idx+1, decoder.Type(), err)
		metrics.Mark("Sgtin.NewTag." + decoder.Type())
	}

	log.WithFields(log.Fields{
		"Method": "NewTag",
		"Epc":    tagData,
	}).Error("unable to decode tag data with any of the configured decoders")
	metrics.Mark("Sgtin.NewTag.CalculateProductCodeError")
	return encodingInvalid, encodingInvalid, ""
}

// IsTagWhitelisted determines if the tag belongs to the list of whitelisted
// epc prefixes. The comparison ignores hex digit case. An empty list
// whitelists every tag.
func IsTagWhitelisted(epc string, whiteList []string) bool {
	if len(whiteList) == 0 {
		return true
	}
	for _, prefix := range whiteList {
		if len(epc) >= len(prefix) && strings.EqualFold(epc[:len(prefix)], prefix) {
			return true
		}
	}
	return false
}
