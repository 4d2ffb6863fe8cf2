/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package encodingscheme

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/sgtin96"
)

// TagDecoder turns raw tag data into a product ID and a URI.
type TagDecoder interface {
	Decode(tagData string) (productID, URI string, err error)
	Type() string
}

type sgtinDecoder struct {
	strict bool
}

// NewSGTINDecoder returns a new tag decoder for SGTIN-96 encoded tags.
//
// If strict is true, after successful decoding, the decoder checks that the
// company prefix and item reference fit the decimal lengths of the tag's
// partition. A lenient decoder still returns the URI of such a tag, with an
// empty productID.
//
// The URI returned by the decoder is the EPC Pure Identity URI. The productID
// is the SGTIN's GTIN-14 representation.
func NewSGTINDecoder(strict bool) TagDecoder {
	return &sgtinDecoder{strict: strict}
}

func (d *sgtinDecoder) Type() string {
	return sgtin96.HeaderSGTIN96.String()
}

func (d *sgtinDecoder) Decode(tagData string) (productID, URI string, err error) {
	var s *sgtin96.Record
	s, err = sgtin96.Parse(tagData)
	if err != nil {
		return
	}
	if d.strict {
		if err = s.Validate(); err != nil {
			return
		}
	}

	URI = s.PureIdentityURI()
	if gtin, gtinErr := s.GTIN14(); gtinErr == nil {
		productID = gtin
	}
	return
}
