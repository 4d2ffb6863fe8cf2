/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package tag

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/encodingscheme"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/metrics"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/sgtin96"
)

var strictDecoders = []encodingscheme.TagDecoder{encodingscheme.NewSGTINDecoder(true)}

func TestCalculateGtin(t *testing.T) {
	validEpc := "303402662C3A5F904C19939D"
	assert.Equal(t, "00039307597746", NewTag(strictDecoders, validEpc).ProductID)
}

func TestCalculateInvalidGtin(t *testing.T) {
	before := testutil.ToFloat64(metrics.Counter("Sgtin.NewTag.CalculateProductCodeError"))

	tag := NewTag(strictDecoders, "001400000000000000000000")
	assert.Equal(t, encodingInvalid, tag.ProductID)
	assert.Equal(t, encodingInvalid, tag.URI)

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.Counter("Sgtin.NewTag.CalculateProductCodeError")))
}

func TestCalculateSGTINTagUrn(t *testing.T) {
	tag := NewTag(strictDecoders, "3034257BF400B7800004CB2F")
	assert.Equal(t, sgtin96.PureIdentityURIPrefix+"0614141.000734.314159", tag.URI)
}

func TestNoDecoders(t *testing.T) {
	tag := NewTag(nil, "3034257BF400B7800004CB2F")
	assert.Equal(t, encodingInvalid, tag.ProductID)
	assert.Equal(t, encodingInvalid, tag.URI)
	assert.False(t, tag.IsDecoded())
}

func TestLenientDecoderUndefinedProduct(t *testing.T) {
	lenient := []encodingscheme.TagDecoder{encodingscheme.NewSGTINDecoder(false)}

	// the company prefix of 2^30-1 has more digits than partition 3 allows
	tag := NewTag(lenient, "302FFFFFFFF0000000000000")
	assert.Equal(t, UndefinedProductID, tag.ProductID)
	assert.Equal(t, sgtin96.PureIdentityURIPrefix+"1073741823.0000.0", tag.URI)
}

func TestNewTag(t *testing.T) {
	tag := NewTag(strictDecoders, "3074257BF7194E4000001A85")

	assert.True(t, tag.IsDecoded())
	assert.Equal(t, "3074257BF7194E4000001A85", tag.Epc)
	assert.Equal(t, "80614141123458", tag.ProductID)
	assert.Equal(t, sgtin96.PureIdentityURIPrefix+"0614141.812345.6789", tag.URI)
	assert.Equal(t, 3, tag.FilterValue)
	assert.Equal(t, "SGTIN-96", tag.EpcEncodeFormat)

	invalid := NewTag(strictDecoders, "not an epc")
	assert.False(t, invalid.IsDecoded())
	assert.Empty(t, invalid.EpcEncodeFormat)
}

func TestIsTagWhitelisted(t *testing.T) {
	testCases := []struct {
		epc       string
		whiteList []string
		expected  bool
	}{
		{"3034257BF400B7800004CB2F", []string{"30"}, true},
		{"3034257BF400B7800004CB2F", []string{"3074", "3034"}, true},
		{"3034257bf400b7800004cb2f", []string{"3034257BF4"}, true},
		{"3034257BF400B7800004CB2F", []string{"3074"}, false},
		{"30", []string{"3034"}, false},
		{"3034257BF400B7800004CB2F", nil, true},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, IsTagWhitelisted(testCase.epc, testCase.whiteList),
			"%s in %v", testCase.epc, testCase.whiteList)
	}
}
