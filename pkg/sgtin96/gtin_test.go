/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package sgtin96

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These all need to be valid gtin14s, which means the last digit is a valid checksum
var validGtin14s = [...]string{
	"11234567890842",
	"00052177002189",
	"00888446100818",
	"00000000000000",
	"99999999999997",
	"17373737373731",
	"85784784584574",
	"00039307597746",
	"00039345597746",
}

func TestGTIN14(t *testing.T) {
	cases := map[string]string{
		gs1Example:                 "80614141123458",
		"3034257BF400B7800004CB2F": "00614141007349",
		"303402662C3A5F904C19939D": "00039307597746",
	}

	for epc, expected := range cases {
		tag, err := Parse(epc)
		require.NoError(t, err)

		gtin, err := tag.GTIN14()
		require.NoError(t, err, epc)
		assert.Equal(t, expected, gtin, epc)
	}
}

func TestFromGTIN14RoundTrip(t *testing.T) {
	for p := 0; p <= MaxPartition; p++ {
		for _, gtin14 := range validGtin14s {
			tag, err := FromGTIN14(gtin14, 5, p).Serial(12345).Build()
			if err != nil {
				t.Errorf("partition %d, gtin %s: %s", p, gtin14, err.Error())
				continue
			}
			g, err := tag.GTIN14()
			if err != nil {
				t.Errorf("error converting back to gtin14: %s", err.Error())
			} else if g != gtin14 {
				t.Errorf("mismatch converting back to gtin14 -- expected: %s, but got: %s", gtin14, g)
			}
			assert.Equal(t, 5, tag.Filter())
			assert.Equal(t, p, tag.Partition())
			assert.Equal(t, int64(12345), tag.Serial())
		}
	}
}

func TestFromGTIN14Errors(t *testing.T) {
	cases := []struct {
		gtin      string
		partition int
		cause     error
	}{
		{"123", 5, ErrArgument},
		{"123abc", 5, ErrArgument},
		{"1123456789084x", 5, ErrArgument},
		{"11234567890841", 5, ErrArgument},
		{validGtin14s[0], 7, ErrRange},
	}

	for _, c := range cases {
		_, err := FromGTIN14(c.gtin, 1, c.partition).Build()
		assert.Equal(t, c.cause, errors.Cause(err), c.gtin)
	}
}

func TestValidateDigitBounds(t *testing.T) {
	tag := New()
	assert.NoError(t, tag.Validate())

	// 2^30-1 fits partition 3's 30 bits but has 10 digits
	require.NoError(t, tag.writeField(companyPrefixStart, companyPrefixStart+30, 1<<30-1))
	assert.Equal(t, ErrFormat, errors.Cause(tag.Validate()))
	_, err := tag.GTIN14()
	assert.Equal(t, ErrFormat, errors.Cause(err))

	tag = New()
	// 2^14-1 fits 14 bits but has 5 digits
	require.NoError(t, tag.writeField(companyPrefixStart+30, itemReferenceEnd, 1<<14-1))
	assert.Equal(t, ErrFormat, errors.Cause(tag.Validate()))

	tag = New()
	require.NoError(t, tag.writeField(headerStart, headerEnd, 0x31))
	assert.Equal(t, ErrFormat, errors.Cause(tag.Validate()))
}

func TestCheckDigit(t *testing.T) {
	assert.Equal(t, 8, checkDigit("8061414112345"))
	assert.Equal(t, 0, checkDigit("0000000000000"))
	assert.Equal(t, 7, checkDigit("9999999999999"))
}
