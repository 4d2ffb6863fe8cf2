/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package sgtin96

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	// PureIdentityURIPrefix starts the EPC pure identity URI of an SGTIN.
	PureIdentityURIPrefix = "urn:epc:id:sgtin:"

	// GTIN14Length is the number of digits in a GTIN-14.
	GTIN14Length = 14
)

var isGTIN14 = regexp.MustCompile(`^[0-9]{14}$`).MatchString

// Validate checks what decoding alone cannot: the decimal length of the
// company prefix and item reference. Binary values may fit their bit
// widths and still have too many digits for the partition.
func (r *Record) Validate() error {
	if h := Header(r.get(headerStart, headerEnd)); h != HeaderSGTIN96 {
		return formatErrorf("header %s is not %s", h, HeaderSGTIN96)
	}
	p := r.Partition()
	if p > MaxPartition {
		return formatErrorf("undefined partition %d", p)
	}
	info := partitionTable[p]
	if cp := r.CompanyPrefix(); digits(cp) > info.CompanyPrefixDigits {
		return formatErrorf("company prefix %d has more than %d digits", cp, info.CompanyPrefixDigits)
	}
	if ir := r.ItemReference(); digits(ir) > info.ItemReferenceDigits() {
		return formatErrorf("item reference %d has more than %d digits", ir, info.ItemReferenceDigits())
	}
	return nil
}

// PureIdentityURI returns urn:epc:id:sgtin:<companyPrefix>.<itemReference>.<serial>
// with company prefix and item reference zero padded to the partition's
// digit lengths.
func (r *Record) PureIdentityURI() string {
	prefix, itemRef := r.paddedReferences()
	return fmt.Sprintf("%s%s.%s.%d", PureIdentityURIPrefix, prefix, itemRef, r.Serial())
}

// TagURI is the GS1 form of String: the same fields, with company prefix
// and item reference zero padded.
func (r *Record) TagURI() string {
	prefix, itemRef := r.paddedReferences()
	return fmt.Sprintf("%s%d.%s.%s.%d", URNPrefix, r.Filter(), prefix, itemRef, r.Serial())
}

// GTIN14 returns the GTIN-14 of the trade item: the indicator digit, the
// company prefix, the rest of the item reference and a check digit.
func (r *Record) GTIN14() (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	prefix, itemRef := r.paddedReferences()
	body := itemRef[:1] + prefix + itemRef[1:]
	return body + strconv.Itoa(checkDigit(body)), nil
}

// FromGTIN14 splits a GTIN-14 into company prefix and item reference for
// the given partition. The serial is left for the caller to set.
func FromGTIN14(gtin14 string, filter, partition int) *ReferenceBuilder {
	b := NewBuilder().Filter(filter).Partition(partition)
	if b.err != nil {
		return b
	}
	if !isGTIN14(gtin14) {
		b.err = argumentErrorf("invalid GTIN-14 %q", gtin14)
		return b
	}
	body := gtin14[:GTIN14Length-1]
	if want := checkDigit(body); int(gtin14[GTIN14Length-1]-'0') != want {
		b.err = argumentErrorf("GTIN-14 %s check digit should be %d", gtin14, want)
		return b
	}

	digitsL := partitionTable[partition].CompanyPrefixDigits
	companyPrefix, err := strconv.ParseInt(body[1:digitsL+1], 10, 64)
	if err != nil {
		b.err = argumentErrorf("unable to parse company prefix: %s", err.Error())
		return b
	}
	itemReference, err := strconv.ParseInt(body[:1]+body[digitsL+1:], 10, 64)
	if err != nil {
		b.err = argumentErrorf("unable to parse item reference: %s", err.Error())
		return b
	}
	return b.CompanyPrefix(companyPrefix).ItemReference(itemReference)
}

func (r *Record) paddedReferences() (companyPrefix, itemReference string) {
	info := r.partitionInfo()
	companyPrefix = fmt.Sprintf("%0*d", info.CompanyPrefixDigits, r.CompanyPrefix())
	itemReference = fmt.Sprintf("%0*d", info.ItemReferenceDigits(), r.ItemReference())
	return
}

// checkDigit is the GS1 mod-10 check digit: weights 3 and 1 alternate from
// the rightmost digit.
func checkDigit(digits string) int {
	sum := 0
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if (len(digits)-1-i)%2 == 0 {
			d *= 3
		}
		sum += d
	}
	return (10 - sum%10) % 10
}

func digits(v int64) int {
	return len(strconv.FormatInt(v, 10))
}
