/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package sgtin96

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// URNPrefix starts every SGTIN-96 tag URN.
	URNPrefix = "urn:epc:tag:sgtin-96:"

	// TransportPrefixLen is the length of a "0x" style marker that some
	// readers put in front of the 24 hex digits.
	TransportPrefixLen = 2

	hexLength = TotalBits / 4
	hexChars  = "0123456789ABCDEF"
)

// BitString returns the 96 bits as 0 and 1, in groups of four.
func (r *Record) BitString() string {
	var sb strings.Builder
	for i := 0; i < TotalBits; i++ {
		if i%4 == 0 {
			sb.WriteByte(' ')
		}
		if r.bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return strings.TrimSpace(sb.String())
}

// Hex returns the tag as 24 uppercase hex digits.
func (r *Record) Hex() string {
	s, _ := r.HexRange(0, TotalBits)
	return s
}

// HexRange returns one uppercase hex digit per nibble starting at bit start,
// up to end. Ranges are expected to be nibble aligned; that is not checked.
func (r *Record) HexRange(start, end int) (string, error) {
	if start < 0 || end > TotalBits || end <= start {
		return "", rangeErrorf("bits from %d to %d out of range", start, end)
	}

	var sb strings.Builder
	for i := start; i < end; i += 4 {
		nibbleEnd := i + 4
		if nibbleEnd > TotalBits {
			nibbleEnd = TotalBits
		}
		v, err := r.readField(i, nibbleEnd)
		if err != nil {
			return "", err
		}
		// bits past the end of the tag read as zero
		v <<= uint(i + 4 - nibbleEnd)
		sb.WriteByte(hexChars[v])
	}
	return sb.String(), nil
}

// String returns the tag URN with undecorated decimal fields:
// urn:epc:tag:sgtin-96:<filter>.<companyPrefix>.<itemReference>.<serial>
func (r *Record) String() string {
	return fmt.Sprintf("%s%d.%d.%d.%d", URNPrefix,
		r.Filter(),
		r.CompanyPrefix(),
		r.ItemReference(),
		r.Serial())
}

// Bytes returns a copy of the 12 encoded bytes.
func (r *Record) Bytes() []byte {
	out := make([]byte, numBytes)
	copy(out, r.bits[:])
	return out
}

// Parse decodes 24 hex digits, in either case, into a Record. Nothing is
// skipped; use ParseWithPrefix(epc, TransportPrefixLen) for the 0x-prefixed
// form.
func Parse(epc string) (*Record, error) {
	return ParseWithPrefix(epc, 0)
}

// ParseWithPrefix skips prefixLen leading characters, such as a transport
// marker (see TransportPrefixLen), and decodes the 24 hex digits that
// follow.
func ParseWithPrefix(epc string, prefixLen int) (*Record, error) {
	if prefixLen < 0 || prefixLen > len(epc) {
		return nil, formatErrorf("cannot skip %d leading characters of %q", prefixLen, epc)
	}
	payload := epc[prefixLen:]
	if len(payload) != hexLength {
		return nil, formatErrorf("expected %d hex digits, got %d", hexLength, len(payload))
	}

	var raw [numBytes]byte
	for i := range raw {
		b, err := strconv.ParseUint(payload[i*2:i*2+2], 16, 8)
		if err != nil {
			return nil, formatErrorf("invalid hex at offset %d: %s", i*2, err.Error())
		}
		raw[i] = byte(b)
	}
	return FromBytes(raw[:])
}

// FromBytes builds a Record from 12 raw bytes. The header must be SGTIN-96
// and the partition must have a table row.
func FromBytes(data []byte) (*Record, error) {
	if len(data) != numBytes {
		return nil, formatErrorf("expected %d bytes, got %d", numBytes, len(data))
	}

	r := &Record{}
	copy(r.bits[:], data)

	if h := Header(r.get(headerStart, headerEnd)); h != HeaderSGTIN96 {
		return nil, formatErrorf("header %s is not %s", h, HeaderSGTIN96)
	}
	if p := r.Partition(); p > MaxPartition {
		return nil, formatErrorf("undefined partition %d", p)
	}
	return r, nil
}
