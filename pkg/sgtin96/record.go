/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package sgtin96

import (
	"strconv"
)

const (
	// TotalBits is the length of an SGTIN-96 tag.
	TotalBits = 96
	numBytes  = TotalBits / 8

	headerStart, headerEnd       = 0, 8
	filterStart, filterEnd       = 8, 11
	partitionStart, partitionEnd = 11, 14
	companyPrefixStart           = 14
	itemReferenceEnd             = companyPrefixStart + ReferenceBits
	serialStart, serialEnd       = itemReferenceEnd, TotalBits

	// SerialBits is the fixed width of the serial field.
	SerialBits = serialEnd - serialStart
	// MaxSerial is the largest serial an SGTIN-96 can carry.
	MaxSerial = 1<<SerialBits - 1

	// MaxFilter is the largest 3-bit filter value.
	MaxFilter = 7

	// DefaultFilter marks a point of sale (POS) trade item.
	DefaultFilter = 1
	// DefaultPartition gives a 9 digit company prefix and 4 digit item reference.
	DefaultPartition = 3

	maxFieldWidth = 64
)

// Record holds the 96 bits of one SGTIN-96 tag.
//
// A Record is not safe for concurrent mutation. Share it by value (Clone)
// or treat it as read-only once built. Records returned by New, Parse,
// FromBytes and Builder always carry a partition in [0, MaxPartition].
type Record struct {
	bits [numBytes]byte
}

// Fields is the decoded content of a Record.
type Fields struct {
	Filter        int   `json:"filter"`
	Partition     int   `json:"partition"`
	CompanyPrefix int64 `json:"company_prefix"`
	ItemReference int64 `json:"item_reference"`
	Serial        int64 `json:"serial"`
}

// New returns a record with the SGTIN-96 header, filter 1, partition 3 and
// zero company prefix, item reference and serial.
func New() *Record {
	r := &Record{}
	r.put(headerStart, headerEnd, uint64(HeaderSGTIN96))
	r.put(filterStart, filterEnd, DefaultFilter)
	r.put(partitionStart, partitionEnd, DefaultPartition)
	return r
}

// Clone returns an independent copy of r.
func (r *Record) Clone() *Record {
	c := *r
	return &c
}

// Header is always HeaderSGTIN96 for a Record.
func (r *Record) Header() Header {
	return HeaderSGTIN96
}

// Filter returns the 3-bit filter value.
func (r *Record) Filter() int {
	return int(r.get(filterStart, filterEnd))
}

// SetFilter accepts every 3-bit value, including the reserved 4 to 7.
func (r *Record) SetFilter(filter int) error {
	if filter < 0 || filter > MaxFilter {
		return rangeErrorf("filter %d out of range [0, %d]", filter, MaxFilter)
	}
	return r.writeField(filterStart, filterEnd, uint64(filter))
}

// Partition returns the partition value.
func (r *Record) Partition() int {
	return int(r.get(partitionStart, partitionEnd))
}

// SetPartition changes where company prefix and item reference are read and
// written from now on. Bits already written for either field are left as
// they are; set the partition first.
func (r *Record) SetPartition(partition int) error {
	if _, err := LookupPartition(partition); err != nil {
		return err
	}
	return r.writeField(partitionStart, partitionEnd, uint64(partition))
}

// CompanyPrefix returns the company prefix under the current partition.
func (r *Record) CompanyPrefix() int64 {
	info := r.partitionInfo()
	return int64(r.get(companyPrefixStart, companyPrefixStart+info.CompanyPrefixBits))
}

// SetCompanyPrefix fails with ErrArgument when the value is negative, does
// not fit the partition's bit width or has more decimal digits than the
// partition allows.
func (r *Record) SetCompanyPrefix(companyPrefix int64) error {
	info := r.partitionInfo()
	if err := checkMagnitude("company prefix", companyPrefix,
		info.CompanyPrefixBits, info.CompanyPrefixDigits); err != nil {
		return err
	}
	return r.writeField(companyPrefixStart, companyPrefixStart+info.CompanyPrefixBits, uint64(companyPrefix))
}

// ItemReference returns the item reference under the current partition.
func (r *Record) ItemReference() int64 {
	info := r.partitionInfo()
	return int64(r.get(companyPrefixStart+info.CompanyPrefixBits, itemReferenceEnd))
}

// SetItemReference fails with ErrArgument when the value is negative, does
// not fit the partition's bit width or has more decimal digits than the
// partition allows.
func (r *Record) SetItemReference(itemReference int64) error {
	info := r.partitionInfo()
	if err := checkMagnitude("item reference", itemReference,
		info.ItemReferenceBits(), info.ItemReferenceDigits()); err != nil {
		return err
	}
	return r.writeField(companyPrefixStart+info.CompanyPrefixBits, itemReferenceEnd, uint64(itemReference))
}

// Serial returns the 38-bit serial.
func (r *Record) Serial() int64 {
	return int64(r.get(serialStart, serialEnd))
}

// SetSerial fails with ErrArgument outside [0, MaxSerial].
func (r *Record) SetSerial(serial int64) error {
	if serial < 0 || serial > MaxSerial {
		return argumentErrorf("serial %d out of range [0, %d]", serial, int64(MaxSerial))
	}
	return r.writeField(serialStart, serialEnd, uint64(serial))
}

// Fields decodes every field at once.
func (r *Record) Fields() Fields {
	return Fields{
		Filter:        r.Filter(),
		Partition:     r.Partition(),
		CompanyPrefix: r.CompanyPrefix(),
		ItemReference: r.ItemReference(),
		Serial:        r.Serial(),
	}
}

func (r *Record) partitionInfo() PartitionInfo {
	return partitionTable[r.Partition()]
}

func checkMagnitude(name string, value int64, bits, digits int) error {
	if value < 0 || value >= int64(1)<<uint(bits) {
		return argumentErrorf("%s %d out of range for %d bits", name, value, bits)
	}
	if len(strconv.FormatInt(value, 10)) > digits {
		return argumentErrorf("%s %d has too many digits, max is %d", name, value, digits)
	}
	return nil
}

// writeField stores the low end-start bits of value in [start, end), most
// significant bit first: bit end-1 receives the least significant bit.
func (r *Record) writeField(start, end int, value uint64) error {
	if err := checkBitRange(start, end); err != nil {
		return err
	}
	for bit := end - 1; bit >= start; bit-- {
		r.setBit(bit, value&1 == 1)
		value >>= 1
	}
	return nil
}

// readField returns the unsigned value of bits [start, end), most
// significant bit first.
func (r *Record) readField(start, end int) (uint64, error) {
	if err := checkBitRange(start, end); err != nil {
		return 0, err
	}
	var value uint64
	for bit := start; bit < end; bit++ {
		value <<= 1
		if r.bit(bit) {
			value |= 1
		}
	}
	return value, nil
}

// get and put are for the fixed field layout, whose ranges are always valid.
func (r *Record) get(start, end int) uint64 {
	value, _ := r.readField(start, end)
	return value
}

func (r *Record) put(start, end int, value uint64) {
	_ = r.writeField(start, end, value)
}

func checkBitRange(start, end int) error {
	if start < 0 || end > TotalBits || end <= start {
		return rangeErrorf("bits from %d to %d out of range", start, end)
	}
	if end-start > maxFieldWidth {
		return rangeErrorf("bits from %d to %d wider than %d", start, end, maxFieldWidth)
	}
	return nil
}

func (r *Record) bit(i int) bool {
	return r.bits[i/8]&(0x80>>uint(i%8)) != 0
}

func (r *Record) setBit(i int, on bool) {
	mask := byte(0x80 >> uint(i%8))
	if on {
		r.bits[i/8] |= mask
	} else {
		r.bits[i/8] &^= mask
	}
}
