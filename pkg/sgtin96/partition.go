/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package sgtin96

const (
	// ReferenceBits is the span shared by company prefix and item reference.
	ReferenceBits = 44
	// ReferenceDigits is the combined decimal length of company prefix and
	// item reference (a GTIN-14 minus its check digit).
	ReferenceDigits = 13

	// MaxPartition is the highest partition value with a table row.
	MaxPartition = 6
)

// PartitionInfo is one row of the SGTIN-96 partition table.
type PartitionInfo struct {
	CompanyPrefixBits   int
	CompanyPrefixDigits int
}

// ItemReferenceBits is the width left to the item reference.
func (pi PartitionInfo) ItemReferenceBits() int {
	return ReferenceBits - pi.CompanyPrefixBits
}

// ItemReferenceDigits is the decimal length of the item reference,
// including the GTIN indicator digit.
func (pi PartitionInfo) ItemReferenceDigits() int {
	return ReferenceDigits - pi.CompanyPrefixDigits
}

// Reference: http://www.epc-rfid.info/sgtin-partition-values
var partitionTable = [MaxPartition + 1]PartitionInfo{
	{40, 12},
	{37, 11},
	{34, 10},
	{30, 9},
	{27, 8},
	{24, 7},
	{20, 6},
}

// LookupPartition returns the table row for partition p.
func LookupPartition(p int) (PartitionInfo, error) {
	if p < 0 || p > MaxPartition {
		return PartitionInfo{}, rangeErrorf("partition %d out of range [0, %d]", p, MaxPartition)
	}
	return partitionTable[p], nil
}

// PartitionForDigits returns the partition whose company prefix has the
// given number of decimal digits.
func PartitionForDigits(companyPrefixDigits int) (int, error) {
	for p, info := range partitionTable {
		if info.CompanyPrefixDigits == companyPrefixDigits {
			return p, nil
		}
	}
	return 0, argumentErrorf("no partition for a %d digit company prefix", companyPrefixDigits)
}
