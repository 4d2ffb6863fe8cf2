/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

// Package sgtin96 encodes and decodes SGTIN-96 tags, the 96-bit GS1 EPC
// binary encoding of a Serialized Global Trade Item Number.
//
// A Record owns the 96 bits of a tag, addressed MSB first (bit 0 is the
// first bit transmitted):
//
//	Header | Filter | Partition | Company Prefix | Item Reference | Serial
//	  8    |   3    |     3     |    20 - 40     |     24 - 4     |   38
//
// The partition value selects how the 44 bits in [14,58) are split between
// company prefix and item reference. Setters read the partition at call
// time, so the partition must be set before the company prefix and item
// reference. Builder makes that order the only one available.
//
// References:
//  http://www.gs1.org/sites/default/files/docs/epc/TDS_1_9_Standard.pdf
//  http://www.epc-rfid.info/sgtin
package sgtin96
