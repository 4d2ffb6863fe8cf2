/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package sgtin96

// Builder collects the fields that do not depend on the partition. Calling
// Partition moves on to a ReferenceBuilder, the only place company prefix
// and item reference can be set, so they are always written under their
// final partition.
//
//	rec, err := sgtin96.NewBuilder().
//		Filter(3).
//		Partition(5).
//		CompanyPrefix(614141).
//		ItemReference(812345).
//		Serial(6789).
//		Build()
type Builder struct {
	rec *Record
	err error
}

// ReferenceBuilder sets the partition dependent fields and the serial. The
// first error is kept and returned by Build.
type ReferenceBuilder struct {
	rec *Record
	err error
}

// NewBuilder starts from New's defaults.
func NewBuilder() *Builder {
	return &Builder{rec: New()}
}

// Filter sets the filter value.
func (b *Builder) Filter(filter int) *Builder {
	if b.err == nil {
		b.err = b.rec.SetFilter(filter)
	}
	return b
}

// Partition fixes the partition for the rest of the build.
func (b *Builder) Partition(partition int) *ReferenceBuilder {
	rb := &ReferenceBuilder{rec: b.rec.Clone(), err: b.err}
	if rb.err == nil {
		rb.err = rb.rec.SetPartition(partition)
	}
	return rb
}

// CompanyPrefix sets the company prefix.
func (b *ReferenceBuilder) CompanyPrefix(companyPrefix int64) *ReferenceBuilder {
	if b.err == nil {
		b.err = b.rec.SetCompanyPrefix(companyPrefix)
	}
	return b
}

// ItemReference sets the item reference.
func (b *ReferenceBuilder) ItemReference(itemReference int64) *ReferenceBuilder {
	if b.err == nil {
		b.err = b.rec.SetItemReference(itemReference)
	}
	return b
}

// Serial sets the serial.
func (b *ReferenceBuilder) Serial(serial int64) *ReferenceBuilder {
	if b.err == nil {
		b.err = b.rec.SetSerial(serial)
	}
	return b
}

// Build returns the record, or the first error met while building it.
func (b *ReferenceBuilder) Build() (*Record, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.rec.Clone(), nil
}
