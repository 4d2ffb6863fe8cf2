/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package sgtin96

import "github.com/pkg/errors"

var (
	// ErrRange occurs when a bit range leaves the record, or when filter or
	// partition is outside its enumerated values.
	ErrRange = errors.New("value out of range")

	// ErrArgument occurs when company prefix, item reference or serial
	// exceeds its bit width or decimal digit bound.
	ErrArgument = errors.New("invalid argument")

	// ErrFormat occurs when text or raw bits are not a valid SGTIN-96.
	ErrFormat = errors.New("invalid SGTIN-96 format")
)

func rangeErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrRange, format, args...)
}

func argumentErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrArgument, format, args...)
}

func formatErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrFormat, format, args...)
}
