/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package contraepc

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/sgtin96"
)

/*
 REFERENCES
 http://www.epc-rfid.info/sgtin
 http://www.epc-rfid.info/sgtin-filter-values
 https://www.gs1.at/fileadmin/user_upload/RFIDBarcodeInterop-Guideline-i1-final-Publication.pdf
*/
const (
	// Filter is the reserved filter value that is being used for Contra EPC
	Filter = 5

	// MaxTries is the number of times to attempt to generate a unique contra-epc before giving up
	MaxTries = 25
)

// ErrNotUnique occurs when every generated contra-epc was already taken.
var ErrNotUnique = errors.New("unable to generate a unique contra-epc")

// GenerateContraEPC takes a valid gtin14 value and generates an SGTIN-96 EPC
// code with the contra-epc filter and a random serial number.
func GenerateContraEPC(gtin14 string, partition int) (string, error) {
	serialNumber, err := generateSerialNumber()
	if err != nil {
		return "", err
	}

	record, err := sgtin96.FromGTIN14(gtin14, Filter, partition).
		Serial(serialNumber).
		Build()
	if err != nil {
		return "", errors.Wrap(err, "unable to generate contra-epc")
	}
	return record.Hex(), nil
}

// GenerateUniqueContraEPC generates contra-epcs until taken reports one as
// free, giving up after MaxTries attempts.
func GenerateUniqueContraEPC(gtin14 string, partition int, taken func(epc string) bool) (string, error) {
	for try := 0; try < MaxTries; try++ {
		epc, err := GenerateContraEPC(gtin14, partition)
		if err != nil {
			return "", err
		}
		if !taken(epc) {
			return epc, nil
		}
	}
	return "", errors.Wrapf(ErrNotUnique, "gtin %s after %d tries", gtin14, MaxTries)
}

// IsContraEpc returns true if epc is an SGTIN-96 carrying the contra-epc filter
func IsContraEpc(epc string) bool {
	record, err := sgtin96.Parse(epc)
	return err == nil && record.Filter() == Filter
}

// generateSerialNumber generates a random serial number of sgtin96.SerialBits
func generateSerialNumber() (int64, error) {
	// exclusive maximum, i.e. all serial bits set plus one
	maxNum := big.NewInt(sgtin96.MaxSerial + 1)
	n, err := rand.Int(rand.Reader, maxNum)
	if err != nil {
		return 0, errors.Wrap(err, "unable to generate serial number")
	}
	return n.Int64(), nil
}
