/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package sgtin96_test

import (
	"fmt"
	"log"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/sgtin96"
)

func ExampleNewBuilder() {
	tag, err := sgtin96.NewBuilder().
		Filter(3).
		Partition(5).
		CompanyPrefix(614141).
		ItemReference(812345).
		Serial(6789).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(tag.Hex())
	fmt.Println(tag)
	fmt.Println(tag.PureIdentityURI())
	// Output:
	// 3074257BF7194E4000001A85
	// urn:epc:tag:sgtin-96:3.614141.812345.6789
	// urn:epc:id:sgtin:0614141.812345.6789
}

func ExampleParse() {
	tag, err := sgtin96.Parse("3034257BF400B7800004CB2F")
	if err != nil {
		log.Fatal(err)
	}

	gtin, err := tag.GTIN14()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%+v\n", tag.Fields())
	fmt.Println(gtin)
	// Output:
	// {Filter:1 Partition:5 CompanyPrefix:614141 ItemReference:734 Serial:314159}
	// 00614141007349
}

func ExampleNew() {
	tag := sgtin96.New()
	fmt.Println(tag.BitString()[:24])
	fmt.Println(tag)
	// Output:
	// 0011 0000 0010 1100 0000
	// urn:epc:tag:sgtin-96:1.0.0.0
}
