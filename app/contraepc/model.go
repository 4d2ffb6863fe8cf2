/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package contraepc

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/app/tag"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/encodingscheme"
)

const (
	// Source is the default source value for a contra-epc
	Source string = "contra-epc"
	// EventType is the default event type for a contra-epc
	EventType string = "arrival"
)

// CreateContraEpcRequest is the object representation for a create contra-epc request
type CreateContraEpcRequest struct {
	Gtin      string `json:"gtin"`
	Partition *int   `json:"partition,omitempty"`
	Count     int    `json:"count,omitempty"`
}

// CreateContraEpcResponse lists the generated contra-epcs
type CreateContraEpcResponse struct {
	Data []tag.Tag `json:"data"`
}

// AsNewTag converts a generated contra-epc to a decoded Tag object
func AsNewTag(decoders []encodingscheme.TagDecoder, epc string) tag.Tag {
	t := tag.NewTag(decoders, epc)
	t.Source = Source
	t.Event = EventType
	return t
}
