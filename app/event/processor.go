/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

// Package event decodes the tags carried by EdgeX events published by RFID
// controllers.
package event

import (
	"github.com/edgexfoundry/go-mod-core-contracts/models"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/app/heartbeat"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/app/slices"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/app/tag"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/encodingscheme"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/jsonrpc"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/metrics"
)

// Reading names understood by ProcessEvent.
const (
	InventoryEvent      = "inventory_event"
	InventoryData       = "inventory_data"
	ControllerHeartbeat = "controller_heartbeat"
)

// ErrNoReadings occurs when an event carries nothing to process.
var ErrNoReadings = errors.New("event has no readings")

// Result is the outcome of processing one event.
type Result struct {
	// Decoded tags, in reading order
	Tags []tag.Tag `json:"tags"`
	// Tags dropped by the EPC filters
	Filtered int `json:"filtered"`
	// Readings with a name this service does not handle
	Skipped int `json:"skipped"`
	// Devices that sent a heartbeat
	Heartbeats []string `json:"heartbeats,omitempty"`
}

// Processor holds what is needed to turn tag reads into decoded tags.
type Processor struct {
	Decoders []encodingscheme.TagDecoder
	// EPC prefixes to keep; empty keeps every tag
	Filters []string
	// Characters stripped from the front of every EPC before decoding
	PrefixLen int
}

// ProcessEvent decodes the tags of every inventory reading in event.
func ProcessEvent(event models.Event, decoders []encodingscheme.TagDecoder, filters []string, prefixLen int) (Result, error) {
	processor := Processor{Decoders: decoders, Filters: filters, PrefixLen: prefixLen}
	return processor.Process(event)
}

// Process decodes the tags of every inventory reading in event. The first
// reading that is not a valid message aborts processing.
func (processor *Processor) Process(event models.Event) (Result, error) {
	result := Result{Tags: []tag.Tag{}}
	if len(event.Readings) < 1 {
		return result, ErrNoReadings
	}

	for _, reading := range event.Readings {
		switch reading.Name {

		case ControllerHeartbeat:
			hb := new(jsonrpc.Heartbeat)
			if err := jsonrpc.Decode(reading.Value, hb, "Sgtin.ProcessEvent.HeartbeatError"); err != nil {
				return result, err
			}
			result.Heartbeats = append(result.Heartbeats, heartbeat.ProcessHeartbeat(hb))

		case InventoryEvent:
			log.Debugf("Received tag event data:\n%s", reading.Value)
			invEvent := new(jsonrpc.InventoryEvent)
			if err := jsonrpc.Decode(reading.Value, invEvent, "Sgtin.ProcessEvent.EventsError"); err != nil {
				return result, err
			}
			if invEvent.IsEmpty() {
				metrics.Mark("Sgtin.ProcessEvent.EmptyEvent")
				log.WithFields(log.Fields{
					"Method":  "ProcessEvent",
					"Gateway": invEvent.Params.GatewayId,
				}).Debug("inventory_event carries no tag events")
				continue
			}
			for _, tagEvent := range invEvent.Params.Data {
				t, ok := processor.decode(tagEvent.EpcCode, &result)
				if !ok {
					continue
				}
				t.FacilityID = tagEvent.FacilityID
				t.Event = tagEvent.EventType
				t.LastRead = tagEvent.Timestamp
				t.Source = invEvent.Params.GatewayId
				result.Tags = append(result.Tags, t)
			}

		case InventoryData:
			log.Debugf("Received inventory_data message. msglen=%d", len(reading.Value))
			invData := new(jsonrpc.InventoryData)
			if err := jsonrpc.Decode(reading.Value, invData, "Sgtin.ProcessEvent.InventoryDataError"); err != nil {
				return result, err
			}
			for _, read := range invData.Params.Data {
				t, ok := processor.decode(read.Epc, &result)
				if !ok {
					continue
				}
				t.FacilityID = invData.Params.FacilityId
				t.LastRead = read.LastReadOn
				t.Source = invData.Params.DeviceId
				result.Tags = append(result.Tags, t)
			}

		default:
			log.WithFields(log.Fields{
				"Method":  "ProcessEvent",
				"Reading": reading.Name,
			}).Debug("skipping unhandled reading")
			result.Skipped++
		}
	}

	result.Heartbeats = slices.RemoveDuplicates(result.Heartbeats)
	metrics.Counter("Sgtin.ProcessEvent.Tags").Add(float64(len(result.Tags)))
	return result, nil
}

func (processor *Processor) decode(epc string, result *Result) (tag.Tag, bool) {
	epc = stripPrefix(epc, processor.PrefixLen)
	if !tag.IsTagWhitelisted(epc, processor.Filters) {
		result.Filtered++
		return tag.Tag{}, false
	}
	return tag.NewTag(processor.Decoders, epc), true
}

// stripPrefix drops the first prefixLen characters of epc. Values too short
// to hold the prefix are left for the decoders to reject.
func stripPrefix(epc string, prefixLen int) string {
	if prefixLen <= 0 || len(epc) <= prefixLen {
		return epc
	}
	return epc[prefixLen:]
}
