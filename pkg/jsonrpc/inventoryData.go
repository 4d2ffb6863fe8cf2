/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package jsonrpc

import "github.com/pkg/errors"

// InventoryData is a batch of raw tag reads from a single sensor.
type InventoryData struct {
	Notification                     // embed
	Params       InventoryDataParams `json:"params"`
}

type InventoryDataParams struct {
	SentOn     int64     `json:"sent_on"`
	Period     int       `json:"period"`
	DeviceId   string    `json:"device_id"`
	FacilityId string    `json:"facility_id"`
	Data       []TagRead `json:"data"`
}

type TagRead struct {
	Epc        string `json:"epc"`
	Tid        string `json:"tid"`
	AntennaId  int    `json:"antenna_id"`
	LastReadOn int64  `json:"last_read_on"`
	Rssi       int    `json:"rssi"`
}

func (data *InventoryData) Validate() error {
	if data.Params.DeviceId == "" {
		return errors.New("missing device_id field")
	}
	if len(data.Params.Data) == 0 {
		return errors.New("missing data field")
	}

	return data.Notification.Validate()
}
