/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package heartbeat

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/jsonrpc"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/metrics"
)

// ProcessHeartbeat records that a controller is alive and returns its device id
func ProcessHeartbeat(hb *jsonrpc.Heartbeat) string {
	metrics.Mark("Sgtin.ProcessHeartbeat.Received")

	fields := log.Fields{
		"Method":   "ProcessHeartbeat",
		"DeviceId": hb.Params.DeviceId,
	}
	if hb.Params.SentOn > 0 {
		fields["SentOn"] = time.Unix(0, hb.Params.SentOn*int64(time.Millisecond)).UTC()
	}
	log.WithFields(fields).Debug("heartbeat received")

	return hb.Params.DeviceId
}
