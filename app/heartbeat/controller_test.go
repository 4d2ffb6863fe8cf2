/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package heartbeat

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/jsonrpc"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/metrics"
)

func TestProcessHeartbeat(t *testing.T) {
	hb := &jsonrpc.Heartbeat{
		Params: jsonrpc.HeartbeatParams{
			SentOn:   1551303813000,
			DeviceId: "rrs-gateway",
		},
	}

	counter := metrics.Counter("Sgtin.ProcessHeartbeat.Received")
	before := testutil.ToFloat64(counter)

	assert.Equal(t, "rrs-gateway", ProcessHeartbeat(hb))
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
