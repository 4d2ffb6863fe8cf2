/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/metrics"
)

func errorHandler(message string, err error, errorMetric string) {
	if err != nil {
		if errorMetric != "" {
			metrics.Mark(errorMetric)
		}
		log.WithFields(log.Fields{
			"Method": "main",
			"Error":  fmt.Sprintf("%+v", err),
		}).Error(message)
	}
}

// setLoggingLevel sets the logrus level by name; unknown names mean info
func setLoggingLevel(loggingLevel string) {
	switch strings.ToLower(loggingLevel) {
	case "error":
		log.SetLevel(log.ErrorLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}
