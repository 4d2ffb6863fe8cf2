/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package healthcheck

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const timeout = 5 * time.Second

var client = &http.Client{Timeout: timeout}

// Healthcheck performs check to see if server is up and running/responding.
// It returns the process exit status: 0 when healthy, 1 otherwise.
func Healthcheck(port string) int {
	resp, err := client.Get("http://127.0.0.1:" + port)
	if err != nil {
		log.WithFields(log.Fields{
			"Method": "Healthcheck",
			"Error":  err.Error(),
		}).Debug("Service unreachable")
		return 1
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.WithFields(log.Fields{
				"Method": "Healthcheck",
			}).Warning("Failed to close response.")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return 1
	}
	return 0
}
