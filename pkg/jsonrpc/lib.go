/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

// Package jsonrpc models the JSON-RPC 2.0 notifications RFID controllers
// publish as EdgeX reading values.
package jsonrpc

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/metrics"
)

// Version is the only JSON-RPC version accepted.
const Version = "2.0"

// Message is a decoded JSON-RPC message able to check its own content.
type Message interface {
	Validate() error
}

// Notification is the envelope shared by all messages. Notifications carry
// no id and expect no response.
type Notification struct {
	Version string `json:"jsonrpc"`
	Method  string `json:"method"`
}

func (n *Notification) Validate() error {
	if n.Version != Version {
		return errors.Errorf("invalid jsonrpc version %q", n.Version)
	}
	if n.Method == "" {
		return errors.New("missing method field")
	}
	return nil
}

func errorHandler(message string, err error, errorMetric string) {
	if errorMetric != "" {
		metrics.Mark(errorMetric)
	}
	log.WithFields(log.Fields{
		"Method": "jsonrpc.Decode",
		"Error":  fmt.Sprintf("%+v", err),
	}).Error(message)
}

// Decode unmarshals value into js and validates it. Failures are logged and,
// when errorMetric is set, counted under that name.
func Decode(value string, js Message, errorMetric string) error {
	decoder := json.NewDecoder(strings.NewReader(value))
	decoder.UseNumber()

	if err := decoder.Decode(js); err != nil {
		err = errors.Wrap(err, "error decoding jsonrpc message")
		errorHandler("error decoding jsonrpc message", err, errorMetric)
		return err
	}

	if err := js.Validate(); err != nil {
		err = errors.Wrap(err, "error validating jsonrpc message")
		errorHandler("error validating jsonrpc message", err, errorMetric)
		return err
	}

	return nil
}
