/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/app/config"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/app/routes"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/metrics"
)

func main() {
	// Ensure simple text format
	log.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	if err := NewWrapper().Run(os.Args); err != nil {
		errorHandler("sgtin-service failed", err, "Sgtin.Main.CommandError")
		os.Exit(1)
	}
}

// serve loads the configuration and runs the web server until interrupted
func serve() error {
	// Load config variables
	if err := config.InitConfig(); err != nil {
		metrics.Mark("Sgtin.Main.ConfigurationError")
		return errors.Wrap(err, "unable to load configuration variables")
	}

	setLoggingLevel(config.AppConfig.LoggingLevel)

	log.WithFields(log.Fields{
		"Method": "main",
		"Action": "Start",
	}).Info("Starting SGTIN service...")

	// Initiate webserver and routes
	if err := startWebServer(config.AppConfig.Port, config.AppConfig.ServiceName); err != nil {
		return err
	}

	log.WithField("Method", "main").Info("Completed.")
	return nil
}

// startWebServer serves until the process is interrupted or the listener
// fails, in which case the listener error is returned.
func startWebServer(port string, serviceName string) error {

	// Start Webserver and pass additional data
	router := routes.NewRouter()

	// Create a new server and set timeout values.
	server := http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    time.Duration(config.AppConfig.ServerReadTimeOutSeconds) * time.Second,
		WriteTimeout:   time.Duration(config.AppConfig.ServerWriteTimeOutSeconds) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// Listen for an interrupt signal from the OS.
	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(osSignals)

	// Start the listener. ListenAndServe always returns, with
	// http.ErrServerClosed after a shutdown.
	serverErrors := make(chan error, 1)
	go func() {
		log.Infof("%s running on port %s!", serviceName, port)
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		log.Info("Listener closed")
		metrics.Mark("Sgtin.Main.ListenerError")
		return errors.Wrap(err, "listener failed")
	case <-osSignals:
		metrics.Mark("Sgtin.Main.Shutdown")
	}

	// Create a context to attempt a graceful 5 second shutdown.
	const timeout = 5 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Attempt the graceful shutdown by closing the listener and
	// completing all inflight requests.
	if err := server.Shutdown(ctx); err != nil {

		log.WithFields(log.Fields{
			"Method":  "main",
			"Action":  "shutdown",
			"Timeout": timeout,
			"Message": err.Error(),
		}).Error("Graceful shutdown did not complete")

		// Looks like we timedout on the graceful shutdown. Kill it hard.
		if err := server.Close(); err != nil {
			log.WithFields(log.Fields{
				"Method":  "main",
				"Action":  "shutdown",
				"Message": err.Error(),
			}).Error("Error killing server")
		}
	}

	// Wait for the listener to report it is closed.
	if err := <-serverErrors; err != http.ErrServerClosed {
		return errors.Wrap(err, "listener failed")
	}
	log.Info("Listener closed")
	return nil
}
