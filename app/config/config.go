/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/app/slices"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/encodingscheme"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/sgtin96"
)

const (
	maxServerReadTimeoutSeconds  = 1800
	maxServerWriteTimeoutSeconds = 1800
	maxResponseLimit             = 10000

	// DefaultConfigFile is read when SGTIN_CONFIG is not set.
	DefaultConfigFile = "res/configuration.json"
	configFileEnv     = "SGTIN_CONFIG"
	envPrefix         = "SGTIN"
)

type (
	variables struct {
		ServiceName, LoggingLevel, Port string
		ServerReadTimeOutSeconds        int
		ServerWriteTimeOutSeconds       int
		ResponseLimit                   int
		StrictDecoding                  bool
		HexPrefixLength                 int
		ContraEpcPartition              int
		EpcFilters                      []string
		TagDecoders                     []encodingscheme.TagDecoder
		EnableCORS                      bool
		CORSOrigin                      string
	}
)

// AppConfig exports all config variables
var AppConfig variables

// InitConfig loads application variables from the file named by SGTIN_CONFIG,
// or DefaultConfigFile. Every key may be overridden by an SGTIN_ prefixed,
// upper-cased environment variable, e.g. SGTIN_PORT.
func InitConfig() error {
	path := os.Getenv(configFileEnv)
	if path == "" {
		path = DefaultConfigFile
	}
	return LoadConfig(path)
}

// LoadConfig loads application variables from path. AppConfig is only
// replaced when every variable is valid.
func LoadConfig(path string) error {
	config := viper.New()
	config.SetConfigFile(path)
	config.SetEnvPrefix(envPrefix)
	config.AutomaticEnv()

	if err := config.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
	}

	loaded, err := load(config)
	if err != nil {
		return err
	}
	AppConfig = loaded
	return nil
}

// nolint :gocyclo
func load(config *viper.Viper) (variables, error) {
	var vars variables
	var err error

	vars.ServiceName, err = getString(config, "serviceName")
	if err != nil {
		return vars, errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
	}

	vars.Port, err = getString(config, "port")
	if err != nil {
		return vars, errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
	}

	// Set "debug" for development purposes. "info" for Production.
	vars.LoggingLevel = getOrDefaultString(config, "loggingLevel", "info")

	vars.ServerReadTimeOutSeconds = getOrDefaultInt(config, "serverReadTimeOutSeconds", 900)
	if vars.ServerReadTimeOutSeconds < 1 {
		return vars, errors.New("ServerReadTimeOutSeconds cannot be lesser than 1")
	}
	if vars.ServerReadTimeOutSeconds > maxServerReadTimeoutSeconds {
		// limit to max value
		log.Debugf("serverReadTimeOutSeconds value %d exceeds the max value allowed, set to max value %d",
			vars.ServerReadTimeOutSeconds, maxServerReadTimeoutSeconds)
		vars.ServerReadTimeOutSeconds = maxServerReadTimeoutSeconds
	}

	vars.ServerWriteTimeOutSeconds = getOrDefaultInt(config, "serverWriteTimeOutSeconds", 900)
	if vars.ServerWriteTimeOutSeconds < 1 {
		return vars, errors.New("ServerWriteTimeOutSeconds cannot be lesser than 1")
	}
	if vars.ServerWriteTimeOutSeconds > maxServerWriteTimeoutSeconds {
		// limit to max value
		log.Debugf("serverWriteTimeOutSeconds value %d exceeds the max value allowed, set to max value %d",
			vars.ServerWriteTimeOutSeconds, maxServerWriteTimeoutSeconds)
		vars.ServerWriteTimeOutSeconds = maxServerWriteTimeoutSeconds
	}

	vars.ResponseLimit = getOrDefaultInt(config, "responseLimit", 1000)
	if vars.ResponseLimit < 1 {
		return vars, errors.Errorf("ResponseLimit should be greater than 0! ResponseLimit: %d", vars.ResponseLimit)
	}
	if vars.ResponseLimit > maxResponseLimit {
		log.Debugf("responseLimit value %d exceeds the max value allowed, set to max value %d",
			vars.ResponseLimit, maxResponseLimit)
		vars.ResponseLimit = maxResponseLimit
	}

	vars.HexPrefixLength = getOrDefaultInt(config, "hexPrefixLength", 0)
	if vars.HexPrefixLength < 0 {
		return vars, errors.Errorf("HexPrefixLength cannot be negative! HexPrefixLength: %d", vars.HexPrefixLength)
	}

	vars.ContraEpcPartition = getOrDefaultInt(config, "contraEpcPartition", 5)
	if _, err := sgtin96.LookupPartition(vars.ContraEpcPartition); err != nil {
		return vars, errors.Wrap(err, "invalid contraEpcPartition")
	}

	// without filters every SGTIN-96 tag is accepted
	vars.EpcFilters = slices.RemoveDuplicates(slices.Map(
		getOrDefaultStringSlice(config, "epcFilters", []string{"30"}), strings.ToUpper))

	vars.StrictDecoding = getOrDefaultBool(config, "strictDecoding", true)
	vars.TagDecoders = []encodingscheme.TagDecoder{encodingscheme.NewSGTINDecoder(vars.StrictDecoding)}

	vars.EnableCORS = getOrDefaultBool(config, "enableCORS", true)
	vars.CORSOrigin = getOrDefaultString(config, "corsOrigin", "*")

	return vars, nil
}

func getString(config *viper.Viper, path string) (string, error) {
	if !config.IsSet(path) {
		return "", errors.Errorf("%s is required", path)
	}
	value, err := cast.ToStringE(config.Get(path))
	if err != nil {
		return "", errors.Wrapf(err, "%s is not a string", path)
	}
	if value == "" {
		return "", errors.Errorf("%s cannot be empty", path)
	}
	return value, nil
}

func getOrDefaultBool(config *viper.Viper, path string, defaultValue bool) bool {
	value, err := cast.ToBoolE(config.Get(path))
	if !config.IsSet(path) || err != nil {
		log.Debugf("%s was missing from configuration, setting to default value of %v", path, defaultValue)
		return defaultValue
	}
	return value
}

func getOrDefaultString(config *viper.Viper, path string, defaultValue string) string {
	value, err := cast.ToStringE(config.Get(path))
	if !config.IsSet(path) || err != nil {
		log.Debugf("%s was missing from configuration, setting to default value of %s", path, defaultValue)
		return defaultValue
	}
	return value
}

func getOrDefaultInt(config *viper.Viper, path string, defaultValue int) int {
	value, err := cast.ToIntE(config.Get(path))
	if !config.IsSet(path) || err != nil {
		log.Debugf("%s was missing from configuration, setting to default value of %d", path, defaultValue)
		return defaultValue
	}
	return value
}

func getOrDefaultStringSlice(config *viper.Viper, path string, defaultValue []string) []string {
	value, err := cast.ToStringSliceE(config.Get(path))
	if !config.IsSet(path) || err != nil {
		log.Debugf("%s was missing from configuration, setting to default value of %v", path, defaultValue)
		return defaultValue
	}
	return value
}
