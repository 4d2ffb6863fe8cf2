/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/healthcheck"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/sgtin96"
)

var (
	flagFilter = &cli.IntFlag{
		Name:  "filter",
		Value: sgtin96.DefaultFilter,
		Usage: "filter value, 0 to 7",
	}
	flagPartition = &cli.IntFlag{
		Name:  "partition",
		Usage: "partition value, 0 to 6; by default taken from the number of company prefix digits",
		Action: func(ctx *cli.Context, partition int) error {
			_, err := sgtin96.LookupPartition(partition)
			return err
		},
	}
	flagCompanyPrefix = &cli.StringFlag{
		Name:     "company-prefix",
		Usage:    "GS1 company prefix, with its leading zeros",
		Required: true,
	}
	flagItemReference = &cli.Int64Flag{
		Name:     "item-reference",
		Usage:    "item reference, including the indicator digit",
		Required: true,
	}
	flagSerial = &cli.Int64Flag{
		Name:  "serial",
		Usage: "serial number, 0 to 2^38-1",
	}
	flagPrefixLen = &cli.IntFlag{
		Name:  "prefix-len",
		Usage: "characters to skip in front of every EPC, e.g. 2 for 0x",
		Action: func(ctx *cli.Context, n int) error {
			if n < 0 {
				return errors.Errorf("prefix-len %d is negative", n)
			}
			return nil
		},
	}
	flagStrict = &cli.BoolFlag{
		Name:  "strict",
		Usage: "reject EPCs whose fields have too many digits for their partition",
	}
	flagPort = &cli.StringFlag{
		Name:    "port",
		Aliases: []string{"p"},
		Value:   "8080",
		Usage:   "port of the running service",
		EnvVars: []string{"SGTIN_PORT"},
	}
)

// Wrapper holds the command line application
type Wrapper struct {
	app *cli.App
}

// NewWrapper builds the sgtin-service command line
func NewWrapper() *Wrapper {
	wrapper := &Wrapper{
		app: &cli.App{
			Name:  "sgtin-service",
			Usage: "encode, decode and serve SGTIN-96 RFID tag EPCs",
		},
	}
	wrapper.withCommands()
	wrapper.withAction()
	return wrapper
}

// Run parses args and runs the selected command
func (wrapper *Wrapper) Run(args []string) error {
	return wrapper.app.Run(args)
}

func (wrapper *Wrapper) withAction() {
	wrapper.app.Action = func(ctx *cli.Context) error {
		return serve()
	}
}

func (wrapper *Wrapper) withCommands() {
	wrapper.app.Commands = []*cli.Command{
		{
			Name:  "serve",
			Usage: "run the HTTP service (default)",
			Action: func(ctx *cli.Context) error {
				return serve()
			},
		},
		{
			Name:  "encode",
			Usage: "build an SGTIN-96 EPC from its fields",
			Flags: []cli.Flag{
				flagFilter,
				flagPartition,
				flagCompanyPrefix,
				flagItemReference,
				flagSerial,
			},
			Action: encodeAction,
		},
		{
			Name:      "decode",
			Usage:     "print every representation of one or more EPCs",
			ArgsUsage: "EPC...",
			Flags: []cli.Flag{
				flagPrefixLen,
				flagStrict,
			},
			Action: decodeAction,
		},
		{
			Name:  "healthcheck",
			Usage: "exit 0 when the service on --port answers, 1 otherwise",
			Flags: []cli.Flag{
				flagPort,
			},
			Action: func(ctx *cli.Context) error {
				if status := healthcheck.Healthcheck(ctx.String(flagPort.Name)); status != 0 {
					return cli.Exit("service is not healthy", status)
				}
				return nil
			},
		},
	}
}

func encodeAction(ctx *cli.Context) error {
	companyPrefix, partition, err := companyPrefixAndPartition(ctx)
	if err != nil {
		return errors.Wrap(err, "unable to encode")
	}

	record, err := sgtin96.NewBuilder().
		Filter(ctx.Int(flagFilter.Name)).
		Partition(partition).
		CompanyPrefix(companyPrefix).
		ItemReference(ctx.Int64(flagItemReference.Name)).
		Serial(ctx.Int64(flagSerial.Name)).
		Build()
	if err != nil {
		return errors.Wrap(err, "unable to encode")
	}
	printRecord(ctx.App.Writer, record)
	return nil
}

// companyPrefixAndPartition reads the company prefix as written, so that
// its leading zeros select the partition when --partition is not given.
func companyPrefixAndPartition(ctx *cli.Context) (int64, int, error) {
	text := ctx.String(flagCompanyPrefix.Name)
	if text == "" || strings.Trim(text, "0123456789") != "" {
		return 0, 0, errors.Errorf("company prefix %q is not a decimal number", text)
	}
	companyPrefix, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "company prefix %q", text)
	}

	if ctx.IsSet(flagPartition.Name) {
		return companyPrefix, ctx.Int(flagPartition.Name), nil
	}
	partition, err := sgtin96.PartitionForDigits(len(text))
	if err != nil {
		return 0, 0, err
	}
	return companyPrefix, partition, nil
}

func decodeAction(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errors.New("at least one EPC is required")
	}
	prefixLen := ctx.Int(flagPrefixLen.Name)

	for i, epc := range ctx.Args().Slice() {
		record, err := sgtin96.ParseWithPrefix(epc, prefixLen)
		if err != nil {
			return errors.Wrapf(err, "unable to decode %s", epc)
		}
		if ctx.Bool(flagStrict.Name) {
			if err := record.Validate(); err != nil {
				return errors.Wrapf(err, "invalid EPC %s", epc)
			}
		}
		if i > 0 {
			fmt.Fprintln(ctx.App.Writer)
		}
		printRecord(ctx.App.Writer, record)
	}
	return nil
}

func printRecord(w io.Writer, record *sgtin96.Record) {
	gtin, err := record.GTIN14()
	if err != nil {
		gtin = "-"
	}
	fmt.Fprintf(w, "epc:      %s\n", record.Hex())
	fmt.Fprintf(w, "urn:      %s\n", record.String())
	fmt.Fprintf(w, "tag_uri:  %s\n", record.TagURI())
	fmt.Fprintf(w, "pure_uri: %s\n", record.PureIdentityURI())
	fmt.Fprintf(w, "gtin:     %s\n", gtin)
	fmt.Fprintf(w, "bits:     %s\n", record.BitString())
}
