/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package handlers

import (
	"context"
	"net/http"

	"github.com/edgexfoundry/go-mod-core-contracts/models"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/app/contraepc"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/app/event"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/app/routes/schemas"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/app/tag"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/encodingscheme"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/metrics"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/sgtin96"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/web"
)

// Sgtin represents the SGTIN-96 API method handler set.
type Sgtin struct {
	// Decoders used for EdgeX events
	Decoders []encodingscheme.TagDecoder
	// EPC prefixes kept from EdgeX events
	EpcFilters []string
	// Characters stripped from the front of EPCs in EdgeX events
	HexPrefixLength int
	// Maximum number of EPCs per batch request
	MaxSize int
	// Reject decoded fields that exceed their decimal lengths
	Strict bool
	// Partition of generated contra-epcs when the request names none
	ContraEpcPartition int
}

// Index is used for Docker Healthcheck commands to indicate
// whether the http server is up and running to take requests
//nolint:unparam
func (sgtin *Sgtin) Index(ctx context.Context, writer http.ResponseWriter, request *http.Request) error {
	web.Respond(ctx, writer, "SGTIN Service", http.StatusOK)
	return nil
}

// Encode builds an SGTIN-96 from its fields
// 200 OK, 400 Bad Request
func (sgtin *Sgtin) Encode(ctx context.Context, writer http.ResponseWriter, request *http.Request) error {
	metrics.Mark("Sgtin.Encode.Attempt")
	mProcessRequestErr := metrics.Counter("Sgtin.Encode.ProcessRequest-Error")
	mValidateRequestErr := metrics.Counter("Sgtin.Encode.ValidateRequest-Error")
	mEncodeErr := metrics.Counter("Sgtin.Encode.Encode-Error")
	mSuccess := metrics.Counter("Sgtin.Encode.Success")

	var body EncodeRequest
	validationErrors, err := readAndValidateRequest(request, schemas.EncodeSchema, &body)
	if err != nil {
		mProcessRequestErr.Inc()
		return err
	}
	if validationErrors != nil {
		mValidateRequestErr.Inc()
		web.Respond(ctx, writer, validationErrors, http.StatusBadRequest)
		return nil
	}

	filter := sgtin96.DefaultFilter
	if body.Filter != nil {
		filter = *body.Filter
	}

	record, err := sgtin96.NewBuilder().
		Filter(filter).
		Partition(body.Partition).
		CompanyPrefix(body.CompanyPrefix).
		ItemReference(body.ItemReference).
		Serial(body.Serial).
		Build()
	if err != nil {
		mEncodeErr.Inc()
		return errors.Wrap(web.ErrInvalidInput, err.Error())
	}

	mSuccess.Inc()
	web.Respond(ctx, writer, newRepresentation(record), http.StatusOK)
	return nil
}

// GetEpc decodes the EPC in the request path
// 200 OK, 400 Bad Request
func (sgtin *Sgtin) GetEpc(ctx context.Context, writer http.ResponseWriter, request *http.Request) error {
	metrics.Mark("Sgtin.GetEpc.Attempt")

	record, err := parseEpc(mux.Vars(request)["epc"], 0, sgtin.Strict)
	if err != nil {
		metrics.Mark("Sgtin.GetEpc.Decode-Error")
		return errors.Wrap(web.ErrInvalidInput, err.Error())
	}

	metrics.Mark("Sgtin.GetEpc.Success")
	web.Respond(ctx, writer, newRepresentation(record), http.StatusOK)
	return nil
}

// DecodeBatch decodes a list of EPCs. EPCs that fail to decode are reported
// in their result, they do not fail the request.
// 200 OK, 400 Bad Request
func (sgtin *Sgtin) DecodeBatch(ctx context.Context, writer http.ResponseWriter, request *http.Request) error {
	metrics.Mark("Sgtin.DecodeBatch.Attempt")
	mProcessRequestErr := metrics.Counter("Sgtin.DecodeBatch.ProcessRequest-Error")
	mValidateRequestErr := metrics.Counter("Sgtin.DecodeBatch.ValidateRequest-Error")
	mDecodeErr := metrics.Counter("Sgtin.DecodeBatch.Decode-Error")
	mSuccess := metrics.Counter("Sgtin.DecodeBatch.Success")

	var body DecodeRequest
	validationErrors, err := readAndValidateRequest(request, schemas.DecodeSchema, &body)
	if err != nil {
		mProcessRequestErr.Inc()
		return err
	}
	if validationErrors != nil {
		mValidateRequestErr.Inc()
		web.Respond(ctx, writer, validationErrors, http.StatusBadRequest)
		return nil
	}
	if len(body.Epcs) > sgtin.MaxSize {
		mValidateRequestErr.Inc()
		return errors.Wrapf(web.ErrInvalidInput, "at most %d epcs may be decoded per request", sgtin.MaxSize)
	}

	response := DecodeResponse{Results: make([]DecodeResult, 0, len(body.Epcs))}
	for _, epc := range body.Epcs {
		result := DecodeResult{Epc: epc}
		if record, err := parseEpc(epc, body.PrefixLength, sgtin.Strict); err != nil {
			mDecodeErr.Inc()
			result.Error = err.Error()
		} else {
			result.Result = newRepresentation(record)
		}
		response.Results = append(response.Results, result)
	}

	mSuccess.Inc()
	web.Respond(ctx, writer, response, http.StatusOK)
	return nil
}

// CreateContraEpc generates contra-epcs for a GTIN-14
// 201 Created, 400 Bad Request, 500 Internal Error
func (sgtin *Sgtin) CreateContraEpc(ctx context.Context, writer http.ResponseWriter, request *http.Request) error {
	metrics.Mark("Sgtin.CreateContraEpc.Attempt")
	mProcessRequestErr := metrics.Counter("Sgtin.CreateContraEpc.ProcessRequest-Error")
	mValidateRequestErr := metrics.Counter("Sgtin.CreateContraEpc.ValidateRequest-Error")
	mGenerateErr := metrics.Counter("Sgtin.CreateContraEpc.Generate-Error")
	mSuccess := metrics.Counter("Sgtin.CreateContraEpc.Success")

	var body contraepc.CreateContraEpcRequest
	validationErrors, err := readAndValidateRequest(request, schemas.CreateContraEpcSchema, &body)
	if err != nil {
		mProcessRequestErr.Inc()
		return err
	}
	if validationErrors != nil {
		mValidateRequestErr.Inc()
		web.Respond(ctx, writer, validationErrors, http.StatusBadRequest)
		return nil
	}

	partition := sgtin.ContraEpcPartition
	if body.Partition != nil {
		partition = *body.Partition
	}
	count := body.Count
	if count == 0 {
		count = 1
	}

	generated := make(map[string]bool, count)
	taken := func(epc string) bool { return generated[epc] }

	response := contraepc.CreateContraEpcResponse{Data: make([]tag.Tag, 0, count)}
	for i := 0; i < count; i++ {
		epc, err := contraepc.GenerateUniqueContraEPC(body.Gtin, partition, taken)
		if err != nil {
			mGenerateErr.Inc()
			if errors.Cause(err) == contraepc.ErrNotUnique {
				return err
			}
			return errors.Wrap(web.ErrInvalidInput, err.Error())
		}
		generated[epc] = true
		response.Data = append(response.Data, contraepc.AsNewTag(sgtin.Decoders, epc))
	}

	mSuccess.Inc()
	web.Respond(ctx, writer, response, http.StatusCreated)
	return nil
}

// PostEvent decodes the tags carried by an EdgeX event
// 200 OK, 400 Bad Request
func (sgtin *Sgtin) PostEvent(ctx context.Context, writer http.ResponseWriter, request *http.Request) error {
	metrics.Mark("Sgtin.PostEvent.Attempt")
	mProcessRequestErr := metrics.Counter("Sgtin.PostEvent.ProcessRequest-Error")
	mValidateRequestErr := metrics.Counter("Sgtin.PostEvent.ValidateRequest-Error")
	mSuccess := metrics.Counter("Sgtin.PostEvent.Success")

	var edgexEvent models.Event
	validationErrors, err := readAndValidateRequest(request, schemas.EventSchema, &edgexEvent)
	if err != nil {
		mProcessRequestErr.Inc()
		return err
	}
	if validationErrors != nil {
		mValidateRequestErr.Inc()
		web.Respond(ctx, writer, validationErrors, http.StatusBadRequest)
		return nil
	}

	result, err := event.ProcessEvent(edgexEvent, sgtin.Decoders, sgtin.EpcFilters, sgtin.HexPrefixLength)
	if err != nil {
		mProcessRequestErr.Inc()
		log.WithFields(log.Fields{
			"Method": "PostEvent",
			"Action": "ProcessEvent",
			"Device": edgexEvent.Device,
			"Error":  err.Error(),
		}).Warn("unable to process event")
		return errors.Wrap(web.ErrInvalidInput, err.Error())
	}

	mSuccess.Inc()
	web.Respond(ctx, writer, result, http.StatusOK)
	return nil
}

// NotFound answers every request no route matches
func (sgtin *Sgtin) NotFound(ctx context.Context, writer http.ResponseWriter, request *http.Request) error {
	return errors.Wrapf(web.ErrNotFound, "no route for %s %s", request.Method, request.URL.Path)
}
