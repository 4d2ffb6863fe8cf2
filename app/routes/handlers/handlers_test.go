/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/app/contraepc"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/app/event"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/app/routes/schemas"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/encodingscheme"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-service/pkg/web"
)

func newSgtin() *Sgtin {
	return &Sgtin{
		Decoders:           []encodingscheme.TagDecoder{encodingscheme.NewSGTINDecoder(true)},
		EpcFilters:         []string{"30"},
		HexPrefixLength:    0,
		MaxSize:            3,
		Strict:             true,
		ContraEpcPartition: 5,
	}
}

func serve(handler web.Handler, method, target, body string) *httptest.ResponseRecorder {
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestGetIndex(t *testing.T) {
	recorder := serve(newSgtin().Index, "GET", "/", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, `"SGTIN Service"`, recorder.Body.String())
}

func TestEncode(t *testing.T) {
	recorder := serve(newSgtin().Encode, "POST", "/sgtin96/encode",
		`{"filter": 3, "partition": 5, "company_prefix": 614141, "item_reference": 812345, "serial": 6789}`)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var representation Representation
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &representation))
	assert.Equal(t, "3074257BF7194E4000001A85", representation.Epc)
	assert.Equal(t, "urn:epc:tag:sgtin-96:3.614141.812345.6789", representation.URN)
	assert.Equal(t, "urn:epc:id:sgtin:0614141.812345.6789", representation.PureURI)
	assert.Equal(t, "urn:epc:tag:sgtin-96:3.0614141.812345.6789", representation.TagURI)
	assert.Equal(t, "80614141123458", representation.Gtin)
	assert.Equal(t, 3, representation.Filter)
	assert.Equal(t, int64(6789), representation.Serial)
	assert.Len(t, strings.Replace(representation.Bits, " ", "", -1), 96)
}

func TestEncodeDefaultFilter(t *testing.T) {
	recorder := serve(newSgtin().Encode, "POST", "/sgtin96/encode",
		`{"partition": 5, "company_prefix": 614141, "item_reference": 734, "serial": 314159}`)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var representation Representation
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &representation))
	assert.Equal(t, "3034257BF400B7800004CB2F", representation.Epc)
}

func TestEncodeCodecError(t *testing.T) {
	// 8 digits do not fit the 7 digit company prefix of partition 5
	recorder := serve(newSgtin().Encode, "POST", "/sgtin96/encode",
		`{"partition": 5, "company_prefix": 12345678, "item_reference": 1, "serial": 1}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var jsonError web.JSONError
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &jsonError))
	assert.Contains(t, jsonError.Error, "company prefix")
}

func TestEncodeSchemaError(t *testing.T) {
	recorder := serve(newSgtin().Encode, "POST", "/sgtin96/encode",
		`{"partition": 9, "company_prefix": 1, "item_reference": 1, "serial": 1}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorList schemas.ErrorList
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errorList))
	require.Len(t, errorList.Errors, 1)
	assert.Equal(t, "partition", errorList.Errors[0].Field)
}

func TestEncodeEmptyBody(t *testing.T) {
	recorder := serve(newSgtin().Encode, "POST", "/sgtin96/encode", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetEpc(t *testing.T) {
	sgtin := newSgtin()
	testCases := []struct {
		epc  string
		code int
	}{
		{"3074257BF7194E4000001A85", http.StatusOK},
		{"3074257bf7194e4000001a85", http.StatusOK},
		{"0x3074257BF7194E4000001A85", http.StatusOK},
		{"3074257BF7194E4000001A8", http.StatusBadRequest},
		{"3174257BF7194E4000001A85", http.StatusBadRequest},
		{"301C00000000000000000000", http.StatusBadRequest},
		// partition 3 with a company prefix of 10 digits
		{"302FFFFFFFF0000000000000", http.StatusBadRequest},
	}

	for _, testCase := range testCases {
		request := httptest.NewRequest("GET", "/sgtin96/"+testCase.epc, nil)
		request = mux.SetURLVars(request, map[string]string{"epc": testCase.epc})
		recorder := httptest.NewRecorder()
		web.Handler(sgtin.GetEpc).ServeHTTP(recorder, request)

		assert.Equal(t, testCase.code, recorder.Code, testCase.epc)
		if recorder.Code == http.StatusOK {
			var representation Representation
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &representation))
			assert.Equal(t, "3074257BF7194E4000001A85", representation.Epc)
			assert.Equal(t, int64(812345), representation.ItemReference)
		}
	}
}

func TestGetEpcLenient(t *testing.T) {
	sgtin := newSgtin()
	sgtin.Strict = false

	request := mux.SetURLVars(httptest.NewRequest("GET", "/sgtin96/302FFFFFFFF0000000000000", nil),
		map[string]string{"epc": "302FFFFFFFF0000000000000"})
	recorder := httptest.NewRecorder()
	web.Handler(sgtin.GetEpc).ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var representation Representation
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &representation))
	assert.Empty(t, representation.Gtin)
	assert.Equal(t, int64(1073741823), representation.CompanyPrefix)
}

func TestDecodeBatch(t *testing.T) {
	recorder := serve(newSgtin().DecodeBatch, "POST", "/sgtin96/decode",
		`{"epcs": ["3074257BF7194E4000001A85", "nope", "3034257BF400B7800004CB2F"]}`)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var response DecodeResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.Results, 3)

	assert.Equal(t, "80614141123458", response.Results[0].Result.Gtin)
	assert.Empty(t, response.Results[0].Error)

	assert.Equal(t, "nope", response.Results[1].Epc)
	assert.Nil(t, response.Results[1].Result)
	assert.NotEmpty(t, response.Results[1].Error)

	assert.Equal(t, "00614141007349", response.Results[2].Result.Gtin)
}

func TestDecodeBatchPrefixLength(t *testing.T) {
	recorder := serve(newSgtin().DecodeBatch, "POST", "/sgtin96/decode",
		`{"epcs": ["::3074257BF7194E4000001A85"], "prefix_length": 2}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response DecodeResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.NotNil(t, response.Results[0].Result)
	assert.Equal(t, "3074257BF7194E4000001A85", response.Results[0].Result.Epc)
}

func TestDecodeBatchLimit(t *testing.T) {
	recorder := serve(newSgtin().DecodeBatch, "POST", "/sgtin96/decode",
		`{"epcs": ["a", "b", "c", "d"]}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "at most 3 epcs")
}

func TestCreateContraEpc(t *testing.T) {
	recorder := serve(newSgtin().CreateContraEpc, "POST", "/sgtin96/contraepc",
		`{"gtin": "00039307597746", "count": 3}`)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var response contraepc.CreateContraEpcResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.Data, 3)

	seen := make(map[string]bool)
	for _, tag := range response.Data {
		assert.Equal(t, "00039307597746", tag.ProductID)
		assert.Equal(t, contraepc.Filter, tag.FilterValue)
		assert.Equal(t, contraepc.Source, tag.Source)
		assert.True(t, contraepc.IsContraEpc(tag.Epc))
		seen[tag.Epc] = true
	}
	assert.Len(t, seen, 3)
}

func TestCreateContraEpcPartition(t *testing.T) {
	recorder := serve(newSgtin().CreateContraEpc, "POST", "/sgtin96/contraepc",
		`{"gtin": "00039307597746", "partition": 0}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var response contraepc.CreateContraEpcResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.Data, 1)
	// filter 5, partition 0
	assert.True(t, strings.HasPrefix(response.Data[0].Epc, "30A0"))
}

func TestCreateContraEpcBadCheckDigit(t *testing.T) {
	recorder := serve(newSgtin().CreateContraEpc, "POST", "/sgtin96/contraepc",
		`{"gtin": "00039307597745"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "check digit")
}

func TestPostEvent(t *testing.T) {
	body := `{
		"device": "rrs-gateway",
		"origin": 1559840430000,
		"readings": [
			{
				"name": "inventory_event",
				"value": "{\"jsonrpc\":\"2.0\",\"method\":\"inventory_event\",\"params\":{\"sent_on\":1,\"gateway_id\":\"rrs-gateway\",\"data\":[{\"epc_code\":\"3034257BF400B7800004CB2F\",\"facility_id\":\"front\",\"event_type\":\"arrival\",\"timestamp\":1}]}}"
			},
			{
				"name": "device_alert",
				"value": "{}"
			}
		]
	}`
	recorder := serve(newSgtin().PostEvent, "POST", "/events", body)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var result event.Result
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	require.Len(t, result.Tags, 1)
	assert.Equal(t, "00614141007349", result.Tags[0].ProductID)
	assert.Equal(t, "front", result.Tags[0].FacilityID)
	assert.Equal(t, 1, result.Skipped)
}

func TestPostEventInvalidReading(t *testing.T) {
	body := `{"device": "rrs-gateway", "readings": [{"name": "inventory_data", "value": "not json"}]}`
	recorder := serve(newSgtin().PostEvent, "POST", "/events", body)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = serve(newSgtin().PostEvent, "POST", "/events", `{"device": "rrs-gateway", "readings": []}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestNotFound(t *testing.T) {
	recorder := serve(newSgtin().NotFound, "GET", "/inventory/tags", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
