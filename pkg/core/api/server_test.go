/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/fleetwatch/pkg/core"
	"github.com/carverauto/fleetwatch/pkg/db"
	"github.com/carverauto/fleetwatch/pkg/models"
)

func newTestAPIServer(t *testing.T, at time.Time) (*APIServer, *db.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)

	coreServer := core.NewServer(mockDB, &models.CoreServiceConfig{},
		core.WithClock(func() time.Time { return at }))

	return NewAPIServer(coreServer), mockDB
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	return rr
}

func TestCreateDeviceReturnsKey(t *testing.T) {
	srv, mockDB := newTestAPIServer(t, time.Now())

	mockDB.EXPECT().CreateDevice(gomock.Any(), gomock.Any()).Return(nil)

	rr := doJSON(t, srv.Router(), http.MethodPost, "/api/devices",
		models.DeviceCreateRequest{Name: "edge-1"})
	require.Equal(t, http.StatusOK, rr.Code)

	var device models.Device
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &device))
	assert.Equal(t, "edge-1", device.Name)
	assert.Len(t, device.APIKey, 64)
}

func TestCreateDeviceMalformedBody(t *testing.T) {
	srv, _ := newTestAPIServer(t, time.Now())

	req := httptest.NewRequest(http.MethodPost, "/api/devices", bytes.NewBufferString("{nope"))
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateDeviceDuplicateKey(t *testing.T) {
	srv, mockDB := newTestAPIServer(t, time.Now())

	mockDB.EXPECT().CreateDevice(gomock.Any(), gomock.Any()).Return(db.ErrDuplicateAPIKey)

	rr := doJSON(t, srv.Router(), http.MethodPost, "/api/devices",
		models.DeviceCreateRequest{Name: "edge-1", APIKey: "taken"})
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestGetDeviceNotFound(t *testing.T) {
	srv, mockDB := newTestAPIServer(t, time.Now())

	id := uuid.New()
	mockDB.EXPECT().GetDevice(gomock.Any(), id).Return(nil, db.ErrDeviceNotFound)

	rr := doJSON(t, srv.Router(), http.MethodGet, "/api/devices/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusNotFound, resp.Status)
}

func TestGetDeviceMalformedID(t *testing.T) {
	srv, _ := newTestAPIServer(t, time.Now())

	rr := doJSON(t, srv.Router(), http.MethodGet, "/api/devices/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestReportStatusRoundTrip(t *testing.T) {
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	srv, mockDB := newTestAPIServer(t, at)

	deviceID := uuid.New()
	device := &models.Device{ID: deviceID, APIKey: "key-1"}

	cpu := 37.5

	mockDB.EXPECT().GetDeviceByAPIKey(gomock.Any(), "key-1").Return(device, nil)
	mockDB.EXPECT().MarkDeviceSeen(gomock.Any(), deviceID, "", at).Return(nil)
	mockDB.EXPECT().InsertStatusSample(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sample *models.StatusSample) error {
			assert.InDelta(t, cpu, sample.CPUPercent, 0.001)
			return nil
		})

	rr := doJSON(t, srv.Router(), http.MethodPost, "/api/report/status",
		models.StatusReport{APIKey: "key-1", CPUPercent: &cpu})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestReportStatusUnknownKey(t *testing.T) {
	srv, mockDB := newTestAPIServer(t, time.Now())

	mockDB.EXPECT().GetDeviceByAPIKey(gomock.Any(), "bogus").Return(nil, db.ErrInvalidAPIKey)

	rr := doJSON(t, srv.Router(), http.MethodPost, "/api/report/status",
		models.StatusReport{APIKey: "bogus"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestReportErrorUnknownKey(t *testing.T) {
	srv, mockDB := newTestAPIServer(t, time.Now())

	mockDB.EXPECT().GetDeviceByAPIKey(gomock.Any(), "bogus").Return(nil, db.ErrInvalidAPIKey)

	rr := doJSON(t, srv.Router(), http.MethodPost, "/api/report/error",
		models.ErrorReport{APIKey: "bogus", Message: "boom"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetStatsEmptyStore(t *testing.T) {
	srv, mockDB := newTestAPIServer(t, time.Now())

	mockDB.EXPECT().ListDevices(gomock.Any()).Return(nil, nil)
	mockDB.EXPECT().ListStatusSamples(gomock.Any()).Return(nil, nil)
	mockDB.EXPECT().CountErrorSamples(gomock.Any()).Return(int64(0), nil)
	mockDB.EXPECT().GetStatusSamplesBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).Times(2)

	rr := doJSON(t, srv.Router(), http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var stats models.FleetStats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Zero(t, stats.TotalDevices)
	assert.Zero(t, stats.TotalTokens)
	assert.NotNil(t, stats.Devices)
}

func TestGetTrendsInvalidHours(t *testing.T) {
	srv, _ := newTestAPIServer(t, time.Now())

	rr := doJSON(t, srv.Router(), http.MethodGet, "/api/trends?hours=banana", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetTrendsDefaultWindow(t *testing.T) {
	at := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	srv, mockDB := newTestAPIServer(t, at)

	mockDB.EXPECT().GetStatusSamplesSince(gomock.Any(), at.Add(-24*time.Hour)).Return(nil, nil)

	rr := doJSON(t, srv.Router(), http.MethodGet, "/api/trends", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListErrorsWithFilters(t *testing.T) {
	srv, mockDB := newTestAPIServer(t, time.Now())

	deviceID := uuid.New()

	mockDB.EXPECT().ListErrorSamples(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filter db.ErrorFilter) ([]models.ErrorSample, error) {
			require.NotNil(t, filter.DeviceID)
			assert.Equal(t, deviceID, *filter.DeviceID)
			assert.Equal(t, "critical", filter.Level)
			assert.Equal(t, 5, filter.Limit)

			return nil, nil
		})

	rr := doJSON(t, srv.Router(), http.MethodGet,
		"/api/errors?device_id="+deviceID.String()+"&level=critical&limit=5", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetDeviceErrorsDefaultLimit(t *testing.T) {
	srv, mockDB := newTestAPIServer(t, time.Now())

	id := uuid.New()
	device := &models.Device{ID: id}

	mockDB.EXPECT().GetDevice(gomock.Any(), id).Return(device, nil)
	mockDB.EXPECT().GetDeviceErrors(gomock.Any(), id, 100).Return(nil, nil)

	rr := doJSON(t, srv.Router(), http.MethodGet, "/api/devices/"+id.String()+"/errors", nil)
	require.Equal(t, http.StatusOK, rr.Code)
}
