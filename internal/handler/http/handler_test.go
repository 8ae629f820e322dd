package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

const testToken = "dev-1:secret"

var linkedDevice = models.HubDevice{ID: "dev-1", AccountID: "acc-1"}

type fixture struct {
	hub     *mock.MockSyncHubService
	appInfo *mock.MockAppInfoService
	router  http.Handler
}

func newFixture(t *testing.T, cfg config.ServerConfig) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := fixture{
		hub:     mock.NewMockSyncHubService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	h := NewHandler(&service.Services{SyncHubService: f.hub, AppInfoService: f.appInfo}, cfg, logger.Nop())
	f.router = h.Init()
	return f
}

func defaultFixture(t *testing.T) fixture {
	return newFixture(t, config.ServerConfig{PairRateLimit: 1000, PairRateBurst: 1000})
}

// expectAuth makes testToken resolve to linkedDevice.
func (f fixture) expectAuth() {
	f.hub.EXPECT().Authenticate(gomock.Any(), testToken).Return(linkedDevice, nil)
}

func (f fixture) do(method, target string, body any, authed bool) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
		req.Header.Set(deviceIDHeader, "dev-1")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestGetServerVersion(t *testing.T) {
	f := defaultFixture(t)
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := f.do(http.MethodGet, "/version", nil, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestRegisterCode(t *testing.T) {
	req := models.PairRequest{Code: "ABC234", DeviceID: "dev-1", Secret: "secret"}

	tests := []struct {
		name       string
		body       any
		serviceErr error
		callsHub   bool
		wantStatus int
	}{
		{name: "registered", body: req, callsHub: true, wantStatus: http.StatusNoContent},
		{name: "not json", body: "{", wantStatus: http.StatusBadRequest},
		{name: "code taken", body: req, callsHub: true, serviceErr: service.ErrCodeAlreadyTaken, wantStatus: http.StatusConflict},
		{name: "secret mismatch", body: req, callsHub: true, serviceErr: service.ErrSecretMismatch, wantStatus: http.StatusForbidden},
		{
			name: "invalid code", body: req, callsHub: true,
			serviceErr: fmt.Errorf("%w: %q", service.ErrInvalidPairingCode, "x"), wantStatus: http.StatusBadRequest,
		},
		{name: "storage failure", body: req, callsHub: true, serviceErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := defaultFixture(t)
			if tt.callsHub {
				f.hub.EXPECT().RegisterCode(gomock.Any(), req).Return(tt.serviceErr)
			}

			rec := f.do(http.MethodPost, "/pair", tt.body, false)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeError(t, rec))
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		deviceID   string
		authResult func(f fixture)
		wantStatus int
	}{
		{name: "no header", wantStatus: http.StatusUnauthorized},
		{name: "basic scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{
			name:   "unknown credential",
			header: "Bearer dev-1:nope",
			authResult: func(f fixture) {
				f.hub.EXPECT().Authenticate(gomock.Any(), "dev-1:nope").Return(models.HubDevice{}, service.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "storage failure",
			header: "Bearer " + testToken,
			authResult: func(f fixture) {
				f.hub.EXPECT().Authenticate(gomock.Any(), testToken).Return(models.HubDevice{}, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "device header mismatch",
			header:     "Bearer " + testToken,
			deviceID:   "dev-2",
			authResult: func(f fixture) { f.expectAuth() },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "authenticated",
			header:   "bearer " + testToken,
			deviceID: "dev-1",
			authResult: func(f fixture) {
				f.expectAuth()
				f.hub.EXPECT().PairStatus(gomock.Any(), linkedDevice).Return(models.PairStatus{Linked: true})
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := defaultFixture(t)
			if tt.authResult != nil {
				tt.authResult(f)
			}

			req := httptest.NewRequest(http.MethodGet, "/pair/status", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.deviceID != "" {
				req.Header.Set(deviceIDHeader, tt.deviceID)
			}
			rec := httptest.NewRecorder()
			f.router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPairStatus(t *testing.T) {
	f := defaultFixture(t)
	f.expectAuth()
	f.hub.EXPECT().PairStatus(gomock.Any(), linkedDevice).Return(models.PairStatus{Linked: true})

	rec := f.do(http.MethodGet, "/pair/status", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"linked":true}`, rec.Body.String())
}

func TestClaimCode(t *testing.T) {
	t.Run("anonymous claim starts a new account", func(t *testing.T) {
		f := defaultFixture(t)
		f.hub.EXPECT().ClaimCode(gomock.Any(), (*models.HubDevice)(nil), "ABC234").Return(nil)

		rec := f.do(http.MethodPost, "/pair/claim", models.ClaimRequest{Code: "ABC234"}, false)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("linked caller adds to its account", func(t *testing.T) {
		f := defaultFixture(t)
		f.expectAuth()
		f.hub.EXPECT().ClaimCode(gomock.Any(), &linkedDevice, "ABC234").Return(nil)

		rec := f.do(http.MethodPost, "/pair/claim", models.ClaimRequest{Code: "ABC234"}, true)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("unknown code", func(t *testing.T) {
		f := defaultFixture(t)
		f.hub.EXPECT().ClaimCode(gomock.Any(), gomock.Any(), "ABC234").
			Return(fmt.Errorf("take pairing code: %w", store.ErrCodeNotFound))

		rec := f.do(http.MethodPost, "/pair/claim", models.ClaimRequest{Code: "ABC234"}, false)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, decodeError(t, rec), store.ErrCodeNotFound.Error())
	})
}

func TestGetNotes(t *testing.T) {
	id := uuid.New()
	snapshot := models.RemoteSnapshot{
		Records: []models.Record{models.NewClipboardEntry(id, "copied", time.Unix(100, 0).UTC())},
		Version: 4,
	}

	t.Run("returns the collection", func(t *testing.T) {
		f := defaultFixture(t)
		f.expectAuth()
		f.hub.EXPECT().GetCollection(gomock.Any(), linkedDevice).Return(snapshot, nil)

		rec := f.do(http.MethodGet, "/notes", nil, true)

		require.Equal(t, http.StatusOK, rec.Code)
		var got models.RemoteSnapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, snapshot, got)
	})

	t.Run("compressed when accepted", func(t *testing.T) {
		f := defaultFixture(t)
		f.expectAuth()
		f.hub.EXPECT().GetCollection(gomock.Any(), linkedDevice).Return(snapshot, nil)

		req := httptest.NewRequest(http.MethodGet, "/notes", nil)
		req.Header.Set("Authorization", "Bearer "+testToken)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

		zr, err := gzip.NewReader(rec.Body)
		require.NoError(t, err)
		var got models.RemoteSnapshot
		require.NoError(t, json.NewDecoder(zr).Decode(&got))
		assert.Equal(t, snapshot, got)
	})

	t.Run("device not linked", func(t *testing.T) {
		f := defaultFixture(t)
		f.expectAuth()
		f.hub.EXPECT().GetCollection(gomock.Any(), linkedDevice).Return(models.RemoteSnapshot{}, service.ErrDeviceNotLinked)

		rec := f.do(http.MethodGet, "/notes", nil, true)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestReplaceNotes(t *testing.T) {
	records := []models.Record{models.NewNote(uuid.New(), "t", "b", time.Unix(100, 0).UTC())}

	f := defaultFixture(t)
	f.expectAuth()
	f.hub.EXPECT().
		ReplaceCollection(gomock.Any(), linkedDevice, models.PushAllRequest{Records: records, Version: 3}).
		Return(int64(3), nil)

	rec := f.do(http.MethodPut, "/notes", models.PushAllRequest{Records: records, Version: 3}, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":3}`, rec.Body.String())
}

func TestPutNote(t *testing.T) {
	id := uuid.New()
	modified := time.Unix(200, 0).UTC()

	t.Run("id taken from path", func(t *testing.T) {
		f := defaultFixture(t)
		f.expectAuth()
		text := "body"
		want := models.Record{ID: id, Kind: models.KindNote, Text: &text, LastModified: modified}
		f.hub.EXPECT().PutRecord(gomock.Any(), linkedDevice, want).Return(int64(8), nil)

		body := models.Record{Kind: models.KindNote, Text: &text, LastModified: modified}
		rec := f.do(http.MethodPut, "/notes/"+id.String(), body, true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"version":8}`, rec.Body.String())
	})

	t.Run("path and body disagree", func(t *testing.T) {
		f := defaultFixture(t)
		f.expectAuth()

		body := models.NewNote(uuid.New(), "t", "b", modified)
		rec := f.do(http.MethodPut, "/notes/"+id.String(), body, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("path is not a uuid", func(t *testing.T) {
		f := defaultFixture(t)
		f.expectAuth()

		rec := f.do(http.MethodPut, "/notes/nope", models.NewNote(id, "t", "b", modified), true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteNote(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		version    int64
		err        error
		wantStatus int
	}{
		{name: "deleted", version: 9, wantStatus: http.StatusOK},
		{name: "missing", err: fmt.Errorf("delete record: %w", store.ErrRecordNotFound), wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := defaultFixture(t)
			f.expectAuth()
			f.hub.EXPECT().DeleteRecord(gomock.Any(), linkedDevice, id).Return(tt.version, tt.err)

			rec := f.do(http.MethodDelete, "/notes/"+id.String(), nil, true)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRevokeSession(t *testing.T) {
	f := defaultFixture(t)
	f.expectAuth()
	f.hub.EXPECT().RevokeSession(gomock.Any(), linkedDevice).Return(nil)

	rec := f.do(http.MethodDelete, "/session", nil, true)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPairRateLimit(t *testing.T) {
	f := newFixture(t, config.ServerConfig{PairRateLimit: 0.001, PairRateBurst: 1})
	req := models.PairRequest{Code: "ABC234", DeviceID: "dev-1", Secret: "secret"}
	f.hub.EXPECT().RegisterCode(gomock.Any(), req).Return(nil).Times(2)

	send := func(ip string) int {
		raw, _ := json.Marshal(req)
		r := httptest.NewRequest(http.MethodPost, "/pair", bytes.NewReader(raw))
		r.RemoteAddr = ip + ":40000"
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, r)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, send("192.0.2.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("192.0.2.1"))
	assert.Equal(t, http.StatusNoContent, send("192.0.2.2"), "limits are per client address")
}

func TestMethodNotAllowed(t *testing.T) {
	f := defaultFixture(t)

	rec := f.do(http.MethodPost, "/notes", nil, false)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, PUT", rec.Header().Get("Allow"))

	rec = f.do(http.MethodGet, "/notes/"+uuid.NewString(), nil, false)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "PUT, DELETE", rec.Header().Get("Allow"))
}

func TestTraceID(t *testing.T) {
	f := defaultFixture(t)
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").Times(2)

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set(traceIDHeader, incoming)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, incoming, rec.Header().Get(traceIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set(traceIDHeader, "not-a-trace-id")
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	got := rec.Header().Get(traceIDHeader)
	assert.NotEqual(t, "not-a-trace-id", got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{header: "Bearer dev:secret", want: "dev:secret"},
		{header: "BEARER  dev:secret ", want: "dev:secret"},
		{header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Token dev:secret", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Bearer   ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
