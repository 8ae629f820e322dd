package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

// DeviceIDHeader carries the device ID on authenticated requests so that
// server logs can attribute them without parsing the credential.
const DeviceIDHeader = "X-Device-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu       sync.RWMutex
	token    string
	deviceID string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. The device ID header is derived from
// the part of the token before the first colon.
func (h *httpServerAdapter) SetToken(token string) {
	token = strings.TrimSpace(token)
	deviceID, _, _ := strings.Cut(token, ":")

	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
	h.deviceID = deviceID
}

func (h *httpServerAdapter) RegisterCode(ctx context.Context, code string, identity models.DeviceIdentity) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PairRequest{Code: code, DeviceID: identity.ID, Secret: identity.Secret}).
		Post("/pair")
	if err != nil {
		return mapRequestError("register code", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) PollStatus(ctx context.Context) (models.PairStatus, error) {
	resp, err := h.authedRequest(ctx).Get("/pair/status")
	if err != nil {
		return models.PairStatus{}, mapRequestError("poll status", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PairStatus{}, err
	}

	var status models.PairStatus
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return models.PairStatus{}, fmt.Errorf("%w: decode pair status: %w", ErrMalformedPayload, err)
	}
	return status, nil
}

func (h *httpServerAdapter) ClaimCode(ctx context.Context, code string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ClaimRequest{Code: code}).
		Post("/pair/claim")
	if err != nil {
		return mapRequestError("claim code", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) PushAll(ctx context.Context, records []models.Record, version int64) error {
	if records == nil {
		records = []models.Record{}
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PushAllRequest{Records: records, Version: version}).
		Put("/notes")
	if err != nil {
		return mapRequestError("push all", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) PushOne(ctx context.Context, record models.Record) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", record.ID.String()).
		SetBody(record).
		Put("/notes/{id}")
	if err != nil {
		return mapRequestError("push one", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteOne(ctx context.Context, id uuid.UUID) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id.String()).
		Delete("/notes/{id}")
	if err != nil {
		return mapRequestError("delete one", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) PullAll(ctx context.Context) (models.RemoteSnapshot, error) {
	resp, err := h.authedRequest(ctx).Get("/notes")
	if err != nil {
		return models.RemoteSnapshot{}, mapRequestError("pull all", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteSnapshot{}, err
	}

	var snapshot models.RemoteSnapshot
	if err = json.Unmarshal(resp.Body(), &snapshot); err != nil {
		return models.RemoteSnapshot{}, fmt.Errorf("%w: decode snapshot: %w", ErrMalformedPayload, err)
	}
	if err = validateSnapshot(snapshot); err != nil {
		return models.RemoteSnapshot{}, err
	}

	h.logger.Debug().
		Str("func", "httpServerAdapter.PullAll").
		Int64("version", snapshot.Version).
		Int("records", len(snapshot.Records)).
		Msg("pulled remote snapshot")
	return snapshot, nil
}

func (h *httpServerAdapter) RevokeSession(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/session")
	if err != nil {
		return mapRequestError("revoke session", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	h.mu.RLock()
	token, deviceID := h.token, h.deviceID
	h.mu.RUnlock()

	req := h.client.R().SetContext(ctx)
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
		req.SetHeader(DeviceIDHeader, deviceID)
	}
	return req
}

var errInvalidRecord = errors.New("invalid record")

func validateSnapshot(snapshot models.RemoteSnapshot) error {
	seen := make(map[uuid.UUID]struct{}, len(snapshot.Records))
	for i, r := range snapshot.Records {
		if r.ID == uuid.Nil || !r.Kind.Valid() {
			return fmt.Errorf("%w: %w at index %d", ErrMalformedPayload, errInvalidRecord, i)
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("%w: duplicate record %s", ErrMalformedPayload, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	if snapshot.Version < 0 {
		return fmt.Errorf("%w: negative version %d", ErrMalformedPayload, snapshot.Version)
	}
	return nil
}
