// Package scmm is the HTTP client for the rust.scmm.app market API. It
// normalizes store rotations and per-item details into domain entities and
// classifies every failure with a stable error code.
package scmm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samber/lo"

	"scmm_bot/internal/config"
	"scmm_bot/internal/domain"
	"scmm_bot/internal/domain/entity"
	"scmm_bot/internal/metrics"
	"scmm_bot/pkg/contextx"
	"scmm_bot/pkg/errcodes"
	"scmm_bot/pkg/httpx"
	"scmm_bot/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	endpointStoreCurrent = "store_current"
	endpointStoreList    = "store_list"
	endpointStoreByID    = "store_by_id"
	endpointItem         = "item"
)

const (
	outcomeOK          = "ok"
	outcomeTimeout     = "timeout"
	outcomeUnreachable = "unreachable"
	outcomeNotFound    = "not_found"
	outcomeUpstream    = "upstream_error"
	outcomeMalformed   = "malformed"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.SCMM) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: httpx.NewLoggingRoundTripper(
				http.DefaultTransport,
				httpx.WithLogFieldMaxLen(2048),
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			),
		},
	}
}

// StoreCurrentRaw fetches the current store rotation as raw JSON bytes, for
// the debug preview.
func (c *Client) StoreCurrentRaw(ctx context.Context) ([]byte, error) {
	return c.get(ctx, endpointStoreCurrent, "/store/current")
}

// StoreCurrent fetches the current store rotation as normalized entries.
func (c *Client) StoreCurrent(ctx context.Context) ([]entity.StoreEntry, error) {
	body, err := c.get(ctx, endpointStoreCurrent, "/store/current")
	if err != nil {
		return nil, err
	}

	var payload storeWrapperPayload
	if err := c.unmarshal(endpointStoreCurrent, body, &payload); err != nil {
		return nil, err
	}

	return lo.Map(payload.Items, func(p storeItemPayload, _ int) entity.StoreEntry {
		return p.toEntity()
	}), nil
}

// StoreList fetches the catalog of all known store rotations. SCMM has served
// this both as a bare array and as an {"items": [...]} wrapper.
func (c *Client) StoreList(ctx context.Context) ([]entity.StoreRef, error) {
	body, err := c.get(ctx, endpointStoreList, "/store")
	if err != nil {
		return nil, err
	}

	var refs []entity.StoreRef
	if err := json.Unmarshal(body, &refs); err == nil {
		return refs, nil
	}

	var wrapped struct {
		Items []entity.StoreRef `json:"items"`
	}
	if err := c.unmarshal(endpointStoreList, body, &wrapped); err != nil {
		return nil, err
	}

	return wrapped.Items, nil
}

// StoreByID fetches the normalized items of one historical store rotation.
func (c *Client) StoreByID(ctx context.Context, storeID string) ([]entity.StoreEntry, error) {
	body, err := c.get(ctx, endpointStoreByID, "/store/"+url.PathEscape(storeID))
	if err != nil {
		return nil, err
	}

	var payload storeWrapperPayload
	if err := c.unmarshal(endpointStoreByID, body, &payload); err != nil {
		return nil, err
	}

	return lo.Map(payload.Items, func(p storeItemPayload, _ int) entity.StoreEntry {
		return p.toEntity()
	}), nil
}

// StoreForDate resolves the rotation whose start date (UTC) matches target
// and returns its items plus the chosen store ID. When several rotations
// started on the same day the latest one wins.
func (c *Client) StoreForDate(ctx context.Context, target time.Time) ([]entity.StoreEntry, string, error) {
	refs, err := c.StoreList(ctx)
	if err != nil {
		return nil, "", err
	}

	targetDate := target.Format("2006-01-02")

	matches := lo.Filter(refs, func(r entity.StoreRef, _ int) bool {
		return r.StartDate() == targetDate
	})
	if len(matches) == 0 {
		return nil, "", domain.NewError(
			errcodes.NotFound,
			fmt.Sprintf("no store rotation started on %s", targetDate),
		)
	}

	chosen := lo.MaxBy(matches, func(a, b entity.StoreRef) bool {
		return a.Start > b.Start
	})
	if chosen.ID == "" {
		return nil, "", domain.NewError(errcodes.MalformedResponse, "store rotation has no ID")
	}

	logger(ctx).Debug(
		"resolved store rotation",
		slog.String("store_id", chosen.ID),
		slog.String("store_date", targetDate),
	)

	items, err := c.StoreByID(ctx, chosen.ID)
	if err != nil {
		return nil, "", err
	}

	return items, chosen.ID, nil
}

// ItemByName fetches the full details for one skin by its exact name.
func (c *Client) ItemByName(ctx context.Context, name string) (*entity.ItemDetails, error) {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return nil, domain.NewError(errcodes.EmptyItemName, "item name is required")
	}

	body, err := c.get(ctx, endpointItem, "/item/"+url.PathEscape(clean))
	if err != nil {
		return nil, err
	}

	var payload itemDetailsPayload
	if err := c.unmarshal(endpointItem, body, &payload); err != nil {
		return nil, err
	}

	details := payload.toEntity()

	return &details, nil
}

func (c *Client) get(ctx context.Context, endpoint, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		var netErr net.Error
		if (errors.As(err, &netErr) && netErr.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
			metrics.SCMMRequestsTotal.WithLabelValues(endpoint, outcomeTimeout).Inc()
			return nil, domain.WrapError(err, errcodes.Timeout, "SCMM timed out")
		}

		metrics.SCMMRequestsTotal.WithLabelValues(endpoint, outcomeUnreachable).Inc()

		return nil, domain.WrapError(err, errcodes.Unreachable, "SCMM is unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.SCMMRequestsTotal.WithLabelValues(endpoint, outcomeUnreachable).Inc()
		return nil, domain.WrapError(err, errcodes.Unreachable, "read SCMM response")
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		metrics.SCMMRequestsTotal.WithLabelValues(endpoint, outcomeNotFound).Inc()
		return nil, domain.NewError(errcodes.NotFound, fmt.Sprintf("SCMM has no data at %s", path))
	case resp.StatusCode >= http.StatusBadRequest:
		metrics.SCMMRequestsTotal.WithLabelValues(endpoint, outcomeUpstream).Inc()
		return nil, domain.NewError(
			errcodes.UpstreamError,
			fmt.Sprintf("SCMM responded with HTTP %d for %s", resp.StatusCode, path),
		)
	}

	metrics.SCMMRequestsTotal.WithLabelValues(endpoint, outcomeOK).Inc()

	return body, nil
}

func (c *Client) unmarshal(endpoint string, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		metrics.SCMMRequestsTotal.WithLabelValues(endpoint, outcomeMalformed).Inc()
		return domain.WrapError(err, errcodes.MalformedResponse, "SCMM returned invalid JSON")
	}

	return nil
}
