// Package beekeeper talks to Hive's "beekeeper" REST API, the backend
// behind my.hivehome.com.
package beekeeper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driven"
	"github.com/rrwood/hive-schedule-mgr/internal/logger"
)

// Ensure Client implements the HeatingGateway interface.
var _ driven.HeatingGateway = (*Client)(nil)

// requestRate throttles vendor calls to roughly one per second. The API
// has no published limits but the web app never bursts faster.
const requestRate = 1.0

// maxErrorBody caps how much of an error response is kept for messages.
const maxErrorBody = 512

// Client submits schedule documents to the beekeeper API.
//
// The Authorization header format differs between Hive API revisions:
// some accept the bare id token, others want a "Bearer " prefix. In auto
// mode the client starts with the bare token and flips format when a
// request comes back 401/403, so the caller's single post-refresh retry
// also exercises the other format. The first success pins the format for
// the rest of the process lifetime.
type Client struct {
	baseURL string
	origin  string
	client  *http.Client
	limiter *rate.Limiter
	log     *logger.Logger

	mu        sync.Mutex
	mode      domain.HeaderMode
	bearer    bool
	confirmed bool
}

// NewClient creates a beekeeper client from vendor settings.
func NewClient(settings domain.VendorSettings, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(settings.BaseURL, "/"),
		origin:  settings.Origin,
		client:  &http.Client{Timeout: settings.Timeout()},
		limiter: rate.NewLimiter(rate.Limit(requestRate), 1),
		log:     log,
		mode:    settings.AuthHeader,
		bearer:  settings.AuthHeader == domain.HeaderModeBearer,
	}
}

// PushDaySchedule sends a single-day partial update for the node. The
// returned document is the vendor's post-update view of the node's
// schedule when the response carries one, nil otherwise.
func (c *Client) PushDaySchedule(ctx context.Context, token, nodeID string, day domain.Weekday, schedule domain.DaySchedule) (*domain.WireSchedule, error) {
	wire, err := domain.BuildWireDay(day, schedule)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("encode schedule: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSubmissionFailed, err)
	}

	url := fmt.Sprintf("%s/nodes/heating/%s", c.baseURL, nodeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req, token)

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrSubmissionFailed, ctx.Err())
		}
		return nil, fmt.Errorf("%w: transport failure: %v", domain.ErrSubmissionFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		c.confirmStyle()
		return decodeConfirmation(resp.Body), nil

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.flipStyle()
		return nil, fmt.Errorf("%w: vendor rejected token (status %d)", domain.ErrAuthRequired, resp.StatusCode)

	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %q (status 404)", domain.ErrUnknownNode, nodeID)

	default:
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrSubmissionFailed, resp.StatusCode, errorBody(resp.Body))
	}
}

// setHeaders applies the header set the web app sends. Hive rejects
// requests without the Origin/Referer pair.
func (c *Client) setHeaders(req *http.Request, token string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Origin", c.origin)
	req.Header.Set("Referer", c.origin+"/")
	req.Header.Set("Authorization", c.authValue(token))
}

// authValue renders the Authorization header in the current format.
func (c *Client) authValue(token string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bearer {
		return "Bearer " + token
	}
	return token
}

// confirmStyle pins the current format after a successful request.
func (c *Client) confirmStyle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.confirmed = true
}

// flipStyle switches the Authorization format after a 401/403, in auto
// mode only and only while no request has succeeded yet.
func (c *Client) flipStyle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != domain.HeaderModeAuto || c.confirmed {
		return
	}
	c.bearer = !c.bearer
	if c.bearer {
		c.log.Debugf("Vendor rejected bare token, trying Bearer format next")
	} else {
		c.log.Debugf("Vendor rejected Bearer token, trying bare format next")
	}
}

// decodeConfirmation parses the response body as a schedule document.
// Hive normally echoes the node's full schedule back; an empty or
// malformed body is not an error, the push already succeeded.
func decodeConfirmation(body io.Reader) *domain.WireSchedule {
	var confirmed domain.WireSchedule
	if err := json.NewDecoder(body).Decode(&confirmed); err != nil {
		return nil
	}
	if len(confirmed.Schedule) == 0 {
		return nil
	}
	return &confirmed
}

// errorBody reads a capped, whitespace-trimmed slice of an error response
// for diagnostics.
func errorBody(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return "no response body"
	}
	return strings.TrimSpace(string(data))
}
