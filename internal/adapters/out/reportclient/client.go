// Package reportclient implements the outbound port to the external report
// microservice over plain HTTP. Every transport or protocol failure is
// translated into a ServiceFailedError with a message fit for display.
package reportclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
)

const serviceName = "report-service"

// defaultTimeout bounds a report call end to end. The upstream contract has
// no cancellation of its own, so the client enforces one.
const defaultTimeout = 15 * time.Second

// Client calls the report microservice's GET
// /report/{orderId}/{distance}/{destination} endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a report client for the given base URL.
func New(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}, nil
}

type reportResponse struct {
	Report string `json:"report"`
}

// GenerateOrderReport requests a report for one order and returns its text.
// The destination is percent-encoded into the path; distance is rendered
// without trailing zeros the way the service expects it.
func (c *Client) GenerateOrderReport(
	ctx context.Context,
	orderID kernel.ID,
	distanceKm float64,
	destination string,
) (string, error) {
	if err := orderID.Validate(); err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/report/%s/%s/%s",
		c.baseURL,
		url.PathEscape(orderID.String()),
		strconv.FormatFloat(distanceKm, 'f', -1, 64),
		url.PathEscape(destination),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", errs.NewServiceFailedErrorWithCause(serviceName, "building request failed", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.NewServiceFailedErrorWithCause(serviceName, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", errs.NewServiceFailedError(serviceName,
			fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	var payload reportResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", errs.NewServiceFailedErrorWithCause(serviceName, "malformed response body", err)
	}

	return payload.Report, nil
}
