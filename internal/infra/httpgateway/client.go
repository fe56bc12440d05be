package httpgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tripbook-reservations/internal/domain/reservation"
	"tripbook-reservations/internal/infra"
	"tripbook-reservations/internal/usecase"

	"github.com/google/uuid"
)

// Client talks JSON to the backend booking service, the authoritative system
// of record for composite reservations. The wire format is the aggregate
// snapshot.
type Client struct {
	hc      *http.Client
	baseURL string
}

var _ usecase.ReservationGateway = (*Client)(nil)

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		hc:      &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) SubmitReservation(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	return c.push(ctx, http.MethodPost, c.baseURL+"/reservations", res)
}

func (c *Client) UpdateReservation(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	return c.push(ctx, http.MethodPut, c.baseURL+"/reservations/"+res.ID().String(), res)
}

func (c *Client) CancelRemoteReservation(ctx context.Context, id uuid.UUID) (bool, error) {
	status, _, err := c.do(ctx, http.MethodDelete, c.baseURL+"/reservations/"+id.String(), nil)
	if err != nil {
		return false, infra.WrapErr(nil, infra.KindRemoteFailure, "gateway cancellation request failed", err)
	}
	switch {
	case status == http.StatusOK || status == http.StatusNoContent:
		return true, nil
	case status == http.StatusNotFound:
		return false, nil
	default:
		return false, infra.NewError(infra.KindRemoteFailure, fmt.Sprintf("gateway cancellation rejected (status=%d)", status))
	}
}

func (c *Client) GetReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	status, body, err := c.do(ctx, http.MethodGet, c.baseURL+"/reservations/"+id.String(), nil)
	if err != nil {
		return nil, infra.WrapErr(nil, infra.KindRemoteFailure, "gateway fetch failed", err)
	}
	if status == http.StatusNotFound {
		return nil, infra.NewError(infra.KindNotFound, "remote reservation not found")
	}
	if status >= 400 {
		return nil, infra.NewError(infra.KindRemoteFailure, fmt.Sprintf("gateway fetch rejected (status=%d)", status))
	}
	return decodeReservation(body)
}

func (c *Client) push(ctx context.Context, method, url string, res *reservation.Reservation) (*reservation.Reservation, error) {
	payload, err := json.Marshal(res.Snapshot())
	if err != nil {
		return nil, infra.WrapErr(nil, infra.KindRemoteFailure, "failed to encode reservation", err)
	}
	status, body, err := c.do(ctx, method, url, payload)
	if err != nil {
		return nil, infra.WrapErr(nil, infra.KindRemoteFailure, "gateway request failed", err)
	}
	if status >= 400 {
		// The gateway rejected the aggregate; surface the message when one
		// is provided.
		var r struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &r)
		if r.Message != "" {
			return nil, infra.NewError(infra.KindRemoteFailure, fmt.Sprintf("gateway rejected reservation: %s (status=%d)", r.Message, status))
		}
		return nil, infra.NewError(infra.KindRemoteFailure, fmt.Sprintf("gateway rejected reservation (status=%d)", status))
	}
	return decodeReservation(body)
}

func (c *Client) do(ctx context.Context, method, url string, payload []byte) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

func decodeReservation(body []byte) (*reservation.Reservation, error) {
	var snap reservation.Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, infra.WrapErr(nil, infra.KindRemoteFailure, "failed to decode gateway response", err)
	}
	return reservation.FromSnapshot(snap)
}
