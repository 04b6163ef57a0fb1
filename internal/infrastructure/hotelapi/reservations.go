package hotelapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/example/oceanview/internal/domain/reservation"
)

const reservationsPath = "/reservations"

var (
	_ reservation.Gateway = (*Client)(nil)
	_ reservation.Lister  = (*Client)(nil)
)

// Create posts the full draft to {base}/reservations/add.
func (c *Client) Create(ctx context.Context, d reservation.Draft) (reservation.Reservation, error) {
	const op = "create reservation"
	status, body, err := c.do(ctx, http.MethodPost, reservationsPath+"/add", d)
	if err != nil {
		return reservation.Reservation{}, requestFailed(op, status, body, err)
	}
	if !ok(status) {
		return reservation.Reservation{}, requestFailed(op, status, body, nil)
	}
	return decodeReservation(op, status, body)
}

// Update puts the whole reservation back to {base}/reservations/{number}.
func (c *Client) Update(ctx context.Context, number string, r reservation.Reservation) (reservation.Reservation, error) {
	const op = "update reservation"
	if strings.TrimSpace(number) == "" {
		return reservation.Reservation{}, requestFailed(op, 0, nil, fmt.Errorf("reservation number is empty"))
	}
	status, body, err := c.do(ctx, http.MethodPut, reservationsPath+"/"+url.PathEscape(number), r)
	if err != nil {
		return reservation.Reservation{}, requestFailed(op, status, body, err)
	}
	if !ok(status) {
		return reservation.Reservation{}, requestFailed(op, status, body, nil)
	}
	return decodeReservation(op, status, body)
}

// FetchByNumber reads {base}/reservations/{number}. Any non-2xx answer means
// the reference is unknown.
func (c *Client) FetchByNumber(ctx context.Context, number string) (reservation.Reservation, error) {
	const op = "fetch reservation"
	status, body, err := c.do(ctx, http.MethodGet, reservationsPath+"/"+url.PathEscape(number), nil)
	if err != nil {
		return reservation.Reservation{}, requestFailed(op, status, body, err)
	}
	if !ok(status) {
		return reservation.Reservation{}, notFound(op, status, body)
	}
	return decodeReservation(op, status, body)
}

// List reads every reservation from {base}/reservations/all.
func (c *Client) List(ctx context.Context) ([]reservation.Reservation, error) {
	const op = "list reservations"
	status, body, err := c.do(ctx, http.MethodGet, reservationsPath+"/all", nil)
	if err != nil {
		return nil, requestFailed(op, status, body, err)
	}
	if !ok(status) {
		return nil, requestFailed(op, status, body, nil)
	}
	var out []reservation.Reservation
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, requestFailed(op, status, body, fmt.Errorf("parse reservations: %w", err))
	}
	return out, nil
}

func decodeReservation(op string, status int, body []byte) (reservation.Reservation, error) {
	var r reservation.Reservation
	if err := json.Unmarshal(body, &r); err != nil {
		return reservation.Reservation{}, requestFailed(op, status, body, fmt.Errorf("parse reservation: %w", err))
	}
	return r, nil
}
