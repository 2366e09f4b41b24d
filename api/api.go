package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// DefaultServer is where the eero cloud API is hosted, including the
// version prefix.
const DefaultServer = "https://api-user.e2ro.com/2.2"

const (
	userAgent     = "eeroctl/0.2"
	sessionCookie = "s"
)

// Client handles calls against the eero cloud API.
type Client struct {
	// Server is the base URL of the API, including the version prefix.
	// This must not change after the first call.
	Server string

	// Token is the session token we receive after verifying a login.
	// It may be empty before login. Use SetToken to set it later;
	// once set it must not change.
	Token string

	HTTP *http.Client
}

// SetToken sets the session token used to authenticate all following calls.
func (c *Client) SetToken(token string) {
	c.Token = token
}

// Error is the failure type for every API call. StatusCode is zero when
// the failure did not come back as an HTTP status.
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	return e.Message
}

// wrapErr normalizes any failure into *Error. Errors that already are
// *Error pass through unchanged.
func wrapErr(err error) error {
	if ae, ok := err.(*Error); ok {
		return ae
	}
	return &Error{Message: err.Error()}
}

type meta struct {
	Code      int    `json:"code"`
	ServerID  string `json:"server_id,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Error     string `json:"error,omitempty"`
}

// envelope is the {meta, data} wrapper around every response body.
type envelope[T any] struct {
	Meta meta `json:"meta"`
	Data T    `json:"data"`
}

func encodeJSON(data any) (io.Reader, error) {
	b := &bytes.Buffer{}
	if err := json.NewEncoder(b).Encode(data); err != nil {
		return nil, err
	}
	return b, nil
}

// do issues one request and unwraps the response envelope.
//
// The body is parsed regardless of status code: on a non-2xx status the
// vendor usually still sends an envelope whose meta carries the error
// message, and that message is what callers want to see.
func do[T any](ctx context.Context, c *Client, method, path string, payload any) (T, error) {
	var zero T

	var body io.Reader
	if payload != nil {
		b, err := encodeJSON(payload)
		if err != nil {
			return zero, wrapErr(err)
		}
		body = b
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Server+path, body)
	if err != nil {
		return zero, wrapErr(err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: c.Token})
	}

	httpc := c.HTTP
	if httpc == nil {
		httpc = http.DefaultClient
	}

	zap.L().Debug("eero api request",
		zap.String("method", method),
		zap.String("path", path),
	)

	res, err := httpc.Do(req)
	if err != nil {
		return zero, wrapErr(err)
	}
	defer res.Body.Close()

	var env envelope[T]
	decErr := json.NewDecoder(res.Body).Decode(&env)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg := env.Meta.Error
		if msg == "" {
			msg = fmt.Sprintf("API error (status %d)", res.StatusCode)
		}
		zap.L().Debug("eero api failure",
			zap.String("path", path),
			zap.Int("status", res.StatusCode),
			zap.String("error", msg),
		)
		return zero, &Error{Message: msg, StatusCode: res.StatusCode}
	}
	if decErr != nil {
		return zero, wrapErr(decErr)
	}

	return env.Data, nil
}

// Login begins the login flow for an email address or phone number and
// returns the short-lived user token consumed by LoginVerify. The vendor
// sends a one-time code to the identity out of band.
func (c *Client) Login(ctx context.Context, identity string) (string, error) {
	res, err := do[LoginResponse](ctx, c, "POST", "/login", struct {
		Login string `json:"login"`
	}{identity})
	if err != nil {
		return "", err
	}
	return res.UserToken, nil
}

// LoginVerify confirms the one-time code. The client's session token is
// set to token before the verify call so the cookie authenticates it; on
// success that same token is the long-lived session.
func (c *Client) LoginVerify(ctx context.Context, token, code string) error {
	c.Token = token
	_, err := do[json.RawMessage](ctx, c, "POST", "/login/verify", struct {
		Code string `json:"code"`
	}{code})
	return err
}

// Account returns the account attached to the session token, including
// its networks.
func (c *Client) Account(ctx context.Context) (Account, error) {
	return do[Account](ctx, c, "GET", "/account", nil)
}

// ValidateToken reports whether the current session token still
// authenticates. Any failure maps to false.
func (c *Client) ValidateToken(ctx context.Context) bool {
	_, err := c.Account(ctx)
	return err == nil
}

// Devices returns every device the network has seen.
func (c *Client) Devices(ctx context.Context, networkID string) ([]Device, error) {
	return do[[]Device](ctx, c, "GET", "/networks/"+networkID+"/devices", nil)
}

// Profiles returns the network's profiles.
func (c *Client) Profiles(ctx context.Context, networkID string) ([]Profile, error) {
	return do[[]Profile](ctx, c, "GET", "/networks/"+networkID+"/profiles", nil)
}

// ProfileDetails returns one profile along with its member devices.
func (c *Client) ProfileDetails(ctx context.Context, networkID, profileID string) (ProfileDetails, error) {
	return do[ProfileDetails](ctx, c, "GET", "/networks/"+networkID+"/profiles/"+profileID, nil)
}

// Eeros returns the physical nodes of the network.
func (c *Client) Eeros(ctx context.Context, networkID string) ([]Eero, error) {
	return do[[]Eero](ctx, c, "GET", "/networks/"+networkID+"/eeros", nil)
}

// GuestNetwork returns the network's guest network settings.
func (c *Client) GuestNetwork(ctx context.Context, networkID string) (GuestNetwork, error) {
	return do[GuestNetwork](ctx, c, "GET", "/networks/"+networkID+"/guestnetwork", nil)
}

// Reservations returns the network's DHCP reservations.
func (c *Client) Reservations(ctx context.Context, networkID string) ([]Reservation, error) {
	return do[[]Reservation](ctx, c, "GET", "/networks/"+networkID+"/reservations", nil)
}

// PortForwards returns the network's port forwarding rules.
func (c *Client) PortForwards(ctx context.Context, networkID string) ([]PortForward, error) {
	return do[[]PortForward](ctx, c, "GET", "/networks/"+networkID+"/forwards", nil)
}

// PauseDevice pauses or unpauses internet access for one device.
func (c *Client) PauseDevice(ctx context.Context, networkID, deviceID string, paused bool) error {
	_, err := do[json.RawMessage](ctx, c, "PUT", "/networks/"+networkID+"/devices/"+deviceID, struct {
		Paused bool `json:"paused"`
	}{paused})
	return err
}

// BlockDevice blocks or unblocks one device from the network.
func (c *Client) BlockDevice(ctx context.Context, networkID, deviceID string, blocked bool) error {
	_, err := do[json.RawMessage](ctx, c, "PUT", "/networks/"+networkID+"/devices/"+deviceID, struct {
		Blocked bool `json:"blocked"`
	}{blocked})
	return err
}

// RenameDevice sets a device's nickname.
func (c *Client) RenameDevice(ctx context.Context, networkID, deviceID, nickname string) error {
	_, err := do[json.RawMessage](ctx, c, "PUT", "/networks/"+networkID+"/devices/"+deviceID, struct {
		Nickname string `json:"nickname"`
	}{nickname})
	return err
}

// PauseProfile pauses or unpauses every device in a profile.
func (c *Client) PauseProfile(ctx context.Context, networkID, profileID string, paused bool) error {
	_, err := do[json.RawMessage](ctx, c, "PUT", "/networks/"+networkID+"/profiles/"+profileID, struct {
		Paused bool `json:"paused"`
	}{paused})
	return err
}

// SetProfileDevices replaces a profile's membership with the devices
// named by their resource URLs.
func (c *Client) SetProfileDevices(ctx context.Context, networkID, profileID string, deviceURLs []string) error {
	type ref struct {
		URL string `json:"url"`
	}
	refs := make([]ref, 0, len(deviceURLs))
	for _, u := range deviceURLs {
		refs = append(refs, ref{URL: u})
	}
	_, err := do[json.RawMessage](ctx, c, "PUT", "/networks/"+networkID+"/profiles/"+profileID, struct {
		Devices []ref `json:"devices"`
	}{refs})
	return err
}

// RebootEero reboots one physical node.
func (c *Client) RebootEero(ctx context.Context, eeroID string) error {
	_, err := do[json.RawMessage](ctx, c, "POST", "/eeros/"+eeroID+"/reboot", nil)
	return err
}

// EnableGuestNetwork turns the guest network on or off.
func (c *Client) EnableGuestNetwork(ctx context.Context, networkID string, enabled bool) error {
	_, err := do[json.RawMessage](ctx, c, "PUT", "/networks/"+networkID+"/guestnetwork", struct {
		Enabled bool `json:"enabled"`
	}{enabled})
	return err
}

// SetGuestNetworkPassword changes the guest network password.
func (c *Client) SetGuestNetworkPassword(ctx context.Context, networkID, password string) error {
	_, err := do[json.RawMessage](ctx, c, "PUT", "/networks/"+networkID+"/guestnetwork", struct {
		Password string `json:"password"`
	}{password})
	return err
}

// RebootNetwork reboots the whole network, gateway last.
func (c *Client) RebootNetwork(ctx context.Context, networkID string) error {
	_, err := do[json.RawMessage](ctx, c, "POST", "/networks/"+networkID+"/reboot", nil)
	return err
}

// CreateReservation adds a DHCP reservation.
func (c *Client) CreateReservation(ctx context.Context, networkID, ip, mac, description string) error {
	_, err := do[json.RawMessage](ctx, c, "POST", "/networks/"+networkID+"/reservations", struct {
		IP          string `json:"ip"`
		MAC         string `json:"mac"`
		Description string `json:"description"`
	}{ip, mac, description})
	return err
}

// DeleteReservation removes a DHCP reservation.
func (c *Client) DeleteReservation(ctx context.Context, networkID, reservationID string) error {
	_, err := do[json.RawMessage](ctx, c, "DELETE", "/networks/"+networkID+"/reservations/"+reservationID, nil)
	return err
}

// CreatePortForward adds a port forwarding rule. New rules start enabled.
func (c *Client) CreatePortForward(ctx context.Context, networkID, ip string, gatewayPort, clientPort int, protocol, description string) error {
	_, err := do[json.RawMessage](ctx, c, "POST", "/networks/"+networkID+"/forwards", struct {
		IP          string `json:"ip"`
		GatewayPort int    `json:"gateway_port"`
		ClientPort  int    `json:"client_port"`
		Protocol    string `json:"protocol"`
		Enabled     bool   `json:"enabled"`
		Description string `json:"description,omitempty"`
	}{ip, gatewayPort, clientPort, protocol, true, description})
	return err
}

// UpdatePortForward enables or disables an existing rule.
func (c *Client) UpdatePortForward(ctx context.Context, networkID, forwardID string, enabled bool) error {
	_, err := do[json.RawMessage](ctx, c, "PUT", "/networks/"+networkID+"/forwards/"+forwardID, struct {
		Enabled bool `json:"enabled"`
	}{enabled})
	return err
}

// DeletePortForward removes a port forwarding rule.
func (c *Client) DeletePortForward(ctx context.Context, networkID, forwardID string) error {
	_, err := do[json.RawMessage](ctx, c, "DELETE", "/networks/"+networkID+"/forwards/"+forwardID, nil)
	return err
}
