package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(h http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(h)
	c := &Client{
		Server: srv.URL,
		HTTP:   srv.Client(),
	}
	return c, srv
}

func TestRequestHeaders(t *testing.T) {
	var got *http.Request
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Write([]byte(`{"meta":{"code":200},"data":[]}`))
	})
	defer srv.Close()

	c.SetToken("tok123")
	if _, err := c.Devices(context.Background(), "99"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ua := got.Header.Get("User-Agent"); ua != userAgent {
		t.Errorf("wrong user agent: %q", ua)
	}
	if ct := got.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("wrong content type: %q", ct)
	}
	ck, err := got.Cookie(sessionCookie)
	if err != nil {
		t.Fatal("session cookie missing")
	}
	if ck.Value != "tok123" {
		t.Errorf("wrong session cookie: %q", ck.Value)
	}
	if got.URL.Path != "/networks/99/devices" {
		t.Errorf("wrong path: %q", got.URL.Path)
	}
}

func TestNoCookieWithoutToken(t *testing.T) {
	var cookies []*http.Cookie
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		cookies = r.Cookies()
		w.Write([]byte(`{"meta":{"code":200},"data":{"user_token":"abc"}}`))
	})
	defer srv.Close()

	if _, err := c.Login(context.Background(), "user@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cookies) != 0 {
		t.Errorf("expected no cookies before login, got %v", cookies)
	}
}

func TestUnwrapsEnvelope(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meta":{"code":200,"server_id":"x","timestamp":"now"},
			"data":[{"url":"/2.2/networks/1/devices/aa","mac":"de:ad:be:ef:00:01","hostname":"toaster"}]}`))
	})
	defer srv.Close()

	devs, err := c.Devices(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(devs) != 1 {
		t.Fatalf("expected 1 device, got %d", len(devs))
	}
	if devs[0].MAC != "de:ad:be:ef:00:01" || devs[0].Hostname != "toaster" {
		t.Errorf("data payload mangled: %+v", devs[0])
	}
}

func TestErrorFromMeta(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		w.Write([]byte(`{"meta":{"code":404,"error":"not found"}}`))
	})
	defer srv.Close()

	_, err := c.Devices(context.Background(), "1")
	ae, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if ae.Message != "not found" {
		t.Errorf("wrong message: %q", ae.Message)
	}
	if ae.StatusCode != 404 {
		t.Errorf("wrong status: %d", ae.StatusCode)
	}
}

func TestErrorFallbackMessage(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
		w.Write([]byte(`garbage`))
	})
	defer srv.Close()

	_, err := c.Account(context.Background())
	ae, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if ae.Message != "API error (status 500)" {
		t.Errorf("wrong message: %q", ae.Message)
	}
	if ae.StatusCode != 500 {
		t.Errorf("wrong status: %d", ae.StatusCode)
	}
}

func TestNetworkErrorHasNoStatus(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
	srv.Close() // refuse every connection

	_, err := c.Account(context.Background())
	ae, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if ae.StatusCode != 0 {
		t.Errorf("expected no status, got %d", ae.StatusCode)
	}
	if ae.Message == "" {
		t.Error("expected the transport error message to be kept")
	}
}

func TestParseErrorOnSuccess(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meta":`))
	})
	defer srv.Close()

	_, err := c.Account(context.Background())
	ae, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if ae.StatusCode != 0 {
		t.Errorf("expected no status, got %d", ae.StatusCode)
	}
}

func TestLoginFlow(t *testing.T) {
	type verifyBody struct {
		Code string `json:"code"`
	}

	var verify verifyBody
	var verifyCookie string

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			w.Write([]byte(`{"meta":{"code":200},"data":{"user_token":"abc123"}}`))
		case "/login/verify":
			if err := json.NewDecoder(r.Body).Decode(&verify); err != nil {
				t.Errorf("bad verify body: %v", err)
			}
			if ck, err := r.Cookie(sessionCookie); err == nil {
				verifyCookie = ck.Value
			}
			w.Write([]byte(`{"meta":{"code":200},"data":{}}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	})
	defer srv.Close()

	tok, err := c.Login(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if tok != "abc123" {
		t.Fatalf("wrong user token: %q", tok)
	}

	if err := c.LoginVerify(context.Background(), tok, "042117"); err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	if verify.Code != "042117" {
		t.Errorf("wrong code in verify body: %q", verify.Code)
	}
	if verifyCookie != "abc123" {
		t.Errorf("verify call not authenticated with the user token: %q", verifyCookie)
	}
	if c.Token != "abc123" {
		t.Errorf("token not set on client: %q", c.Token)
	}
}

func TestValidateToken(t *testing.T) {
	status := 200
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(`{"meta":{"code":200},"data":{"name":"someone"}}`))
	})
	defer srv.Close()

	if !c.ValidateToken(context.Background()) {
		t.Error("expected a passing validation")
	}

	status = 401
	if c.ValidateToken(context.Background()) {
		t.Error("expected a failing validation")
	}
}

func TestMutationRequest(t *testing.T) {
	var method, path string
	body := map[string]any{}

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("bad body: %v", err)
		}
		w.Write([]byte(`{"meta":{"code":200},"data":{}}`))
	})
	defer srv.Close()

	if err := c.PauseDevice(context.Background(), "1", "aa", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if method != "PUT" || path != "/networks/1/devices/aa" {
		t.Errorf("wrong request: %s %s", method, path)
	}
	if len(body) != 1 || body["paused"] != true {
		t.Errorf("payload should carry only the changed field, got %v", body)
	}
}
