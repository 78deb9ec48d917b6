package birdclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestAuthHeaderShape(t *testing.T) {
	c := New(testCreds())
	c.nowFn = func() time.Time { return time.Unix(1700000000, 0) }
	c.nonceFn = func() string { return "fixednonce" }

	header := c.authHeader(http.MethodGet, "https://api.example.com/statuses/user_timeline.json", map[string]string{
		"screen_name": "marc_dev",
		"count":       "5",
	})

	if !strings.HasPrefix(header, "OAuth ") {
		t.Fatalf("header = %q, want OAuth prefix", header)
	}
	for _, part := range []string{
		`oauth_consumer_key="ck"`,
		`oauth_token="at"`,
		`oauth_signature_method="HMAC-SHA1"`,
		`oauth_timestamp="1700000000"`,
		`oauth_nonce="fixednonce"`,
		`oauth_version="1.0"`,
		`oauth_signature="`,
	} {
		if !strings.Contains(header, part) {
			t.Errorf("header missing %s: %q", part, header)
		}
	}
}

func TestAuthHeaderDeterministic(t *testing.T) {
	c := New(testCreds())
	c.nowFn = func() time.Time { return time.Unix(1700000000, 0) }
	c.nonceFn = func() string { return "fixednonce" }

	params := map[string]string{"count": "5"}
	first := c.authHeader(http.MethodGet, "https://api.example.com/x.json", params)
	second := c.authHeader(http.MethodGet, "https://api.example.com/x.json", params)

	if first != second {
		t.Error("same inputs must sign identically")
	}

	c.nonceFn = func() string { return "othernonce" }
	third := c.authHeader(http.MethodGet, "https://api.example.com/x.json", params)
	if first == third {
		t.Error("a different nonce must change the signature")
	}
}

func TestRequestsCarrySignature(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "OAuth ") {
			t.Errorf("Authorization = %q, want an OAuth header", auth)
		}
		if !strings.Contains(auth, `oauth_token="at"`) {
			t.Errorf("Authorization missing the access token: %q", auth)
		}
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	if _, err := newTestClient(ts.URL).GetProfile(context.Background()); err != nil {
		t.Fatalf("GetProfile returned error: %v", err)
	}
}
