package birdclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/WangWilly/birdboard/pkgs/config"
)

func testCreds() config.Credentials {
	return config.Credentials{
		APIKey:            "ck",
		APISecret:         "cs",
		AccessToken:       "at",
		AccessTokenSecret: "as",
	}
}

func newTestClient(host string) *Client {
	c := New(testCreds())
	c.SetHost(host)
	return c
}

func TestGetUserTimelinePassesParams(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"text": "hello"}]`))
	}))
	defer ts.Close()

	raw, err := newTestClient(ts.URL).GetUserTimeline(context.Background(), "marc_dev", 5)
	if err != nil {
		t.Fatalf("GetUserTimeline returned error: %v", err)
	}

	if gotPath != "/statuses/user_timeline.json" {
		t.Errorf("path = %q", gotPath)
	}
	if got := gotQuery["screen_name"]; len(got) != 1 || got[0] != "marc_dev" {
		t.Errorf("screen_name = %v", got)
	}
	if got := gotQuery["count"]; len(got) != 1 || got[0] != "5" {
		t.Errorf("count = %v", got)
	}
	if string(raw) != `[{"text": "hello"}]` {
		t.Errorf("raw body = %s, want the untouched response", raw)
	}
}

func TestGetMessagesEndpoints(t *testing.T) {
	var gotPaths []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	if _, err := client.GetMessages(context.Background(), DIRECTION_RECEIVED, 20); err != nil {
		t.Fatalf("received: %v", err)
	}
	if _, err := client.GetMessages(context.Background(), DIRECTION_SENT, 20); err != nil {
		t.Fatalf("sent: %v", err)
	}

	want := []string{"/direct_messages.json", "/direct_messages/sent.json"}
	for i, path := range want {
		if gotPaths[i] != path {
			t.Errorf("paths = %v, want %v", gotPaths, want)
		}
	}

	if _, err := client.GetMessages(context.Background(), Direction("bogus"), 20); err == nil {
		t.Error("expected an error for an unknown direction")
	}
}

func TestSubmitPostSendsForm(t *testing.T) {
	var gotMethod, gotStatus string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		r.ParseForm()
		gotStatus = r.PostFormValue("status")
		w.Write([]byte(`{"id": 1}`))
	}))
	defer ts.Close()

	if _, err := newTestClient(ts.URL).SubmitPost(context.Background(), "hello world"); err != nil {
		t.Fatalf("SubmitPost returned error: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST", gotMethod)
	}
	if gotStatus != "hello world" {
		t.Errorf("status form value = %q", gotStatus)
	}
}

func TestNon2xxMapsToAPIError(t *testing.T) {
	payload := `{"errors": [{"message": "Rate limit exceeded", "code": 88}]}`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(payload))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).GetFollowers(context.Background(), "marc_dev", 5)
	if err == nil {
		t.Fatal("expected an error")
	}

	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("error is not an *APIError: %v", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want 429", apiErr.StatusCode)
	}
	if string(apiErr.Payload) != payload {
		t.Errorf("Payload = %s, want the upstream body", apiErr.Payload)
	}
}

func TestGetProfilePath(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"screen_name": "marc_dev"}`))
	}))
	defer ts.Close()

	if _, err := newTestClient(ts.URL).GetProfile(context.Background()); err != nil {
		t.Fatalf("GetProfile returned error: %v", err)
	}
	if gotPath != "/account/verify_credentials.json" {
		t.Errorf("path = %q", gotPath)
	}
}
