package clickup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

// testClient builds a client against a test server with delays
// disabled and a short rate-limit wait.
func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	c := New("token-123", "team-9", Options{
		BaseURL:       srv.URL,
		RequestDelay:  -1,
		RateLimitWait: 5 * time.Millisecond,
		Logger:        log,
	})
	return c, srv
}

func TestCreateSpaceRequestShape(t *testing.T) {
	var gotPath, gotAuth, gotMethod string
	var gotBody CreateSpaceRequest

	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotMethod = r.Method
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(`{"id": "space-1"}`))
	}))

	req := CreateSpaceRequest{
		Name:              "Ops",
		MultipleAssignees: true,
		Features:          DefaultSpaceFeatures(),
	}
	id, err := c.CreateSpace(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateSpace() error = %v", err)
	}
	if id != "space-1" {
		t.Errorf("id = %q, want space-1", id)
	}
	if gotPath != "/team/team-9/space" {
		t.Errorf("path = %q", gotPath)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %q", gotMethod)
	}
	if gotAuth != "token-123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotBody.Name != "Ops" || !gotBody.Features.CustomFields.Enabled {
		t.Errorf("body = %+v", gotBody)
	}
}

func TestRateLimitRetriesOnce(t *testing.T) {
	var calls int32
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"id": "folder-1"}`))
	}))

	id, err := c.CreateFolder(context.Background(), "space-1", "Maintenance")
	if err != nil {
		t.Fatalf("CreateFolder() error = %v", err)
	}
	if id != "folder-1" {
		t.Errorf("id = %q, want folder-1", id)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("server saw %d calls, want 2 (original + one retry)", got)
	}
}

// The HTTP timeout bounds a single attempt; the rate-limit wait
// between the original call and the retry must not count against it.
// The defaults have the same shape (30s timeout, 60s wait), so the
// retry would never fire if the timeout spanned the whole loop.
func TestRateLimitWaitNotBoundedByHTTPTimeout(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"id": "folder-1"}`))
	}))
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	c := New("token-123", "team-9", Options{
		BaseURL:       srv.URL,
		RequestDelay:  -1,
		RateLimitWait: 80 * time.Millisecond,
		HTTPTimeout:   20 * time.Millisecond,
		Logger:        log,
	})

	id, err := c.CreateFolder(context.Background(), "space-1", "Maintenance")
	if err != nil {
		t.Fatalf("CreateFolder() error = %v, want retry to succeed after the wait", err)
	}
	if id != "folder-1" {
		t.Errorf("id = %q, want folder-1", id)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("server saw %d calls, want 2", got)
	}
}

func TestRateLimitGivesUpAfterRetry(t *testing.T) {
	var calls int32
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	_, err := c.CreateFolder(context.Background(), "space-1", "Maintenance")
	if err == nil {
		t.Fatal("CreateFolder() expected error after exhausted retry")
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("server saw %d calls, want 2", got)
	}
}

func TestServerErrorDoesNotRetry(t *testing.T) {
	var calls int32
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := c.CreateList(context.Background(), "folder-1", "Tickets")
	if err == nil {
		t.Fatal("CreateList() expected error")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("error %v should carry the status code", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("server saw %d calls, want 1 (no retry on 5xx)", got)
	}
}

func TestCreateCustomFieldEnvelopes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"nested field key", `{"field": {"id": "f-1"}}`, "f-1"},
		{"top level id", `{"id": "f-2"}`, "f-2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			id, err := c.CreateCustomField(context.Background(), "list-1", CustomFieldRequest{Name: "Severity", Type: "drop_down"})
			if err != nil {
				t.Fatalf("CreateCustomField() error = %v", err)
			}
			if id != tt.want {
				t.Errorf("id = %q, want %q", id, tt.want)
			}
		})
	}
}

func TestCreateCustomFieldNoID(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	_, err := c.CreateCustomField(context.Background(), "list-1", CustomFieldRequest{Name: "Severity", Type: "drop_down"})
	if err == nil {
		t.Fatal("CreateCustomField() expected error when response has no id")
	}
}

func TestListStatuses(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/list/list-7" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"id": "list-7", "statuses": [
			{"status": "Scheduled", "type": "open", "color": "#d3d3d3"},
			{"status": "In Progress", "type": "custom", "color": "#3397dd"}
		]}`))
	}))

	names, err := c.ListStatuses(context.Background(), "list-7")
	if err != nil {
		t.Fatalf("ListStatuses() error = %v", err)
	}
	want := []string{"Scheduled", "In Progress"}
	if len(names) != len(want) {
		t.Fatalf("statuses = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("statuses[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestGetSpaces(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %q", r.Method)
		}
		w.Write([]byte(`{"spaces": [{"id": "s-1", "name": "Development"}, {"id": "s-2", "name": "Operations"}]}`))
	}))

	spaces, err := c.GetSpaces(context.Background())
	if err != nil {
		t.Fatalf("GetSpaces() error = %v", err)
	}
	if len(spaces) != 2 || spaces[0].ID != "s-1" || spaces[1].Name != "Operations" {
		t.Errorf("spaces = %+v", spaces)
	}
}

func TestUpdateTaskEmptyResponse(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %q", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	}))

	if err := c.UpdateTask(context.Background(), "task-1", TaskRequest{Name: "renamed"}); err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}
}

func TestRequestDelayAfterSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "x"}`))
	}))
	t.Cleanup(srv.Close)

	delay := 30 * time.Millisecond
	c := New("t", "team", Options{BaseURL: srv.URL, RequestDelay: delay})

	start := time.Now()
	if _, err := c.CreateFolder(context.Background(), "s", "f"); err != nil {
		t.Fatalf("CreateFolder() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < delay {
		t.Errorf("call returned after %s, want at least the %s delay", elapsed, delay)
	}
}
