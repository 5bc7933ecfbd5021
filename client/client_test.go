package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kbukum/vcd/model"
	"github.com/kbukum/vcd/schema"
	"github.com/kbukum/vcd/task"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Config{Host: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNew_RequiresHost(t *testing.T) {
	_, err := New(Config{})
	if err == nil {
		t.Fatal("expected validation error for missing host")
	}
}

func TestNew_RejectsMalformedHost(t *testing.T) {
	_, err := New(Config{Host: "not a url"})
	if err == nil {
		t.Fatal("expected validation error for malformed host")
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c, err := New(Config{Host: "https://vcd.example.com/"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.APIURL("/versions"); got != "https://vcd.example.com/api/versions" {
		t.Errorf("expected trimmed host in URL, got %q", got)
	}
	if got := c.CloudAPIURL("1.0.0/sessions"); got != "https://vcd.example.com/cloudapi/1.0.0/sessions" {
		t.Errorf("expected cloudapi URL with inserted slash, got %q", got)
	}
}

func TestNew_PinsConfiguredVersion(t *testing.T) {
	c, err := New(Config{Host: "https://vcd.example.com", APIVersion: "37.0"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.APIVersion(); got != "37.0" {
		t.Errorf("expected pinned version 37.0, got %q", got)
	}
}

func TestClient_LastResultTracksLatestCall(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/second") {
			w.WriteHeader(http.StatusCreated)
		}
		fmt.Fprint(w, `{}`)
	}))

	if c.LastResult() != nil {
		t.Fatal("expected no last result before the first call")
	}

	if _, err := c.Execute(context.Background(), Request{Method: http.MethodGet, URL: c.APIURL("/first")}); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := c.Execute(context.Background(), Request{Method: http.MethodGet, URL: c.APIURL("/second")}); err != nil {
		t.Fatalf("second call: %v", err)
	}

	last := c.LastResult()
	if last == nil || last.Status != http.StatusCreated {
		t.Errorf("expected last result from the second call, got %+v", last)
	}
}

func TestClient_FindLinkOnLastResult(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Link", `<https://vcd.example.com/cloudapi/1.0.0/orgs/o-1>; rel="down"; model="Org"`)
		fmt.Fprint(w, `{}`)
	}))

	if c.FindLink("down", nil) != nil {
		t.Fatal("expected no link before the first call")
	}

	if _, err := c.Execute(context.Background(), Request{Method: http.MethodGet, URL: c.CloudAPIURL("/1.0.0/orgs")}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	link := c.FindLink("down", map[string]string{"model": "Org"})
	if link == nil || link.Href == nil || *link.Href != "https://vcd.example.com/cloudapi/1.0.0/orgs/o-1" {
		t.Errorf("expected the down link, got %+v", link)
	}
	if c.FindLink("up", nil) != nil {
		t.Error("expected no match for absent rel")
	}
}

func TestWaitForLastTask_NoTaskHeld(t *testing.T) {
	c, err := New(Config{Host: "https://vcd.example.com"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.WaitForLastTask(context.Background()); err == nil {
		t.Fatal("expected error when no task is held")
	}
}

func TestWaitForLastTask_PollsToSuccess(t *testing.T) {
	var polls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/task/t-42", func(w http.ResponseWriter, r *http.Request) {
		status := "running"
		if atomic.AddInt32(&polls, 1) >= 2 {
			status = "success"
		}
		fmt.Fprintf(w, `{"href":"http://%s/api/task/t-42","status":%q}`, r.Host, status)
	})
	mux.HandleFunc("/api/vdc/v-1/action/deploy", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		fmt.Fprintf(w, `{"href":"http://%s/api/task/t-42","status":"queued"}`, r.Host)
	})
	c := newTestClient(t, mux)

	_, err := c.Execute(context.Background(), Request{
		Method:       http.MethodPost,
		URL:          c.APIURL("/vdc/v-1/action/deploy"),
		ResponseType: schema.Named(model.TypeTask),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	done, err := c.WaitForLastTask(context.Background(), task.WithPollInterval(time.Millisecond))
	if err != nil {
		t.Fatalf("WaitForLastTask: %v", err)
	}
	if done.Status == nil || *done.Status != "success" {
		t.Errorf("expected success task, got %+v", done)
	}
	if got := atomic.LoadInt32(&polls); got != 2 {
		t.Errorf("expected 2 polls, got %d", got)
	}
}
