package chat_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blackwell-systems/readingctl/internal/chat"
)

func TestClient_Ask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var req map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["query"] != "recommend fantasy" || req["userId"] != "7" {
			t.Errorf("request = %v", req)
		}
		if req["stream"] != false {
			t.Errorf("stream = %v, want false", req["stream"])
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Try these:",
			"recommendations": []map[string]interface{}{
				{"isbn": "222", "title": "Mistborn", "author": "Brandon Sanderson", "pageCount": 541},
			},
		})
	}))
	defer srv.Close()

	c := chat.NewClient(srv.URL)
	reply, err := c.Ask(context.Background(), "recommend fantasy", "7")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if reply.Message != "Try these:" || len(reply.Recommendations) != 1 {
		t.Errorf("reply = %+v", reply)
	}
	if reply.Recommendations[0].TotalPages != 541 {
		t.Errorf("pageCount not mapped to TotalPages: %+v", reply.Recommendations[0])
	}
}

func TestClient_AskServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := chat.NewClient(srv.URL)
	if _, err := c.Ask(context.Background(), "q", "7"); err == nil {
		t.Fatal("expected error for 502")
	}
}

func TestClient_Stream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat/stream" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var req map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["stream"] != true {
			t.Errorf("stream = %v, want true", req["stream"])
		}
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = io.WriteString(w, "data: {\"chunk\":\"hi\"}\ndata: {\"done\":true}\n")
	}))
	defer srv.Close()

	c := chat.NewClient(srv.URL)
	body, err := c.Stream(context.Background(), "q", "7")
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	defer func() { _ = body.Close() }()

	dec := chat.NewEventDecoder(body)
	ev, err := dec.Next()
	if err != nil || ev.Chunk != "hi" {
		t.Errorf("first event = %+v, %v", ev, err)
	}
	ev, err = dec.Next()
	if err != nil || !ev.Done {
		t.Errorf("terminal event = %+v, %v", ev, err)
	}
}
