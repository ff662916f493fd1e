// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package platform

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/guildhall/models"
)

func TestRESTClientReply(t *testing.T) {
	var gotPath, gotAuth string
	var gotReply Reply

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReply); err != nil {
			t.Errorf("decode reply: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewRESTClient(srv.URL, "tok")
	err := c.Reply(context.Background(), models.Envelope{ID: "i1"}, Reply{Content: "hi", Ephemeral: true})
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}

	if gotPath != "POST /interactions/i1/reply" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bot tok" {
		t.Errorf("auth = %q", gotAuth)
	}
	if !gotReply.Ephemeral || gotReply.Content != "hi" {
		t.Errorf("reply = %+v", gotReply)
	}
}

func TestRESTClientSendReturnsMessageID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/channels/c1/messages" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "m42"})
	}))
	defer srv.Close()

	c := NewRESTClient(srv.URL, "tok")
	id, err := c.Send(context.Background(), "c1", Message{Content: "hello"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if id != "m42" {
		t.Errorf("message id = %q, want m42", id)
	}
}

func TestRESTClientNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewRESTClient(srv.URL, "tok")
	err := c.DeleteChannel(context.Background(), "gone")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRESTClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewRESTClient(srv.URL, "tok")
	err := c.AddRole(context.Background(), "g1", "u1", "r1")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("500 must not map to ErrNotFound")
	}
}

func TestRESTClientRemoveRolesBody(t *testing.T) {
	var body struct {
		RoleIDs []string `json:"role_ids"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %q", r.Method)
		}
		json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewRESTClient(srv.URL, "tok")
	if err := c.RemoveRoles(context.Background(), "g1", "u1", []string{"r1", "r2"}); err != nil {
		t.Fatalf("RemoveRoles: %v", err)
	}
	if len(body.RoleIDs) != 2 || body.RoleIDs[0] != "r1" {
		t.Errorf("role_ids = %v", body.RoleIDs)
	}
}
