// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/danielhkuo/guildhall/models"
	"github.com/danielhkuo/guildhall/testutil"
)

func builtinRegistry(t *testing.T, fake *testutil.FakeClient) *Registry {
	t.Helper()
	registry := NewRegistry()
	for _, cmd := range Builtins(fake, testutil.DefaultCatalog(t)) {
		registry.Register(cmd)
	}
	return registry
}

func commandEnvelope(name, option string) models.Envelope {
	return models.Envelope{
		ID:      "int-1",
		Kind:    models.KindCommand,
		UserID:  "u1",
		UserTag: "u1#tag",
		Command: name,
		Option:  option,
	}
}

func TestFaqAnswersKnownQuestion(t *testing.T) {
	fake := &testutil.FakeClient{}
	registry := builtinRegistry(t, fake)

	cmd, ok := registry.Lookup("faq")
	if !ok {
		t.Fatal("faq not registered")
	}
	if err := cmd.Execute(context.Background(), commandEnvelope("faq", "How do I enroll?")); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	reply := fake.LastReply(t)
	if reply.Panel == nil || reply.Panel.Description != "Use the enrollment form." {
		t.Errorf("reply = %+v", reply)
	}
}

func TestFaqUnknownQuestionEphemeral(t *testing.T) {
	fake := &testutil.FakeClient{}
	registry := builtinRegistry(t, fake)

	cmd, _ := registry.Lookup("faq")
	if err := cmd.Execute(context.Background(), commandEnvelope("faq", "Is this on the exam?")); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	reply := fake.LastReply(t)
	if !reply.Ephemeral || !strings.Contains(reply.Content, "No answer") {
		t.Errorf("reply = %+v", reply)
	}
}

func TestLinkPostsURL(t *testing.T) {
	fake := &testutil.FakeClient{}
	registry := builtinRegistry(t, fake)

	cmd, _ := registry.Lookup("link")
	if err := cmd.Execute(context.Background(), commandEnvelope("link", "Handbook")); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	reply := fake.LastReply(t)
	if reply.Ephemeral || !strings.Contains(reply.Content, "https://example.com/handbook") {
		t.Errorf("reply = %+v", reply)
	}
}

func TestClassroomLookup(t *testing.T) {
	fake := &testutil.FakeClient{}
	registry := builtinRegistry(t, fake)

	cmd, _ := registry.Lookup("classroom")
	if err := cmd.Execute(context.Background(), commandEnvelope("classroom", "B2")); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	reply := fake.LastReply(t)
	if reply.Panel == nil || reply.Panel.Description != "Main Building" {
		t.Errorf("reply = %+v", reply)
	}
}

func TestRegistryLookupMissing(t *testing.T) {
	registry := NewRegistry()
	if _, ok := registry.Lookup("nope"); ok {
		t.Error("empty registry should not resolve anything")
	}
}
