// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/guildhall/catalog"
	"github.com/danielhkuo/guildhall/cliparse"
	"github.com/danielhkuo/guildhall/models"
	"github.com/danielhkuo/guildhall/platform"
	"github.com/danielhkuo/guildhall/pollstore"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3319,
		DatabaseURL:    "test.db",
		DatabaseType:   "sqlite",
		GuildID:        "guild-1",
		LogChannelID:   "log-channel",
		QuizCategoryID: "quiz-category",
		WebhookSecret:  "test-webhook-secret",
	}
}

// SetupStore opens a throwaway sqlite-backed poll store.
func SetupStore(t *testing.T) *pollstore.Store {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "polls.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := pollstore.CreateSchema(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return pollstore.New(db)
}

// Default catalog fixtures shared by handler tests.
const (
	TestRolesYAML = `
color: [Crimson, Azure, Jade]
year: [Year 1, Year 2]
program: [Software, Networks]
notification: [Announcements, Events]
activity: [Gaming]
courses:
  - role: cs101
    course: Intro to Programming
  - role: cs201
    course: Data Structures
`

	TestCatalogYAML = `
courses: [Intro to Programming, Data Structures]
staff:
  - name: Ada Lovelace
    title: Professor
questions:
  - question: How do I enroll?
    answer: Use the enrollment form.
links:
  - name: Handbook
    url: https://example.com/handbook
sessions:
  - name: June 2025
classrooms:
  - name: "B2"
    location: Main Building
`

	TestQuizYAML = `
easy:
  - question: Easy one?
    answers: [A, B, C, D]
    correct: A
medium:
  - question: Medium one?
    answers: [E, F, G, H]
    correct: F
hard:
  - question: Hard one?
    answers: [I, J, K, L]
    correct: L
`
)

// LoadCatalog writes the given YAML fixtures into a temp dir and loads them.
func LoadCatalog(t *testing.T, roles, cat, quiz string) *catalog.Catalog {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"roles.yaml":   roles,
		"catalog.yaml": cat,
		"quiz.yaml":    quiz,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	c, err := catalog.Load(dir)
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	return c
}

// DefaultCatalog loads the standard fixtures.
func DefaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	return LoadCatalog(t, TestRolesYAML, TestCatalogYAML, TestQuizYAML)
}

// SentMessage records one Send or EditMessage call.
type SentMessage struct {
	ChannelID string
	MessageID string
	Msg       platform.Message
}

// FakeClient implements platform.Client in memory and records every call,
// so handler tests can assert on the exact side effects issued.
type FakeClient struct {
	mu sync.Mutex

	Replies     []platform.Reply
	Sent        []SentMessage
	Edits       []SentMessage
	DeletedMsgs [][2]string // channelID, messageID

	Guild       []platform.Role
	Member      []string
	AddedRoles  []string
	Removed     [][]string
	Channels    []platform.Channel
	Created     []platform.CreateChannelRequest
	DeletedChan []string
	Choices     [][]models.Choice

	// Error injection, applied to the matching call when set.
	ReplyErr      error
	SendErr       error
	DeleteChanErr error
}

func (f *FakeClient) Reply(ctx context.Context, env models.Envelope, reply platform.Reply) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ReplyErr != nil {
		return f.ReplyErr
	}
	f.Replies = append(f.Replies, reply)
	return nil
}

func (f *FakeClient) Send(ctx context.Context, channelID string, msg platform.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SendErr != nil {
		return "", f.SendErr
	}
	f.Sent = append(f.Sent, SentMessage{ChannelID: channelID, Msg: msg})
	return "msg-" + strconv.Itoa(len(f.Sent)), nil
}

func (f *FakeClient) EditMessage(ctx context.Context, channelID, messageID string, msg platform.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Edits = append(f.Edits, SentMessage{ChannelID: channelID, MessageID: messageID, Msg: msg})
	return nil
}

func (f *FakeClient) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeletedMsgs = append(f.DeletedMsgs, [2]string{channelID, messageID})
	return nil
}

func (f *FakeClient) GuildRoles(ctx context.Context, guildID string) ([]platform.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Guild, nil
}

func (f *FakeClient) MemberRoles(ctx context.Context, guildID, userID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Member, nil
}

func (f *FakeClient) AddRole(ctx context.Context, guildID, userID, roleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.AddedRoles = append(f.AddedRoles, roleID)
	return nil
}

func (f *FakeClient) RemoveRoles(ctx context.Context, guildID, userID string, roleIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Removed = append(f.Removed, roleIDs)
	return nil
}

func (f *FakeClient) GuildChannels(ctx context.Context, guildID string) ([]platform.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Channels, nil
}

func (f *FakeClient) CreateChannel(ctx context.Context, guildID string, req platform.CreateChannelRequest) (platform.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Created = append(f.Created, req)
	ch := platform.Channel{ID: "chan-" + strconv.Itoa(len(f.Created)), Name: req.Name}
	f.Channels = append(f.Channels, ch)
	return ch, nil
}

func (f *FakeClient) DeleteChannel(ctx context.Context, channelID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteChanErr != nil {
		return f.DeleteChanErr
	}
	f.DeletedChan = append(f.DeletedChan, channelID)
	return nil
}

func (f *FakeClient) RespondChoices(ctx context.Context, env models.Envelope, choices []models.Choice) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Choices = append(f.Choices, choices)
	return nil
}

// LastReply returns the most recent reply, failing the test when none exists.
func (f *FakeClient) LastReply(t *testing.T) platform.Reply {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Replies) == 0 {
		t.Fatal("no replies recorded")
	}
	return f.Replies[len(f.Replies)-1]
}

// ComponentEnvelope builds a component-click envelope carrying an action
// token.
func ComponentEnvelope(userID, customID string) models.Envelope {
	return models.Envelope{
		ID:        "int-1",
		Kind:      models.KindComponent,
		UserID:    userID,
		UserTag:   userID + "#tag",
		GuildID:   "guild-1",
		ChannelID: "chan-main",
		MessageID: "msg-main",
		CustomID:  customID,
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}
