// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"sync"

	"github.com/danielhkuo/guildhall/catalog"
	"github.com/danielhkuo/guildhall/models"
	"github.com/danielhkuo/guildhall/platform"
)

// Command is one registered slash command.
type Command interface {
	Name() string
	Execute(ctx context.Context, env models.Envelope) error
}

// Registry maps command names to handlers. Commands register at startup;
// lookups at dispatch time are read-only.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Command)}
}

func (r *Registry) Register(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[cmd.Name()] = cmd
}

func (r *Registry) Lookup(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.byName[name]
	return cmd, ok
}

// Builtins returns the built-in catalog lookup commands.
func Builtins(client platform.Messenger, cat *catalog.Catalog) []Command {
	return []Command{
		&faqCommand{client: client, catalog: cat},
		&linkCommand{client: client, catalog: cat},
		&classroomCommand{client: client, catalog: cat},
	}
}

// faqCommand answers a frequently asked question selected via autocomplete.
type faqCommand struct {
	client  platform.Messenger
	catalog *catalog.Catalog
}

func (c *faqCommand) Name() string { return "faq" }

func (c *faqCommand) Execute(ctx context.Context, env models.Envelope) error {
	for _, q := range c.catalog.Snapshot().Questions {
		if q.Question == env.Option {
			return c.client.Reply(ctx, env, platform.Reply{
				Panel: &models.Panel{Title: q.Question, Description: q.Answer},
			})
		}
	}
	return c.client.Reply(ctx, env, platform.Reply{
		Content:   "No answer on file for that question.",
		Ephemeral: true,
	})
}

// linkCommand posts a named resource link.
type linkCommand struct {
	client  platform.Messenger
	catalog *catalog.Catalog
}

func (c *linkCommand) Name() string { return "link" }

func (c *linkCommand) Execute(ctx context.Context, env models.Envelope) error {
	for _, l := range c.catalog.Snapshot().Links {
		if l.Name == env.Option {
			return c.client.Reply(ctx, env, platform.Reply{
				Content: l.Name + ": " + l.URL,
			})
		}
	}
	return c.client.Reply(ctx, env, platform.Reply{
		Content:   "No link named " + env.Option + ".",
		Ephemeral: true,
	})
}

// classroomCommand looks up where a classroom is.
type classroomCommand struct {
	client  platform.Messenger
	catalog *catalog.Catalog
}

func (c *classroomCommand) Name() string { return "classroom" }

func (c *classroomCommand) Execute(ctx context.Context, env models.Envelope) error {
	for _, room := range c.catalog.Snapshot().Classrooms {
		if room.Name == env.Option {
			return c.client.Reply(ctx, env, platform.Reply{
				Panel: &models.Panel{Title: room.Name, Description: room.Location},
			})
		}
	}
	return c.client.Reply(ctx, env, platform.Reply{
		Content:   "Classroom " + env.Option + " is not in the catalog.",
		Ephemeral: true,
	})
}
