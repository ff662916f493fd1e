// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog loads the static community configuration from YAML files
and exposes it as immutable snapshots.

# Files

The catalog directory contains three files:

  - roles.yaml: role names per toggle group (color, year, program,
    notification, activity, courses)
  - catalog.yaml: courses, staff, questions, links, sessions, classrooms
  - quiz.yaml: trivia question bank with easy/medium/hard tiers

# Snapshots

Load reads the directory once:

	c, err := catalog.Load(cfg.ConfigDir)
	snap := c.Snapshot()

Snapshots are read-only; a reload swaps the whole snapshot atomically so
in-flight handlers keep a consistent view.

# Invalidation Hook

Watch runs an fsnotify loop that reloads on file changes, debounced to
absorb editor write bursts. OnReload hooks fire after a successful swap;
the autocomplete index registers one to drop its per-field caches:

	c.OnReload(index.InvalidateAll)
	go c.Watch(ctx)

A failed reload keeps the previous snapshot and logs a warning.

# Quiz Bank Validation

Quiz answers travel inside colon-delimited action tokens, so Load rejects
banks whose answers contain ':', have other than four answers, or whose
correct answer is not among the choices.
*/
package catalog
