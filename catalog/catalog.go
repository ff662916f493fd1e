// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// File names expected inside the catalog directory.
const (
	rolesFile   = "roles.yaml"
	catalogFile = "catalog.yaml"
	quizFile    = "quiz.yaml"
)

// RoleConfig lists the configured role names per group, in display order.
type RoleConfig struct {
	Color        []string     `yaml:"color"`
	Year         []string     `yaml:"year"`
	Program      []string     `yaml:"program"`
	Notification []string     `yaml:"notification"`
	Activity     []string     `yaml:"activity"`
	Courses      []CourseRole `yaml:"courses"`
}

// CourseRole pairs a course role name with the course title it grants
// access to.
type CourseRole struct {
	Role   string `yaml:"role"`
	Course string `yaml:"course"`
}

type Staffer struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title,omitempty"`
}

type Question struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type Link struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type Session struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url,omitempty"`
}

type Classroom struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
}

// QuizQuestion is one entry of the trivia bank. Answers holds the four
// displayed choices; Correct must be one of them verbatim.
type QuizQuestion struct {
	Question string   `yaml:"question"`
	Answers  []string `yaml:"answers"`
	Correct  string   `yaml:"correct"`
}

// QuizBank holds the question tiers drawn from by quiz level.
type QuizBank struct {
	Easy   []QuizQuestion `yaml:"easy"`
	Medium []QuizQuestion `yaml:"medium"`
	Hard   []QuizQuestion `yaml:"hard"`
}

// Snapshot is one immutable load of the catalog directory.
type Snapshot struct {
	Roles      RoleConfig `yaml:"roles"`
	Courses    []string   `yaml:"courses"`
	Staff      []Staffer  `yaml:"staff"`
	Questions  []Question `yaml:"questions"`
	Links      []Link     `yaml:"links"`
	Sessions   []Session  `yaml:"sessions"`
	Classrooms []Classroom
	Quiz       QuizBank
}

// RoleNames returns the configured role names for a group id, preserving
// catalog order. Unknown groups return nil.
func (s *Snapshot) RoleNames(group string) []string {
	switch group {
	case "color":
		return s.Roles.Color
	case "year":
		return s.Roles.Year
	case "program":
		return s.Roles.Program
	case "notification":
		return s.Roles.Notification
	case "activity":
		return s.Roles.Activity
	case "courses":
		names := make([]string, len(s.Roles.Courses))
		for i, cr := range s.Roles.Courses {
			names[i] = cr.Role
		}
		return names
	}
	return nil
}

// CourseForRole resolves a course role name to its course title, or "".
func (s *Snapshot) CourseForRole(role string) string {
	for _, cr := range s.Roles.Courses {
		if cr.Role == role {
			return cr.Course
		}
	}
	return ""
}

// catalogData mirrors catalog.yaml on disk.
type catalogData struct {
	Courses    []string    `yaml:"courses"`
	Staff      []Staffer   `yaml:"staff"`
	Questions  []Question  `yaml:"questions"`
	Links      []Link      `yaml:"links"`
	Sessions   []Session   `yaml:"sessions"`
	Classrooms []Classroom `yaml:"classrooms"`
}

// Catalog provides the current snapshot and reload-on-change support.
// Reads vastly outnumber reloads, so a RWMutex guards the snapshot.
type Catalog struct {
	dir string

	mu       sync.RWMutex
	snap     *Snapshot
	onReload []func()
}

// Load reads the catalog directory and returns a Catalog holding the
// initial snapshot.
func Load(dir string) (*Catalog, error) {
	snap, err := read(dir)
	if err != nil {
		return nil, err
	}
	return &Catalog{dir: dir, snap: snap}, nil
}

// Snapshot returns the current catalog snapshot. The returned value must
// be treated as read-only.
func (c *Catalog) Snapshot() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Reload re-reads the catalog directory and swaps the snapshot. Registered
// reload hooks fire after the swap. A failed read keeps the old snapshot.
func (c *Catalog) Reload() error {
	snap, err := read(c.dir)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.snap = snap
	hooks := make([]func(), len(c.onReload))
	copy(hooks, c.onReload)
	c.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
	return nil
}

// OnReload registers a hook invoked after every successful Reload. Used by
// the autocomplete index to invalidate its per-field caches.
func (c *Catalog) OnReload(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onReload = append(c.onReload, fn)
}

func read(dir string) (*Snapshot, error) {
	var snap Snapshot

	if err := readYAML(filepath.Join(dir, rolesFile), &snap.Roles); err != nil {
		return nil, err
	}

	var data catalogData
	if err := readYAML(filepath.Join(dir, catalogFile), &data); err != nil {
		return nil, err
	}
	snap.Courses = data.Courses
	snap.Staff = data.Staff
	snap.Questions = data.Questions
	snap.Links = data.Links
	snap.Sessions = data.Sessions
	snap.Classrooms = data.Classrooms

	if err := readYAML(filepath.Join(dir, quizFile), &snap.Quiz); err != nil {
		return nil, err
	}
	if err := validateQuiz(snap.Quiz); err != nil {
		return nil, err
	}

	return &snap, nil
}

func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return nil
}

// validateQuiz rejects entries the token format cannot carry: answers ride
// inside colon-delimited action tokens, so they must not contain ':'.
func validateQuiz(bank QuizBank) error {
	check := func(tier string, qs []QuizQuestion) error {
		for i, q := range qs {
			if len(q.Answers) != 4 {
				return fmt.Errorf("catalog: quiz %s[%d]: %d answers, want 4", tier, i, len(q.Answers))
			}
			found := false
			for _, a := range q.Answers {
				if strings.Contains(a, ":") {
					return fmt.Errorf("catalog: quiz %s[%d]: answer %q contains ':'", tier, i, a)
				}
				if a == q.Correct {
					found = true
				}
			}
			if !found {
				return fmt.Errorf("catalog: quiz %s[%d]: correct answer %q not among answers", tier, i, q.Correct)
			}
		}
		return nil
	}

	if err := check("easy", bank.Easy); err != nil {
		return err
	}
	if err := check("medium", bank.Medium); err != nil {
		return err
	}
	return check("hard", bank.Hard)
}
