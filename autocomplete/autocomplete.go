// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package autocomplete

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/danielhkuo/guildhall/catalog"
	"github.com/danielhkuo/guildhall/models"
)

// MaxResults caps every query response, matching the platform limit on
// autocomplete choices.
const MaxResults = 25

var ErrUnknownField = errors.New("autocomplete: unknown field")

// Field identifies one searchable list.
type Field string

const (
	FieldCourse     Field = "course"
	FieldProfessor  Field = "professor"
	FieldCourseRole Field = "courserole"
	FieldQuestion   Field = "question"
	FieldLink       Field = "link"
	FieldSession    Field = "session"
	FieldClassroom  Field = "classroom"
)

// Fields lists every searchable field.
func Fields() []Field {
	return []Field{
		FieldCourse, FieldProfessor, FieldCourseRole,
		FieldQuestion, FieldLink, FieldSession, FieldClassroom,
	}
}

// Index serves autocomplete queries over per-field choice lists. Each list
// is built lazily from the catalog snapshot on first query and cached until
// invalidated. Concurrent first queries for the same field share one build
// through singleflight instead of racing to recompute.
type Index struct {
	catalog *catalog.Catalog

	mu     sync.RWMutex
	lists  map[Field][]models.Choice
	builds singleflight.Group
}

// New returns an Index over the catalog and registers its cache
// invalidation on catalog reloads.
func New(cat *catalog.Catalog) *Index {
	idx := &Index{
		catalog: cat,
		lists:   make(map[Field][]models.Choice),
	}
	cat.OnReload(idx.InvalidateAll)
	return idx
}

// Query returns at most MaxResults choices whose label contains the partial
// text, case-insensitive, preserving catalog order. An empty partial
// matches everything.
func (idx *Index) Query(field Field, partial string) ([]models.Choice, error) {
	list, err := idx.list(field)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(partial)
	out := make([]models.Choice, 0, MaxResults)
	for _, choice := range list {
		if !strings.Contains(strings.ToLower(choice.Label), needle) {
			continue
		}
		out = append(out, choice)
		if len(out) == MaxResults {
			break
		}
	}
	return out, nil
}

// Invalidate drops one field's cached list; the next query rebuilds it.
func (idx *Index) Invalidate(field Field) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	delete(idx.lists, field)
}

// InvalidateAll drops every cached list.
func (idx *Index) InvalidateAll() {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.lists = make(map[Field][]models.Choice)
}

func (idx *Index) list(field Field) ([]models.Choice, error) {
	idx.mu.RLock()
	list, ok := idx.lists[field]
	idx.mu.RUnlock()
	if ok {
		return list, nil
	}

	built, err, _ := idx.builds.Do(string(field), func() (any, error) {
		list, err := build(field, idx.catalog.Snapshot())
		if err != nil {
			return nil, err
		}
		idx.mu.Lock()
		idx.lists[field] = list
		idx.mu.Unlock()
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return built.([]models.Choice), nil
}

// build materializes one field's choice list from a catalog snapshot,
// preserving catalog order.
func build(field Field, snap *catalog.Snapshot) ([]models.Choice, error) {
	switch field {
	case FieldCourse:
		out := make([]models.Choice, len(snap.Courses))
		for i, c := range snap.Courses {
			out[i] = models.Choice{Label: c, Value: c}
		}
		return out, nil

	case FieldProfessor:
		out := make([]models.Choice, len(snap.Staff))
		for i, s := range snap.Staff {
			label := s.Name
			if s.Title != "" {
				label = s.Name + " (" + s.Title + ")"
			}
			out[i] = models.Choice{Label: label, Value: s.Name}
		}
		return out, nil

	case FieldCourseRole:
		out := make([]models.Choice, len(snap.Roles.Courses))
		for i, cr := range snap.Roles.Courses {
			out[i] = models.Choice{Label: cr.Course, Value: cr.Role}
		}
		return out, nil

	case FieldQuestion:
		out := make([]models.Choice, len(snap.Questions))
		for i, q := range snap.Questions {
			out[i] = models.Choice{Label: q.Question, Value: q.Question}
		}
		return out, nil

	case FieldLink:
		out := make([]models.Choice, len(snap.Links))
		for i, l := range snap.Links {
			out[i] = models.Choice{Label: l.Name, Value: l.Name}
		}
		return out, nil

	case FieldSession:
		out := make([]models.Choice, len(snap.Sessions))
		for i, s := range snap.Sessions {
			out[i] = models.Choice{Label: s.Name, Value: s.Name}
		}
		return out, nil

	case FieldClassroom:
		out := make([]models.Choice, len(snap.Classrooms))
		for i, c := range snap.Classrooms {
			out[i] = models.Choice{Label: c.Name + " (" + c.Location + ")", Value: c.Name}
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
}
