// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package autocomplete serves typed-ahead suggestion queries over the catalog.

Seven fields are searchable: course, professor, courserole, question, link,
session, classroom. Each field's (label, value) list is built lazily from
the catalog snapshot on first query and cached for subsequent queries;
concurrent first queries share one build via singleflight. Catalog reloads
invalidate every cached list through the catalog's reload hook, so edits to
the YAML files show up without a restart.

Matching is case-insensitive substring containment against the label,
preserving catalog order, capped at MaxResults (25, the platform limit).
*/
package autocomplete
