package services

import (
	"strings"

	"github.com/ersonp/pairgen/internal/domain/entities"
	"github.com/ersonp/pairgen/internal/infrastructure/parsers"
)

// SkipReason explains why the loader dropped a row.
type SkipReason string

// Skip reasons.
const (
	SkipTooFewFields    SkipReason = "too_few_fields"
	SkipEmptyName       SkipReason = "empty_name"
	SkipEmptyField      SkipReason = "empty_field"
	SkipUnknownCategory SkipReason = "unknown_category"
)

// RowSkip records a dropped row. Skips are a filtering policy, not errors.
type RowSkip struct {
	Line   int        // Source row (1-indexed, 0 if unknown)
	Reason SkipReason // Why the row was dropped
	Value  string     // The offending value, if any
}

// RosterOptions controls how rows become entities.
type RosterOptions struct {
	Mode       entities.Mode
	Categories entities.CategorySet
	TagCount   int  // Tag columns after name and category (scored mode)
	Flatten    bool // Every non-empty cell is a name (unconstrained mode)
}

// RosterResult contains the loaded entities and the rows that were dropped.
type RosterResult struct {
	Entities []*entities.Entity
	Skipped  []RowSkip
}

// RosterService turns raw rows into validated roster entities.
type RosterService struct {
	opts RosterOptions
}

// NewRosterService creates a new roster service.
func NewRosterService(opts RosterOptions) *RosterService {
	if opts.Mode == "" {
		opts.Mode = entities.ModeUnconstrained
	}
	if opts.Mode != entities.ModeScored {
		opts.TagCount = 0
	}
	return &RosterService{opts: opts}
}

// Options returns the options the service was built with.
func (s *RosterService) Options() RosterOptions {
	return s.opts
}

// Load validates rows in order. Invalid rows are dropped and reported in
// Skipped; Load never fails.
func (s *RosterService) Load(rows []parsers.RawRow) *RosterResult {
	result := &RosterResult{Entities: make([]*entities.Entity, 0, len(rows))}

	if s.opts.Mode == entities.ModeUnconstrained && s.opts.Flatten {
		s.loadFlattened(rows, result)
		return result
	}

	for i := range rows {
		row := &rows[i]
		entity, skip := s.loadRow(row)
		if skip != nil {
			result.Skipped = append(result.Skipped, *skip)
			continue
		}
		result.Entities = append(result.Entities, entity)
	}

	return result
}

// loadRow validates a single row and returns either an entity or a skip.
func (s *RosterService) loadRow(row *parsers.RawRow) (*entities.Entity, *RowSkip) {
	minFields := s.opts.Mode.MinFields(s.opts.TagCount)
	if len(row.Fields) < minFields {
		return nil, &RowSkip{Line: row.LineNum, Reason: SkipTooFewFields}
	}

	name := strings.TrimSpace(row.Fields[0])
	if name == "" {
		return nil, &RowSkip{Line: row.LineNum, Reason: SkipEmptyName}
	}

	entity := &entities.Entity{Name: name, Line: row.LineNum}
	if !s.opts.Mode.RequiresCategory() {
		return entity, nil
	}

	for _, f := range row.Fields[1:minFields] {
		if strings.TrimSpace(f) == "" {
			return nil, &RowSkip{Line: row.LineNum, Reason: SkipEmptyField}
		}
	}

	category := entities.NormalizeCategory(row.Fields[1])
	if !s.opts.Categories.Contains(category) {
		return nil, &RowSkip{Line: row.LineNum, Reason: SkipUnknownCategory, Value: string(category)}
	}
	entity.Category = category

	if s.opts.TagCount > 0 {
		entity.Tags = make([]string, s.opts.TagCount)
		for i := range entity.Tags {
			entity.Tags[i] = strings.TrimSpace(row.Fields[2+i])
		}
	}

	return entity, nil
}

// loadFlattened treats each non-empty cell as its own name, row-major.
func (s *RosterService) loadFlattened(rows []parsers.RawRow, result *RosterResult) {
	for i := range rows {
		for _, cell := range rows[i].Fields {
			name := strings.TrimSpace(cell)
			if name == "" {
				continue
			}
			result.Entities = append(result.Entities, &entities.Entity{Name: name, Line: rows[i].LineNum})
		}
	}
}
