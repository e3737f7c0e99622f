package tablescrub

import (
	"fmt"
	"regexp"
	"time"

	"github.com/tablescrub/tablescrub/domain/model"
)

// Validator reports whether a single non-null value conforms.
// It never sees null values; null handling belongs to the processor.
type Validator func(value string) bool

// Transform rewrites a column's values after validation. The output
// must have the same length as the input; null cells must stay null.
type Transform func(values []model.Cell) []model.Cell

// PostProcess pairs a transform with an optional destination column.
// An empty Column overwrites the source field in place, otherwise the
// transform output is written to the named new column.
type PostProcess struct {
	Column string
	Apply  Transform
}

// ColumnWriter is the surface generators write derived columns
// through. The implementation enforces row-count matching and rejects
// collisions with existing columns.
type ColumnWriter interface {
	SetColumn(name string, values []model.Cell) error
}

// Generator derives one or more new columns from a validated field's
// values. The values slice holds null wherever the field failed
// validation or was null; outputs must be null there too.
type Generator func(w ColumnWriter, values []model.Cell) error

// FieldRule configures how one column is validated and transformed.
// At most one of Pattern, Validate, and DateFormats may be set; any of
// them may additionally be combined with ValidValues. A rule with no
// validation options passes every non-null value through.
type FieldRule struct {
	// Pattern declares a value valid iff the whole value matches.
	Pattern *regexp.Regexp
	// Validate declares a value valid iff the predicate returns true.
	Validate Validator
	// DateFormats declares a value valid iff it parses with one of the
	// given time layouts.
	DateFormats []string
	// ValidValues restricts values to an enumerated set, compared
	// case-insensitively.
	ValidValues []string
	// OtherNulls lists sentinel strings treated as null before
	// validation, e.g. a zero date.
	OtherNulls []string
	// PostProcess is applied in order to values that passed validation.
	PostProcess []PostProcess
	// Generators run in order after post-processing.
	Generators []Generator
	// DropField removes the source column after generation.
	DropField bool
}

// check reports a configuration error for rules the processor cannot
// dispatch unambiguously.
func (r FieldRule) check(column string) error {
	kinds := 0
	if r.Pattern != nil {
		kinds++
	}
	if r.Validate != nil {
		kinds++
	}
	if len(r.DateFormats) > 0 {
		kinds++
	}
	if kinds > 1 {
		return fmt.Errorf("%w: column %s", ErrRuleConflict, column)
	}
	return nil
}

// Field binds a column name to its rule.
type Field struct {
	Name string
	Rule FieldRule
}

// Ruleset is the full per-chunk configuration: mandatory fields whose
// failures exclude the row, and optional fields whose failures null
// the single value.
type Ruleset struct {
	Mandatory []Field
	Optional  []Field
}

// check validates the ruleset before any row is touched.
func (rs Ruleset) check() error {
	if len(rs.Mandatory) == 0 && len(rs.Optional) == 0 {
		return ErrEmptyRuleset
	}
	for _, f := range rs.Mandatory {
		if err := f.Rule.check(f.Name); err != nil {
			return err
		}
	}
	for _, f := range rs.Optional {
		if err := f.Rule.check(f.Name); err != nil {
			return err
		}
	}
	return nil
}

// MapValues lifts a per-value function into a Transform. Null cells
// pass through untouched; fn may itself return null to discard a
// value.
func MapValues(fn func(value string) model.Cell) Transform {
	return func(values []model.Cell) []model.Cell {
		out := make([]model.Cell, len(values))
		for i, c := range values {
			if c.IsNull() {
				out[i] = model.NullCell()
				continue
			}
			out[i] = fn(c.Str)
		}
		return out
	}
}

// ExtractGroups builds a generator that splits a field by regex
// capture groups, writing group i to cols[i]. Values that are null or
// do not match produce null in every output column.
func ExtractGroups(re *regexp.Regexp, cols ...string) Generator {
	return func(w ColumnWriter, values []model.Cell) error {
		outputs := make([][]model.Cell, len(cols))
		for i := range outputs {
			outputs[i] = make([]model.Cell, len(values))
		}
		for row, c := range values {
			if c.IsNull() {
				continue
			}
			groups := re.FindStringSubmatch(c.Str)
			if groups == nil {
				continue
			}
			for i := range cols {
				if i+1 < len(groups) {
					outputs[i][row] = model.NewCell(groups[i+1])
				}
			}
		}
		for i, col := range cols {
			if err := w.SetColumn(col, outputs[i]); err != nil {
				return err
			}
		}
		return nil
	}
}

// DateParts builds a generator that parses a validated date field and
// writes its year and month as separate string columns. Values that
// are null or do not parse with any format produce null outputs.
func DateParts(formats []string, yearCol, monthCol string) Generator {
	return func(w ColumnWriter, values []model.Cell) error {
		years := make([]model.Cell, len(values))
		months := make([]model.Cell, len(values))
		for row, c := range values {
			if c.IsNull() {
				continue
			}
			dt, ok := parseDate(c.Str, formats)
			if !ok {
				continue
			}
			years[row] = model.NewCell(fmt.Sprintf("%d", dt.Year()))
			months[row] = model.NewCell(fmt.Sprintf("%d", int(dt.Month())))
		}
		if err := w.SetColumn(yearCol, years); err != nil {
			return err
		}
		return w.SetColumn(monthCol, months)
	}
}

// parseDate tries each layout in order.
func parseDate(value string, formats []string) (time.Time, bool) {
	for _, layout := range formats {
		if dt, err := time.Parse(layout, value); err == nil {
			return dt, true
		}
	}
	return time.Time{}, false
}
