package tablescrub

import (
	"errors"
	"fmt"

	"github.com/tablescrub/tablescrub/domain/model"
)

// ShadowSuffix is appended to a column name to form its shadow column,
// which preserves the pre-rejection original value of soft-rejected
// fields.
const ShadowSuffix = "_orig"

// fieldEval is the outcome of validating one field against a stable
// snapshot of the table, before any mutation.
type fieldEval struct {
	field Field
	// orig holds the snapshot values in row order.
	orig []model.Cell
	// work holds the values after null normalization, with every
	// failing value nulled.
	work []model.Cell
	// rejects holds the identifiers of failing rows.
	rejects RowSet
}

// evaluateField computes the validation mask for one field. It reads
// the table but never mutates it, so evaluation order across fields
// cannot affect the result.
func evaluateField(tbl *model.Table, field Field, mandatory bool) (*fieldEval, error) {
	orig, err := tbl.Column(field.Name)
	if err != nil {
		if errors.Is(err, model.ErrColumnNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, field.Name)
		}
		return nil, err
	}

	rule := field.Rule
	work := make([]model.Cell, len(orig))
	copy(work, orig)

	// Null normalization: configured sentinel strings count as null.
	for i, c := range work {
		if c.IsNull() {
			continue
		}
		for _, sentinel := range rule.OtherNulls {
			if c.Str == sentinel {
				work[i] = model.NullCell()
				break
			}
		}
	}

	rejects := make(RowSet)
	rows := tbl.Rows()
	for i, c := range work {
		var ok bool
		if c.IsNull() {
			// Null passes unless the field is mandatory.
			ok = !mandatory
		} else {
			ok = rule.valueValid(c.Str)
		}
		if !ok {
			rejects.Add(rows[i].ID)
			work[i] = model.NullCell()
		}
	}

	return &fieldEval{field: field, orig: orig, work: work, rejects: rejects}, nil
}

// valueValid dispatches on the rule's validation options for one
// non-null value.
func (r FieldRule) valueValid(v string) bool {
	ok := true
	switch {
	case r.Pattern != nil:
		loc := r.Pattern.FindStringIndex(v)
		ok = loc != nil && loc[0] == 0 && loc[1] == len(v)
	case r.Validate != nil:
		ok = r.Validate(v)
	case len(r.DateFormats) > 0:
		_, ok = parseDate(v, r.DateFormats)
	}
	if ok && len(r.ValidValues) > 0 {
		ok = containsFold(r.ValidValues, v)
	}
	return ok
}

// apply mutates the table with this field's outcome: shadow column and
// in-place nulling for soft rejects, then post-processing, column
// generation, and the optional source drop.
func (e *fieldEval) apply(tbl *model.Table, w *guardedWriter, mandatory bool) error {
	name := e.field.Name
	rule := e.field.Rule

	// Shadow column, created lazily only when the field had >=1 soft
	// reject. Hard-rejected rows are removed wholesale and keep their
	// original values in the hard-reject report instead.
	if !mandatory && len(e.rejects) > 0 {
		shadow := make([]model.Cell, len(e.orig))
		for i, row := range tbl.Rows() {
			if e.rejects.Has(row.ID) {
				shadow[i] = e.orig[i]
			}
		}
		if err := w.SetColumn(name+ShadowSuffix, shadow); err != nil {
			return err
		}
	}

	cur := e.work
	if err := tbl.SetColumn(name, cur); err != nil {
		return err
	}

	// Post-processing on surviving validated values. Transforms chain:
	// each one sees the previous output, whether or not it was written
	// to a new column.
	for _, pp := range rule.PostProcess {
		out := pp.Apply(cur)
		if len(out) != len(cur) {
			return fmt.Errorf("%w: post-process on column %s returned %d values for %d rows",
				ErrRowCountMismatch, name, len(out), len(cur))
		}
		if pp.Column == "" {
			cur = out
			if err := tbl.SetColumn(name, cur); err != nil {
				return err
			}
			continue
		}
		if err := w.SetColumn(pp.Column, out); err != nil {
			return err
		}
	}

	for _, gen := range rule.Generators {
		if err := gen(w, cur); err != nil {
			return err
		}
	}

	if rule.DropField {
		if err := tbl.DropColumn(name); err != nil {
			return err
		}
	}
	return nil
}

// runPhase applies the field processor over one field set. All fields
// are first validated against a stable snapshot; only then are
// mutations applied, in field order, so that one field's derived
// columns can never influence another field's validation.
func runPhase(tbl *model.Table, fields []Field, mandatory bool) (RejectRecord, error) {
	rejects := make(RejectRecord, len(fields))

	evals := make([]*fieldEval, 0, len(fields))
	for _, f := range fields {
		e, err := evaluateField(tbl, f, mandatory)
		if err != nil {
			return nil, err
		}
		evals = append(evals, e)
		rejects[f.Name] = e.rejects
	}

	w := newGuardedWriter(tbl)
	for _, e := range evals {
		if err := e.apply(tbl, w, mandatory); err != nil {
			return nil, err
		}
	}
	return rejects, nil
}

// guardedWriter is the ColumnWriter handed to generators and
// new-column post-processors. It enforces the two phase invariants:
// derived output must match the table's row count, and no two writers
// may collide on a column name, including columns that already existed
// when the phase started.
type guardedWriter struct {
	tbl      *model.Table
	existing map[string]struct{}
	written  map[string]struct{}
}

func newGuardedWriter(tbl *model.Table) *guardedWriter {
	existing := make(map[string]struct{}, len(tbl.Header()))
	for _, name := range tbl.Header() {
		existing[name] = struct{}{}
	}
	return &guardedWriter{
		tbl:      tbl,
		existing: existing,
		written:  make(map[string]struct{}),
	}
}

// SetColumn writes a derived column, rejecting collisions and row
// count mismatches as fatal configuration errors.
func (w *guardedWriter) SetColumn(name string, values []model.Cell) error {
	if _, ok := w.existing[name]; ok {
		return fmt.Errorf("%w: %s", ErrColumnCollision, name)
	}
	if _, ok := w.written[name]; ok {
		return fmt.Errorf("%w: %s", ErrColumnCollision, name)
	}
	if len(values) != w.tbl.RowCount() {
		return fmt.Errorf("%w: column %s has %d values for %d rows",
			ErrRowCountMismatch, name, len(values), w.tbl.RowCount())
	}
	if err := w.tbl.SetColumn(name, values); err != nil {
		return err
	}
	w.written[name] = struct{}{}
	return nil
}
