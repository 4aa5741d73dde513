// Package validator runs field checks and reports their failures.
package validator

import (
	"errors"
	"fmt"
)

// Validator keeps the first failure recorded for each field, in check order.
type Validator struct {
	fields []string
	errs   map[string]error
}

func New() *Validator {
	return &Validator{errs: make(map[string]error)}
}

// Check records err against field when ok is false.
func (v *Validator) Check(ok bool, field string, err error) {
	if ok {
		return
	}
	if _, seen := v.errs[field]; seen {
		return
	}
	v.fields = append(v.fields, field)
	v.errs[field] = err
}

func (v *Validator) Valid() bool {
	return len(v.fields) == 0
}

// Fields lists the failing fields in the order they were checked.
func (v *Validator) Fields() []string {
	return append([]string(nil), v.fields...)
}

// Err is the failure of the first failing field, unchanged so callers can
// compare it against their sentinels. Nil when every check passed.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return v.errs[v.fields[0]]
}

// Join reports every failure as "field: error", joined with errors.Join.
func (v *Validator) Join() error {
	all := make([]error, 0, len(v.fields))
	for _, field := range v.fields {
		all = append(all, fmt.Errorf("%s: %w", field, v.errs[field]))
	}
	return errors.Join(all...)
}
