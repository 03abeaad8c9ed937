package req

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xy-planning-network/rango"
)

// A ValidationError is an issue with a concrete value not matching the rule set on its field.
type ValidationError struct {
	Field string `json:"field"`
	Got   any    `json:"got"`
	Rule  string `json:"rule,omitempty"`
}

// ValidationErrors is a set of ValidationError.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msg := fmt.Sprintf("field=%q rule=%q got=%q", err.Field, err.Rule, fmt.Sprint(err.Got))
		msgs = append(msgs, msg)
	}

	return strings.Join(msgs, "\n")
}

// Fields maps each invalid field to the rule it broke,
// keeping the first rule when a field broke several.
func (v ValidationErrors) Fields() map[string]string {
	m := make(map[string]string, len(v))
	for _, err := range v {
		if _, ok := m[err.Field]; !ok {
			m[err.Field] = err.Rule
		}
	}

	return m
}

func (v ValidationErrors) MarshalJSON() ([]byte, error) {
	var errs struct {
		E []ValidationError `json:"validationErrors,omitempty"`
	}

	errs.E = append(errs.E, v...)

	return json.Marshal(errs)
}

func (ValidationErrors) Unwrap() error { return rango.ErrNotValid }
