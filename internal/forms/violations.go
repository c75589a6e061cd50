// Package forms implements the validation-and-sanitization pipeline
// applied to incoming form submissions: field validators, sanitizers,
// cross-field rules and the per-entity builders that turn a submission
// into a candidate entity. Forms never decide success or failure on
// their own; the handlers inspect Valid() and choose between persisting
// and re-rendering.
package forms

// Violation describes why a single submitted field was rejected.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations accumulates rejection reasons across all pipeline stages.
// The zero value is ready to use.
type Violations []Violation

func (v *Violations) Add(field, message string) {
	*v = append(*v, Violation{Field: field, Message: message})
}

// Check adds a violation only when ok is false. Use as a one-line guard:
//
//	v.Check(len(title) > 0, "title", "Title required")
func (v *Violations) Check(ok bool, field, message string) {
	if !ok {
		v.Add(field, message)
	}
}

// Valid reports whether no stage recorded a violation.
func (v Violations) Valid() bool {
	return len(v) == 0
}
