// Package forms holds the field registry and page-state machinery shared by
// the form-driven surfaces of the app.
package forms

// Validator checks a field value and returns an error message, or "" when
// the value is acceptable.
type Validator func(value string) string

// Field is the state of a single form field.
type Field struct {
	Value   string
	Error   string
	Touched bool
}

// Form maps field names to their state. Setting a value marks the field
// touched and re-runs its registered validator immediately; ValidateAll runs
// every validator before submission.
type Form struct {
	fields     map[string]Field
	validators map[string]Validator
}

func New() *Form {
	return &Form{
		fields:     make(map[string]Field),
		validators: make(map[string]Validator),
	}
}

func NewWithValidators(validators map[string]Validator) *Form {
	f := New()

	for name, v := range validators {
		f.validators[name] = v
	}

	return f
}

func (f *Form) Field(name string) Field {
	return f.fields[name]
}

func (f *Form) Value(name string) string {
	return f.fields[name].Value
}

func (f *Form) Err(name string) string {
	return f.fields[name].Error
}

func (f *Form) SetValue(name, value string) {
	field := f.fields[name]
	field.Value = value
	field.Touched = true

	if validator, ok := f.validators[name]; ok {
		field.Error = validator(value)
	}

	f.fields[name] = field
}

func (f *Form) SetError(name, message string) {
	field := f.fields[name]
	field.Error = message
	f.fields[name] = field
}

// ChangeHandler returns a callback bound to one field, for wiring into
// input change events.
func (f *Form) ChangeHandler(name string) func(value string) {
	return func(value string) {
		f.SetValue(name, value)
	}
}

// ValidateAll runs every registered validator, records failures on their
// fields and reports whether the whole form passed.
func (f *Form) ValidateAll() bool {
	allValid := true

	for name, validator := range f.validators {
		field := f.fields[name]

		if msg := validator(field.Value); msg != "" {
			field.Error = msg
			f.fields[name] = field
			allValid = false
		}
	}

	return allValid
}

func (f *Form) HasErrors() bool {
	for _, field := range f.fields {
		if field.Error != "" {
			return true
		}
	}

	return false
}

func (f *Form) IsFieldValid(name string) bool {
	return f.fields[name].Error == ""
}

// Reset discards all field state. Registered validators are kept.
func (f *Form) Reset() {
	f.fields = make(map[string]Field)
}
