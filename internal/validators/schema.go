package validators

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

func validate() *validator.Validate {
	engineOnce.Do(func() {
		engine = validator.New(validator.WithRequiredStructEnabled())

		// report violations with the JSON field names clients send
		engine.RegisterTagNameFunc(jsonName)
	})
	return engine
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// ValidationError lists every constraint a payload broke.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Validate checks s against its `validate` tags.
func Validate(s any) error {
	err := validate().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, Violation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: describe(fe),
		})
	}
	return &ValidationError{Violations: out}
}

// DecodeAndValidate reads one JSON document from r into dst and validates it.
// Malformed JSON and wrongly typed fields are reported as violations too,
// alongside every rule the rest of the payload breaks.
func DecodeAndValidate(r io.Reader, dst any) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return decodeViolation(io.EOF)
	}

	err = json.Unmarshal(body, dst)
	if err == nil {
		return Validate(dst)
	}

	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return decodeViolation(err)
	}

	typed := typeViolations(body, dst)
	if len(typed) == 0 {
		return decodeViolation(err)
	}

	// a field with the wrong type was left at its zero value; its rule
	// failures would only repeat the type violation
	seen := make(map[string]bool, len(typed))
	for _, v := range typed {
		seen[v.Field] = true
	}

	out := typed
	verr := Validate(dst)
	if ve, ok := AsValidationError(verr); ok {
		for _, v := range ve.Violations {
			if !seen[v.Field] {
				out = append(out, v)
			}
		}
	} else if verr != nil {
		return verr
	}
	return &ValidationError{Violations: out}
}

// typeViolations decodes each top-level field of body on its own, so that
// every wrongly typed field is reported and not only the first.
func typeViolations(body []byte, dst any) []Violation {
	t := reflect.TypeOf(dst)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil
	}

	var out []Violation
	for i := 0; i < t.NumField(); i++ {
		fld := t.Field(i)
		name := jsonName(fld)
		raw, ok := fields[name]
		if !ok || name == "" || !fld.IsExported() {
			continue
		}

		err := json.Unmarshal(raw, reflect.New(fld.Type).Interface())
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			out = append(out, typeViolation(name, typeErr))
		}
	}
	return out
}

func typeViolation(field string, err *json.UnmarshalTypeError) Violation {
	return Violation{
		Field:   field,
		Rule:    "type",
		Param:   err.Type.String(),
		Message: fmt.Sprintf("must be of type %s, got %s", jsonKind(err.Type), err.Value),
	}
}

func decodeViolation(err error) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return &ValidationError{Violations: []Violation{typeViolation(field, typeErr)}}
	case errors.Is(err, io.EOF):
		return &ValidationError{Violations: []Violation{{
			Field:   "body",
			Rule:    "required",
			Message: "request body is required",
		}}}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return &ValidationError{Violations: []Violation{{
			Field:   "body",
			Rule:    "json",
			Message: "request body is not valid JSON",
		}}}
	default:
		return err
	}
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return t.String()
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		return "must be greater than or equal to " + fe.Param()
	case "max":
		return "must be less than or equal to " + fe.Param()
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
