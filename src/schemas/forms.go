package schemas

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"backoffice/src/utils"

	"github.com/go-playground/validator/v10"
)

// Form is a posted maintenance screen. Bind reads the raw values, Fields
// describes the inputs for the generic form view.
type Form interface {
	Bind(values url.Values) error
	Fields() []FormField
	EntityID() int64
}

type FieldOption struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

type FormField struct {
	Name     string
	Label    string
	Type     string
	Value    string
	Lookup   string
	Options  []FieldOption
	Required bool
	Error    string
}

// ValidationError maps form field names to user facing messages.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

// ApplyErrors copies validation messages onto the matching fields.
func ApplyErrors(fields []FormField, err error) []FormField {
	verr, ok := err.(*ValidationError)
	if !ok {
		return fields
	}
	for i := range fields {
		fields[i].Error = verr.Fields[fields[i].Name]
	}
	return fields
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// Validate checks the validate tags of form and reports failures keyed by
// form field name.
func Validate(form interface{}) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		verr.add(fe.Field(), message(fe))
	}
	return verr
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	case "gte", "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "lte", "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "eqfield":
		return "does not match"
	}
	return "is invalid"
}

// binder reads typed values out of a posted form and remembers conversion
// failures so they are reported together with validation failures.
type binder struct {
	values url.Values
	errs   ValidationError
}

func newBinder(values url.Values) *binder {
	return &binder{values: values}
}

func (b *binder) str(key string) string {
	return strings.TrimSpace(b.values.Get(key))
}

func (b *binder) upper(key string) string {
	return strings.ToUpper(b.str(key))
}

func (b *binder) int64(key string) int64 {
	raw := b.str(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		b.errs.add(key, "must be a whole number")
	}
	return n
}

func (b *binder) float(key string) float64 {
	raw := b.str(key)
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		b.errs.add(key, "must be a number")
	}
	return f
}

func (b *binder) date(key string) *time.Time {
	raw := b.str(key)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(utils.ShortDashDateLayout, raw)
	if err != nil {
		t, err = time.Parse(utils.ShortSlashDateLayout, raw)
	}
	if err != nil {
		b.errs.add(key, "must be a date (YYYY-MM-DD)")
		return nil
	}
	return &t
}

func (b *binder) bool(key string) bool {
	switch strings.ToLower(b.str(key)) {
	case "1", "true", "on", "yes", "y":
		return true
	}
	return false
}

func (b *binder) err() error {
	if len(b.errs.Fields) == 0 {
		return nil
	}
	return &b.errs
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(utils.ShortDashDateLayout)
}

func formatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return ""
}

// Parse binds values into form and validates it. Conversion and validation
// failures are reported together; a conversion failure wins for its field.
func Parse(form interface{ Bind(url.Values) error }, values url.Values) error {
	bindErr := form.Bind(values)
	valErr := Validate(form)

	merged := &ValidationError{}
	for _, err := range []error{bindErr, valErr} {
		if err == nil {
			continue
		}
		verr, ok := err.(*ValidationError)
		if !ok {
			return err
		}
		for field, msg := range verr.Fields {
			merged.add(field, msg)
		}
	}
	if len(merged.Fields) == 0 {
		return nil
	}
	return merged
}
