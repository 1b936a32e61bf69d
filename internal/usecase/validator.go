package usecase

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Field names a writable user field as it appears in requests and violations.
type Field string

const (
	FieldEmail       Field = "email"
	FieldFirstName   Field = "firstName"
	FieldLastName    Field = "lastName"
	FieldBirthDate   Field = "birthDate"
	FieldAddress     Field = "address"
	FieldPhoneNumber Field = "phoneNumber"
)

// Fields lists every writable field in declaration order.
var Fields = []Field{FieldEmail, FieldFirstName, FieldLastName, FieldBirthDate, FieldAddress, FieldPhoneNumber}

const legalDateTag = "legaldate"

// Validator checks user input against the field rules. It holds no request
// state and is safe for concurrent use.
type Validator struct {
	validate   *validator.Validate
	minimumAge int
	now        func() time.Time
}

// ValidatorOption customizes a Validator.
type ValidatorOption func(*Validator)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) ValidatorOption {
	return func(v *Validator) { v.now = now }
}

func NewValidator(minimumAge int, opts ...ValidatorOption) *Validator {
	v := &Validator{
		validate:   validator.New(),
		minimumAge: minimumAge,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}

	// registration only fails on an empty tag or nil func
	_ = v.validate.RegisterValidation("notblank", validators.NotBlank)
	_ = v.validate.RegisterValidation(legalDateTag, v.isLegalDate)
	return v
}

// Validate checks every field with full-input semantics: absent required
// fields are violations.
func (v *Validator) Validate(input UserInput) []Violation {
	var violations []Violation
	for _, field := range Fields {
		violations = append(violations, v.ValidateField(field, input)...)
	}
	return violations
}

// ValidateField checks one field of input. An absent value is judged as
// empty, so callers doing partial updates only ask about present fields.
func (v *Validator) ValidateField(field Field, input UserInput) []Violation {
	switch field {
	case FieldEmail:
		return v.check(field, deref(input.Email), "required,email")
	case FieldFirstName:
		return v.check(field, deref(input.FirstName), "notblank")
	case FieldLastName:
		return v.check(field, deref(input.LastName), "notblank")
	case FieldBirthDate:
		if input.BirthDate == nil {
			return []Violation{{Field: string(field), Message: v.illegalDateMessage()}}
		}
		return v.check(field, input.BirthDate.In(time.UTC), legalDateTag)
	default:
		return nil
	}
}

func (v *Validator) check(field Field, value any, tag string) []Violation {
	err := v.validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Violation{{Field: string(field), Message: err.Error()}}
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{Field: string(field), Message: v.message(fe.Tag())})
	}
	return violations
}

func (v *Validator) message(tag string) string {
	switch tag {
	case "required", "notblank":
		return "must not be blank"
	case "email":
		return "must be a well-formed email address"
	case legalDateTag:
		return v.illegalDateMessage()
	default:
		return "failed on " + tag
	}
}

func (v *Validator) illegalDateMessage() string {
	return fmt.Sprintf("illegal date: must be in the past and at least %d years ago", v.minimumAge)
}

// isLegalDate accepts dates strictly before today and no later than
// today minus the minimum age.
func (v *Validator) isLegalDate(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	date := civil.DateOf(t)
	today := civil.DateOf(v.now())
	return date.Before(today) && !date.After(yearsBefore(today, v.minimumAge))
}

// yearsBefore subtracts whole years, clamping Feb 29 to Feb 28 when the
// target year has no leap day.
func yearsBefore(d civil.Date, years int) civil.Date {
	shifted := civil.Date{Year: d.Year - years, Month: d.Month, Day: d.Day}
	for !shifted.IsValid() {
		shifted.Day--
	}
	return shifted
}
