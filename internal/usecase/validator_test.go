package usecase

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

func fixedClock(y int, m time.Month, d int) func() time.Time {
	return func() time.Time { return time.Date(y, m, d, 12, 0, 0, 0, time.UTC) }
}

func ptr[T any](v T) *T { return &v }

func validInput() UserInput {
	return UserInput{
		Email:     ptr("a@x.com"),
		FirstName: ptr("A"),
		LastName:  ptr("L"),
		BirthDate: &civil.Date{Year: 2000, Month: time.January, Day: 1},
	}
}

func TestValidator_BirthDateBounds(t *testing.T) {
	v := NewValidator(18, WithClock(fixedClock(2024, time.June, 1)))

	cases := []struct {
		name  string
		date  civil.Date
		valid bool
	}{
		{"one day short of minimum age", civil.Date{Year: 2006, Month: time.June, Day: 2}, false},
		{"exactly minimum age", civil.Date{Year: 2006, Month: time.June, Day: 1}, true},
		{"older than minimum age", civil.Date{Year: 2006, Month: time.May, Day: 31}, true},
		{"future date", civil.Date{Year: 2030, Month: time.January, Day: 1}, false},
		{"today", civil.Date{Year: 2024, Month: time.June, Day: 1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := UserInput{BirthDate: &tc.date}
			violations := v.ValidateField(FieldBirthDate, in)
			if tc.valid {
				assert.Empty(t, violations)
				return
			}
			if assert.Len(t, violations, 1) {
				assert.Equal(t, "birthDate", violations[0].Field)
				assert.Contains(t, violations[0].Message, "illegal date")
			}
		})
	}
}

func TestValidator_MinimumAgeZeroStillRejectsToday(t *testing.T) {
	v := NewValidator(0, WithClock(fixedClock(2024, time.June, 1)))

	assert.NotEmpty(t, v.ValidateField(FieldBirthDate, UserInput{BirthDate: &civil.Date{Year: 2024, Month: time.June, Day: 1}}))
	assert.Empty(t, v.ValidateField(FieldBirthDate, UserInput{BirthDate: &civil.Date{Year: 2024, Month: time.May, Day: 31}}))
}

func TestValidator_LeapDayClamp(t *testing.T) {
	v := NewValidator(1, WithClock(fixedClock(2024, time.February, 29)))

	assert.Empty(t, v.ValidateField(FieldBirthDate, UserInput{BirthDate: &civil.Date{Year: 2023, Month: time.February, Day: 28}}))
	assert.NotEmpty(t, v.ValidateField(FieldBirthDate, UserInput{BirthDate: &civil.Date{Year: 2023, Month: time.March, Day: 1}}))
}

func TestValidator_MissingBirthDate(t *testing.T) {
	v := NewValidator(18)

	violations := v.ValidateField(FieldBirthDate, UserInput{})
	assert.Len(t, violations, 1)
}

func TestValidator_Email(t *testing.T) {
	v := NewValidator(18)

	assert.Empty(t, v.ValidateField(FieldEmail, UserInput{Email: ptr("jane.doe@example.com")}))

	for _, bad := range []string{"", "not-an-email", "a@", "@x.com"} {
		violations := v.ValidateField(FieldEmail, UserInput{Email: ptr(bad)})
		assert.Len(t, violations, 1, "email %q", bad)
	}

	violations := v.ValidateField(FieldEmail, UserInput{Email: ptr("nope")})
	assert.Equal(t, []Violation{{Field: "email", Message: "must be a well-formed email address"}}, violations)
}

func TestValidator_Names(t *testing.T) {
	v := NewValidator(18)

	for _, field := range []Field{FieldFirstName, FieldLastName} {
		for _, blank := range []string{"", "   ", "\t\n"} {
			in := UserInput{FirstName: ptr(blank), LastName: ptr(blank)}
			violations := v.ValidateField(field, in)
			assert.Equal(t, []Violation{{Field: string(field), Message: "must not be blank"}}, violations)
		}
		assert.Empty(t, v.ValidateField(field, UserInput{FirstName: ptr("Ann"), LastName: ptr("Lee")}))
	}
}

func TestValidator_OptionalFieldsUnconstrained(t *testing.T) {
	v := NewValidator(18)

	assert.Empty(t, v.ValidateField(FieldAddress, UserInput{Address: ptr("")}))
	assert.Empty(t, v.ValidateField(FieldPhoneNumber, UserInput{}))
}

func TestValidator_ValidateCollectsEveryField(t *testing.T) {
	v := NewValidator(18, WithClock(fixedClock(2024, time.June, 1)))

	assert.Empty(t, v.Validate(validInput()))

	violations := v.Validate(UserInput{Email: ptr("bad"), FirstName: ptr(" ")})
	fields := make([]string, 0, len(violations))
	for _, violation := range violations {
		fields = append(fields, violation.Field)
	}
	assert.Equal(t, []string{"email", "firstName", "lastName", "birthDate"}, fields)
}
