// Package validation holds the client-side form checks run before the
// auth and feed services are called.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Field messages shown under the sign-in and sign-up forms.
const (
	MsgEmail          = "Please enter a valid email address"
	MsgPasswordLength = "Password must be at least 8 characters"
	MsgName           = "Name must be at least 2 characters"
	MsgPasswordPolicy = "Password must be at least 8 characters with uppercase, lowercase, and number"
	MsgPasswordMatch  = "Passwords do not match"
	MsgTerms          = "You must accept the terms and conditions"
)

const minNameLength = 2

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterAlias("pwd", "min=8")
	v.RegisterAlias("strongpwd", "min=8,containsany=ABCDEFGHIJKLMNOPQRSTUVWXYZ,containsany=abcdefghijklmnopqrstuvwxyz,containsany=0123456789")

	if err := v.RegisterValidation("fullname", func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= minNameLength
	}); err != nil {
		panic(err)
	}

	return v
}

// SignInForm is the sign-in modal's input.
type SignInForm struct {
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"pwd"`
}

// SignUpForm is the sign-up modal's input.
type SignUpForm struct {
	Name            string `json:"name" validate:"fullname"`
	Email           string `json:"email" validate:"email"`
	Password        string `json:"password" validate:"strongpwd"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
	AcceptTerms     bool   `json:"terms" validate:"required"`
}

var signInMessages = map[string]string{
	"email":    MsgEmail,
	"password": MsgPasswordLength,
}

var signUpMessages = map[string]string{
	"name":            MsgName,
	"email":           MsgEmail,
	"password":        MsgPasswordPolicy,
	"confirmPassword": MsgPasswordMatch,
	"terms":           MsgTerms,
}

// ValidateSignIn returns field -> message for every failing field, or nil.
func ValidateSignIn(f SignInForm) map[string]string {
	return toMessages(validate.Struct(f), signInMessages)
}

// ValidateSignUp returns field -> message for every failing field, or nil.
func ValidateSignUp(f SignUpForm) map[string]string {
	return toMessages(validate.Struct(f), signUpMessages)
}

func toMessages(err error, messages map[string]string) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if msg, ok := messages[fe.Field()]; ok {
			out[fe.Field()] = msg
		} else {
			out[fe.Field()] = fe.Error()
		}
	}
	return out
}

func IsValidEmail(email string) bool {
	return validate.Var(email, "email") == nil
}

// IsValidPassword requires at least 8 characters with an upper-case
// letter, a lower-case letter and a digit.
func IsValidPassword(password string) bool {
	return validate.Var(password, "strongpwd") == nil
}

// IsValidName requires at least two characters once surrounding
// whitespace is trimmed.
func IsValidName(name string) bool {
	return validate.Var(name, "fullname") == nil
}

// Strength classifies a password for the sign-up meter.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// PasswordStrength scores one point each for length >= 8, a lower-case
// letter, an upper-case letter, a digit and any other symbol.
// Up to 2 points is weak, 5 is strong, anything between is medium.
func PasswordStrength(password string) Strength {
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsSpace(r):
			symbol = true
		}
	}

	score := 0
	for _, ok := range []bool{utf8.RuneCountInString(password) >= 8, lower, upper, digit, symbol} {
		if ok {
			score++
		}
	}

	switch {
	case score <= 2:
		return StrengthWeak
	case score == 5:
		return StrengthStrong
	default:
		return StrengthMedium
	}
}
