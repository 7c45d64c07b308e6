package utils

import (
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var usernameRe = regexp.MustCompile(`(?i)^[a-z0-9_]{2,20}$`)

// NewValidator builds the validator shared by all controllers, with the
// domain rules registered: username, strongpassword and repourl.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})

	v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return isStrongPassword(fl.Field().String())
	})

	v.RegisterValidation("repourl", func(fl validator.FieldLevel) bool {
		u, err := url.Parse(fl.Field().String())
		if err != nil {
			return false
		}
		host := strings.TrimPrefix(u.Hostname(), "www.")
		return (u.Scheme == "http" || u.Scheme == "https") && host == "github.com"
	})

	return v
}

// Passwords must be 8-30 characters and mix uppercase and lowercase letters,
// digits, and specials.
func isStrongPassword(pw string) bool {
	if len(pw) < 8 || len(pw) > 30 {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}

// ValidateStruct runs the validator and flattens failures into a
// field-to-message map suitable for a 400 response body. Returns nil when the
// value is valid.
func ValidateStruct(v *validator.Validate, s interface{}) map[string]string {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"request": err.Error()}
	}

	messages := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		field := fe.Field()
		if _, seen := messages[field]; !seen {
			messages[field] = messageFor(fe)
		}
	}
	return messages
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "email":
		return fmt.Sprintf("'%v' is not a valid email.", fe.Value())
	case "username":
		return "Invalid username. May contain only letters, numbers, and underscores and must be 2-20 characters."
	case "strongpassword":
		return "Invalid password. Must contain uppercase and lowercase letters, numbers, and special characters."
	case "repourl":
		return "Invalid repo URL. Must be a github.com URL."
	case "url":
		return fmt.Sprintf("'%v' is not a valid URL.", fe.Value())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Invalid %s length. A team may have a maximum of %s members.", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}
