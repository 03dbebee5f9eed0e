// Package validate schema-checks contact form submissions before they reach
// storage.
package validate

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

const (
	NameMin    = 2
	NameMax    = 100
	MessageMin = 10
	MessageMax = 1000
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Contact is a normalized, validated submission.
type Contact struct {
	Name    string
	Email   string
	Message string
}

// FieldErrors maps a field name to every constraint it violated.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// ContactSubmission checks an untyped submission body against the contact
// schema. It is a pure check with no side effects, and it reports every
// violation rather than stopping at the first. A nil FieldErrors means the
// submission is valid.
func ContactSubmission(body map[string]any) (Contact, FieldErrors) {
	errs := FieldErrors{}

	name, nameOK := stringField(body, "name", errs)
	email, emailOK := stringField(body, "email", errs)
	message, messageOK := stringField(body, "message", errs)

	if nameOK {
		if n := utf8.RuneCountInString(name); n < NameMin || n > NameMax {
			errs.add("name", fmt.Sprintf("must be between %d and %d characters", NameMin, NameMax))
		}
	}
	if emailOK && !emailPattern.MatchString(email) {
		errs.add("email", "must be a valid email address")
	}
	if messageOK {
		if n := utf8.RuneCountInString(message); n < MessageMin || n > MessageMax {
			errs.add("message", fmt.Sprintf("must be between %d and %d characters", MessageMin, MessageMax))
		}
	}

	if len(errs) > 0 {
		return Contact{}, errs
	}
	return Contact{Name: name, Email: email, Message: message}, nil
}

func stringField(body map[string]any, field string, errs FieldErrors) (string, bool) {
	v, ok := body[field]
	if !ok {
		errs.add(field, "is required")
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		errs.add(field, "must be a string")
		return "", false
	}
	return s, true
}
