package httperr

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Issue points at the offending field, e.g. {"path": ["branding",
// "primaryColor"], "message": "Champ requis"}.
type Issue struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

func FieldIssue(field, message string) []Issue {
	return []Issue{{Path: []string{field}, Message: message}}
}

// RegisterJSONTagNames makes validator report json field names instead of Go
// struct field names, so issue paths match the wire format. Call once at
// startup.
func RegisterJSONTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// IssuesFromBinding maps a gin binding failure to the issue list. Non-field
// errors (malformed JSON, wrong types) yield no issues; the caller's generic
// 400 message stands alone.
func IssuesFromBinding(err error) []Issue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, Issue{
			Path:    fieldPath(fe),
			Message: messageFor(fe),
		})
	}
	return issues
}

// fieldPath turns "ContactRequest.branding.primaryColor" into
// ["branding", "primaryColor"].
func fieldPath(fe validator.FieldError) []string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return parts
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Champ requis"
	case "email":
		return "Email invalide"
	case "url":
		return "URL invalide"
	case "min":
		return "Trop court"
	case "max":
		return "Trop long"
	case "oneof":
		return "Valeur non autorisée"
	default:
		return "Valeur invalide"
	}
}
