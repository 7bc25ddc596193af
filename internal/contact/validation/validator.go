// Package validation turns a raw contact-form body into a CreateMessageRequest,
// reporting every failing field instead of stopping at the first one.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/portfolio-site/portfolio-backend/internal/contact/domain"
)

// Issue is a single field failure. Field is empty for body-level problems.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error lists every issue found in one payload.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		if is.Field == "" {
			parts = append(parts, is.Message)
			continue
		}
		parts = append(parts, is.Field+": "+is.Message)
	}
	return "invalid form data: " + strings.Join(parts, "; ")
}

var fieldOrder = []string{"name", "email", "subject", "message"}

var ruleMessages = map[string]string{
	"name":    "Name must be at least 2 characters",
	"email":   "Please enter a valid email",
	"subject": "Subject must be at least 5 characters",
	"message": "Message must be at least 10 characters",
}

// safe for concurrent use, caches struct metadata
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode parses and validates a contact-form body. On failure the returned
// error is a *Error unless the validator itself is misused.
func Decode(raw []byte) (domain.CreateMessageRequest, error) {
	var req domain.CreateMessageRequest

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return req, &Error{Issues: []Issue{{Message: "Expected object"}}}
	}

	targets := map[string]*string{
		"name":    &req.Name,
		"email":   &req.Email,
		"subject": &req.Subject,
		"message": &req.Message,
	}

	var issues []Issue
	flagged := make(map[string]bool, len(fieldOrder))
	for _, field := range fieldOrder {
		v, ok := obj[field]
		switch {
		case !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")):
			issues = append(issues, Issue{Field: field, Message: "Required"})
			flagged[field] = true
		case json.Unmarshal(v, targets[field]) != nil:
			issues = append(issues, Issue{Field: field, Message: "Expected string"})
			flagged[field] = true
		}
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return req, fmt.Errorf("validate contact request: %w", err)
		}
		for _, fe := range verrs {
			if flagged[fe.Field()] {
				continue
			}
			issues = append(issues, Issue{Field: fe.Field(), Message: ruleMessage(fe)})
		}
	}

	if len(issues) > 0 {
		sortIssues(issues)
		return req, &Error{Issues: issues}
	}
	return req, nil
}

func ruleMessage(fe validator.FieldError) string {
	if msg, ok := ruleMessages[fe.Field()]; ok {
		return msg
	}
	return fmt.Sprintf("failed %q rule", fe.Tag())
}

func sortIssues(issues []Issue) {
	rank := make(map[string]int, len(fieldOrder))
	for i, f := range fieldOrder {
		rank[f] = i
	}
	sort.SliceStable(issues, func(i, j int) bool {
		return rank[issues[i].Field] < rank[issues[j].Field]
	})
}
