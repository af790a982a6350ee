package validators

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Kind selects which checks a [Rule] applies to its field.
type Kind int

const (
	// Required rejects empty and whitespace-only values.
	Required Kind = iota

	// RequiredEmail applies Required and then checks email syntax.
	RequiredEmail
)

// Rule binds a request field name to the checks applied to its value.
type Rule struct {
	Field string
	Kind  Kind
}

func requiredMessage(field string) string {
	return fmt.Sprintf("Please provide a value for %q", field)
}

func emailMessage(field string) string {
	return fmt.Sprintf("Please provide a valid email address for %q", field)
}

// check evaluates rule against value and returns the failure message, or ""
// when the value passes.
func check(v *validator.Validate, rule Rule, value string) string {
	value = strings.TrimSpace(value)

	if v.Var(value, "required") != nil {
		return requiredMessage(rule.Field)
	}

	if rule.Kind == RequiredEmail && v.Var(value, "email") != nil {
		return emailMessage(rule.Field)
	}

	return ""
}

// Evaluate runs every rule in order against values and returns a
// [*ValidationError] listing all failures, or nil when every rule passes.
// A field missing from values is treated as empty.
func Evaluate(v *validator.Validate, rules []Rule, values map[string]string) error {
	var messages []string
	for _, rule := range rules {
		if msg := check(v, rule, values[rule.Field]); msg != "" {
			messages = append(messages, msg)
		}
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	return nil
}
