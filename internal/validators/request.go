package validators

import (
	"context"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-course-catalog/models"
)

// Field name constants match the JSON keys of the request bodies so that
// failure messages name the field the client actually sent.
const (
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldEmailAddress = "emailAddress"
	FieldPassword     = "password"

	FieldTitle       = "title"
	FieldDescription = "description"
)

// Rule tables in declaration order.
var (
	CreateUserRules = []Rule{
		{Field: FieldFirstName, Kind: Required},
		{Field: FieldLastName, Kind: Required},
		{Field: FieldEmailAddress, Kind: RequiredEmail},
		{Field: FieldPassword, Kind: Required},
	}

	CourseRules = []Rule{
		{Field: FieldTitle, Kind: Required},
		{Field: FieldDescription, Kind: Required},
	}
)

// RequestValidator implements [Validator] for the request bodies accepted
// by the API: [models.CreateUserRequest] and [models.CourseRequest].
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{validate: validator.New()}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. fields restricts evaluation to the named subset of the
// type's rule table; when omitted the whole table is evaluated.
//
// Returns [ErrUnsupportedType] for any other type and [ErrUnknownField] when
// fields names something outside the rule table.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateUserRequest:
		return v.validateCreateUser(value, fields...)
	case *models.CreateUserRequest:
		return v.validateCreateUser(*value, fields...)

	case models.CourseRequest:
		return v.validateCourse(value, fields...)
	case *models.CourseRequest:
		return v.validateCourse(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCreateUser(req models.CreateUserRequest, fields ...string) error {
	rules, err := selectRules(CreateUserRules, fields)
	if err != nil {
		return err
	}

	return Evaluate(v.validate, rules, map[string]string{
		FieldFirstName:    req.FirstName,
		FieldLastName:     req.LastName,
		FieldEmailAddress: req.EmailAddress,
		FieldPassword:     req.Password,
	})
}

func (v *RequestValidator) validateCourse(req models.CourseRequest, fields ...string) error {
	rules, err := selectRules(CourseRules, fields)
	if err != nil {
		return err
	}

	return Evaluate(v.validate, rules, map[string]string{
		FieldTitle:       req.Title,
		FieldDescription: req.Description,
	})
}

// selectRules keeps the declaration order of table regardless of the order
// fields are listed in.
func selectRules(table []Rule, fields []string) ([]Rule, error) {
	if len(fields) == 0 {
		return table, nil
	}

	for _, f := range fields {
		if !slices.ContainsFunc(table, func(r Rule) bool { return r.Field == f }) {
			return nil, ErrUnknownField
		}
	}

	selected := make([]Rule, 0, len(fields))
	for _, r := range table {
		if slices.Contains(fields, r.Field) {
			selected = append(selected, r)
		}
	}
	return selected, nil
}
