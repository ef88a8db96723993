package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks every struct field and returns one human-readable message
// listing all violations, or "" when the value is valid. Rules are not
// fail-fast: every broken field contributes to the message.
func Validate(v interface{}) string {
	err := validate.Struct(v)
	if err == nil {
		return ""
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, ", ")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s cannot be empty", fe.Field())
	case "email":
		return "Invalid email address"
	case "oneof":
		return fmt.Sprintf("%s must be either %s", fe.Field(), quoteOptions(fe.Param()))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func quoteOptions(param string) string {
	opts := strings.Fields(param)
	for i, o := range opts {
		opts[i] = fmt.Sprintf("%q", o)
	}
	if len(opts) < 2 {
		return strings.Join(opts, "")
	}
	return strings.Join(opts[:len(opts)-1], ", ") + " or " + opts[len(opts)-1]
}
