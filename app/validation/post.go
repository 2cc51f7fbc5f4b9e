package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const (
	textLengthMsg   = "Post must be 10 to 300 characters."
	textRequiredMsg = "Post content is required"
)

// Error carries the per-field messages for rejected input.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

// ValidatePostInput checks post or comment text and returns a field
// error map alongside a validity flag. Text is required and must be
// 10 to 300 characters. When the text is empty, the required message
// replaces the length message under the same field key.
func ValidatePostInput(text string) (map[string]string, bool) {
	errs := make(map[string]string)

	if err := validate.Var(text, "min=10,max=300"); err != nil {
		errs["text"] = textLengthMsg
	}
	if err := validate.Var(text, "required"); err != nil {
		errs["text"] = textRequiredMsg
	}

	return errs, len(errs) == 0
}
