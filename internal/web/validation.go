package web

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationMessages turns a form binding error into user-facing flash
// messages, one per failed field.
func ValidationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid form submission."}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			msgs = append(msgs, fmt.Sprintf("%s is required.", fe.Field()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s is invalid.", fe.Field()))
		}
	}
	return msgs
}
