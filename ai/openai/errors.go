package openai

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/poiesic/proxyclient/ai"
)

// langchaingo reports rejected requests as plain errors of the form
// "API returned unexpected status code: 401: <message>".
var statusCodePattern = regexp.MustCompile(`status code: (\d{3})`)

// statusError converts a langchaingo HTTP failure into an *ai.StatusError.
// Other errors, including context cancellation, are returned unchanged.
func statusError(err error) error {
	var se *ai.StatusError
	if err == nil || errors.As(err, &se) {
		return err
	}
	m := statusCodePattern.FindStringSubmatch(err.Error())
	if m == nil {
		return err
	}
	code, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return err
	}
	return &ai.StatusError{Code: code, Message: err.Error()}
}
