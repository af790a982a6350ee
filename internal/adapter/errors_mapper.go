package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// errorBody covers every error shape the API answers with.
type errorBody struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode(), Messages: responseMessages(resp.Body())}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		apiErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		apiErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		apiErr.kind = ErrForbidden
	case http.StatusNotFound:
		apiErr.kind = ErrNotFound
	case http.StatusInternalServerError:
		apiErr.kind = ErrInternalServerError
	default:
		apiErr.kind = fmt.Errorf("http %d", resp.StatusCode())
		if len(apiErr.Messages) == 0 {
			apiErr.Messages = []string{http.StatusText(resp.StatusCode())}
		}
	}

	return apiErr
}

// responseMessages extracts the messages of a JSON error body, falling back
// to the raw text for any other body.
func responseMessages(body []byte) []string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		switch {
		case len(eb.Errors) > 0:
			return eb.Errors
		case eb.Error != "":
			return []string{eb.Error}
		case eb.Message != "":
			return []string{eb.Message}
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return []string{text}
	}
	return nil
}
