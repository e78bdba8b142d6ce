package adapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-event-keeper/models"
	"github.com/go-resty/resty/v2"
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
}

// errorBody covers both error shapes of the server: the general
// {statusCode, message, error} and the validation {field, message}.
type errorBody struct {
	models.ErrorResponse
	Field string `json:"field"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		sentinel:   statusSentinels[resp.StatusCode()],
	}

	var body errorBody
	raw := strings.TrimSpace(string(resp.Body()))
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
		apiErr.Field = body.Field
	} else if raw != "" {
		apiErr.Message = raw
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}

	if retryAfter, err := strconv.Atoi(resp.Header().Get("Retry-After")); err == nil {
		apiErr.RetryAfter = retryAfter
	}

	return apiErr
}
