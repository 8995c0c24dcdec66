package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-insight-keeper/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message, usage := decodeErrorBody(resp.Body())
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusTooManyRequests:
		if usage != nil {
			return &QuotaError{Usage: *usage}
		}
		return fmt.Errorf("%w: %s", ErrTooManyRequests, message)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}

// decodeErrorBody reads the {"error", "usage"} envelope; a non-JSON body is
// returned trimmed as the message.
func decodeErrorBody(body []byte) (string, *models.Usage) {
	var envelope models.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return strings.TrimSpace(string(body)), nil
	}
	return envelope.Error, envelope.Usage
}
