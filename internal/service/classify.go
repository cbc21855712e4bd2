package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hmalcolm/ynab-bridge-go/internal/domain"
)

// Classify maps any error to the user-facing text a tool returns.
// Tool responses are always text; failures are never raw errors.
func Classify(err error) string {
	var upstream *domain.ErrUpstream
	if errors.As(err, &upstream) {
		switch upstream.Status {
		case http.StatusUnauthorized:
			return "Error: Invalid API key. Check YNAB_API_KEY environment variable."
		case http.StatusForbidden:
			return "Error: Access forbidden. You don't have permission for this resource."
		case http.StatusNotFound:
			return "Error: Resource not found. Check the ID is correct."
		case http.StatusTooManyRequests:
			return "Error: Rate limit exceeded. Wait before making more requests."
		}
		return fmt.Sprintf("Error: YNAB API error %d: %s", upstream.Status, upstream.Reason)
	}

	var validation *domain.ErrValidation
	if errors.As(err, &validation) {
		return fmt.Sprintf("Error: Invalid input for %s: %s", validation.Field, validation.Message)
	}

	var persistence *domain.ErrPersistence
	if errors.As(err, &persistence) {
		return fmt.Sprintf("Error: Failed to write output file %s: %v", persistence.Path, persistence.Err)
	}

	var open *domain.ErrCircuitOpen
	if errors.As(err, &open) {
		return "Error: YNAB API is temporarily unavailable. Try again shortly."
	}

	return fmt.Sprintf("Error: %v", err)
}
