package service_test

import (
	"errors"
	"testing"

	"github.com/hmalcolm/ynab-bridge-go/internal/domain"
	"github.com/hmalcolm/ynab-bridge-go/internal/service"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "unauthorized",
			err:  &domain.ErrUpstream{Status: 401, Reason: "Unauthorized"},
			want: "Error: Invalid API key. Check YNAB_API_KEY environment variable.",
		},
		{
			name: "forbidden",
			err:  &domain.ErrUpstream{Status: 403, Reason: "Forbidden"},
			want: "Error: Access forbidden. You don't have permission for this resource.",
		},
		{
			name: "not found",
			err:  &domain.ErrUpstream{Status: 404, Reason: "Not Found"},
			want: "Error: Resource not found. Check the ID is correct.",
		},
		{
			name: "rate limited",
			err:  &domain.ErrUpstream{Status: 429, Reason: "Too Many Requests"},
			want: "Error: Rate limit exceeded. Wait before making more requests.",
		},
		{
			name: "other upstream status",
			err:  &domain.ErrUpstream{Status: 503, Reason: "Service Unavailable"},
			want: "Error: YNAB API error 503: Service Unavailable",
		},
		{
			name: "validation",
			err:  &domain.ErrValidation{Field: "budget_id", Message: "must not be empty"},
			want: "Error: Invalid input for budget_id: must not be empty",
		},
		{
			name: "persistence",
			err:  &domain.ErrPersistence{Path: "/tmp/out.json", Err: errors.New("permission denied")},
			want: "Error: Failed to write output file /tmp/out.json: permission denied",
		},
		{
			name: "circuit open",
			err:  &domain.ErrCircuitOpen{Service: "ynab"},
			want: "Error: YNAB API is temporarily unavailable. Try again shortly.",
		},
		{
			name: "generic",
			err:  errors.New("boom"),
			want: "Error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := service.Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassify_WrappedUpstream(t *testing.T) {
	wrapped := errorsJoin(&domain.ErrUpstream{Status: 404, Reason: "Not Found"})
	got := service.Classify(wrapped)
	want := "Error: Resource not found. Check the ID is correct."
	if got != want {
		t.Errorf("Classify() = %q, want %q", got, want)
	}
}

// errorsJoin wraps err one level deep to exercise errors.As traversal.
func errorsJoin(err error) error {
	return errWrapper{err}
}

type errWrapper struct{ err error }

func (w errWrapper) Error() string { return "request failed: " + w.err.Error() }
func (w errWrapper) Unwrap() error { return w.err }
