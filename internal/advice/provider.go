package advice

import "context"

// Request carries the cycle context the provider tailors its suggestion to.
type Request struct {
	// DayOfCycle counts days since the most recent cycle start, where the
	// start date is day 1.
	DayOfCycle int

	// OnPeriod indicates the user is currently menstruating.
	OnPeriod bool

	// UserName personalizes the generated text.
	UserName string
}

// Provider is the remote generative source of daily advice.
// Implementations may fail for any reason (network, quota, malformed
// output); callers treat every failure as "no advice available" with no
// retry. The interface exists so tests can substitute a mock, mirroring
// how the rest of the codebase abstracts external collaborators.
type Provider interface {
	DailyAdvice(ctx context.Context, req Request) (*Daily, error)
}
