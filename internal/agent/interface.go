package agent

import "context"

// Agent is a background job that the scheduler can run on a cron schedule
// or on demand.
type Agent interface {
	// GetName returns the agent's unique name, used for logging and
	// on-demand execution.
	GetName() string

	// GetSchedule returns the cron schedule string (e.g. "5 0 * * *").
	// An empty string registers the agent as on-demand only.
	GetSchedule() string

	// Execute runs the agent's task.
	Execute(ctx context.Context) error
}
