package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskStatementsWarmup precomputes statement packs so the first
	// morning request hits a warm cache.
	TaskStatementsWarmup = "statements:warmup"
	// TaskStatementsInvalidate bumps the statement cache version after
	// ledger writes land outside the API.
	TaskStatementsInvalidate = "statements:invalidate"
)

// StatementsWarmupPayload bounds the reporting period to precompute.
// Empty dates default to the current calendar year through today.
type StatementsWarmupPayload struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// NewStatementsWarmupTask constructs an Asynq task.
func NewStatementsWarmupTask(payload StatementsWarmupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskStatementsWarmup, data), nil
}

// NewStatementsInvalidateTask constructs a cache invalidation task.
func NewStatementsInvalidateTask() *asynq.Task {
	return asynq.NewTask(TaskStatementsInvalidate, nil)
}
