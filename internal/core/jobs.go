package core

import (
	"context"
)

// JobDispatcher accepts webhook-derived events and queues them for
// asynchronous processing. It decouples the HTTP handler from the job
// execution mechanism: the handler acknowledges the delivery as soon as the
// event is queued, and processing failures are only ever logged.
type JobDispatcher interface {
	// Dispatch queues an event for processing. It returns an error if the
	// event cannot be queued, for example when the queue is full, providing
	// a backpressure signal to the caller.
	Dispatch(ctx context.Context, event *GitHubEvent) error

	// Stop drains the queue and waits for in-flight jobs to finish.
	Stop()
}

// Job is a single executable unit of work triggered by a GitHubEvent, such as
// a full review pass or a thread reply.
type Job interface {
	// Run executes the job. An error return means the whole job was aborted;
	// per-line failures inside a job are handled at their own boundary and do
	// not surface here.
	Run(ctx context.Context, event *GitHubEvent) error
}
