package constants

// TaskStatus is deliberately an open string: the user may set any text.
// These are only the conventional values; StatusCompleted is the sentinel
// that excludes a task from the pending list (matched case-sensitively).
type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not started"
	StatusInProgress TaskStatus = "in progress"
	StatusCompleted  TaskStatus = "completed"
)
