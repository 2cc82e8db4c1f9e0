package scheduler

// Log messages
const (
	LogMsgJobScheduled = "Job scheduled"
	LogMsgJobFailed    = "Scheduled job failed"
)
