package sqs

import "strconv"

// Status represents the health of a worker
type Status string

const (
	StatusUp   Status = "UP"
	StatusDown Status = "DOWN"
)

// HealthStatus reports a worker state with string details
type HealthStatus struct {
	Status  Status
	Details map[string]string
}

// HealthCheck reports UP while the worker is polling
func (w *Worker) HealthCheck() HealthStatus {
	details := map[string]string{
		"queue":     w.queueName,
		"processed": strconv.FormatInt(w.processed.Load(), 10),
		"failed":    strconv.FormatInt(w.failed.Load(), 10),
	}
	if lastError, ok := w.lastError.Load().(string); ok && lastError != "" {
		details["last_error"] = lastError
	}

	if !w.running.Load() {
		details["message"] = "worker not running"
		return HealthStatus{Status: StatusDown, Details: details}
	}
	return HealthStatus{Status: StatusUp, Details: details}
}
