package jobqueue

import (
	"encoding/json"
	"time"
)

// JobType defines the type of job
type JobType string

const (
	JobTypeRecalcCustomerTotals JobType = "recalc_customer_totals"
)

// JobStatus defines the status of a job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	JobStatusRetrying   JobStatus = "retrying"
)

// Job represents a background job
type Job struct {
	ID          string                 `json:"id"`
	Type        JobType                `json:"type"`
	Status      JobStatus              `json:"status"`
	Payload     map[string]interface{} `json:"payload"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	ProcessedAt *time.Time             `json:"processed_at,omitempty"`
	CompletedAt *time.Time             `json:"completed_at,omitempty"`
	ErrorMsg    string                 `json:"error_msg,omitempty"`
	RetryCount  int                    `json:"retry_count"`
	MaxRetries  int                    `json:"max_retries"`
}

// MarkAsProcessing flags the job as picked up by a worker.
func (j *Job) MarkAsProcessing() {
	now := time.Now()
	j.Status = JobStatusProcessing
	j.ProcessedAt = &now
	j.UpdatedAt = now
}

// MarkAsCompleted flags the job as done.
func (j *Job) MarkAsCompleted() {
	now := time.Now()
	j.Status = JobStatusCompleted
	j.CompletedAt = &now
	j.UpdatedAt = now
}

// MarkAsFailed records the failure reason and bumps the retry counter.
func (j *Job) MarkAsFailed(msg string) {
	j.Status = JobStatusFailed
	j.ErrorMsg = msg
	j.RetryCount++
	j.UpdatedAt = time.Now()
}

// MarkAsRetrying flags the job for another attempt.
func (j *Job) MarkAsRetrying() {
	j.Status = JobStatusRetrying
	j.UpdatedAt = time.Now()
}

// IsRetryable reports whether the job has retries left.
func (j *Job) IsRetryable() bool {
	return j.RetryCount < j.MaxRetries
}

// RecalcCustomerTotalsPayload identifies the customer whose spend totals
// need recomputing from their orders.
type RecalcCustomerTotalsPayload struct {
	CustomerID uint `json:"customer_id"`
}

// ToMap converts the payload to a map for storage
func (p RecalcCustomerTotalsPayload) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"customer_id": p.CustomerID,
	}
}

// RecalcCustomerTotalsPayloadFromMap creates a payload from a map
func RecalcCustomerTotalsPayloadFromMap(data map[string]interface{}) (*RecalcCustomerTotalsPayload, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var payload RecalcCustomerTotalsPayload
	if err := json.Unmarshal(jsonData, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
