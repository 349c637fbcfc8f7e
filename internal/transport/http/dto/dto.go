// Package dto holds the JSON shapes of the HTTP trigger.
package dto

import "time"

// ErrorCode is a machine readable error tag.
type ErrorCode string

const (
	BADREQUEST    ErrorCode = "BAD_REQUEST"
	RUNINPROGRESS ErrorCode = "RUN_IN_PROGRESS"
	NORUNYET      ErrorCode = "NO_RUN_YET"
	UPSTREAM      ErrorCode = "UPSTREAM_FAILURE"
	INTERNAL      ErrorCode = "INTERNAL"
)

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes the failure.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// RunRequest is the body of POST /runs. An empty body means a real run.
type RunRequest struct {
	DryRun bool `json:"dry_run"`
}

// RunCounts summarises a run.
type RunCounts struct {
	Fetched    int `json:"fetched"`
	Qualifying int `json:"qualifying"`
	Applied    int `json:"applied"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

// Assignment is a manager change sent, or planned in dry run.
type Assignment struct {
	OrderNumber  string `json:"order_number"`
	CustomerCode string `json:"customer_code"`
	Group        string `json:"group"`
	ManagerID    string `json:"manager_id"`
	NoteRemoved  bool   `json:"note_removed"`
}

// Skip is an order left alone on purpose.
type Skip struct {
	OrderNumber  string `json:"order_number"`
	CustomerName string `json:"customer_name"`
	Reason       string `json:"reason"`
}

// Failure is an order that needs manual attention.
type Failure struct {
	OrderNumber  string `json:"order_number"`
	CustomerCode string `json:"customer_code"`
	CustomerName string `json:"customer_name"`
	NoteAuthor   string `json:"note_author,omitempty"`
	Error        string `json:"error"`
}

// RunResponse is the report of one run.
type RunResponse struct {
	WindowStart string       `json:"window_start"`
	DryRun      bool         `json:"dry_run"`
	Complete    bool         `json:"complete"`
	StartedAt   time.Time    `json:"started_at"`
	FinishedAt  time.Time    `json:"finished_at"`
	Counts      RunCounts    `json:"counts"`
	Applied     []Assignment `json:"applied"`
	Skipped     []Skip       `json:"skipped"`
	Failed      []Failure    `json:"failed"`
}

// FranchiseEntry is one customer code to manager binding.
type FranchiseEntry struct {
	CustomerCode string `json:"customer_code"`
	ManagerID    string `json:"manager_id"`
}

// FranchisesResponse is the effective franchise directory.
type FranchisesResponse struct {
	Worksheets []string         `json:"worksheets"`
	Franchises []FranchiseEntry `json:"franchises"`
}
