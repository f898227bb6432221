package model

import "time"

// RunReport describes one pass of the export pipeline.
type RunReport struct {
	RunId        string            `json:"run_id"`
	StartedAt    time.Time         `json:"started_at"`
	FinishedAt   time.Time         `json:"finished_at"`
	CursorBefore string            `json:"cursor_before"`
	CursorAfter  string            `json:"cursor_after"`
	Fetched      int               `json:"fetched"`
	Appended     int64             `json:"appended"`
	Totals       map[string]string `json:"totals,omitempty"`
	Skipped      bool              `json:"skipped,omitempty"`
	Error        string            `json:"error,omitempty"`
}
