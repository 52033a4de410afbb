package models

import "time"

// ManagerSummary is one manager's slice of the export report: the
// manager itself, its jobs newest-first, and its record counts.
type ManagerSummary struct {
	Manager   ProjectManager `json:"manager"`
	Jobs      []Job          `json:"jobs"`
	JobCount  int            `json:"jobCount"`
	WorkCount int            `json:"workCount"`
}

// ExportSummary is the composed report consumed by document exporters.
// Rendering (PDF layout, pagination) is the consumer's concern.
type ExportSummary struct {
	GeneratedAt  time.Time        `json:"generatedAt"`
	ManagerCount int              `json:"managerCount"`
	JobCount     int              `json:"jobCount"`
	WorkCount    int              `json:"workCount"`
	Managers     []ManagerSummary `json:"managers"`
}
