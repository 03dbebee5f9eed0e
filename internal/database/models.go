package database

import "time"

// Severity classifies an incident report.
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// AnalysisEntry is one labelled step in a project's analysis walkthrough.
type AnalysisEntry struct {
	Label   string `json:"label"`
	Content string `json:"content"`
}

// ProjectDetails is the nested case-study view of a project. It duplicates
// fields present at the top level because external consumers read either
// shape; it is always derived from the flat row, never stored separately.
type ProjectDetails struct {
	Scenario   string          `json:"scenario"`
	Image      string          `json:"image"`
	Analysis   []AnalysisEntry `json:"analysis"`
	Conclusion string          `json:"conclusion"`
	Mitigation []string        `json:"mitigation"`
}

// Project is a lab project case study. Tools, Analysis, and Mitigation are
// stored as JSON text columns and decoded on read.
type Project struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Category   string          `json:"category"`
	Icon       string          `json:"icon"`
	ShortDesc  string          `json:"shortDesc"`
	Tools      []string        `json:"tools"`
	Scenario   string          `json:"scenario"`
	Image      string          `json:"image"`
	Analysis   []AnalysisEntry `json:"analysis"`
	Conclusion string          `json:"conclusion"`
	Mitigation []string        `json:"mitigation"`
	Details    *ProjectDetails `json:"details,omitempty"`
}

// WithDetails fills the nested details view from the flat fields.
func (p *Project) WithDetails() *Project {
	p.Details = &ProjectDetails{
		Scenario:   p.Scenario,
		Image:      p.Image,
		Analysis:   p.Analysis,
		Conclusion: p.Conclusion,
		Mitigation: p.Mitigation,
	}
	return p
}

// Report is an incident report write-up. All fields are plain text.
type Report struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Severity       Severity `json:"severity"`
	Date           string   `json:"date"`
	Description    string   `json:"description"`
	Analysis       string   `json:"analysis"`
	RootCause      string   `json:"rootCause"`
	Mitigation     string   `json:"mitigation"`
	LessonsLearned string   `json:"lessonsLearned"`
}

// Contact is a message submitted through the contact form. Timestamp is
// assigned by the database at insert time.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
