// Package report renders incident report write-ups as downloadable
// documents.
package report

import (
	"fmt"
	"strings"

	"github.com/jordanvega/sentinel/internal/database"
)

// Markdown renders a single incident report as a markdown document.
func Markdown(r *database.Report) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# Incident Report: %s\n\n", r.Title))
	b.WriteString(fmt.Sprintf("**Severity:** %s  \n", r.Severity))
	b.WriteString(fmt.Sprintf("**Date:** %s  \n\n", r.Date))

	sections := []struct {
		heading string
		body    string
	}{
		{"Description", r.Description},
		{"Analysis", r.Analysis},
		{"Root Cause", r.RootCause},
		{"Mitigation", r.Mitigation},
		{"Lessons Learned", r.LessonsLearned},
	}

	for _, s := range sections {
		if s.body == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("## %s\n\n", s.heading))
		b.WriteString(s.body)
		b.WriteString("\n\n")
	}

	return b.String()
}
