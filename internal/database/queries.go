package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// --- Projects ---

// InsertProject inserts a project, doing nothing if a row with the same id
// already exists. Seeding relies on this to stay idempotent.
func (db *DB) InsertProject(p *Project) error {
	tools, err := json.Marshal(p.Tools)
	if err != nil {
		return fmt.Errorf("encode tools: %w", err)
	}
	analysis, err := json.Marshal(p.Analysis)
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}
	mitigation, err := json.Marshal(p.Mitigation)
	if err != nil {
		return fmt.Errorf("encode mitigation: %w", err)
	}

	_, err = db.Exec(
		`INSERT OR IGNORE INTO projects (id, title, category, icon, shortDesc, tools, scenario, image, analysis, conclusion, mitigation)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Category, p.Icon, p.ShortDesc, string(tools), p.Scenario, p.Image, string(analysis), p.Conclusion, string(mitigation),
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// ListProjects returns every project in seed order with the JSON list
// columns decoded. A column that fails to decode is an error, never a
// silent empty list.
func (db *DB) ListProjects() ([]Project, error) {
	rows, err := db.Query(
		`SELECT id, title, category, icon, shortDesc, tools, scenario, image, analysis, conclusion, mitigation
		 FROM projects ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		var tools, analysis, mitigation string
		if err := rows.Scan(&p.ID, &p.Title, &p.Category, &p.Icon, &p.ShortDesc, &tools, &p.Scenario, &p.Image, &analysis, &p.Conclusion, &mitigation); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		if err := json.Unmarshal([]byte(tools), &p.Tools); err != nil {
			return nil, fmt.Errorf("decode tools for project %q: %w", p.ID, err)
		}
		if err := json.Unmarshal([]byte(analysis), &p.Analysis); err != nil {
			return nil, fmt.Errorf("decode analysis for project %q: %w", p.ID, err)
		}
		if err := json.Unmarshal([]byte(mitigation), &p.Mitigation); err != nil {
			return nil, fmt.Errorf("decode mitigation for project %q: %w", p.ID, err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// --- Reports ---

// InsertReport inserts an incident report, doing nothing if a report with
// the same title already exists (enforced by the unique title index).
func (db *DB) InsertReport(r *Report) error {
	res, err := db.Exec(
		`INSERT OR IGNORE INTO reports (title, severity, date, description, analysis, rootCause, mitigation, lessonsLearned)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Title, r.Severity, r.Date, r.Description, r.Analysis, r.RootCause, r.Mitigation, r.LessonsLearned,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil && id != 0 {
		r.ID = id
	}
	return nil
}

func (db *DB) ListReports() ([]Report, error) {
	rows, err := db.Query(
		`SELECT id, title, severity, date, description, analysis, rootCause, mitigation, lessonsLearned
		 FROM reports ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var reports []Report
	for rows.Next() {
		var r Report
		if err := rows.Scan(&r.ID, &r.Title, &r.Severity, &r.Date, &r.Description, &r.Analysis, &r.RootCause, &r.Mitigation, &r.LessonsLearned); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

// GetReport returns the report with the given id, or nil when absent.
func (db *DB) GetReport(id int64) (*Report, error) {
	r := &Report{}
	err := db.QueryRow(
		`SELECT id, title, severity, date, description, analysis, rootCause, mitigation, lessonsLearned
		 FROM reports WHERE id = ?`, id,
	).Scan(&r.ID, &r.Title, &r.Severity, &r.Date, &r.Description, &r.Analysis, &r.RootCause, &r.Mitigation, &r.LessonsLearned)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	return r, nil
}

// --- Contacts ---

// InsertContact stores a validated contact submission. The timestamp is
// assigned by the database, never taken from the client.
func (db *DB) InsertContact(c *Contact) error {
	res, err := db.Exec(
		`INSERT INTO contacts (name, email, message) VALUES (?, ?, ?)`,
		c.Name, c.Email, c.Message,
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	c.ID, _ = res.LastInsertId()
	return nil
}

// ListRecentContacts returns at most limit contacts, newest first. The id
// tiebreak keeps the order stable when timestamps collide within a second.
func (db *DB) ListRecentContacts(limit int) ([]Contact, error) {
	rows, err := db.Query(
		`SELECT id, name, email, message, timestamp
		 FROM contacts ORDER BY timestamp DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []Contact
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// --- Stats ---

type SiteStats struct {
	ProjectCount int `json:"project_count"`
	ReportCount  int `json:"report_count"`
	ContactCount int `json:"contact_count"`
}

func (db *DB) GetStats() (*SiteStats, error) {
	stats := &SiteStats{}
	if err := db.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&stats.ProjectCount); err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM reports`).Scan(&stats.ReportCount); err != nil {
		return nil, fmt.Errorf("count reports: %w", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM contacts`).Scan(&stats.ContactCount); err != nil {
		return nil, fmt.Errorf("count contacts: %w", err)
	}
	return stats, nil
}
