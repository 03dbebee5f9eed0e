package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jordanvega/sentinel/internal/database"
	"github.com/jordanvega/sentinel/internal/report"
	"github.com/jordanvega/sentinel/internal/validate"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.db.ListProjects()
	if err != nil {
		s.log.Error("listing projects", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	for i := range projects {
		projects[i].WithDetails()
	}
	if projects == nil {
		projects = []database.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := s.db.ListReports()
	if err != nil {
		s.log.Error("listing reports", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch reports")
		return
	}
	if reports == nil {
		reports = []database.Report{}
	}
	writeJSON(w, http.StatusOK, reports)
}

func (s *Server) reportFromURL(w http.ResponseWriter, r *http.Request) *database.Report {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid report id")
		return nil
	}
	rpt, err := s.db.GetReport(id)
	if err != nil {
		s.log.Error("fetching report", zap.Int64("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch report")
		return nil
	}
	if rpt == nil {
		writeError(w, http.StatusNotFound, "report not found")
		return nil
	}
	return rpt
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	rpt := s.reportFromURL(w, r)
	if rpt == nil {
		return
	}
	writeJSON(w, http.StatusOK, rpt)
}

func (s *Server) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	rpt := s.reportFromURL(w, r)
	if rpt == nil {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "markdown"
	}

	switch format {
	case "markdown":
		w.Header().Set("Content-Type", "text/markdown")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=incident-report-%d.md", rpt.ID))
		w.Write([]byte(report.Markdown(rpt)))

	case "pdf":
		data, err := s.pdf.Render(rpt)
		if err != nil {
			s.log.Error("rendering report pdf", zap.Int64("id", rpt.ID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to render report")
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=incident-report-%d.pdf", rpt.ID))
		w.Write(data)

	default:
		writeError(w, http.StatusBadRequest, "format must be 'markdown' or 'pdf'")
	}
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.db.ListRecentContacts(10)
	if err != nil {
		s.log.Error("listing contacts", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch contacts")
		return
	}
	if contacts == nil {
		contacts = []database.Contact{}
	}
	writeJSON(w, http.StatusOK, contacts)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.GetStats()
	if err != nil {
		s.log.Error("fetching stats", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	submission, fieldErrs := validate.ContactSubmission(body)
	if fieldErrs != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Validation Error",
			"details": fieldErrs,
		})
		return
	}

	contact := &database.Contact{
		Name:    submission.Name,
		Email:   submission.Email,
		Message: submission.Message,
	}
	if err := s.db.InsertContact(contact); err != nil {
		s.log.Error("inserting contact", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal System Error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Payload received and logged securely.",
	})
}
