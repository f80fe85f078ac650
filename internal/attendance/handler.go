package attendance

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"

	"github.com/clubops/checkin-api/internal/shared/handler"
	"github.com/clubops/checkin-api/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// Report returns the reconciled attendance rows as JSON.
func (h *Handler) Report(c *gin.Context) {
	report, err := h.service.Reconcile(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReportResponse{
		SessionTitle: report.Session.Title,
		SessionDate:  report.Session.OccursOn.Format(DateLayout),
		Rows:         report.Rows,
	})
}

// Export streams the reconciled attendance as a CSV download: two header
// lines (date, title), a blank separator, the column header, then one row
// per roster member with a 1/0 attendance flag.
func (h *Handler) Export(c *gin.Context) {
	report, err := h.service.Reconcile(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	filename := fmt.Sprintf("%s_%s_attendance.csv",
		report.Session.OccursOn.Format("20060102"), report.Session.Title)

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)

	rows := [][]string{
		{"Session Date:", report.Session.OccursOn.Format(DateLayout)},
		{"Session Title:", report.Session.Title},
		{},
		{"Member Number", "Name", "Public ID", "Email", "Attended", "Check-In Time"},
	}

	for _, row := range report.Rows {
		attended := "0"
		if row.Present {
			attended = "1"
		}
		rows = append(rows, []string{
			row.MemberNumber,
			row.DisplayName,
			row.PublicID,
			row.ContactEmail,
			attended,
			row.CheckedInAt,
		})
	}

	if err := w.WriteAll(rows); err != nil {
		// Headers are already out; log and give up on this response
		logger.FromContext(c.Request.Context()).Error("failed to write CSV export",
			"session_id", report.Session.ID, "error", err)
	}
}
