package checkin

import (
	"fmt"
	"net/http"

	"github.com/clubops/checkin-api/internal/shared/handler"
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

// Record handles a check-in submission from the kiosk page.
func (h *Handler) Record(c *gin.Context) {
	var request CheckInRequest

	if !handler.BindJSON(c, &request) {
		return
	}

	result, err := h.service.RecordCheckIn(c.Request.Context(), request.SessionID, request.PublicID)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	switch result.Status {
	case StatusNonMember:
		c.JSON(http.StatusOK, CheckInResponse{
			Status:  StatusNonMember,
			Message: fmt.Sprintf("Public ID %s is not a registered member.", result.PublicID),
		})

	case StatusAlreadyCheckedIn:
		c.JSON(http.StatusOK, CheckInResponse{
			Status:     StatusAlreadyCheckedIn,
			Message:    fmt.Sprintf("%s has already checked in.", result.Member.DisplayName),
			MemberName: result.Member.DisplayName,
		})

	default:
		c.JSON(http.StatusOK, CheckInResponse{
			Status:       StatusSuccess,
			Message:      "Checked in successfully!",
			MemberName:   result.Member.DisplayName,
			PublicID:     result.Member.PublicID,
			SessionTitle: result.Session.Title,
			Time:         result.RecordedAt.Local().Format(TimeLayout),
		})
	}
}

// List returns the session's check-ins, most recent first.
func (h *Handler) List(c *gin.Context) {
	sessionID := c.Param("id")

	views, err := h.service.ListCheckIns(c.Request.Context(), sessionID)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListCheckInsResponse{CheckIns: views})
}
