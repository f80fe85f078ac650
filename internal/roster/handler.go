package roster

import (
	"net/http"

	"github.com/clubops/checkin-api/internal/model"
	sharedContext "github.com/clubops/checkin-api/internal/shared/context"
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

func (h *Handler) ListMembers(c *gin.Context) {
	members, err := h.service.ListMembers(c.Request.Context())
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	resp := ListMembersResponse{Members: make([]MemberResponse, 0, len(members))}
	for i := range members {
		resp.Members = append(resp.Members, toMemberResponse(&members[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateMember(c *gin.Context) {
	if _, ok := sharedContext.RequireAdmin(c); !ok {
		return
	}

	var req CreateMemberRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	member, err := h.service.CreateMember(c.Request.Context(), &req)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toMemberResponse(member))
}

func (h *Handler) UpdateMember(c *gin.Context) {
	if _, ok := sharedContext.RequireAdmin(c); !ok {
		return
	}

	var req UpdateMemberRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	member, err := h.service.UpdateMember(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMemberResponse(member))
}

func (h *Handler) DeleteMember(c *gin.Context) {
	if _, ok := sharedContext.RequireAdmin(c); !ok {
		return
	}

	if err := h.service.DeleteMember(c.Request.Context(), c.Param("id")); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListSessions(c *gin.Context) {
	sessions, err := h.service.ListSessions(c.Request.Context())
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	resp := ListSessionsResponse{Sessions: make([]SessionResponse, 0, len(sessions))}
	for i := range sessions {
		resp.Sessions = append(resp.Sessions, toSessionResponse(&sessions[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateSession(c *gin.Context) {
	if _, ok := sharedContext.RequireAdmin(c); !ok {
		return
	}

	var req CreateSessionRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	session, err := h.service.CreateSession(c.Request.Context(), &req)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSessionResponse(session))
}

func (h *Handler) UpdateSession(c *gin.Context) {
	if _, ok := sharedContext.RequireAdmin(c); !ok {
		return
	}

	var req UpdateSessionRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	session, err := h.service.UpdateSession(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}

func (h *Handler) DeleteSession(c *gin.Context) {
	if _, ok := sharedContext.RequireAdmin(c); !ok {
		return
	}

	if err := h.service.DeleteSession(c.Request.Context(), c.Param("id")); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func toMemberResponse(m *model.Member) MemberResponse {
	return MemberResponse{
		ID:           m.ID,
		PublicID:     m.PublicID,
		DisplayName:  m.DisplayName,
		ContactEmail: m.ContactEmail,
		MemberNumber: m.MemberNumber,
	}
}

func toSessionResponse(s *model.Session) SessionResponse {
	return SessionResponse{
		ID:       s.ID,
		Title:    s.Title,
		Date:     s.OccursOn.Format(SessionDateLayout),
		Location: s.Location,
	}
}
