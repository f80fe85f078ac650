package roster

import (
	"net/http"

	sharedError "github.com/clubops/checkin-api/internal/shared/error"
)

const (
	sessionNotFound    = "SESSION_NOT_FOUND"       // errInfo
	memberNotFound     = "MEMBER_NOT_FOUND"        // errInfo
	duplicatePublicID  = "DUPLICATE_PUBLIC_ID"     // errInfo
	duplicateMemberNum = "DUPLICATE_MEMBER_NUMBER" // errInfo
)

var (
	ErrSessionNotFound       = sharedError.NewDomainError(sessionNotFound)
	ErrMemberNotFound        = sharedError.NewDomainError(memberNotFound)
	ErrDuplicatePublicID     = sharedError.NewDomainError(duplicatePublicID)
	ErrDuplicateMemberNumber = sharedError.NewDomainError(duplicateMemberNum)
)

func init() {
	sharedError.RegisterDomainErrorResponse(sessionNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "SESSION-001",
		Message: "Session not found.",
	})

	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-001",
		Message: "Member not found.",
	})

	sharedError.RegisterDomainErrorResponse(duplicatePublicID, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-002",
		Message: "Public ID is already registered.",
	})

	sharedError.RegisterDomainErrorResponse(duplicateMemberNum, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-003",
		Message: "Member number is already in use.",
	})
}
