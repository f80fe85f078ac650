package checkin

type CheckInRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	PublicID  string `json:"publicId" binding:"required,publicid"`
}

// CheckInResponse always travels on a success-class status for business
// outcomes; Status discriminates success / non_member / already_checked_in.
type CheckInResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	MemberName   string `json:"memberName,omitempty"`
	PublicID     string `json:"publicId,omitempty"`
	SessionTitle string `json:"sessionTitle,omitempty"`
	Time         string `json:"time,omitempty"`
}

type CheckInView struct {
	Index        int    `json:"index"`
	MemberNumber string `json:"memberNumber"` // empty when the member has no club number
	Name         string `json:"name"`
	PublicID     string `json:"publicId"`
	CheckInTime  string `json:"checkinTime"`
}

type ListCheckInsResponse struct {
	CheckIns []CheckInView `json:"checkins"`
}
