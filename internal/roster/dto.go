package roster

type CreateMemberRequest struct {
	PublicID     string `json:"publicId" binding:"required,publicid"`
	DisplayName  string `json:"displayName" binding:"required,min=1,max=100"`
	ContactEmail string `json:"contactEmail" binding:"required,email,max=255"`
	MemberNumber *int   `json:"memberNumber" binding:"omitempty,min=1"`
}

type UpdateMemberRequest struct {
	PublicID     string `json:"publicId" binding:"required,publicid"`
	DisplayName  string `json:"displayName" binding:"required,min=1,max=100"`
	ContactEmail string `json:"contactEmail" binding:"required,email,max=255"`
	MemberNumber *int   `json:"memberNumber" binding:"omitempty,min=1"`
}

type MemberResponse struct {
	ID           string `json:"id"`
	PublicID     string `json:"publicId"`
	DisplayName  string `json:"displayName"`
	ContactEmail string `json:"contactEmail"`
	MemberNumber *int   `json:"memberNumber,omitempty"`
}

type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

type CreateSessionRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=200"`
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	Location string `json:"location" binding:"max=200"`
}

type UpdateSessionRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=200"`
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	Location string `json:"location" binding:"max=200"`
}

type SessionResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

type ListSessionsResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}
