package attendance

// AttendanceRow is one roster member's line in the report. Every current
// member appears exactly once whether or not they attended.
type AttendanceRow struct {
	MemberNumber string `json:"memberNumber"` // empty when the member has no club number
	DisplayName  string `json:"displayName"`
	PublicID     string `json:"publicId"`
	ContactEmail string `json:"contactEmail"`
	Present      bool   `json:"present"`
	CheckedInAt  string `json:"checkedInAt"` // formatted timestamp, empty when absent
}

type ReportResponse struct {
	SessionTitle string          `json:"sessionTitle"`
	SessionDate  string          `json:"sessionDate"`
	Rows         []AttendanceRow `json:"rows"`
}
