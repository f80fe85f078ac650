package model

import "time"

// CheckIn asserts that a member attended a session at a specific time.
//
// The central invariant: at most one CheckIn per (SessionID, MemberID) pair.
// The relational backend enforces it with the composite unique index below;
// the document backend enforces it by using the deterministic composite ID as
// the document key and relying on duplicate-key rejection at insert time.
//
// Member fields are snapshotted at check-in time on purpose: reports and the
// live listing read them without joining the roster, and the record stays
// meaningful if the member row is later edited.
type CheckIn struct {
	// Deterministic key "<sessionID>:<memberID>", see store.CheckInKey.
	ID string `gorm:"column:id;type:VARCHAR2(80);primaryKey" bson:"_id"`

	SessionID string `gorm:"column:session_id;type:VARCHAR2(36);not null;uniqueIndex:ux_session_member,priority:1" bson:"session_id"`
	MemberID  string `gorm:"column:member_id;type:VARCHAR2(36);not null;uniqueIndex:ux_session_member,priority:2" bson:"member_id"`

	// Snapshot of the member at the moment of check-in
	PublicID     string `gorm:"column:public_id;type:VARCHAR2(64);not null" bson:"public_id"`
	DisplayName  string `gorm:"column:display_name;type:VARCHAR2(100);not null" bson:"display_name"`
	MemberNumber *int   `gorm:"column:member_number" bson:"member_number,omitempty"`
	ContactEmail string `gorm:"column:contact_email;type:VARCHAR2(255)" bson:"contact_email"`

	// Set server-side at creation, never updated
	RecordedAt time.Time `gorm:"column:recorded_at;not null;index" bson:"recorded_at"`
}

// TableName specifies the table name for CheckIn
func (*CheckIn) TableName() string {
	return "check_in"
}
