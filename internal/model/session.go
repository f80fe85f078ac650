package model

import "time"

// Session is a scheduled event instance that members check in to.
type Session struct {
	ID string `gorm:"column:id;type:VARCHAR2(36);primaryKey" bson:"_id"`

	Title    string    `gorm:"column:title;type:VARCHAR2(200);not null" bson:"title"`
	OccursOn time.Time `gorm:"column:occurs_on;not null" bson:"occurs_on"` // date only, midnight UTC
	Location string    `gorm:"column:location;type:VARCHAR2(200)" bson:"location"`

	BaseEntity `bson:",inline"`
}

// TableName specifies the table name for Session
func (*Session) TableName() string {
	return "club_session"
}

// NewSession creates a new Session instance
func NewSession(title string, occursOn time.Time, location string) *Session {
	return &Session{
		Title:    title,
		OccursOn: occursOn,
		Location: location,
	}
}
