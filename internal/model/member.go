package model

import "sort"

// Member represents a registered club member eligible to check in.
// PublicID is the institution-issued identifier entered at the kiosk and is
// unique across the roster. MemberNumber is the optional club number, also
// unique when present; legacy rows may lack it.
type Member struct {
	// Primary key - assigned by the store (UUID string on both backends)
	ID string `gorm:"column:id;type:VARCHAR2(36);primaryKey" bson:"_id"`

	MemberNumber *int   `gorm:"column:member_number;uniqueIndex:idx_member_number" bson:"member_number,omitempty"`
	PublicID     string `gorm:"column:public_id;type:VARCHAR2(64);not null;uniqueIndex:idx_member_public_id" bson:"public_id"`
	DisplayName  string `gorm:"column:display_name;type:VARCHAR2(100);not null" bson:"display_name"`
	ContactEmail string `gorm:"column:contact_email;type:VARCHAR2(255);not null" bson:"contact_email"`

	BaseEntity `bson:",inline"`
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// NewMember creates a new Member instance
func NewMember(publicID, displayName, contactEmail string, memberNumber *int) *Member {
	return &Member{
		PublicID:     publicID,
		DisplayName:  displayName,
		ContactEmail: contactEmail,
		MemberNumber: memberNumber,
	}
}

// RosterLess orders members by the tagged key (hasNumber, number): numbered
// members ascending by number, numberless members after all numbered ones.
// Equal keys report false so a stable sort preserves relative roster order.
// This is the report's ordering contract; storage-engine null ordering differs
// across engines and is never relied on.
func RosterLess(a, b *Member) bool {
	if (a.MemberNumber == nil) != (b.MemberNumber == nil) {
		return b.MemberNumber == nil
	}
	if a.MemberNumber != nil && *a.MemberNumber != *b.MemberNumber {
		return *a.MemberNumber < *b.MemberNumber
	}
	return false
}

// SortRoster sorts members in place into roster order (see RosterLess).
func SortRoster(members []Member) {
	sort.SliceStable(members, func(i, j int) bool {
		return RosterLess(&members[i], &members[j])
	})
}
