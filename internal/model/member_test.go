package model_test

import (
	"testing"

	"github.com/clubops/checkin-api/internal/model"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestSortRoster_NumberedAscending(t *testing.T) {
	members := []model.Member{
		{PublicID: "A1", MemberNumber: intPtr(3)},
		{PublicID: "B2", MemberNumber: intPtr(1)},
		{PublicID: "D4", MemberNumber: intPtr(2)},
	}

	model.SortRoster(members)

	assert.Equal(t, "B2", members[0].PublicID)
	assert.Equal(t, "D4", members[1].PublicID)
	assert.Equal(t, "A1", members[2].PublicID)
}

func TestSortRoster_NumberlessSortLast(t *testing.T) {
	members := []model.Member{
		{PublicID: "C3"}, // no member number
		{PublicID: "A1", MemberNumber: intPtr(3)},
		{PublicID: "E5"}, // no member number
		{PublicID: "B2", MemberNumber: intPtr(1)},
	}

	model.SortRoster(members)

	assert.Equal(t, "B2", members[0].PublicID)
	assert.Equal(t, "A1", members[1].PublicID)
	// Numberless members keep their relative order at the end
	assert.Equal(t, "C3", members[2].PublicID)
	assert.Equal(t, "E5", members[3].PublicID)
}
