package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    ApplicationStatus
		to      ApplicationStatus
		allowed bool
	}{
		{ApplicationStatusPending, ApplicationStatusReviewed, true},
		{ApplicationStatusPending, ApplicationStatusAccepted, true},
		{ApplicationStatusPending, ApplicationStatusRejected, true},
		{ApplicationStatusPending, ApplicationStatusPending, false},
		{ApplicationStatusReviewed, ApplicationStatusAccepted, true},
		{ApplicationStatusReviewed, ApplicationStatusRejected, true},
		{ApplicationStatusReviewed, ApplicationStatusPending, false},
		{ApplicationStatusReviewed, ApplicationStatusReviewed, false},
		{ApplicationStatusAccepted, ApplicationStatusRejected, false},
		{ApplicationStatusAccepted, ApplicationStatusReviewed, false},
		{ApplicationStatusRejected, ApplicationStatusAccepted, false},
		{ApplicationStatusPending, ApplicationStatus("archived"), false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestApplicationStatus_Terminal(t *testing.T) {
	assert.False(t, ApplicationStatusPending.Terminal())
	assert.False(t, ApplicationStatusReviewed.Terminal())
	assert.True(t, ApplicationStatusAccepted.Terminal())
	assert.True(t, ApplicationStatusRejected.Terminal())
}

func TestJobCategory_Valid(t *testing.T) {
	assert.True(t, JobCategory("Domestic").Valid())
	assert.True(t, JobCategory("Trade").Valid())
	assert.False(t, JobCategory("All").Valid(), "All is a filter, not a storable category")
	assert.False(t, JobCategory("Astronautics").Valid())
}

func TestUserType_Valid(t *testing.T) {
	assert.True(t, UserTypeJobseeker.Valid())
	assert.True(t, UserTypeEmployer.Valid())
	assert.False(t, UserType("admin").Valid())
}
