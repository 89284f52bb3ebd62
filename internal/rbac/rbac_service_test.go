package rbac_test

import (
	"testing"

	"github.com/anas1606/attendance/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestEnforce(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	cases := []struct {
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"ADMIN", "holidays", "write", true},
		{"ADMIN", "staff", "read", true},
		{"STAFF", "holidays", "write", false},
		{"STAFF", "holidays", "read", true},
		{"STAFF", "staff", "read", true},
		{"STAFF", "attendance", "write", true},
		{"STAFF", "tickets", "write", true},
		{"", "attendance", "write", false},
		{"UNKNOWN", "tickets", "read", false},
	}

	for _, tc := range cases {
		allowed, err := svc.Enforce(tc.role, tc.resource, tc.action)
		assert.NoError(t, err)
		assert.Equal(t, tc.allowed, allowed, "%s %s %s", tc.role, tc.resource, tc.action)
	}
}
