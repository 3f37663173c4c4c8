package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskmanager/internal/core/domain"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  domain.Role
		ok    bool
	}{
		{"Admin", domain.RoleAdmin, true},
		{"admin", domain.RoleAdmin, true},
		{"CLIENT", domain.RoleClient, true},
		{"employee", domain.RoleEmployee, true},
		{"projectmanager", domain.RoleProjectManager, true},
		{"ProjectManager", domain.RoleProjectManager, true},
		{"Manager", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		role, ok := domain.ParseRole(tt.input)

		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, role, "input %q", tt.input)
	}
}

func TestDisplayName_PerRole(t *testing.T) {
	tests := []struct {
		name    string
		profile domain.RoleProfile
		want    string
	}{
		{"admin", domain.AdminProfile{AdminLevel: "Super"}, "Admin: sam"},
		{"client", domain.ClientProfile{Company: "Acme"}, "Acme - sam"},
		{"employee", domain.EmployeeProfile{EmployeeID: "EMP01"}, "EMP01: sam"},
		{"project manager", domain.ProjectManagerProfile{ManagerID: "PM01"}, "PM PM01: sam"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := domain.User{Username: "sam", Profile: tt.profile}

			assert.Equal(t, tt.want, user.DisplayName())
			assert.Equal(t, tt.profile.Role(), user.Role())
		})
	}
}
