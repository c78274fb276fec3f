package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEnrollmentStatus(t *testing.T) {
	cases := []struct {
		in    string
		want  string
		valid bool
	}{
		{"pending", "pending", true},
		{"Approved", "approved", true},
		{"REJECTED", "rejected", true},
		{"  approved  ", "approved", true},
		{"archived", "", false},
		{"", "", false},
		{"approve", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizeEnrollmentStatus(tc.in)
		assert.Equal(t, tc.valid, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestNormalizeGrade(t *testing.T) {
	for _, grade := range ValidGrades {
		got, ok := NormalizeGrade(grade)
		assert.True(t, ok)
		assert.Equal(t, grade, got)
	}

	got, ok := NormalizeGrade("b")
	assert.True(t, ok)
	assert.Equal(t, "B", got)

	for _, bad := range []string{"E", "A+", "", "passed"} {
		_, ok := NormalizeGrade(bad)
		assert.False(t, ok, "input %q", bad)
	}
}

func TestAttendancePercent(t *testing.T) {
	assert.Equal(t, 0.0, AttendancePercent(0, 0))
	assert.Equal(t, 0.0, AttendancePercent(0, 4))
	assert.Equal(t, 50.0, AttendancePercent(2, 4))
	assert.Equal(t, 100.0, AttendancePercent(4, 4))
	assert.InDelta(t, 33.33, AttendancePercent(1, 3), 0.01)
}

func TestIsCertificateEligible(t *testing.T) {
	cases := []struct {
		name      string
		completed bool
		grade     string
		present   int64
		total     int64
		want      bool
	}{
		{"all conditions met", true, "A", 5, 5, true},
		{"lowest passing grade", true, "C", 3, 5, true},
		{"exactly half attendance", true, "B", 2, 4, true},
		{"not completed", false, "A", 5, 5, false},
		{"failing grade", true, "F", 5, 5, false},
		{"grade D does not pass", true, "D", 5, 5, false},
		{"no grade recorded", true, "", 5, 5, false},
		{"attendance below half", true, "A", 1, 4, false},
		{"no sessions recorded", true, "A", 0, 0, false},
		{"lowercase stored grade", true, "a", 5, 5, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := &Enrollment{Completed: tc.completed, Grade: tc.grade}
			assert.Equal(t, tc.want, IsCertificateEligible(e, tc.present, tc.total))
		})
	}
}

func TestPrimaryRoleDerivation(t *testing.T) {
	u := &User{Roles: []UserRole{{Role: RoleInstructor}, {Role: RoleStudent}}}
	assert.Equal(t, RoleInstructor, u.PrimaryRole())
	assert.True(t, u.HasRole(RoleStudent))
	assert.False(t, u.HasRole(RoleAdmin))
	assert.Equal(t, []string{RoleInstructor, RoleStudent}, u.RoleNames())

	empty := &User{}
	assert.Equal(t, RoleUser, empty.PrimaryRole())
}
