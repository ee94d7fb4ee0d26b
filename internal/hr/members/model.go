// Package members serves the employee roster view.
package members

import (
	"time"

	"github.com/meridian-ops/meridian-ops/internal/browse"
)

// Member is one employee record.
type Member struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	JoinedAt   time.Time `json:"joinedAt"`
	Salary     float64   `json:"salary"`
}

// RecordID implements browse.Record.
func (m Member) RecordID() string { return m.ID }

// Departments are the roster's department values; filters on
// department are exact-match.
var Departments = []string{"Sales", "Engineering", "Finance", "People", "Support"}

// Statuses an employee can hold.
var Statuses = []string{"active", "leave", "resigned"}

// Schema declares the browsable fields of a Member.
func Schema() *browse.Schema[Member] {
	return browse.NewSchema[Member]().
		Add("id", browse.StringField(func(m Member) string { return m.ID }, nil)).
		Add("name", browse.StringField(
			func(m Member) string { return m.Name },
			func(m *Member, v string) { m.Name = v },
		)).
		Add("email", browse.StringField(
			func(m Member) string { return m.Email },
			func(m *Member, v string) { m.Email = v },
		)).
		Add("department", browse.EnumField(
			func(m Member) string { return m.Department },
			func(m *Member, v string) { m.Department = v },
			Departments...,
		)).
		Add("title", browse.StringField(
			func(m Member) string { return m.Title },
			func(m *Member, v string) { m.Title = v },
		)).
		Add("status", browse.EnumField(
			func(m Member) string { return m.Status },
			func(m *Member, v string) { m.Status = v },
			Statuses...,
		)).
		Add("joinedAt", browse.DateField(
			func(m Member) time.Time { return m.JoinedAt },
			func(m *Member, v time.Time) { m.JoinedAt = v },
		)).
		Add("salary", browse.NumberField(
			func(m Member) float64 { return m.Salary },
			func(m *Member, v float64) { m.Salary = v },
		))
}

// Locks is the roster's field lock table: viewers read only, managers
// may not touch status or the join date, admins edit everything.
func Locks() *browse.LockPolicy {
	return browse.NewLockPolicy().
		LockAll(browse.RoleViewer).
		Lock(browse.RoleManager, "status", "joinedAt", "salary")
}
