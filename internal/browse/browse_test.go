package browse

import (
	"fmt"
	"time"
)

// employee is the record type used across the engine tests. It
// mirrors the members view: a handful of scalar fields plus a join
// date and a salary.
type employee struct {
	ID         string
	Name       string
	Department string
	Status     string
	JoinedAt   time.Time
	Salary     float64
}

func (e employee) RecordID() string { return e.ID }

func employeeSchema() *Schema[employee] {
	return NewSchema[employee]().
		Add("id", StringField(func(e employee) string { return e.ID }, nil)).
		Add("name", StringField(
			func(e employee) string { return e.Name },
			func(e *employee, v string) { e.Name = v },
		)).
		Add("department", EnumField(
			func(e employee) string { return e.Department },
			func(e *employee, v string) { e.Department = v },
		)).
		Add("status", EnumField(
			func(e employee) string { return e.Status },
			func(e *employee, v string) { e.Status = v },
			"active", "leave", "resigned",
		)).
		Add("joinedAt", DateField(
			func(e employee) time.Time { return e.JoinedAt },
			func(e *employee, v time.Time) { e.JoinedAt = v },
		)).
		Add("salary", NumberField(
			func(e employee) float64 { return e.Salary },
			func(e *employee, v float64) { e.Salary = v },
		))
}

func employeeLocks() *LockPolicy {
	return NewLockPolicy().
		LockAll(RoleViewer).
		Lock(RoleManager, "status", "joinedAt")
}

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// staff generates n deterministic employees, joined one day apart.
// Every fourth employee is in Sales, so staff(47) holds exactly 12
// Sales records.
func staff(n int) []employee {
	out := make([]employee, 0, n)
	for i := 0; i < n; i++ {
		department := "Engineering"
		switch {
		case i%4 == 0:
			department = "Sales"
		case i%4 == 2:
			department = "Finance"
		}
		status := "active"
		if i%5 == 4 {
			status = "leave"
		}
		out = append(out, employee{
			ID:         fmt.Sprintf("e%d", i+1),
			Name:       fmt.Sprintf("Employee %02d", i+1),
			Department: department,
			Status:     status,
			JoinedAt:   day("2021-01-01").AddDate(0, 0, i),
			Salary:     3000 + float64(i)*25,
		})
	}
	return out
}
