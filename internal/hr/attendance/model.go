// Package attendance serves the daily attendance sheet view.
package attendance

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/meridian-ops/meridian-ops/internal/browse"
)

// Entry is one employee-day attendance row.
type Entry struct {
	ID       string    `json:"id"`
	Employee string    `json:"employee"`
	Day      time.Time `json:"day"`
	ClockIn  string    `json:"clockIn"`
	ClockOut string    `json:"clockOut"`
	Hours    float64   `json:"hours"`
	Status   string    `json:"status"`
}

func (e Entry) RecordID() string { return e.ID }

var Statuses = []string{"present", "late", "absent", "remote"}

func Schema() *browse.Schema[Entry] {
	return browse.NewSchema[Entry]().
		Add("id", browse.StringField(func(e Entry) string { return e.ID }, nil)).
		Add("employee", browse.StringField(
			func(e Entry) string { return e.Employee },
			func(e *Entry, v string) { e.Employee = v },
		)).
		Add("day", browse.DateField(
			func(e Entry) time.Time { return e.Day },
			func(e *Entry, v time.Time) { e.Day = v },
		)).
		Add("clockIn", browse.StringField(
			func(e Entry) string { return e.ClockIn },
			func(e *Entry, v string) { e.ClockIn = v },
		)).
		Add("clockOut", browse.StringField(
			func(e Entry) string { return e.ClockOut },
			func(e *Entry, v string) { e.ClockOut = v },
		)).
		Add("hours", browse.NumberField(
			func(e Entry) float64 { return e.Hours },
			func(e *Entry, v float64) { e.Hours = v },
		)).
		Add("status", browse.EnumField(
			func(e Entry) string { return e.Status },
			func(e *Entry, v string) { e.Status = v },
			Statuses...,
		))
}

// Locks: the sheet day and employee are fixed once generated;
// managers correct clock times and status.
func Locks() *browse.LockPolicy {
	return browse.NewLockPolicy().
		LockAll(browse.RoleViewer).
		Lock(browse.RoleManager, "employee", "day")
}

// Seed generates two weeks of attendance for twenty employees.
func Seed() []Entry {
	rng := rand.New(rand.NewSource(7003))
	start := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)
	out := make([]Entry, 0, 200)
	n := 0
	for d := 0; d < 10; d++ {
		day := start.AddDate(0, 0, d+(d/5)*2) // skip weekends
		for e := 0; e < 20; e++ {
			n++
			status := Statuses[rng.Intn(len(Statuses))]
			entry := Entry{
				ID:       fmt.Sprintf("att-%04d", n),
				Employee: fmt.Sprintf("emp-%04d", e+1),
				Day:      day,
				Status:   status,
			}
			if status != "absent" {
				in := 8 + rng.Intn(2)
				entry.ClockIn = fmt.Sprintf("%02d:%02d", in, rng.Intn(60))
				entry.ClockOut = fmt.Sprintf("%02d:%02d", in+8, rng.Intn(60))
				entry.Hours = 8 + float64(rng.Intn(3))*0.5
			}
			out = append(out, entry)
		}
	}
	return out
}
