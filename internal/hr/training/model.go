// Package training serves the course catalog view.
package training

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/meridian-ops/meridian-ops/internal/browse"
)

// Course is one scheduled training course.
type Course struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Trainer  string    `json:"trainer"`
	StartsAt time.Time `json:"startsAt"`
	Capacity float64   `json:"capacity"`
	Enrolled float64   `json:"enrolled"`
	Status   string    `json:"status"`
}

func (c Course) RecordID() string { return c.ID }

var Statuses = []string{"planned", "open", "full", "completed", "cancelled"}

var courseTitles = []string{
	"Security Awareness", "Effective Feedback", "Go for Services",
	"Interviewing Basics", "Incident Response", "Payroll Compliance",
	"Time Management", "Public Speaking",
}

func Schema() *browse.Schema[Course] {
	return browse.NewSchema[Course]().
		Add("id", browse.StringField(func(c Course) string { return c.ID }, nil)).
		Add("title", browse.StringField(
			func(c Course) string { return c.Title },
			func(c *Course, v string) { c.Title = v },
		)).
		Add("trainer", browse.StringField(
			func(c Course) string { return c.Trainer },
			func(c *Course, v string) { c.Trainer = v },
		)).
		Add("startsAt", browse.DateField(
			func(c Course) time.Time { return c.StartsAt },
			func(c *Course, v time.Time) { c.StartsAt = v },
		)).
		Add("capacity", browse.NumberField(
			func(c Course) float64 { return c.Capacity },
			func(c *Course, v float64) { c.Capacity = v },
		)).
		Add("enrolled", browse.NumberField(
			func(c Course) float64 { return c.Enrolled },
			func(c *Course, v float64) { c.Enrolled = v },
		)).
		Add("status", browse.EnumField(
			func(c Course) string { return c.Status },
			func(c *Course, v string) { c.Status = v },
			Statuses...,
		))
}

func Locks() *browse.LockPolicy {
	return browse.NewLockPolicy().
		LockAll(browse.RoleViewer).
		Lock(browse.RoleManager, "startsAt", "capacity")
}

// Seed generates the deterministic course catalog.
func Seed() []Course {
	rng := rand.New(rand.NewSource(7006))
	out := make([]Course, 0, 40)
	for i := 0; i < 40; i++ {
		capacity := float64(10 + rng.Intn(21))
		enrolled := float64(rng.Intn(int(capacity) + 1))
		status := Statuses[rng.Intn(3)]
		if enrolled >= capacity {
			status = "full"
		}
		out = append(out, Course{
			ID:       fmt.Sprintf("course-%04d", i+1),
			Title:    courseTitles[rng.Intn(len(courseTitles))],
			Trainer:  fmt.Sprintf("emp-%04d", 1+rng.Intn(20)),
			StartsAt: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, rng.Intn(180)),
			Capacity: capacity,
			Enrolled: enrolled,
			Status:   status,
		})
	}
	return out
}
