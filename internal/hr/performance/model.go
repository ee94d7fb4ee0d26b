// Package performance serves the review cycle view.
package performance

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/meridian-ops/meridian-ops/internal/browse"
)

// Review is one employee review in a cycle.
type Review struct {
	ID       string    `json:"id"`
	Employee string    `json:"employee"`
	Reviewer string    `json:"reviewer"`
	Cycle    time.Time `json:"cycle"`
	Rating   float64   `json:"rating"`
	Summary  string    `json:"summary"`
	Status   string    `json:"status"`
}

func (r Review) RecordID() string { return r.ID }

var Statuses = []string{"pending", "submitted", "calibrated"}

func Schema() *browse.Schema[Review] {
	return browse.NewSchema[Review]().
		Add("id", browse.StringField(func(r Review) string { return r.ID }, nil)).
		Add("employee", browse.StringField(
			func(r Review) string { return r.Employee },
			func(r *Review, v string) { r.Employee = v },
		)).
		Add("reviewer", browse.StringField(
			func(r Review) string { return r.Reviewer },
			func(r *Review, v string) { r.Reviewer = v },
		)).
		Add("cycle", browse.DateField(
			func(r Review) time.Time { return r.Cycle },
			func(r *Review, v time.Time) { r.Cycle = v },
		)).
		Add("rating", browse.NumberField(
			func(r Review) float64 { return r.Rating },
			func(r *Review, v float64) { r.Rating = v },
		)).
		Add("summary", browse.StringField(
			func(r Review) string { return r.Summary },
			func(r *Review, v string) { r.Summary = v },
		)).
		Add("status", browse.EnumField(
			func(r Review) string { return r.Status },
			func(r *Review, v string) { r.Status = v },
			Statuses...,
		))
}

// Locks: calibration state belongs to admins; managers write ratings
// and summaries.
func Locks() *browse.LockPolicy {
	return browse.NewLockPolicy().
		LockAll(browse.RoleViewer).
		Lock(browse.RoleManager, "employee", "cycle", "status")
}

// Seed generates one review per employee for two half-year cycles.
func Seed() []Review {
	rng := rand.New(rand.NewSource(7005))
	out := make([]Review, 0, 80)
	n := 0
	for c := 0; c < 2; c++ {
		cycle := time.Date(2024, time.Month(1+c*6), 1, 0, 0, 0, 0, time.UTC)
		for e := 0; e < 40; e++ {
			n++
			out = append(out, Review{
				ID:       fmt.Sprintf("rev-%04d", n),
				Employee: fmt.Sprintf("emp-%04d", e+1),
				Reviewer: fmt.Sprintf("emp-%04d", 1+rng.Intn(10)),
				Cycle:    cycle,
				Rating:   float64(1+rng.Intn(4)) + float64(rng.Intn(2))*0.5,
				Summary:  "",
				Status:   Statuses[rng.Intn(len(Statuses))],
			})
		}
	}
	return out
}
