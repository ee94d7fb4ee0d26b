// Package candidates serves the recruitment pipeline view.
package candidates

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/meridian-ops/meridian-ops/internal/browse"
)

// Candidate is one applicant in the pipeline.
type Candidate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Position  string    `json:"position"`
	Stage     string    `json:"stage"`
	Score     float64   `json:"score"`
	AppliedAt time.Time `json:"appliedAt"`
}

func (c Candidate) RecordID() string { return c.ID }

var Stages = []string{"applied", "screening", "interview", "offer", "hired", "rejected"}

var positions = []string{
	"Software Engineer", "Account Executive", "Financial Analyst",
	"Recruiter", "Support Specialist", "Product Designer",
}

func Schema() *browse.Schema[Candidate] {
	return browse.NewSchema[Candidate]().
		Add("id", browse.StringField(func(c Candidate) string { return c.ID }, nil)).
		Add("name", browse.StringField(
			func(c Candidate) string { return c.Name },
			func(c *Candidate, v string) { c.Name = v },
		)).
		Add("email", browse.StringField(
			func(c Candidate) string { return c.Email },
			func(c *Candidate, v string) { c.Email = v },
		)).
		Add("position", browse.StringField(
			func(c Candidate) string { return c.Position },
			func(c *Candidate, v string) { c.Position = v },
		)).
		Add("stage", browse.EnumField(
			func(c Candidate) string { return c.Stage },
			func(c *Candidate, v string) { c.Stage = v },
			Stages...,
		)).
		Add("score", browse.NumberField(
			func(c Candidate) float64 { return c.Score },
			func(c *Candidate, v float64) { c.Score = v },
		)).
		Add("appliedAt", browse.DateField(
			func(c Candidate) time.Time { return c.AppliedAt },
			func(c *Candidate, v time.Time) { c.AppliedAt = v },
		))
}

// Locks: managers own the pipeline but may not rewrite application
// dates; viewers read only.
func Locks() *browse.LockPolicy {
	return browse.NewLockPolicy().
		LockAll(browse.RoleViewer).
		Lock(browse.RoleManager, "appliedAt")
}

var candidateNames = []string{
	"Rowan Ashford", "Briar Caldwell", "Sawyer Dunmore", "Emery Falk",
	"Linden Graves", "Marlow Hutton", "Arden Ives", "Wren Kirby",
	"Sorrel Lang", "Teagan Marsh", "Ainsley North", "Perry Oakes",
}

// Seed generates the deterministic applicant list.
func Seed() []Candidate {
	rng := rand.New(rand.NewSource(7002))
	out := make([]Candidate, 0, 60)
	for i := 0; i < 60; i++ {
		name := candidateNames[rng.Intn(len(candidateNames))]
		out = append(out, Candidate{
			ID:        fmt.Sprintf("cand-%04d", i+1),
			Name:      name,
			Email:     strings.ToLower(strings.ReplaceAll(name, " ", ".")) + fmt.Sprintf("%d@mail.example", i),
			Position:  positions[rng.Intn(len(positions))],
			Stage:     Stages[rng.Intn(len(Stages))],
			Score:     float64(40 + rng.Intn(61)),
			AppliedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, rng.Intn(240)),
		})
	}
	return out
}
