// Package payroll serves the monthly payroll run view.
package payroll

import (
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/meridian-ops/meridian-ops/internal/browse"
)

// Item is one employee's line in a payroll run.
type Item struct {
	ID         string    `json:"id"`
	Employee   string    `json:"employee"`
	Period     time.Time `json:"period"`
	Gross      float64   `json:"gross"`
	Deductions float64   `json:"deductions"`
	Net        float64   `json:"net"`
	Status     string    `json:"status"`
}

func (i Item) RecordID() string { return i.ID }

var Statuses = []string{"draft", "approved", "paid"}

var printer = message.NewPrinter(language.English)

// FormatAmount renders a monetary value with thousands separators for
// the console ("12,345.50").
func FormatAmount(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// moneyField is a numeric field whose exported and audited values
// carry the formatted amount; filtering and sorting stay numeric.
func moneyField(get func(Item) float64, set func(*Item, float64)) browse.Field[Item] {
	f := browse.NumberField(get, set)
	f.Format = func(i Item) string { return FormatAmount(get(i)) }
	return f
}

func Schema() *browse.Schema[Item] {
	return browse.NewSchema[Item]().
		Add("id", browse.StringField(func(i Item) string { return i.ID }, nil)).
		Add("employee", browse.StringField(
			func(i Item) string { return i.Employee },
			func(i *Item, v string) { i.Employee = v },
		)).
		Add("period", browse.DateField(
			func(i Item) time.Time { return i.Period },
			func(i *Item, v time.Time) { i.Period = v },
		)).
		Add("gross", moneyField(
			func(i Item) float64 { return i.Gross },
			func(i *Item, v float64) { i.Gross = v },
		)).
		Add("deductions", moneyField(
			func(i Item) float64 { return i.Deductions },
			func(i *Item, v float64) { i.Deductions = v },
		)).
		// Net is derived, so the schema exposes it read-only.
		Add("net", browse.Field[Item]{
			Kind:   browse.KindNumber,
			Get:    func(i Item) any { return i.Net },
			Format: func(i Item) string { return FormatAmount(i.Net) },
		}).
		Add("status", browse.EnumField(
			func(i Item) string { return i.Status },
			func(i *Item, v string) { i.Status = v },
			Statuses...,
		))
}

// Locks: only admins move payroll state or amounts; managers adjust
// deductions during review.
func Locks() *browse.LockPolicy {
	return browse.NewLockPolicy().
		LockAll(browse.RoleViewer).
		Lock(browse.RoleManager, "employee", "period", "gross", "status")
}

// Seed generates three monthly runs for forty employees.
func Seed() []Item {
	rng := rand.New(rand.NewSource(7004))
	out := make([]Item, 0, 120)
	n := 0
	for m := 0; m < 3; m++ {
		period := time.Date(2024, time.Month(6+m), 1, 0, 0, 0, 0, time.UTC)
		status := Statuses[min(m, len(Statuses)-1)]
		for e := 0; e < 40; e++ {
			n++
			gross := float64(3200 + rng.Intn(90)*50)
			deductions := float64(int(gross*0.18)) + float64(rng.Intn(120))
			out = append(out, Item{
				ID:         fmt.Sprintf("pay-%04d", n),
				Employee:   fmt.Sprintf("emp-%04d", e+1),
				Period:     period,
				Gross:      gross,
				Deductions: deductions,
				Net:        gross - deductions,
				Status:     status,
			})
		}
	}
	return out
}
