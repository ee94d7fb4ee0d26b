package members

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

var (
	firstNames = []string{
		"Avery", "Blake", "Casey", "Devon", "Ellis", "Finley", "Gray",
		"Harper", "Indigo", "Jordan", "Kai", "Logan", "Morgan", "Noel",
		"Oakley", "Parker", "Quinn", "Reese", "Sage", "Tatum",
	}
	lastNames = []string{
		"Anderson", "Brooks", "Carter", "Diaz", "Ellison", "Foster",
		"Grant", "Hayes", "Iverson", "Jennings", "Keller", "Lawson",
		"Mercer", "Nolan", "Osborne", "Porter", "Quigley", "Ramsey",
		"Sutton", "Thornton",
	}
	titlesByDepartment = map[string][]string{
		"Sales":       {"Account Executive", "Sales Manager", "SDR"},
		"Engineering": {"Software Engineer", "Senior Engineer", "Engineering Manager"},
		"Finance":     {"Accountant", "Financial Analyst", "Controller"},
		"People":      {"HR Generalist", "Recruiter", "People Ops Manager"},
		"Support":     {"Support Specialist", "Support Lead"},
	}
)

// Seed generates the deterministic roster the console loads at
// session start. The same seed always yields the same 120 members,
// so two sessions start from identical collections.
func Seed() []Member {
	rng := rand.New(rand.NewSource(7001))
	out := make([]Member, 0, 120)
	for i := 0; i < 120; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		department := Departments[rng.Intn(len(Departments))]
		titles := titlesByDepartment[department]
		status := "active"
		switch roll := rng.Intn(10); {
		case roll == 8:
			status = "leave"
		case roll == 9:
			status = "resigned"
		}
		joined := time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, 0, rng.Intn(7*365))
		out = append(out, Member{
			ID:         fmt.Sprintf("emp-%04d", i+1),
			Name:       first + " " + last,
			Email:      strings.ToLower(first + "." + last + "@meridian.example"),
			Department: department,
			Title:      titles[rng.Intn(len(titles))],
			Status:     status,
			JoinedAt:   joined,
			Salary:     float64(3200 + rng.Intn(90)*50),
		})
	}
	return out
}
