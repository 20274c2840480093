package period

import (
	"errors"
	"testing"
	"time"
)

func TestResolveQuarters(t *testing.T) {
	cases := []struct {
		selector string
		want     []time.Month
	}{
		{"Q1", []time.Month{time.April, time.May, time.June}},
		{"Q2", []time.Month{time.July, time.August, time.September}},
		{"Q3", []time.Month{time.October, time.November, time.December}},
		{"Q4", []time.Month{time.January, time.February, time.March}},
	}
	for _, c := range cases {
		// The fiscal mapping is fixed; the reference year must not change it.
		for _, year := range []int{2020, 2024, 2031} {
			p, err := Resolve(c.selector, year)
			if err != nil {
				t.Fatalf("Resolve(%q, %d) error: %v", c.selector, year, err)
			}
			if len(p.Months) != len(c.want) {
				t.Fatalf("Resolve(%q) months = %v, want %v", c.selector, p.Months, c.want)
			}
			for i, m := range c.want {
				if p.Months[i] != m {
					t.Errorf("Resolve(%q) months[%d] = %v, want %v", c.selector, i, p.Months[i], m)
				}
			}
		}
	}
}

func TestResolveMonthNames(t *testing.T) {
	p, err := Resolve("January", 2024)
	if err != nil {
		t.Fatalf("Resolve(January) error: %v", err)
	}
	if len(p.Months) != 1 || p.Months[0] != time.January {
		t.Errorf("Resolve(January) months = %v, want [January]", p.Months)
	}
	if p.Label != "January" || p.Year != 2024 {
		t.Errorf("Resolve(January) label/year = %q/%d", p.Label, p.Year)
	}

	// Matching is case-sensitive by contract.
	for _, bad := range []string{"january", "JANUARY", "Jan", "q1", "Q5", "next month", ""} {
		if _, err := Resolve(bad, 2024); !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("Resolve(%q) error = %v, want ErrInvalidPeriod", bad, err)
		}
	}
}

func TestResolveAllAndYear(t *testing.T) {
	p, err := Resolve("all", 2024)
	if err != nil {
		t.Fatalf("Resolve(all) error: %v", err)
	}
	if !p.AllTime || p.Scoped() || len(p.Months) != 0 {
		t.Errorf("Resolve(all) = %+v, want all-time unscoped period", p)
	}

	p, err = Resolve("2023", 2024)
	if err != nil {
		t.Fatalf("Resolve(2023) error: %v", err)
	}
	if !p.FullYear || p.Scoped() {
		t.Errorf("Resolve(2023) = %+v, want full-year unscoped period", p)
	}
	if p.Year != 2023 {
		t.Errorf("Resolve(2023) year = %d, want 2023", p.Year)
	}
}

func TestCountWeekdays(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 23},
		{2024, time.February, 21}, // leap year, 29 days
		{2023, time.February, 20},
		{2024, time.March, 21},
		{2024, time.December, 22},
	}
	for _, c := range cases {
		got := CountWeekdays(c.year, c.month)
		if got != c.want {
			t.Errorf("CountWeekdays(%d, %v) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestPeriodWeekdays(t *testing.T) {
	p, err := Resolve("Q4", 2024)
	if err != nil {
		t.Fatalf("Resolve(Q4) error: %v", err)
	}
	// Jan + Feb + Mar 2024.
	want := 23 + 21 + 21
	if got := p.Weekdays(); got != want {
		t.Errorf("Q4 2024 weekdays = %d, want %d", got, want)
	}
}

func TestContainsDate(t *testing.T) {
	p, _ := Resolve("Q4", 2024)

	// Q4 dates live in the reference year, not the following one.
	in := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	out := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)
	if !p.ContainsDate(in) {
		t.Errorf("Q4 2024 should contain %v", in)
	}
	if p.ContainsDate(out) {
		t.Errorf("Q4 2024 should not contain %v", out)
	}

	all, _ := Resolve("all", 2024)
	if !all.ContainsDate(out) {
		t.Error("all-time period should contain every date")
	}
}

func TestShortLabel(t *testing.T) {
	cases := []struct {
		month time.Month
		year  int
		want  string
	}{
		{time.January, 2024, "Jan '24"},
		{time.September, 2003, "Sep '03"},
		{time.December, 2000, "Dec '00"},
	}
	for _, c := range cases {
		if got := ShortLabel(c.month, c.year); got != c.want {
			t.Errorf("ShortLabel(%v, %d) = %q, want %q", c.month, c.year, got, c.want)
		}
	}
}
