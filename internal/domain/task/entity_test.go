package task

import (
	"testing"
	"time"
)

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want Status
	}{
		{"todo", StatusNotStarted},
		{"Backlog", StatusNotStarted},
		{"OPEN", StatusNotStarted},
		{"not-started", StatusNotStarted},
		{"in progress", StatusInProgress},
		{"WIP", StatusInProgress},
		{"doing", StatusInProgress},
		{"done", StatusDone},
		{"Closed", StatusDone},
		{"resolved", StatusDone},
		{"  complete  ", StatusDone},
		{"garbage", StatusNotStarted},
		{"", StatusNotStarted},
	}
	for _, c := range cases {
		if got := NormalizeStatus(c.raw); got != c.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tk := Task{TotalHours: -3, ApprovedHours: 2}
	tk.Normalize("finished")

	if tk.Status != StatusDone || !tk.Completed {
		t.Errorf("Normalize: status = %q completed = %v, want done/true", tk.Status, tk.Completed)
	}
	if tk.TotalHours != 0 {
		t.Errorf("Normalize: negative hours should clamp to 0, got %v", tk.TotalHours)
	}
	if tk.ApprovedHours != 2 {
		t.Errorf("Normalize: approved hours changed, got %v", tk.ApprovedHours)
	}
}

func TestMonthLabel(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		task Task
		want string
	}{
		{Task{Month: "January"}, "January"},
		{Task{Month: "January", Date: &d}, "January"}, // literal label wins
		{Task{Date: &d}, "March"},
		{Task{}, ""},
	}
	for _, c := range cases {
		if got := c.task.MonthLabel(); got != c.want {
			t.Errorf("MonthLabel(%+v) = %q, want %q", c.task, got, c.want)
		}
	}
}
