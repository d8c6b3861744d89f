package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/hongminglow/shift-assign/internal/members"
	"github.com/hongminglow/shift-assign/internal/models"
)

const progressWidth = 20

func renderDashboard(w io.Writer, stats members.Stats, list []models.Member) {
	renderStats(w, stats)
	fmt.Fprintln(w)
	if len(list) == 0 {
		fmt.Fprintln(w, "No team members found")
		fmt.Fprintln(w, "All team members have been removed from the dashboard.")
		return
	}
	for _, m := range list {
		renderCard(w, m)
	}
}

func renderStats(w io.Writer, stats members.Stats) {
	fmt.Fprintf(w, "Total Members:     %d\n", stats.TotalMembers)
	fmt.Fprintf(w, "Active Members:    %d\n", stats.ActiveMembers)
	fmt.Fprintf(w, "Red Flag Members:  %d\n", stats.RedFlagMembers)
	fmt.Fprintf(w, "Total Leave Hours: %s\n", hours(stats.TotalLeaveHours))
}

func renderCard(w io.Writer, m models.Member) {
	filled := min(max(int(m.ProgressPercent()/100*progressWidth), 0), progressWidth)
	bar := strings.Repeat("#", filled) + strings.Repeat(".", progressWidth-filled)

	fmt.Fprintf(w, "#%d %s [%s]\n", m.ID, m.Name, m.Status)
	fmt.Fprintf(w, "   phone:    %s\n", m.Phone)
	fmt.Fprintf(w, "   assigned: %s [%s] %s\n", hours(m.AssignedHours), bar, m.Workload())
	fmt.Fprintf(w, "   leave:    %s\n", hours(m.LeaveHours))
}

func printNotification(stdout, stderr io.Writer, n members.Notification) {
	w := stdout
	if n.Level == members.LevelError {
		w = stderr
	}
	fmt.Fprintf(w, "[%s] %s\n", n.Title, n.Message)
}

func hours(h float64) string {
	return fmt.Sprintf("%gh", h)
}
