package members

import "github.com/hongminglow/shift-assign/internal/models"

// Stats are the summary tiles shown above the member cards.
type Stats struct {
	TotalMembers    int     `json:"totalMembers"`
	ActiveMembers   int     `json:"activeMembers"`
	RedFlagMembers  int     `json:"redFlagMembers"`
	TotalLeaveHours float64 `json:"totalLeaveHours"`
}

// Summarize computes Stats over list. An empty list yields all zeros.
func Summarize(list []models.Member) Stats {
	stats := Stats{TotalMembers: len(list)}
	for _, m := range list {
		switch m.Status {
		case models.StatusActive:
			stats.ActiveMembers++
		case models.StatusRedFlag:
			stats.RedFlagMembers++
		}
		stats.TotalLeaveHours += m.LeaveHours
	}
	return stats
}
