package dto

import "github.com/hongminglow/shift-assign/internal/models"

type CreateMemberRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// MemberResponse is the gateway's create payload. The optional fields are
// pointers so an omitted field can be told apart from an explicit zero.
type MemberResponse struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Phone         string         `json:"phone"`
	AssignedHours *float64       `json:"assignedHours,omitempty"`
	LeaveHours    *float64       `json:"leaveHours,omitempty"`
	Status        *models.Status `json:"status,omitempty"`
}

// Member merges the response with the client-side defaults for any field the
// gateway left out.
func (r MemberResponse) Member() models.Member {
	m := models.Member{
		ID:            r.ID,
		Name:          r.Name,
		Phone:         r.Phone,
		AssignedHours: models.DefaultAssignedHours,
		LeaveHours:    models.DefaultLeaveHours,
		Status:        models.StatusActive,
	}
	if r.AssignedHours != nil {
		m.AssignedHours = *r.AssignedHours
	}
	if r.LeaveHours != nil {
		m.LeaveHours = *r.LeaveHours
	}
	if r.Status != nil && *r.Status != "" {
		m.Status = *r.Status
	}
	return m
}
