package dto

import (
	"github.com/trackademic/trackademic-api/internal/academics"
)

// DashboardResponse is the home-dashboard aggregate: today's schedule,
// near-term deadlines, and the summary cards. GPA and progress use the
// dashboard engine variants, which intentionally differ from the
// planner's numbers.
type DashboardResponse struct {
	TodayClasses   []ClassResponse                   `json:"today_classes"`
	UpcomingWork   []AssignmentResponse              `json:"upcoming_work"`
	OverdueWork    []AssignmentResponse              `json:"overdue_work"`
	PendingTodos   []TodoResponse                    `json:"pending_todos"`
	GPA            academics.DashboardGPAResult      `json:"gpa"`
	DegreeProgress academics.DashboardProgressResult `json:"degree_progress"`
	ActiveClasses  int                               `json:"active_classes"`
}
