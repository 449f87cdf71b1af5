package dto

// DashboardStatsResponse aggregates the headline figures the dashboard landing page shows.
type DashboardStatsResponse struct {
	TotalStudents      int     `json:"total_students"`
	AverageAttendance  float64 `json:"average_attendance"`
	AssignmentsDueWeek int     `json:"assignments_due_week"`
	ClassesToday       int     `json:"classes_today"`
}
