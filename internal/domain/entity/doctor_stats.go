package entity

// DoctorStats holds the dashboard aggregates for one doctor: open requests,
// appointments on the current date, and distinct patients ever seen.
type DoctorStats struct {
	PendingCount  int64 `json:"pending_count"`
	TodayCount    int64 `json:"today_count"`
	TotalPatients int64 `json:"total_patients"`
}
