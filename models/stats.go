package models

import "time"

// RecentProjectsWindow is the look-back used for DashboardStats.RecentProjects.
// A project counts as recent when created_at >= now - RecentProjectsWindow.
const RecentProjectsWindow = 7 * 24 * time.Hour

// DashboardStats is the admin dashboard aggregate.
type DashboardStats struct {
	TotalProjects  int64 `json:"total_projects"`
	ActiveServices int64 `json:"active_services"`
	RecentProjects int64 `json:"recent_projects"`
}
