package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeScheduleUpdated   NotificationType = "schedule_updated"
	TypeAssignmentCreated NotificationType = "assignment_created"
	TypeAssignmentEnded   NotificationType = "assignment_ended"
	TypeHolidayAdded      NotificationType = "holiday_added"
	TypeRouteRecalculated NotificationType = "route_recalculated"
	TypeHoursMismatch     NotificationType = "hours_mismatch"
)

// AllNotificationTypes returns all available notification types
func AllNotificationTypes() []NotificationType {
	return []NotificationType{
		TypeScheduleUpdated,
		TypeAssignmentCreated,
		TypeAssignmentEnded,
		TypeHolidayAdded,
		TypeRouteRecalculated,
		TypeHoursMismatch,
	}
}

// Notification represents a notification entity
type Notification struct {
	ID          string
	RecipientID string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
