package repository

import "chili/entities"

type ActivityRepository interface {
	// Log appends an entry. A nil userID records an unattributed system action.
	Log(userID *uint, action string) error
	ListForUser(userID uint) ([]entities.ActivityLog, error)
	ListAll() ([]entities.ActivityLog, error)
}
