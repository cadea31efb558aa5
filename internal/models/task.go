package model

import "eon-tracker.com/eon-tracker/internal/constants"

type Task struct {
	ID        int64                `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string               `gorm:"not null" json:"title"`
	CreatedAt string               `gorm:"type:text;not null" json:"created_at"`
	SubmitAt  string               `gorm:"type:text;not null;default:''" json:"submit_at"`
	Status    constants.TaskStatus `gorm:"type:text;not null" json:"status"`
}
