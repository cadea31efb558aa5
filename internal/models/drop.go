package model

// Drop is a freeform note, independent of tasks.
type Drop struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string `gorm:"not null" json:"title"`
	Content   string `gorm:"type:text;not null" json:"content"`
	CreatedAt string `gorm:"type:text;not null" json:"created_at"`
}
