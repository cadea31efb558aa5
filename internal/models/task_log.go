package model

type TaskLog struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	TaskID    int64  `gorm:"index;not null" json:"task_id"`
	Log       string `gorm:"type:text;not null" json:"log"`
	Timestamp string `gorm:"type:text;not null" json:"timestamp"`
}
