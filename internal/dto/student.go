package dto

// ── 学生模块 DTO ──

// StudentListRequest 学生列表查询参数
// 学生维度条件走 students 表过滤；任一课程维度条件出现时，
// 先按课程匹配再收敛学生集合
type StudentListRequest struct {
	ID              *int64 `form:"id"`
	Name            string `form:"name"`
	Furigana        string `form:"furigana"`
	Email           string `form:"email"`
	PhoneNumber     string `form:"phone_number"`
	Age             *int   `form:"age"`
	CourseName      string `form:"course_name"`
	CourseStartDate string `form:"course_start_date"` // "2026-04-01"
	CourseEndDate   string `form:"course_end_date"`   // "2027-03-31"
	Status          string `form:"status"`
}

// RegisterStudentRequest 学生报名请求（学生 + 受讲课程一并登记）
type RegisterStudentRequest struct {
	Student        RegisterStudentPayload  `json:"student"         binding:"required"`
	StudentCourses []RegisterCoursePayload `json:"student_courses" binding:"omitempty,dive"`
}

// RegisterStudentPayload 报名时的学生信息
type RegisterStudentPayload struct {
	Name        string  `json:"name"         binding:"required,max=100"`
	Furigana    string  `json:"furigana"     binding:"required,max=100"`
	Nickname    *string `json:"nickname"     binding:"omitempty,max=100"`
	Email       *string `json:"email"        binding:"omitempty,email"`
	Region      *string `json:"region"       binding:"omitempty,max=100"`
	Gender      *string `json:"gender"       binding:"omitempty,max=20"`
	PhoneNumber string  `json:"phone_number" binding:"omitempty,max=30"`
	Age         int     `json:"age"          binding:"omitempty,min=0"`
	Remarks     *string `json:"remarks"`
}

// RegisterCoursePayload 报名时的课程信息
// 起止日期由系统写入，调用方不提供；申请状态缺省时登记为 "仮申込"
type RegisterCoursePayload struct {
	CourseName string `json:"course_name" binding:"required,max=200"`
	Status     string `json:"status"      binding:"omitempty,max=50"`
}

// UpdateStudentRequest 学生更新请求
// 学生字段按合并规则落库：
//   - name/furigana/phone_number 非空白才覆盖
//   - age 大于 0 才覆盖
//   - gender/nickname/email/region/remarks 非 null 才覆盖
//   - delete_flag 无条件取本次请求的值
type UpdateStudentRequest struct {
	Student        UpdateStudentPayload  `json:"student"         binding:"required"`
	StudentCourses []UpdateCoursePayload `json:"student_courses" binding:"omitempty,dive"`
}

// UpdateStudentPayload 更新时的学生信息
type UpdateStudentPayload struct {
	Name        string  `json:"name"         binding:"omitempty,max=100"`
	Furigana    string  `json:"furigana"     binding:"omitempty,max=100"`
	Nickname    *string `json:"nickname"     binding:"omitempty,max=100"`
	Email       *string `json:"email"        binding:"omitempty,email"`
	Region      *string `json:"region"       binding:"omitempty,max=100"`
	Gender      *string `json:"gender"       binding:"omitempty,max=20"`
	PhoneNumber string  `json:"phone_number" binding:"omitempty,max=30"`
	Age         int     `json:"age"`
	Remarks     *string `json:"remarks"`
	DeleteFlag  bool    `json:"delete_flag"`
}

// UpdateCoursePayload 更新时的课程信息
// 本次请求未包含的课程保持原样；delete_flag 为 true 时课程与状态均不写入
type UpdateCoursePayload struct {
	ID                int64                `json:"id"                 binding:"required,min=1"`
	CourseName        string               `json:"course_name"        binding:"required,max=200"`
	ApplicationStatus *UpdateStatusPayload `json:"application_status" binding:"omitempty"`
}

// UpdateStatusPayload 更新时的课程申请状态
type UpdateStatusPayload struct {
	ID     int64  `json:"id"     binding:"required,min=1"`
	Status string `json:"status" binding:"required,max=50"`
}

// ── 响应 ──

// StudentResponse 学生信息响应
type StudentResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Furigana    string  `json:"furigana"`
	Nickname    *string `json:"nickname,omitempty"`
	Email       *string `json:"email,omitempty"`
	Region      *string `json:"region,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	PhoneNumber string  `json:"phone_number"`
	Age         int     `json:"age"`
	Remarks     *string `json:"remarks,omitempty"`
	DeleteFlag  bool    `json:"delete_flag"`
}

// StudentCourseResponse 受讲课程响应
type StudentCourseResponse struct {
	ID                int64                      `json:"id"`
	StudentID         int64                      `json:"student_id"`
	CourseName        string                     `json:"course_name"`
	StartDate         string                     `json:"start_date"`
	EndDate           string                     `json:"end_date"`
	ApplicationStatus *ApplicationStatusResponse `json:"application_status,omitempty"`
}

// StudentDetailResponse 学生详情响应（学生 + 全部受讲课程）
type StudentDetailResponse struct {
	Student        StudentResponse         `json:"student"`
	StudentCourses []StudentCourseResponse `json:"student_courses"`
}
