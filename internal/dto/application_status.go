package dto

// ── 申请状态模块 DTO ──

// CreateApplicationStatusRequest 登记申请状态请求
type CreateApplicationStatusRequest struct {
	StudentCourseID int64  `json:"student_course_id" binding:"required,min=1"`
	Status          string `json:"status"            binding:"required,max=50"`
}

// UpdateApplicationStatusRequest 更新申请状态请求
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,max=50"`
}

// ApplicationStatusResponse 申请状态响应
type ApplicationStatusResponse struct {
	ID              int64  `json:"id"`
	StudentCourseID int64  `json:"student_course_id"`
	Status          string `json:"status"`
}
