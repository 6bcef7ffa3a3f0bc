package model

// StudentDetail 学生详情聚合：一名学生及其全部受讲课程
// 仅在请求期间于内存中组装，不落库也不缓存
type StudentDetail struct {
	Student        Student         `json:"student"`
	StudentCourses []StudentCourse `json:"student_courses"`
}
