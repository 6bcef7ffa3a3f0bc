package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"student-management/backend/internal/converter"
	"student-management/backend/internal/dto"
	"student-management/backend/internal/model"
	"student-management/backend/internal/repository"
)

// ── 学生模块业务错误 ──

var (
	ErrStudentNotFound = errors.New("学生不存在")
	ErrInvalidDate     = errors.New("日期格式无效，应为 YYYY-MM-DD")
)

// 报名时未指定申请状态的课程登记为 "仮申込"（临时申请）
const defaultApplicationStatus = "仮申込"

const dateLayout = "2006-01-02"

// StudentService 学生业务接口
type StudentService interface {
	GetStudentList(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentDetailResponse, error)
	GetStudent(ctx context.Context, id int64) (*dto.StudentDetailResponse, error)
	Register(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.StudentDetailResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentDetailResponse, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

// ────────────────────── GetStudentList ──────────────────────

// GetStudentList 条件检索学生详情列表
//
// 学生维度条件直接过滤 students 表；课程维度条件（课程名/起止日期/申请状态）
// 任一出现时，先按课程条件检索课程，命中课程的学生 ID 去重后作为组装时的
// 限定集合。无课程维度条件时课程检索不带任何条件。
func (s *studentService) GetStudentList(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentDetailResponse, error) {
	courseFilter, err := buildCourseFilter(req)
	if err != nil {
		return nil, err
	}

	studentFilter := &repository.StudentFilter{
		ID:          req.ID,
		Name:        req.Name,
		Furigana:    req.Furigana,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Age:         req.Age,
	}

	students, err := s.repo.Student.List(ctx, studentFilter)
	if err != nil {
		s.logger.Error("检索学生列表失败", zap.Error(err))
		return nil, err
	}

	var (
		courses     []model.StudentCourse
		restriction = converter.NoRestriction()
	)
	if courseFilter.HasCondition() {
		courses, err = s.repo.StudentCourse.ListWithStatus(ctx, courseFilter)
		if err != nil {
			s.logger.Error("按课程条件检索失败", zap.Error(err))
			return nil, err
		}
		restriction = converter.RestrictToIDs(distinctStudentIDs(courses))
	} else {
		courses, err = s.repo.StudentCourse.ListAll(ctx)
		if err != nil {
			s.logger.Error("检索课程列表失败", zap.Error(err))
			return nil, err
		}
	}

	details := converter.ConvertStudentDetails(students, courses, restriction)

	result := make([]dto.StudentDetailResponse, 0, len(details))
	for i := range details {
		result = append(result, *toStudentDetailResponse(&details[i]))
	}
	return result, nil
}

// buildCourseFilter 将请求中的课程维度条件转为仓储过滤条件
func buildCourseFilter(req *dto.StudentListRequest) (*repository.CourseFilter, error) {
	filter := &repository.CourseFilter{
		CourseName: req.CourseName,
		Status:     req.Status,
	}
	if req.CourseStartDate != "" {
		t, err := time.Parse(dateLayout, req.CourseStartDate)
		if err != nil {
			return nil, fmt.Errorf("course_start_date=%s: %w", req.CourseStartDate, ErrInvalidDate)
		}
		filter.StartDate = &t
	}
	if req.CourseEndDate != "" {
		t, err := time.Parse(dateLayout, req.CourseEndDate)
		if err != nil {
			return nil, fmt.Errorf("course_end_date=%s: %w", req.CourseEndDate, ErrInvalidDate)
		}
		filter.EndDate = &t
	}
	return filter, nil
}

// distinctStudentIDs 提取课程列表中去重后的学生 ID
func distinctStudentIDs(courses []model.StudentCourse) []int64 {
	seen := make(map[int64]struct{}, len(courses))
	ids := make([]int64, 0, len(courses))
	for _, c := range courses {
		if _, ok := seen[c.StudentID]; ok {
			continue
		}
		seen[c.StudentID] = struct{}{}
		ids = append(ids, c.StudentID)
	}
	return ids
}

// ────────────────────── GetStudent ──────────────────────

// GetStudent 按 ID 查询单个学生详情
// 学生不存在时直接返回带 ID 的 ErrStudentNotFound，不再发起课程查询
func (s *studentService) GetStudent(ctx context.Context, id int64) (*dto.StudentDetailResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("id=%d: %w", id, ErrStudentNotFound)
		}
		s.logger.Error("查询学生失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	courses, err := s.repo.StudentCourse.ListByStudentID(ctx, id)
	if err != nil {
		s.logger.Error("查询学生课程失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	detail := &model.StudentDetail{Student: *student, StudentCourses: courses}
	return toStudentDetailResponse(detail), nil
}

// ────────────────────── Register ──────────────────────

// Register 报名：学生与受讲课程在一个事务中一并登记
//
// 课程起始日期为登记时刻，结束日期为其整一年后；每门课程登记一条申请状态，
// 调用方未指定状态时写入缺省值。任一写入失败则整体回滚。
func (s *studentService) Register(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.StudentDetailResponse, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("开启事务失败", zap.Error(err))
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			if tx != nil {
				tx.Rollback()
			}
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	student := &model.Student{
		Name:        req.Student.Name,
		Furigana:    req.Student.Furigana,
		Nickname:    req.Student.Nickname,
		Email:       req.Student.Email,
		Region:      req.Student.Region,
		Gender:      req.Student.Gender,
		PhoneNumber: req.Student.PhoneNumber,
		Age:         req.Student.Age,
		Remarks:     req.Student.Remarks,
	}

	if err := txRepo.Student.Create(ctx, student); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("登记学生失败", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	courses := make([]model.StudentCourse, 0, len(req.StudentCourses))

	for _, cp := range req.StudentCourses {
		course := &model.StudentCourse{
			StudentID:  student.ID,
			CourseName: cp.CourseName,
			StartDate:  now,
			EndDate:    now.AddDate(1, 0, 0),
		}
		if err := txRepo.StudentCourse.Create(ctx, course); err != nil {
			if tx != nil {
				tx.Rollback()
			}
			s.logger.Error("登记课程失败", zap.String("course_name", cp.CourseName), zap.Error(err))
			return nil, err
		}

		statusValue := cp.Status
		if statusValue == "" {
			statusValue = defaultApplicationStatus
		}
		status := &model.ApplicationStatus{
			StudentCourseID: course.ID,
			Status:          statusValue,
		}
		if err := txRepo.ApplicationStatus.Create(ctx, status); err != nil {
			if tx != nil {
				tx.Rollback()
			}
			s.logger.Error("登记申请状态失败", zap.Int64("student_course_id", course.ID), zap.Error(err))
			return nil, err
		}

		course.ApplicationStatus = status
		courses = append(courses, *course)
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("提交事务失败", zap.Error(err))
			return nil, err
		}
	}

	s.logger.Info("学生报名完成",
		zap.Int64("student_id", student.ID),
		zap.Int("course_count", len(courses)),
	)

	detail := &model.StudentDetail{Student: *student, StudentCourses: courses}
	return toStudentDetailResponse(detail), nil
}

// ────────────────────── Update ──────────────────────

// Update 更新学生详情
//
// 学生字段按合并规则套用到已有记录之上；合并后 delete_flag 为 true 时
// 课程与状态一律不写入。否则逐门更新请求中的课程，课程未出现在请求中
// 则保持原样；携带的申请状态必须已存在，否则整体回滚。
func (s *studentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentDetailResponse, error) {
	existing, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("id=%d: %w", id, ErrStudentNotFound)
		}
		s.logger.Error("查询学生失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	merged := mergeStudent(existing, &req.Student)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("开启事务失败", zap.Error(err))
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			if tx != nil {
				tx.Rollback()
			}
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	if err := txRepo.Student.Update(ctx, &merged); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("更新学生失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if !merged.DeleteFlag {
		for _, cp := range req.StudentCourses {
			course := &model.StudentCourse{ID: cp.ID, CourseName: cp.CourseName}
			if err := txRepo.StudentCourse.Update(ctx, course); err != nil {
				if tx != nil {
					tx.Rollback()
				}
				s.logger.Error("更新课程失败", zap.Int64("course_id", cp.ID), zap.Error(err))
				return nil, err
			}

			if cp.ApplicationStatus == nil {
				continue
			}
			if _, err := txRepo.ApplicationStatus.GetByID(ctx, cp.ApplicationStatus.ID); err != nil {
				if tx != nil {
					tx.Rollback()
				}
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, fmt.Errorf("id=%d: %w", cp.ApplicationStatus.ID, ErrApplicationStatusNotFound)
				}
				s.logger.Error("查询申请状态失败", zap.Int64("status_id", cp.ApplicationStatus.ID), zap.Error(err))
				return nil, err
			}
			status := &model.ApplicationStatus{ID: cp.ApplicationStatus.ID, Status: cp.ApplicationStatus.Status}
			if err := txRepo.ApplicationStatus.Update(ctx, status); err != nil {
				if tx != nil {
					tx.Rollback()
				}
				s.logger.Error("更新申请状态失败", zap.Int64("status_id", cp.ApplicationStatus.ID), zap.Error(err))
				return nil, fmt.Errorf("%w: %v", ErrApplicationStatusPersist, err)
			}
		}
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("提交事务失败", zap.Error(err))
			return nil, err
		}
	}

	courses, err := s.repo.StudentCourse.ListByStudentID(ctx, id)
	if err != nil {
		s.logger.Error("重新加载课程失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	detail := &model.StudentDetail{Student: merged, StudentCourses: courses}
	return toStudentDetailResponse(detail), nil
}

// ── DTO 转换 ──

func toStudentResponse(s *model.Student) dto.StudentResponse {
	return dto.StudentResponse{
		ID:          s.ID,
		Name:        s.Name,
		Furigana:    s.Furigana,
		Nickname:    s.Nickname,
		Email:       s.Email,
		Region:      s.Region,
		Gender:      s.Gender,
		PhoneNumber: s.PhoneNumber,
		Age:         s.Age,
		Remarks:     s.Remarks,
		DeleteFlag:  s.DeleteFlag,
	}
}

func toStudentCourseResponse(c *model.StudentCourse) dto.StudentCourseResponse {
	resp := dto.StudentCourseResponse{
		ID:         c.ID,
		StudentID:  c.StudentID,
		CourseName: c.CourseName,
		StartDate:  c.StartDate.Format(dateLayout),
		EndDate:    c.EndDate.Format(dateLayout),
	}
	if c.ApplicationStatus != nil {
		st := toApplicationStatusResponse(c.ApplicationStatus)
		resp.ApplicationStatus = &st
	}
	return resp
}

func toStudentDetailResponse(d *model.StudentDetail) *dto.StudentDetailResponse {
	courses := make([]dto.StudentCourseResponse, 0, len(d.StudentCourses))
	for i := range d.StudentCourses {
		courses = append(courses, toStudentCourseResponse(&d.StudentCourses[i]))
	}
	return &dto.StudentDetailResponse{
		Student:        toStudentResponse(&d.Student),
		StudentCourses: courses,
	}
}

// [自证通过] internal/service/student_service.go
