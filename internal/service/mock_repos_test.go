package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"student-management/backend/internal/model"
	"student-management/backend/internal/repository"
)

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[int64]*model.Student
	order    []int64
	nextID   int64

	listCalls    int
	getByIDCalls int
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[int64]*model.Student), nextID: 1}
}

func (m *mockStudentRepo) List(_ context.Context, filter *repository.StudentFilter) ([]model.Student, error) {
	m.listCalls++
	var result []model.Student
	for _, id := range m.order {
		s := m.students[id]
		if s.DeleteFlag {
			continue
		}
		if filter != nil {
			if filter.ID != nil && s.ID != *filter.ID {
				continue
			}
			if filter.Name != "" && !strings.Contains(s.Name, filter.Name) {
				continue
			}
			if filter.Furigana != "" && !strings.Contains(s.Furigana, filter.Furigana) {
				continue
			}
			if filter.Email != "" && (s.Email == nil || *s.Email != filter.Email) {
				continue
			}
			if filter.PhoneNumber != "" && s.PhoneNumber != filter.PhoneNumber {
				continue
			}
			if filter.Age != nil && s.Age != *filter.Age {
				continue
			}
		}
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id int64) (*model.Student, error) {
	m.getByIDCalls++
	if s, ok := m.students[id]; ok && !s.DeleteFlag {
		copied := *s
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if student.ID == 0 {
		student.ID = m.nextID
		m.nextID++
	}
	copied := *student
	m.students[student.ID] = &copied
	m.order = append(m.order, student.ID)
	return nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	copied := *student
	if _, ok := m.students[student.ID]; !ok {
		m.order = append(m.order, student.ID)
	}
	m.students[student.ID] = &copied
	return nil
}

// ── Mock StudentCourseRepository ──

type mockStudentCourseRepo struct {
	courses map[int64]*model.StudentCourse
	order   []int64
	nextID  int64

	listAllCalls        int
	listByStudentCalls  int
	listWithStatusCalls int
}

func newMockStudentCourseRepo() *mockStudentCourseRepo {
	return &mockStudentCourseRepo{courses: make(map[int64]*model.StudentCourse), nextID: 1}
}

func (m *mockStudentCourseRepo) ListAll(_ context.Context) ([]model.StudentCourse, error) {
	m.listAllCalls++
	var result []model.StudentCourse
	for _, id := range m.order {
		result = append(result, *m.courses[id])
	}
	return result, nil
}

func (m *mockStudentCourseRepo) ListByStudentID(_ context.Context, studentID int64) ([]model.StudentCourse, error) {
	m.listByStudentCalls++
	var result []model.StudentCourse
	for _, id := range m.order {
		if m.courses[id].StudentID == studentID {
			result = append(result, *m.courses[id])
		}
	}
	return result, nil
}

func (m *mockStudentCourseRepo) ListWithStatus(_ context.Context, filter *repository.CourseFilter) ([]model.StudentCourse, error) {
	m.listWithStatusCalls++
	var result []model.StudentCourse
	for _, id := range m.order {
		c := m.courses[id]
		if filter != nil {
			if filter.CourseName != "" && !strings.Contains(c.CourseName, filter.CourseName) {
				continue
			}
			if filter.StartDate != nil && c.StartDate.Before(*filter.StartDate) {
				continue
			}
			if filter.EndDate != nil && c.EndDate.After(*filter.EndDate) {
				continue
			}
			if filter.Status != "" {
				if c.ApplicationStatus == nil || c.ApplicationStatus.Status != filter.Status {
					continue
				}
			}
		}
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockStudentCourseRepo) Create(_ context.Context, course *model.StudentCourse) error {
	if course.ID == 0 {
		course.ID = m.nextID
		m.nextID++
	}
	copied := *course
	m.courses[course.ID] = &copied
	m.order = append(m.order, course.ID)
	return nil
}

func (m *mockStudentCourseRepo) Update(_ context.Context, course *model.StudentCourse) error {
	// 与 GORM 行为一致：目标不存在时不报错，仅零行生效
	if existing, ok := m.courses[course.ID]; ok {
		existing.CourseName = course.CourseName
	}
	return nil
}

// ── Mock ApplicationStatusRepository ──

type mockApplicationStatusRepo struct {
	statuses map[int64]*model.ApplicationStatus
	order    []int64
	nextID   int64

	// 注入的存储层错误，用于验证持久化错误的包装行为
	createErr error
	updateErr error
	deleteErr error

	deleteCalls int
	updateCalls int
}

func newMockApplicationStatusRepo() *mockApplicationStatusRepo {
	return &mockApplicationStatusRepo{statuses: make(map[int64]*model.ApplicationStatus), nextID: 1}
}

func (m *mockApplicationStatusRepo) List(_ context.Context) ([]model.ApplicationStatus, error) {
	var result []model.ApplicationStatus
	for _, id := range m.order {
		result = append(result, *m.statuses[id])
	}
	return result, nil
}

func (m *mockApplicationStatusRepo) GetByID(_ context.Context, id int64) (*model.ApplicationStatus, error) {
	if s, ok := m.statuses[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockApplicationStatusRepo) Create(_ context.Context, status *model.ApplicationStatus) error {
	if m.createErr != nil {
		return m.createErr
	}
	if status.ID == 0 {
		status.ID = m.nextID
		m.nextID++
	}
	copied := *status
	m.statuses[status.ID] = &copied
	m.order = append(m.order, status.ID)
	return nil
}

func (m *mockApplicationStatusRepo) Update(_ context.Context, status *model.ApplicationStatus) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	if existing, ok := m.statuses[status.ID]; ok {
		existing.Status = status.Status
	}
	return nil
}

func (m *mockApplicationStatusRepo) Delete(_ context.Context, id int64) error {
	m.deleteCalls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.statuses, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
