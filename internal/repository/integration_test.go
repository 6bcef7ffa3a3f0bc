//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"student-management/backend/internal/model"
	"student-management/backend/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=postgres password=postgres dbname=student_management_test sslmode=disable TimeZone=Asia/Tokyo"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	// 自动迁移测试表结构
	err = testDB.AutoMigrate(
		&model.Student{},
		&model.StudentCourse{},
		&model.ApplicationStatus{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate 失败: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	os.Exit(code)
}

// setupTestData 创建一名学生及一门带状态的课程，并返回清理函数
func setupTestData(t *testing.T) (student *model.Student, course *model.StudentCourse, status *model.ApplicationStatus, cleanup func()) {
	t.Helper()
	ctx := context.Background()

	student = &model.Student{
		Name:        fmt.Sprintf("测试学生-%d", time.Now().UnixNano()),
		Furigana:    "てすとがくせい",
		PhoneNumber: "090-0000-0000",
		Age:         20,
	}
	if err := testDB.WithContext(ctx).Create(student).Error; err != nil {
		t.Fatalf("创建学生失败: %v", err)
	}

	course = &model.StudentCourse{
		StudentID:  student.ID,
		CourseName: "Java基础",
		StartDate:  time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2027, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := testDB.WithContext(ctx).Create(course).Error; err != nil {
		t.Fatalf("创建课程失败: %v", err)
	}

	status = &model.ApplicationStatus{
		StudentCourseID: course.ID,
		Status:          "仮申込",
	}
	if err := testDB.WithContext(ctx).Create(status).Error; err != nil {
		t.Fatalf("创建申请状态失败: %v", err)
	}

	cleanup = func() {
		testDB.Where("student_course_id = ?", course.ID).Delete(&model.ApplicationStatus{})
		testDB.Where("id = ?", course.ID).Delete(&model.StudentCourse{})
		testDB.Where("id = ?", student.ID).Delete(&model.Student{})
	}
	return
}

// ═══════════════════════════════════════════════════════════
// StudentRepository
// ═══════════════════════════════════════════════════════════

func TestStudentRepo_GetByID_ExcludesDeleted(t *testing.T) {
	student, _, _, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	repo := repository.NewRepository(testDB)

	got, err := repo.Student.GetByID(ctx, student.ID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.Name != student.Name {
		t.Errorf("期望Name=%s，实际=%s", student.Name, got.Name)
	}

	// 置位 delete_flag 后不可再读取
	student.DeleteFlag = true
	if err := repo.Student.Update(ctx, student); err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if _, err := repo.Student.GetByID(ctx, student.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("逻辑删除后应返回 ErrRecordNotFound，实际: %v", err)
	}
}

func TestStudentRepo_List_Filters(t *testing.T) {
	student, _, _, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	repo := repository.NewRepository(testDB)

	// 姓名部分匹配
	students, err := repo.Student.List(ctx, &repository.StudentFilter{Name: "测试学生"})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	found := false
	for _, s := range students {
		if s.ID == student.ID {
			found = true
		}
	}
	if !found {
		t.Error("姓名部分匹配应命中测试学生")
	}

	// 电话精确匹配不命中时返回空
	students, err = repo.Student.List(ctx, &repository.StudentFilter{PhoneNumber: "000-9999-9999"})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	for _, s := range students {
		if s.ID == student.ID {
			t.Error("电话不匹配时不应命中")
		}
	}
}

// ═══════════════════════════════════════════════════════════
// StudentCourseRepository
// ═══════════════════════════════════════════════════════════

func TestStudentCourseRepo_ListWithStatus_JoinFilter(t *testing.T) {
	student, course, _, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	repo := repository.NewRepository(testDB)

	courses, err := repo.StudentCourse.ListWithStatus(ctx, &repository.CourseFilter{Status: "仮申込"})
	if err != nil {
		t.Fatalf("ListWithStatus 应成功: %v", err)
	}
	found := false
	for _, c := range courses {
		if c.ID == course.ID {
			found = true
			if c.StudentID != student.ID {
				t.Errorf("课程归属错误: %d", c.StudentID)
			}
			if c.ApplicationStatus == nil || c.ApplicationStatus.Status != "仮申込" {
				t.Error("Preload 应携带申请状态")
			}
		}
	}
	if !found {
		t.Error("状态联表过滤应命中测试课程")
	}

	courses, err = repo.StudentCourse.ListWithStatus(ctx, &repository.CourseFilter{Status: "不存在的状态"})
	if err != nil {
		t.Fatalf("ListWithStatus 应成功: %v", err)
	}
	for _, c := range courses {
		if c.ID == course.ID {
			t.Error("状态不匹配时不应命中")
		}
	}
}

func TestStudentCourseRepo_Update_OnlyCourseName(t *testing.T) {
	_, course, _, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	repo := repository.NewRepository(testDB)

	origStart := course.StartDate
	course.CourseName = "Java应用"
	course.StartDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := repo.StudentCourse.Update(ctx, course); err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}

	var reloaded model.StudentCourse
	if err := testDB.WithContext(ctx).First(&reloaded, course.ID).Error; err != nil {
		t.Fatalf("重新加载失败: %v", err)
	}
	if reloaded.CourseName != "Java应用" {
		t.Errorf("课程名应更新，实际=%s", reloaded.CourseName)
	}
	// 起止日期由系统写入，更新路径不得触碰
	if !reloaded.StartDate.Equal(origStart) {
		t.Error("更新路径不应修改开始日期")
	}
}

// ═══════════════════════════════════════════════════════════
// Transaction
// ═══════════════════════════════════════════════════════════

func TestRepository_TxCommitAndRollback(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewRepository(testDB)

	// 提交后数据可见
	tx, err := repo.BeginTx(ctx)
	if err != nil {
		t.Fatalf("BeginTx 应成功: %v", err)
	}
	txRepo := repo.WithTx(tx)

	student := &model.Student{
		Name:        fmt.Sprintf("事务学生-%d", time.Now().UnixNano()),
		Furigana:    "とらんざくしょん",
		PhoneNumber: "090-1111-1111",
		Age:         22,
	}
	if err := txRepo.Student.Create(ctx, student); err != nil {
		tx.Rollback()
		t.Fatalf("事务内创建失败: %v", err)
	}
	if err := tx.Commit().Error; err != nil {
		t.Fatalf("提交失败: %v", err)
	}
	defer testDB.Where("id = ?", student.ID).Delete(&model.Student{})

	if _, err := repo.Student.GetByID(ctx, student.ID); err != nil {
		t.Errorf("提交后应可读取: %v", err)
	}

	// 回滚后数据不可见
	tx2, err := repo.BeginTx(ctx)
	if err != nil {
		t.Fatalf("BeginTx 应成功: %v", err)
	}
	txRepo2 := repo.WithTx(tx2)

	ghost := &model.Student{
		Name:        fmt.Sprintf("回滚学生-%d", time.Now().UnixNano()),
		Furigana:    "ろーるばっく",
		PhoneNumber: "090-2222-2222",
		Age:         23,
	}
	if err := txRepo2.Student.Create(ctx, ghost); err != nil {
		tx2.Rollback()
		t.Fatalf("事务内创建失败: %v", err)
	}
	tx2.Rollback()

	if _, err := repo.Student.GetByID(ctx, ghost.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("回滚后不应可读取，实际: %v", err)
	}
}

// ═══════════════════════════════════════════════════════════
// ApplicationStatusRepository
// ═══════════════════════════════════════════════════════════

func TestApplicationStatusRepo_UniquePerCourse(t *testing.T) {
	_, course, _, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	repo := repository.NewRepository(testDB)

	// 同一课程的第二条状态违反唯一约束
	dup := &model.ApplicationStatus{StudentCourseID: course.ID, Status: "本申込"}
	if err := repo.ApplicationStatus.Create(ctx, dup); err == nil {
		testDB.Where("id = ?", dup.ID).Delete(&model.ApplicationStatus{})
		t.Error("同一课程的第二条状态应被唯一约束拒绝")
	}
}
