package converter

import (
	"testing"

	"student-management/backend/internal/model"
)

func student(id int64, name string) model.Student {
	return model.Student{ID: id, Name: name}
}

func course(id, studentID int64, name string) model.StudentCourse {
	return model.StudentCourse{ID: id, StudentID: studentID, CourseName: name}
}

// ── 组装测试 ──

func TestConvertStudentDetails_JoinByStudentID(t *testing.T) {
	students := []model.Student{student(1, "田中太郎"), student(2, "佐藤花子")}
	courses := []model.StudentCourse{
		course(1, 1, "Java基础"),
		course(2, 2, "AWS入门"),
		course(3, 1, "设计模式"),
	}

	details := ConvertStudentDetails(students, courses, NoRestriction())

	if len(details) != 2 {
		t.Fatalf("期望 2 条详情，实际=%d", len(details))
	}
	if len(details[0].StudentCourses) != 2 {
		t.Errorf("学生1应有 2 门课程，实际=%d", len(details[0].StudentCourses))
	}
	// 课程保持输入顺序
	if details[0].StudentCourses[0].CourseName != "Java基础" ||
		details[0].StudentCourses[1].CourseName != "设计模式" {
		t.Error("课程应保持输入顺序")
	}
	if len(details[1].StudentCourses) != 1 {
		t.Errorf("学生2应有 1 门课程，实际=%d", len(details[1].StudentCourses))
	}
}

func TestConvertStudentDetails_StudentOrderPreserved(t *testing.T) {
	students := []model.Student{student(3, "丙"), student(1, "甲"), student(2, "乙")}

	details := ConvertStudentDetails(students, nil, NoRestriction())

	if details[0].Student.ID != 3 || details[1].Student.ID != 1 || details[2].Student.ID != 2 {
		t.Error("学生应保持输入顺序")
	}
}

func TestConvertStudentDetails_NoCoursesYieldsEmptySlice(t *testing.T) {
	students := []model.Student{student(1, "田中太郎")}

	details := ConvertStudentDetails(students, nil, NoRestriction())

	if len(details) != 1 {
		t.Fatalf("期望 1 条详情，实际=%d", len(details))
	}
	if details[0].StudentCourses == nil {
		t.Error("无课程学生应得到空切片而非 nil")
	}
	if len(details[0].StudentCourses) != 0 {
		t.Errorf("期望 0 门课程，实际=%d", len(details[0].StudentCourses))
	}
}

func TestConvertStudentDetails_EmptyInputs(t *testing.T) {
	details := ConvertStudentDetails(nil, nil, NoRestriction())
	if details == nil || len(details) != 0 {
		t.Error("空输入应得到空切片而非 nil")
	}
}

func TestConvertStudentDetails_OtherStudentsCoursesNotLeaked(t *testing.T) {
	students := []model.Student{student(1, "田中太郎")}
	courses := []model.StudentCourse{
		course(1, 1, "Java基础"),
		course(2, 99, "别人的课程"),
	}

	details := ConvertStudentDetails(students, courses, NoRestriction())

	if len(details[0].StudentCourses) != 1 {
		t.Fatalf("期望 1 门课程，实际=%d", len(details[0].StudentCourses))
	}
	if details[0].StudentCourses[0].CourseName != "Java基础" {
		t.Error("不应混入其他学生的课程")
	}
}

// ── 限定集合测试 ──

func TestConvertStudentDetails_RestrictToIDs(t *testing.T) {
	students := []model.Student{student(1, "甲"), student(2, "乙"), student(3, "丙")}
	courses := []model.StudentCourse{
		course(1, 1, "Java基础"),
		course(2, 2, "AWS入门"),
	}

	details := ConvertStudentDetails(students, courses, RestrictToIDs([]int64{2}))

	// 有课程但不在限定集合内的学生同样被过滤
	if len(details) != 1 {
		t.Fatalf("期望 1 条详情，实际=%d", len(details))
	}
	if details[0].Student.ID != 2 {
		t.Errorf("期望学生2通过，实际=%d", details[0].Student.ID)
	}
}

func TestConvertStudentDetails_RestrictToEmptySet(t *testing.T) {
	students := []model.Student{student(1, "甲"), student(2, "乙")}

	details := ConvertStudentDetails(students, nil, RestrictToIDs(nil))

	// 空限定集合与不限定语义严格区分：没有任何学生通过
	if len(details) != 0 {
		t.Errorf("空限定集合应过滤全部学生，实际=%d", len(details))
	}
}

func TestConvertStudentDetails_NoRestrictionZeroValue(t *testing.T) {
	students := []model.Student{student(1, "甲")}

	details := ConvertStudentDetails(students, nil, Restriction{})

	if len(details) != 1 {
		t.Error("零值 Restriction 应等价于不限定")
	}
}
