package service

import (
	"bytes"
	"fmt"
	"hr_training_backend/internal/assistant"
	"hr_training_backend/internal/config"
	"time"

	"github.com/signintech/gopdf"
)

// ReportService xuất báo cáo PDF tiến độ TTS từ cùng dữ liệu mà trợ lý
// dùng để trả lời câu "chậm <kế hoạch>".
type ReportService struct {
	Assistant *AssistantService
	Cfg       *config.StorageConfig
}

func NewReportService(assistantService *AssistantService, cfg *config.StorageConfig) *ReportService {
	return &ReportService{
		Assistant: assistantService,
		Cfg:       cfg,
	}
}

// Font có hỗ trợ tiếng Việt. Đường dẫn cấu hình được ưu tiên, sau đó thử
// các vị trí DejaVu phổ biến.
func (s *ReportService) fontPaths() []string {
	paths := []string{}
	if s.Cfg.ReportFont != "" {
		paths = append(paths, s.Cfg.ReportFont)
	}
	return append(paths,
		"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	)
}

// DelayReport dựng PDF thống kê TTS chậm theo keyword kế hoạch (cú pháp
// giống câu hỏi với trợ lý). Trả về nội dung file và tên file gợi ý.
func (s *ReportService) DelayReport(keyword string) ([]byte, string, error) {
	snap, err := s.Assistant.Snapshot()
	if err != nil {
		return nil, "", err
	}
	timeline := assistant.BuildTimeline(snap.Courses)
	result := assistant.BuildDelayOverview(snap, timeline, keyword)

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontErr error
	fontLoaded := false
	for _, path := range s.fontPaths() {
		if err := pdf.AddTTFFont("report", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return nil, "", fmt.Errorf("failed to load report font: %w", fontErr)
	}

	if err := pdf.SetFont("report", "", 18); err != nil {
		return nil, "", err
	}
	pdf.Cell(nil, "Báo cáo tiến độ thực tập sinh")
	pdf.Br(24)

	if err := pdf.SetFont("report", "", 11); err != nil {
		return nil, "", err
	}
	pdf.Cell(nil, fmt.Sprintf("Ngày lập: %s", time.Now().Format("02/01/2006 15:04")))
	pdf.Br(14)
	if keyword != "" {
		pdf.Cell(nil, fmt.Sprintf("Kế hoạch lọc: %s", keyword))
		pdf.Br(20)
	}

	if len(result.Groups) == 0 {
		pdf.Cell(nil, "Không có thực tập sinh chậm tiến độ theo điều kiện lọc.")
	}

	for _, group := range result.Groups {
		if err := pdf.SetFont("report", "", 13); err != nil {
			return nil, "", err
		}
		pdf.Cell(nil, fmt.Sprintf("Kế hoạch: %s", group.PlanName))
		pdf.Br(16)

		if err := pdf.SetFont("report", "", 10); err != nil {
			return nil, "", err
		}
		for _, intern := range group.Interns {
			line := fmt.Sprintf("- %s | môn hiện tại: %s | %g ngày thực tập | chậm %g ngày",
				intern.Name, intern.CurrentCourseName, intern.TrainingDays, intern.DelayDays)
			lines, _ := pdf.SplitText(line, 500)
			for _, l := range lines {
				pdf.Cell(nil, l)
				pdf.Br(12)
			}
		}
		pdf.Br(10)
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write PDF: %w", err)
	}

	fileName := fmt.Sprintf("delay_report_%s.pdf", time.Now().Format("20060102_150405"))
	return buf.Bytes(), fileName, nil
}
