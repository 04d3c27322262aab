package assistant

import (
	"html"
	"strings"
)

// TextSpan là một đoạn trong một dòng message: chữ thường hoặc chữ đậm.
type TextSpan struct {
	Text string `json:"text"`
	Bold bool   `json:"bold"`
}

// TextLine là một dòng hiển thị (message tách theo "\n").
type TextLine struct {
	Spans []TextSpan `json:"spans"`
}

// SplitBold tách một dòng theo marker "**": các đoạn ở vị trí lẻ là chữ
// đậm, vị trí chẵn là chữ thường. Đoạn rỗng bị bỏ.
func SplitBold(line string) []TextSpan {
	parts := strings.Split(line, "**")
	spans := make([]TextSpan, 0, len(parts))
	for i, p := range parts {
		if p == "" {
			continue
		}
		spans = append(spans, TextSpan{Text: p, Bold: i%2 == 1})
	}
	return spans
}

// RenderLines tách message text thành các dòng đã phân tích **đậm**, dùng
// cho client muốn tự dựng UI.
func RenderLines(text string) []TextLine {
	rawLines := strings.Split(text, "\n")
	lines := make([]TextLine, 0, len(rawLines))
	for _, l := range rawLines {
		lines = append(lines, TextLine{Spans: SplitBold(l)})
	}
	return lines
}

// RenderHTML dựng HTML an toàn từ message text: mỗi dòng một thẻ <p>, đoạn
// đậm bọc <strong>, mọi ký tự khác được escape.
func RenderHTML(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		b.WriteString("<p>")
		for i, p := range strings.Split(line, "**") {
			safe := html.EscapeString(p)
			if i%2 == 1 {
				b.WriteString("<strong>")
				b.WriteString(safe)
				b.WriteString("</strong>")
			} else {
				b.WriteString(safe)
			}
		}
		b.WriteString("</p>")
	}
	return b.String()
}
