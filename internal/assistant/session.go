package assistant

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MessageKind phân loại message hiển thị. Renderer switch exhaustive theo
// kind, không đoán shape.
type MessageKind string

const (
	KindText             MessageKind = "text"
	KindDelayOverview    MessageKind = "delayOverview"
	KindSequenceMismatch MessageKind = "sequenceMismatch"
)

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "ai"
)

// Message là một bong bóng chat. Text dùng markup **đậm** như mô tả ở
// render.go; Overview/Plans chỉ có nghĩa với kind tương ứng.
type Message struct {
	Kind     MessageKind    `json:"type"`
	Sender   Sender         `json:"sender"`
	Text     string         `json:"text,omitempty"`
	Keyword  string         `json:"keyword,omitempty"`
	Overview []DelayGroup   `json:"overview,omitempty"`
	Plans    []MismatchPlan `json:"plans,omitempty"`
}

// Session là trạng thái hội thoại của một phiên chat: lịch sử message, cờ
// đang chờ chọn kế hoạch theo số và danh sách kế hoạch đã liệt kê.
// Không persist; sống theo phiên.
type Session struct {
	Messages     []Message `json:"messages"`
	AwaitingPick bool      `json:"awaitingPick"`
	Candidates   []PlanRef `json:"-"`
}

const welcomeText = "Chào bạn 👋\n" +
	"Mình là Trợ lý Phúc, giúp bạn theo dõi tiến độ thực tập sinh.\n\n" +
	"✅ **Cách 1 (xem TTS chậm):** gõ **chậm + tên kế hoạch**\n" +
	"Ví dụ: **tts chậm tháng 12** (trong đó \"tháng 12\" là tên kế hoạch).\n\n" +
	"✅ **Cách 2 (chọn nhanh theo số):** bấm **phím 1** để bé liệt kê tất cả kế hoạch (1,2,3,...)\n" +
	"Sau đó bạn gõ **số tương ứng** để xem tiến độ TTS của kế hoạch đó."

const delayHintText = "Bạn muốn xem TTS chậm của kế hoạch nào?\n\n" +
	"👉 Gõ: **chậm + tên kế hoạch**\n" +
	"Ví dụ: **tts chậm tháng 12** – trong đó \"tháng 12\" là tên kế hoạch."

const planNotFoundText = "❌ **Không tìm thấy kế hoạch khớp với tên bạn nhập.**\n\n" +
	"Tên kế hoạch sai kìa, mở to mắt ra nhìn lại giúp bé với 😝\n" +
	"Nhầm lẫn nhỏ của cô/cậu chủ thôi, thử gõ lại tên kế hoạch chính xác hơn nhé 💖"

const pickCancelledText = "✅ **Đã huỷ chọn kế hoạch.**\n" +
	"Bạn có thể bấm **phím 1** để xem lại danh sách nhé 💖"

const noPlansText = "⚠️ **Chưa có kế hoạch để liệt kê.**\n" +
	"Hiện tại bé chưa tìm thấy kế hoạch tuyển dụng nào trong dữ liệu trainings 😥"

// FallbackErrorText là câu trả lời khi gọi AI chat thất bại.
const FallbackErrorText = "Bé chưa hiểu câu hỏi của anh/chị ạ, anh/chị hãy ghi rõ câu hỏi hơn giúp bé với ạ ❤️"

// delayTrigger là từ khoá kích hoạt truy vấn TTS chậm. Phần sau lần xuất
// hiện CUỐI CÙNG của từ này được lấy làm keyword lọc kế hoạch.
const delayTrigger = "chậm"

// menuTrigger: gõ đúng "1" để liệt kê kế hoạch chọn theo số.
const menuTrigger = "1"

var bareDelayPhrases = map[string]bool{
	"chậm":         true,
	"tts chậm":     true,
	"xem tts chậm": true,
	"xem chậm":     true,
}

// NewSession khởi tạo phiên chat với message chào.
func NewSession() *Session {
	return &Session{
		Messages: []Message{textMessage(welcomeText)},
	}
}

func textMessage(text string) Message {
	return Message{Kind: KindText, Sender: SenderAssistant, Text: text}
}

// Engine giữ snapshot dữ liệu và lộ trình đã dựng cho một lượt hội thoại.
// Mọi method chỉ đọc, an toàn dùng lại giữa các lượt.
type Engine struct {
	snap     Snapshot
	timeline []TimelineEntry
}

func NewEngine(snap Snapshot) *Engine {
	return &Engine{
		snap:     snap,
		timeline: BuildTimeline(snap.Courses),
	}
}

// Timeline trả về lộ trình đã dựng (phục vụ render header bảng mismatch).
func (e *Engine) Timeline() []TimelineEntry {
	return e.timeline
}

func (e *Engine) Snapshot() Snapshot {
	return e.snap
}

// HandleTurn xử lý một lượt nhập của người dùng trên session:
//
//  1. flow chọn kế hoạch theo số được ưu tiên trước;
//  2. rồi đến truy vấn "chậm";
//  3. còn lại trả needFallback = true để caller chuyển câu hỏi sang AI chat
//     (engine không tự gọi mạng).
//
// Mọi message trả lời đều được append vào session và trả về cho caller.
func (e *Engine) HandleTurn(sess *Session, raw string) (replies []Message, needFallback bool) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return nil, false
	}

	sess.Messages = append(sess.Messages, Message{
		Kind:   KindText,
		Sender: SenderUser,
		Text:   content,
	})

	emit := func(msgs ...Message) {
		sess.Messages = append(sess.Messages, msgs...)
		replies = append(replies, msgs...)
	}

	if handled := e.handlePlanPick(sess, content, emit); handled {
		return replies, false
	}

	if handled := e.handleDelayQuery(content, emit); handled {
		return replies, false
	}

	return replies, true
}

// AppendAssistantText ghi nhận câu trả lời từ fallback AI chat vào session.
func (s *Session) AppendAssistantText(text string) Message {
	m := textMessage(text)
	s.Messages = append(s.Messages, m)
	return m
}

// handlePlanPick xử lý flow chọn kế hoạch bằng số. Trả về true khi lượt
// nhập đã được tiêu thụ.
func (e *Engine) handlePlanPick(sess *Session, content string, emit func(...Message)) bool {
	if sess.AwaitingPick {
		// Không phải số => cho rơi xuống flow thường (giữ nguyên hành vi
		// gốc: không nhắc lại, không đổi trạng thái).
		if !isAllDigits(content) {
			return false
		}

		n, err := strconv.Atoi(content)
		if err != nil {
			return true
		}

		if n == 0 {
			sess.AwaitingPick = false
			sess.Candidates = nil
			emit(textMessage(pickCancelledText))
			return true
		}

		if n < 1 || n > len(sess.Candidates) {
			emit(textMessage(fmt.Sprintf(
				"⚠️ **Số bạn chọn không hợp lệ.**\n👉 Bạn chọn từ **1 đến %d** (hoặc gõ **0** để huỷ).",
				len(sess.Candidates))))
			return true
		}

		picked := sess.Candidates[n-1]
		sess.AwaitingPick = false
		sess.Candidates = nil

		emit(textMessage(fmt.Sprintf(
			"🔎 **Oke!** Bé đang kiểm tra tiến độ TTS của kế hoạch:\n➡️ **\"%s\"** ...",
			picked.PlanName)))

		e.handleDelayQuery(delayTrigger+" "+picked.PlanName, emit)
		return true
	}

	if content != menuTrigger {
		return false
	}

	plans := PlansFromTrainees(e.snap)
	if len(plans) == 0 {
		emit(textMessage(noPlansText))
		return true
	}

	sess.Candidates = plans
	sess.AwaitingPick = true

	var b strings.Builder
	b.WriteString("**Danh sách kế hoạch tuyển dụng hiện có:**\n\n")
	for i, p := range plans {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "**%d.** %s", i+1, p.PlanName)
	}
	b.WriteString("\n\n👉 Bạn gõ **số tương ứng** để xem tiến độ TTS của kế hoạch đó (hoặc gõ **0** để huỷ).")

	emit(textMessage(b.String()))
	return true
}

// lowerOffset đổi một byte offset trên bản ToLower về offset tương ứng
// trên chuỗi gốc. ToLower ánh xạ rune-một-rune nên số rune hai bên luôn
// bằng nhau, chỉ độ dài byte của từng rune có thể lệch (vd U+212A hạ
// xuống 'k').
func lowerOffset(orig, lower string, off int) int {
	oi, li := 0, 0
	for li < off {
		_, ls := utf8.DecodeRuneInString(lower[li:])
		_, os := utf8.DecodeRuneInString(orig[oi:])
		li += ls
		oi += os
	}
	return oi
}

// handleDelayQuery xử lý câu hỏi về TTS chậm. Trả về true khi lượt nhập đã
// được tiêu thụ (kể cả khi chỉ trả lời nhắc nhở).
func (e *Engine) handleDelayQuery(content string, emit func(...Message)) bool {
	lower := strings.ToLower(content)

	if bareDelayPhrases[strings.TrimSpace(lower)] {
		emit(textMessage(delayHintText))
		return true
	}

	idx := strings.LastIndex(lower, delayTrigger)
	if idx < 0 {
		return false
	}

	keyword := strings.TrimSpace(content[lowerOffset(content, lower, idx+len(delayTrigger)):])
	if keyword == "" {
		emit(textMessage(delayHintText))
		return true
	}

	result := BuildDelayOverview(e.snap, e.timeline, keyword)

	// Thứ tự plan id ổn định theo lần gặp trong trainings.
	var matchedOrdered []string
	for _, pid := range planIDsFromTrainees(e.snap.Trainees) {
		if result.MatchedPlanIDs[pid] {
			matchedOrdered = append(matchedOrdered, pid)
		}
	}

	hasMismatchInMatched := false
	for pid := range result.MismatchPlanIDs {
		if result.MatchedPlanIDs[pid] {
			hasMismatchInMatched = true
			break
		}
	}

	// Case 1: kế hoạch khớp nhưng đang lệch thứ tự học => bảng mismatch.
	if len(result.Groups) == 0 && hasMismatchInMatched {
		var plans []MismatchPlan
		for _, pid := range matchedOrdered {
			if mp := result.MismatchByPlan[pid]; mp != nil {
				plans = append(plans, *mp)
			}
		}
		emit(Message{
			Kind:    KindSequenceMismatch,
			Sender:  SenderAssistant,
			Keyword: keyword,
			Plans:   plans,
		})
		return true
	}

	// Case 2: kế hoạch khớp nhưng chưa có dữ liệu hoàn thành môn nào.
	if len(result.Groups) == 0 && len(matchedOrdered) > 0 {
		planName := PlanNameByID(e.snap.Plans, matchedOrdered[0])
		emit(textMessage(fmt.Sprintf(
			"⚠️ **Kế hoạch \"%s\" hiện CHƯA CÓ dữ liệu hoàn thành môn học nào**\n\n"+
				"• **Lý do:** chưa có TTS nào được chấm **đủ 3 điểm thành phần** cho bất kỳ môn nào.\n"+
				"• **Kết quả:** bé **chưa thể đánh giá chậm/nhanh** ở thời điểm này ạ.\n\n"+
				"✅ **Cách xử lý:** Khi có ít nhất **1 môn** được chấm đủ điểm, bạn hỏi lại:\n"+
				"➡️ **chậm %s**\n"+
				"là bé sẽ thống kê ngay 💖",
			planName, planName)))
		return true
	}

	// Case 3: không khớp kế hoạch nào => sai tên.
	if len(result.Groups) == 0 {
		emit(textMessage(planNotFoundText))
		return true
	}

	// Case 4: bảng TTS chậm theo kế hoạch.
	emit(Message{
		Kind:     KindDelayOverview,
		Sender:   SenderAssistant,
		Keyword:  keyword,
		Overview: result.Groups,
	})
	return true
}
