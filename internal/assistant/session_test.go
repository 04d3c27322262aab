package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDemoEngine() *Engine {
	return NewEngine(demoSnapshot())
}

func lastReply(t *testing.T, replies []Message) Message {
	t.Helper()
	require.NotEmpty(t, replies)
	return replies[len(replies)-1]
}

func TestNewSession_Welcome(t *testing.T) {
	sess := NewSession()

	require.Len(t, sess.Messages, 1)
	assert.Equal(t, KindText, sess.Messages[0].Kind)
	assert.Equal(t, SenderAssistant, sess.Messages[0].Sender)
	assert.Contains(t, sess.Messages[0].Text, "Trợ lý Phúc")
	assert.False(t, sess.AwaitingPick)
}

func TestHandleTurn_BareDelayPhraseAsksForPlan(t *testing.T) {
	engine := newDemoEngine()

	for _, input := range []string{"chậm", "tts chậm", "xem tts chậm", "xem chậm", "  TTS CHẬM  "} {
		sess := NewSession()
		replies, fallback := engine.HandleTurn(sess, input)

		assert.False(t, fallback, input)
		msg := lastReply(t, replies)
		assert.Equal(t, KindText, msg.Kind)
		assert.Contains(t, msg.Text, "kế hoạch nào", input)
	}
}

func TestHandleTurn_DelayOverview(t *testing.T) {
	engine := newDemoEngine()
	sess := NewSession()

	replies, fallback := engine.HandleTurn(sess, "tts chậm tháng 12")

	assert.False(t, fallback)
	msg := lastReply(t, replies)
	assert.Equal(t, KindDelayOverview, msg.Kind)
	assert.Equal(t, "tháng 12", msg.Keyword)
	require.Len(t, msg.Overview, 1)
	assert.Equal(t, "Tháng 12", msg.Overview[0].PlanName)
}

func TestHandleTurn_KeywordAfterCaseFoldedTrigger(t *testing.T) {
	engine := newDemoEngine()
	sess := NewSession()

	// U+212A (KELVIN SIGN) hạ chữ thường thành 'k' ngắn hơn một byte, nên
	// offset trên bản ToLower phải được đổi lại trước khi cắt keyword.
	replies, fallback := engine.HandleTurn(sess, "K chậm tháng 12")

	assert.False(t, fallback)
	msg := lastReply(t, replies)
	assert.Equal(t, KindDelayOverview, msg.Kind)
	assert.Equal(t, "tháng 12", msg.Keyword)
}

func TestHandleTurn_KeywordAfterLastTrigger(t *testing.T) {
	engine := newDemoEngine()
	sess := NewSession()

	// Keyword là phần sau lần xuất hiện CUỐI của "chậm".
	replies, _ := engine.HandleTurn(sess, "xem chậm hay không chậm tháng 12")

	msg := lastReply(t, replies)
	assert.Equal(t, KindDelayOverview, msg.Kind)
	assert.Equal(t, "tháng 12", msg.Keyword)
}

func TestHandleTurn_PlanNotFound(t *testing.T) {
	engine := newDemoEngine()
	sess := NewSession()

	replies, fallback := engine.HandleTurn(sess, "chậm kế hoạch không tồn tại")

	assert.False(t, fallback)
	msg := lastReply(t, replies)
	assert.Equal(t, KindText, msg.Kind)
	assert.Contains(t, msg.Text, "Không tìm thấy kế hoạch")
}

func TestHandleTurn_MatchedPlanWithoutGradedData(t *testing.T) {
	snap := demoSnapshot()
	// Xoá hết điểm của plan 7 => match được nhưng không có dữ liệu chấm.
	for i := range snap.Trainees {
		if snap.Trainees[i].PlanID == "7" {
			snap.Trainees[i].Scores = nil
		}
	}
	engine := NewEngine(snap)
	sess := NewSession()

	replies, _ := engine.HandleTurn(sess, "chậm đợt hè")

	msg := lastReply(t, replies)
	assert.Equal(t, KindText, msg.Kind)
	assert.Contains(t, msg.Text, "CHƯA CÓ dữ liệu hoàn thành")
	assert.Contains(t, msg.Text, "Đợt hè")
}

func TestHandleTurn_SequenceMismatchTable(t *testing.T) {
	snap := demoSnapshot()
	snap.Trainees = append(snap.Trainees, Trainee{
		Name: "Vũ Thị Em", PlanID: "7", TrainingDays: fptr(10),
		Scores: []ScoreRecord{fullScore("1", "A", 8), fullScore("3", "C", 8)},
	})
	engine := NewEngine(snap)
	sess := NewSession()

	replies, _ := engine.HandleTurn(sess, "chậm đợt hè")

	msg := lastReply(t, replies)
	assert.Equal(t, KindSequenceMismatch, msg.Kind)
	require.Len(t, msg.Plans, 1)
	assert.Equal(t, "Đợt hè", msg.Plans[0].PlanName)
	require.Len(t, msg.Plans[0].Rows, 1)
	assert.Equal(t, "B", msg.Plans[0].Rows[0].MustLearn)
}

func TestHandleTurn_MenuListsPlansSorted(t *testing.T) {
	engine := newDemoEngine()
	sess := NewSession()

	replies, fallback := engine.HandleTurn(sess, "1")

	assert.False(t, fallback)
	assert.True(t, sess.AwaitingPick)
	require.Len(t, sess.Candidates, 3)

	msg := lastReply(t, replies)
	assert.Contains(t, msg.Text, "Danh sách kế hoạch")
	assert.Contains(t, msg.Text, "**1.** Batch X")
	assert.Contains(t, msg.Text, "**3.** Tháng 12")
}

func TestHandleTurn_MenuEmptyTrainings(t *testing.T) {
	engine := NewEngine(Snapshot{Courses: demoSnapshot().Courses})
	sess := NewSession()

	replies, _ := engine.HandleTurn(sess, "1")

	assert.False(t, sess.AwaitingPick)
	assert.Contains(t, lastReply(t, replies).Text, "Chưa có kế hoạch để liệt kê")
}

func TestHandleTurn_PickRunsDelayQuery(t *testing.T) {
	engine := newDemoEngine()
	sess := NewSession()

	engine.HandleTurn(sess, "1")
	// Candidates sort theo tên: 3 = Tháng 12.
	replies, fallback := engine.HandleTurn(sess, "3")

	assert.False(t, fallback)
	assert.False(t, sess.AwaitingPick)
	assert.Empty(t, sess.Candidates)

	require.GreaterOrEqual(t, len(replies), 2)
	assert.Contains(t, replies[0].Text, "đang kiểm tra tiến độ")
	assert.Equal(t, KindDelayOverview, replies[1].Kind)
	assert.Equal(t, "Tháng 12", replies[1].Overview[0].PlanName)
}

func TestHandleTurn_PickOutOfRange(t *testing.T) {
	engine := newDemoEngine()
	sess := NewSession()

	engine.HandleTurn(sess, "1")
	replies, fallback := engine.HandleTurn(sess, "9")

	assert.False(t, fallback)
	// Vẫn ở chế độ chờ chọn để người dùng thử lại.
	assert.True(t, sess.AwaitingPick)
	assert.Contains(t, lastReply(t, replies).Text, "1 đến 3")
}

func TestHandleTurn_PickCancel(t *testing.T) {
	engine := newDemoEngine()
	sess := NewSession()

	engine.HandleTurn(sess, "1")
	replies, _ := engine.HandleTurn(sess, "0")

	assert.False(t, sess.AwaitingPick)
	assert.Empty(t, sess.Candidates)
	assert.Contains(t, lastReply(t, replies).Text, "Đã huỷ chọn kế hoạch")

	// Sau khi huỷ, "1" không còn hiệu lực chọn: nó mở lại menu.
	replies, fallback := engine.HandleTurn(sess, "1")
	assert.False(t, fallback)
	assert.True(t, sess.AwaitingPick)
	assert.Contains(t, lastReply(t, replies).Text, "Danh sách kế hoạch")
}

func TestHandleTurn_NonDigitWhileAwaitingFallsThrough(t *testing.T) {
	engine := newDemoEngine()
	sess := NewSession()

	engine.HandleTurn(sess, "1")

	// Câu hỏi "chậm ..." vẫn được xử lý bình thường, trạng thái chờ giữ nguyên.
	replies, fallback := engine.HandleTurn(sess, "chậm tháng 12")
	assert.False(t, fallback)
	assert.Equal(t, KindDelayOverview, lastReply(t, replies).Kind)
	assert.True(t, sess.AwaitingPick)

	// Chữ tự do không khớp gì => đẩy sang AI chat, không đổi trạng thái.
	replies, fallback = engine.HandleTurn(sess, "xin chào bé")
	assert.True(t, fallback)
	assert.Empty(t, replies)
	assert.True(t, sess.AwaitingPick)
}

func TestHandleTurn_FreeTextNeedsFallback(t *testing.T) {
	engine := newDemoEngine()
	sess := NewSession()

	replies, fallback := engine.HandleTurn(sess, "lương thực tập bao nhiêu?")

	assert.True(t, fallback)
	assert.Empty(t, replies)
	// Message của người dùng vẫn được ghi vào session.
	last := sess.Messages[len(sess.Messages)-1]
	assert.Equal(t, SenderUser, last.Sender)
}

func TestHandleTurn_EmptyInputIgnored(t *testing.T) {
	engine := newDemoEngine()
	sess := NewSession()

	replies, fallback := engine.HandleTurn(sess, "   ")

	assert.False(t, fallback)
	assert.Empty(t, replies)
	assert.Len(t, sess.Messages, 1)
}
