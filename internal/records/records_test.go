package records

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanhtv/traincrew/internal/datauri"
)

func TestNewCrewMember_Defaults(t *testing.T) {
	m := NewCrewMember("Nguyen Van A", "0900000000", "", "", "")

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "0900000000", m.Zalo, "zalo defaults to phone")
	assert.Equal(t, "Nhân viên", m.Role)
	assert.True(t, strings.HasPrefix(m.Avatar, "https://"), "fallback avatar must be non-empty")
}

func TestNewCrewMember_ExplicitValuesKept(t *testing.T) {
	avatar := string(datauri.Encode([]byte{0xFF, 0xD8}, "image/jpeg"))
	m := NewCrewMember("Tran Thi B", "0911111111", "0922222222", "Trưởng tàu", avatar)

	assert.Equal(t, "0922222222", m.Zalo)
	assert.Equal(t, "Trưởng tàu", m.Role)
	assert.Equal(t, avatar, m.Avatar)
}

func TestNewCrewMember_UniqueIDs(t *testing.T) {
	a := NewCrewMember("A", "1", "", "", "")
	b := NewCrewMember("B", "2", "", "", "")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAttachment_MatchesToken(t *testing.T) {
	pdf := datauri.Encode([]byte("%PDF-1.4"), "application/pdf")
	img := datauri.Encode([]byte{0xFF, 0xD8}, "image/jpeg")

	assert.True(t, Attachment{Name: "a.pdf", URL: pdf, Type: AttachmentPDF}.MatchesToken())
	assert.True(t, Attachment{Name: "b.jpg", URL: img, Type: AttachmentImage}.MatchesToken())
	assert.False(t, Attachment{Name: "a.pdf", URL: img, Type: AttachmentPDF}.MatchesToken())
	assert.False(t, Attachment{Name: "x", URL: "garbage", Type: AttachmentImage}.MatchesToken())
}

func TestNotification_JSONShape(t *testing.T) {
	n := Notification{
		ID:    1700000000000,
		Title: "Giao ban mới",
		Msg:   "Đã lưu biên bản giao ban",
		Time:  "14:30 25/12",
		Details: &NotificationDetails{
			Content: "Rút kinh nghiệm: Test",
			Files:   []Attachment{{Name: "a.pdf", URL: "data:application/pdf;base64,", Type: AttachmentPDF}},
		},
	}

	b, err := json.Marshal(n)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Contains(t, m, "id")
	assert.Contains(t, m, "msg")
	assert.Contains(t, m, "read")
	assert.Contains(t, m, "details")

	// details omitted when absent
	b, err = json.Marshal(Notification{ID: 1, Title: "t", Msg: "m"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "details")
}
