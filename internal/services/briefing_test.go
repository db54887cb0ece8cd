package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanhtv/traincrew/internal/notify"
	"github.com/khanhtv/traincrew/internal/records"
	"github.com/khanhtv/traincrew/internal/recordstore"
)

func newBriefingService(t *testing.T) (*BriefingService, *notify.Log) {
	t.Helper()
	st := testStorage(t)
	store := recordstore.New[records.BriefingRecord](records.NamespaceBriefings, st, testLogger())
	log := testNotifyLog(t, st)
	return NewBriefingService(store, log, testLogger(), 1024, 0.6), log
}

func TestBriefing_Create(t *testing.T) {
	svc, log := newBriefingService(t)
	dir := t.TempDir()
	photo := writeJPEG(t, dir, "scene.jpg", 2000, 1000)
	pdf := writePDF(t, dir, "bien-ban.pdf")

	r, err := svc.Create(context.Background(), "Đi đúng giờ", "Chú ý tốc độ km 40", []string{photo}, []string{pdf})
	require.NoError(t, err)

	require.Len(t, r.Files, 2)
	assert.Equal(t, "scene.jpg", r.Files[0].Name)
	assert.Equal(t, records.AttachmentImage, r.Files[0].Type)
	assert.True(t, r.Files[0].MatchesToken())
	assert.Equal(t, "bien-ban.pdf", r.Files[1].Name)
	assert.Equal(t, records.AttachmentPDF, r.Files[1].Type)
	assert.True(t, r.Files[1].MatchesToken())

	items := log.All()
	require.Len(t, items, 1)
	assert.Equal(t, "Giao ban mới", items[0].Title)
	assert.Equal(t, "Đã lưu biên bản giao ban", items[0].Msg)
	require.NotNil(t, items[0].Details)
	assert.Equal(t, "Rút kinh nghiệm: Đi đúng giờ\nTriển khai: Chú ý tốc độ km 40", items[0].Details.Content)
	assert.Len(t, items[0].Details.Files, 2)
}

func TestBriefing_Create_EmptyFieldsFallBack(t *testing.T) {
	svc, log := newBriefingService(t)

	_, err := svc.Create(context.Background(), "", "", nil, nil)
	require.NoError(t, err)

	items := log.All()
	require.Len(t, items, 1)
	assert.Equal(t, "Rút kinh nghiệm: Không\nTriển khai: Không", items[0].Details.Content)
}

func TestBriefing_Create_RejectsNonPDFPaperwork(t *testing.T) {
	svc, _ := newBriefingService(t)
	dir := t.TempDir()
	notPDF := writeJPEG(t, dir, "photo.jpg", 100, 100)

	_, err := svc.Create(context.Background(), "r", "p", nil, []string{notPDF})
	require.Error(t, err)
}

func TestBriefing_Edit_MarksTimestamp(t *testing.T) {
	svc, log := newBriefingService(t)
	ctx := context.Background()
	fixed := time.Date(2026, 1, 2, 7, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	r, err := svc.Create(ctx, "a", "b", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "07:30:00 2/1/2026", r.Timestamp)

	later := fixed.Add(time.Hour)
	svc.now = func() time.Time { return later }
	require.NoError(t, svc.Edit(ctx, r.ID, "a2", "b2"))

	got, err := svc.Get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "a2", got.Review)
	assert.True(t, strings.HasSuffix(got.Timestamp, records.EditedSuffix))
	assert.Contains(t, got.Timestamp, "08:30:00")

	items := log.All()
	require.Len(t, items, 2)
	assert.Equal(t, "Cập nhật giao ban", items[0].Title)
}

func TestBriefing_SharePayload(t *testing.T) {
	svc, _ := newBriefingService(t)
	dir := t.TempDir()
	pdf := writePDF(t, dir, "x.pdf")

	r, err := svc.Create(context.Background(), "rev", "plan", nil, []string{pdf})
	require.NoError(t, err)

	p, err := svc.SharePayload(r.ID)
	require.NoError(t, err)
	require.NotNil(t, p.Briefing)
	assert.Equal(t, "rev", p.Briefing.Review)
	assert.Equal(t, "plan", p.Briefing.Plan)
	assert.Equal(t, r.Timestamp, p.Briefing.Timestamp)
}
