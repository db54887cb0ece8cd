package notify

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanhtv/traincrew/internal/common"
	"github.com/khanhtv/traincrew/internal/logging"
	"github.com/khanhtv/traincrew/internal/records"
	"github.com/khanhtv/traincrew/internal/storage"

	_ "modernc.org/sqlite"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupLog(t *testing.T) *Log {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE namespaces (key TEXT PRIMARY KEY, value TEXT NOT NULL);`)
	require.NoError(t, err)

	return NewLog(storage.NewSQLiteStorage(db, 0), testLogger())
}

func TestAppend_PrependsUnread(t *testing.T) {
	l := setupLog(t)
	ctx := context.Background()

	first, err := l.Append(ctx, "Giao ban mới", "Đã lưu biên bản giao ban", nil)
	require.NoError(t, err)
	second, err := l.Append(ctx, "Sự cố mới", "Đã ghi nhận báo cáo sự cố", nil)
	require.NoError(t, err)

	items := l.All()
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)
	assert.False(t, items[0].Read)
	assert.Equal(t, 2, l.UnreadCount())
}

func TestAppend_IDsStrictlyIncrease(t *testing.T) {
	l := setupLog(t)
	fixed := time.Date(2026, 1, 2, 7, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }
	ctx := context.Background()

	a, err := l.Append(ctx, "t", "m", nil)
	require.NoError(t, err)
	b, err := l.Append(ctx, "t", "m", nil)
	require.NoError(t, err)
	c, err := l.Append(ctx, "t", "m", nil)
	require.NoError(t, err)

	assert.Greater(t, b.ID, a.ID, "same-instant appends still get distinct ids")
	assert.Greater(t, c.ID, b.ID)
}

func TestDetails_ArePointInTimeCopies(t *testing.T) {
	l := setupLog(t)
	ctx := context.Background()

	details := &records.NotificationDetails{Content: "Nội dung lúc tạo"}
	n, err := l.Append(ctx, "Văn bản mới", "msg", details)
	require.NoError(t, err)

	got, err := l.Get(n.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Details)
	assert.Equal(t, "Nội dung lúc tạo", got.Details.Content)
}

func TestMarkRead(t *testing.T) {
	l := setupLog(t)
	ctx := context.Background()

	n, err := l.Append(ctx, "t", "m", nil)
	require.NoError(t, err)
	require.Equal(t, 1, l.UnreadCount())

	require.NoError(t, l.MarkRead(ctx, n.ID))
	assert.Equal(t, 0, l.UnreadCount())

	require.NoError(t, l.MarkRead(ctx, n.ID), "already-read is a no-op")
	require.NoError(t, l.MarkRead(ctx, 999999), "unknown id is a no-op")
}

func TestRemoveAndClear(t *testing.T) {
	l := setupLog(t)
	ctx := context.Background()

	a, err := l.Append(ctx, "t", "m", nil)
	require.NoError(t, err)
	_, err = l.Append(ctx, "t2", "m2", nil)
	require.NoError(t, err)

	require.NoError(t, l.Remove(ctx, a.ID))
	assert.Len(t, l.All(), 1)
	require.NoError(t, l.Remove(ctx, a.ID), "second remove is a no-op")

	require.NoError(t, l.ClearAll(ctx))
	assert.Empty(t, l.All())
}

func TestGet_Missing(t *testing.T) {
	l := setupLog(t)
	_, err := l.Get(42)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestLoad_FreshSession(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE namespaces (key TEXT PRIMARY KEY, value TEXT NOT NULL);`)
	require.NoError(t, err)
	st := storage.NewSQLiteStorage(db, 0)
	ctx := context.Background()

	l := NewLog(st, testLogger())
	n, err := l.Append(ctx, "Quy trình mới", "msg", nil)
	require.NoError(t, err)

	fresh := NewLog(st, testLogger())
	require.NoError(t, fresh.Load(ctx))
	items := fresh.All()
	require.Len(t, items, 1)
	assert.Equal(t, n.ID, items[0].ID)
	assert.Equal(t, "Quy trình mới", items[0].Title)
}

func TestLoad_UnparsableIsEmpty(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE namespaces (key TEXT PRIMARY KEY, value TEXT NOT NULL);`)
	require.NoError(t, err)
	st := storage.NewSQLiteStorage(db, 0)
	ctx := context.Background()
	require.NoError(t, st.Set(ctx, records.NamespaceNotifications, "garbage"))

	l := NewLog(st, testLogger())
	require.NoError(t, l.Load(ctx))
	assert.Empty(t, l.All())
}
