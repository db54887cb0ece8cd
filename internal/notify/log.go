// Package notify maintains the persistent notification feed. The feed is
// independent of the record stores: clearing it never touches records and
// deleting records never rewrites past notifications.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/khanhtv/traincrew/internal/common"
	"github.com/khanhtv/traincrew/internal/logging"
	"github.com/khanhtv/traincrew/internal/records"
	"github.com/khanhtv/traincrew/internal/storage"
)

// Log is the in-memory notification list backed by a storage namespace.
type Log struct {
	storage storage.Storage
	logger  logging.Logger
	now     func() time.Time
	items   []records.Notification
}

func NewLog(st storage.Storage, logger logging.Logger) *Log {
	return &Log{
		storage: st,
		logger:  logger.With("namespace", records.NamespaceNotifications),
		now:     time.Now,
	}
}

// Load restores the feed from storage. Absent or unparsable data yields
// an empty feed; parse failures are logged but never fatal.
func (l *Log) Load(ctx context.Context) error {
	value, ok, err := l.storage.Get(ctx, records.NamespaceNotifications)
	if err != nil {
		return fmt.Errorf("load notifications: %w", err)
	}
	if !ok {
		l.items = nil
		return nil
	}
	var items []records.Notification
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		l.logger.Warn("discarding unparsable notifications", "error", err)
		l.items = nil
		return nil
	}
	l.items = items
	return nil
}

// All returns the feed newest first.
func (l *Log) All() []records.Notification {
	out := make([]records.Notification, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Log) UnreadCount() int {
	n := 0
	for _, item := range l.items {
		if !item.Read {
			n++
		}
	}
	return n
}

// Append prepends a new unread notification and persists the feed. The id
// is derived from the current time and bumped past the newest existing id
// so ids stay strictly increasing within a session.
func (l *Log) Append(ctx context.Context, title, message string, details *records.NotificationDetails) (records.Notification, error) {
	id := l.now().UnixMilli()
	if len(l.items) > 0 && id <= l.items[0].ID {
		id = l.items[0].ID + 1
	}

	item := records.Notification{
		ID:      id,
		Title:   title,
		Msg:     message,
		Time:    records.FormatNotificationTime(l.now()),
		Read:    false,
		Details: details,
	}
	l.items = append([]records.Notification{item}, l.items...)
	if err := l.persist(ctx); err != nil {
		return records.Notification{}, err
	}
	return item, nil
}

// MarkRead flags the notification as read. Unknown ids are a no-op.
func (l *Log) MarkRead(ctx context.Context, id int64) error {
	for i := range l.items {
		if l.items[i].ID == id {
			if l.items[i].Read {
				return nil
			}
			l.items[i].Read = true
			return l.persist(ctx)
		}
	}
	return nil
}

// Get returns the notification with the given id.
func (l *Log) Get(id int64) (records.Notification, error) {
	for _, item := range l.items {
		if item.ID == id {
			return item, nil
		}
	}
	return records.Notification{}, fmt.Errorf("%w: notification %d", common.ErrNotFound, id)
}

// Remove drops the notification with the given id. Unknown ids are a
// no-op.
func (l *Log) Remove(ctx context.Context, id int64) error {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return l.persist(ctx)
		}
	}
	return nil
}

// ClearAll empties the feed.
func (l *Log) ClearAll(ctx context.Context) error {
	l.items = nil
	return l.persist(ctx)
}

func (l *Log) persist(ctx context.Context) error {
	items := l.items
	if items == nil {
		items = []records.Notification{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal notifications: %w", err)
	}
	if err := l.storage.Set(ctx, records.NamespaceNotifications, string(raw)); err != nil {
		return err
	}
	l.logger.Debug("notifications persisted", "count", len(items))
	return nil
}
