package services

import (
	"context"
	"fmt"
	"time"

	"github.com/khanhtv/traincrew/internal/common"
	"github.com/khanhtv/traincrew/internal/logging"
	"github.com/khanhtv/traincrew/internal/notify"
	"github.com/khanhtv/traincrew/internal/records"
	"github.com/khanhtv/traincrew/internal/recordstore"
	"github.com/khanhtv/traincrew/internal/sharelink"
)

// DocumentService manages the two document feeds, general dispatch
// documents and coupling procedures, each backed by its own namespace.
type DocumentService struct {
	general  *recordstore.Store[records.DocumentItem]
	coupling *recordstore.Store[records.DocumentItem]
	log      *notify.Log
	logger   logging.Logger
	now      func() time.Time
}

func NewDocumentService(general, coupling *recordstore.Store[records.DocumentItem], log *notify.Log, logger logging.Logger) *DocumentService {
	return &DocumentService{
		general:  general,
		coupling: coupling,
		log:      log,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *DocumentService) store(docType string) (*recordstore.Store[records.DocumentItem], error) {
	switch docType {
	case records.DocumentGeneral:
		return s.general, nil
	case records.DocumentCoupling:
		return s.coupling, nil
	}
	return nil, fmt.Errorf("%w: unknown document type %q", common.ErrFormat, docType)
}

func (s *DocumentService) List(docType string) ([]records.DocumentItem, error) {
	st, err := s.store(docType)
	if err != nil {
		return nil, err
	}
	return st.All(), nil
}

func (s *DocumentService) Get(docType, id string) (records.DocumentItem, error) {
	st, err := s.store(docType)
	if err != nil {
		return records.DocumentItem{}, err
	}
	return st.Get(id)
}

// Create stores a document in the feed selected by docType. An empty title
// falls back to the feed's default heading. The notification preview is
// the first 50 characters of the content.
func (s *DocumentService) Create(ctx context.Context, docType, title, content string, pdfPaths []string) (records.DocumentItem, error) {
	st, err := s.store(docType)
	if err != nil {
		return records.DocumentItem{}, err
	}
	if title == "" {
		title = defaultTitle(docType)
	}
	files, err := pdfAttachments(ctx, pdfPaths)
	if err != nil {
		return records.DocumentItem{}, err
	}

	item := records.DocumentItem{
		ID:      records.NewID(),
		Title:   title,
		Date:    records.FormatTimestamp(s.now()),
		Content: content,
		Type:    docType,
		Files:   files,
	}
	if err := st.Insert(ctx, item); err != nil {
		return records.DocumentItem{}, err
	}

	s.notify(ctx, createTitle(docType), item)
	return item, nil
}

// Update replaces the title and content and restamps the record as edited.
func (s *DocumentService) Update(ctx context.Context, docType, id, title, content string) error {
	st, err := s.store(docType)
	if err != nil {
		return err
	}
	var updated records.DocumentItem
	err = st.Update(ctx, id, func(d records.DocumentItem) records.DocumentItem {
		if title != "" {
			d.Title = title
		}
		if content != "" {
			d.Content = content
		}
		d.Date = records.FormatTimestamp(s.now()) + records.EditedSuffix
		updated = d
		return d
	})
	if err != nil {
		return err
	}

	s.notify(ctx, updateTitle(docType), updated)
	return nil
}

func (s *DocumentService) Remove(ctx context.Context, docType, id string) error {
	st, err := s.store(docType)
	if err != nil {
		return err
	}
	return st.Remove(ctx, id)
}

// SharePayload builds the share payload for one document. Attachments stay
// local.
func (s *DocumentService) SharePayload(docType, id string) (sharelink.Payload, error) {
	item, err := s.Get(docType, id)
	if err != nil {
		return sharelink.Payload{}, err
	}
	return sharelink.Payload{Document: &sharelink.Document{
		Title:   item.Title,
		Date:    item.Date,
		Content: item.Content,
	}}, nil
}

func (s *DocumentService) notify(ctx context.Context, title string, item records.DocumentItem) {
	if _, err := s.log.Append(ctx, title, item.Title, &records.NotificationDetails{
		Content: preview(item.Content),
		Files:   item.Files,
	}); err != nil {
		s.logger.Warn("document saved but notification failed", "id", item.ID, "error", err)
	}
}

func defaultTitle(docType string) string {
	if docType == records.DocumentCoupling {
		return "Quy trình cắt nối"
	}
	return "Văn bản triển khai"
}

func createTitle(docType string) string {
	if docType == records.DocumentCoupling {
		return "Quy trình mới"
	}
	return "Văn bản mới"
}

func updateTitle(docType string) string {
	if docType == records.DocumentCoupling {
		return "Cập nhật quy trình"
	}
	return "Cập nhật văn bản"
}

// preview truncates content to the first 50 characters for notification
// details.
func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= 50 {
		return content
	}
	return string(runes[:50]) + "..."
}
