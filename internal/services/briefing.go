package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/khanhtv/traincrew/internal/logging"
	"github.com/khanhtv/traincrew/internal/notify"
	"github.com/khanhtv/traincrew/internal/records"
	"github.com/khanhtv/traincrew/internal/recordstore"
	"github.com/khanhtv/traincrew/internal/sharelink"
)

// BriefingService records shift briefings: the review of the previous trip
// and the plan for the next one, with photo and PDF attachments.
type BriefingService struct {
	store         *recordstore.Store[records.BriefingRecord]
	log           *notify.Log
	logger        logging.Logger
	photoMaxWidth int
	photoQuality  float64
	now           func() time.Time
}

func NewBriefingService(store *recordstore.Store[records.BriefingRecord], log *notify.Log, logger logging.Logger, photoMaxWidth int, photoQuality float64) *BriefingService {
	return &BriefingService{
		store:         store,
		log:           log,
		logger:        logger,
		photoMaxWidth: photoMaxWidth,
		photoQuality:  photoQuality,
		now:           time.Now,
	}
}

func (s *BriefingService) List() []records.BriefingRecord {
	return s.store.All()
}

func (s *BriefingService) Get(id string) (records.BriefingRecord, error) {
	return s.store.Get(id)
}

// Create stores a new briefing. Photos are normalized before storage, PDFs
// are attached verbatim, and a notification carrying a copy of the saved
// content is appended.
func (s *BriefingService) Create(ctx context.Context, review, plan string, imagePaths, pdfPaths []string) (records.BriefingRecord, error) {
	files, err := s.attachments(ctx, imagePaths, pdfPaths)
	if err != nil {
		return records.BriefingRecord{}, err
	}

	record := records.BriefingRecord{
		ID:        records.NewID(),
		Timestamp: records.FormatTimestamp(s.now()),
		Review:    review,
		Plan:      plan,
		Files:     files,
	}
	if err := s.store.Insert(ctx, record); err != nil {
		return records.BriefingRecord{}, err
	}

	if _, err := s.log.Append(ctx, "Giao ban mới", "Đã lưu biên bản giao ban", &records.NotificationDetails{
		Content: briefingSummary(review, plan),
		Files:   record.Files,
	}); err != nil {
		s.logger.Warn("briefing saved but notification failed", "id", record.ID, "error", err)
	}
	return record, nil
}

// Edit replaces the review and plan, restamps the record, and marks the
// timestamp as edited.
func (s *BriefingService) Edit(ctx context.Context, id, review, plan string) error {
	var updated records.BriefingRecord
	err := s.store.Update(ctx, id, func(r records.BriefingRecord) records.BriefingRecord {
		r.Review = review
		r.Plan = plan
		r.Timestamp = records.FormatTimestamp(s.now()) + records.EditedSuffix
		updated = r
		return r
	})
	if err != nil {
		return err
	}

	if _, err := s.log.Append(ctx, "Cập nhật giao ban", "Đã cập nhật biên bản giao ban", &records.NotificationDetails{
		Content: briefingSummary(review, plan),
		Files:   updated.Files,
	}); err != nil {
		s.logger.Warn("briefing saved but notification failed", "id", id, "error", err)
	}
	return nil
}

func (s *BriefingService) Remove(ctx context.Context, id string) error {
	return s.store.Remove(ctx, id)
}

// SharePayload builds the share payload for one briefing. Attachments stay
// local.
func (s *BriefingService) SharePayload(id string) (sharelink.Payload, error) {
	r, err := s.store.Get(id)
	if err != nil {
		return sharelink.Payload{}, err
	}
	return sharelink.Payload{Briefing: &sharelink.Briefing{
		Timestamp: r.Timestamp,
		Review:    r.Review,
		Plan:      r.Plan,
	}}, nil
}

func (s *BriefingService) attachments(ctx context.Context, imagePaths, pdfPaths []string) ([]records.Attachment, error) {
	tokens, err := normalizeImages(imagePaths, s.photoMaxWidth, s.photoQuality)
	if err != nil {
		return nil, err
	}
	files := make([]records.Attachment, 0, len(tokens)+len(pdfPaths))
	for i, token := range tokens {
		files = append(files, records.Attachment{
			Name: filepath.Base(imagePaths[i]),
			URL:  token,
			Type: records.AttachmentImage,
		})
	}
	pdfs, err := pdfAttachments(ctx, pdfPaths)
	if err != nil {
		return nil, err
	}
	return append(files, pdfs...), nil
}

// briefingSummary is the content copied into the notification details.
func briefingSummary(review, plan string) string {
	if review == "" {
		review = "Không"
	}
	if plan == "" {
		plan = "Không"
	}
	return fmt.Sprintf("Rút kinh nghiệm: %s\nTriển khai: %s", review, plan)
}
