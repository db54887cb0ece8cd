package services

import (
	"context"
	"fmt"
	"time"

	"github.com/khanhtv/traincrew/internal/logging"
	"github.com/khanhtv/traincrew/internal/notify"
	"github.com/khanhtv/traincrew/internal/records"
	"github.com/khanhtv/traincrew/internal/recordstore"
	"github.com/khanhtv/traincrew/internal/sharelink"
)

// IncidentService records incident reports with photo evidence and PDF
// paperwork.
type IncidentService struct {
	store         *recordstore.Store[records.IncidentRecord]
	log           *notify.Log
	logger        logging.Logger
	photoMaxWidth int
	photoQuality  float64
	now           func() time.Time
}

func NewIncidentService(store *recordstore.Store[records.IncidentRecord], log *notify.Log, logger logging.Logger, photoMaxWidth int, photoQuality float64) *IncidentService {
	return &IncidentService{
		store:         store,
		log:           log,
		logger:        logger,
		photoMaxWidth: photoMaxWidth,
		photoQuality:  photoQuality,
		now:           time.Now,
	}
}

func (s *IncidentService) List() []records.IncidentRecord {
	return s.store.All()
}

func (s *IncidentService) Get(id string) (records.IncidentRecord, error) {
	return s.store.Get(id)
}

// Report stores a new incident. Photos are normalized and kept as bare
// tokens, PDFs keep their file names, and a notification with a copy of
// the report is appended.
func (s *IncidentService) Report(ctx context.Context, description string, imagePaths, pdfPaths []string) (records.IncidentRecord, error) {
	images, err := normalizeImages(imagePaths, s.photoMaxWidth, s.photoQuality)
	if err != nil {
		return records.IncidentRecord{}, err
	}
	pdfs, err := pdfAttachments(ctx, pdfPaths)
	if err != nil {
		return records.IncidentRecord{}, err
	}
	named := make([]records.NamedToken, 0, len(pdfs))
	for _, f := range pdfs {
		named = append(named, records.NamedToken{Name: f.Name, URL: f.URL})
	}

	record := records.IncidentRecord{
		ID:          records.NewID(),
		Description: description,
		Images:      images,
		PDFs:        named,
		Timestamp:   records.FormatTimestamp(s.now()),
	}
	if err := s.store.Insert(ctx, record); err != nil {
		return records.IncidentRecord{}, err
	}

	if _, err := s.log.Append(ctx, "Sự cố mới", "Đã ghi nhận báo cáo sự cố", &records.NotificationDetails{
		Content: description,
		Files:   s.Attachments(record),
	}); err != nil {
		s.logger.Warn("incident saved but notification failed", "id", record.ID, "error", err)
	}
	return record, nil
}

func (s *IncidentService) Remove(ctx context.Context, id string) error {
	return s.store.Remove(ctx, id)
}

// Attachments flattens an incident's images and PDFs into the common
// attachment shape. Images get sequential display names.
func (s *IncidentService) Attachments(r records.IncidentRecord) []records.Attachment {
	out := make([]records.Attachment, 0, len(r.Images)+len(r.PDFs))
	for i, token := range r.Images {
		out = append(out, records.Attachment{
			Name: fmt.Sprintf("Ảnh sự cố %d.jpg", i+1),
			URL:  token,
			Type: records.AttachmentImage,
		})
	}
	for _, pdf := range r.PDFs {
		out = append(out, records.Attachment{Name: pdf.Name, URL: pdf.URL, Type: records.AttachmentPDF})
	}
	return out
}

// SharePayload builds the share payload for one incident. Attachments stay
// local.
func (s *IncidentService) SharePayload(id string) (sharelink.Payload, error) {
	r, err := s.store.Get(id)
	if err != nil {
		return sharelink.Payload{}, err
	}
	return sharelink.Payload{Incident: &sharelink.Incident{
		Description: r.Description,
		Timestamp:   r.Timestamp,
	}}, nil
}
