package cli

import (
	"fmt"

	"github.com/khanhtv/traincrew/internal/datauri"
	"github.com/khanhtv/traincrew/internal/records"
	"github.com/khanhtv/traincrew/internal/sharelink"
)

// share prints the share text and link, then materializes the record's
// attachments next to it. Attachments travel as files, never inside the
// link.
func (a *App) share(p sharelink.Payload, text string, files []records.Attachment) error {
	token, err := sharelink.Encode(p)
	if err != nil {
		a.logger.Error("share encode failed", "error", err)
		return err
	}

	printlnFn(text)
	printlnFn(sharelink.BuildURL(a.config.ShareBaseURL, token))

	for _, f := range files {
		path, err := datauri.ToShareableFile(a.config.DataDir, f.URL, f.Name)
		if err != nil {
			a.logger.Warn("could not materialize attachment", "name", f.Name, "error", err)
			continue
		}
		if path != "" {
			printlnFn("File:", path)
		}
	}
	return nil
}

// OpenSharedURL decodes the share token carried in rawURL and renders it.
// URLs without a token are ignored; a bad token produces a single uniform
// message.
func (a *App) OpenSharedURL(rawURL string) {
	token, ok := sharelink.ExtractToken(rawURL)
	if !ok {
		return
	}
	p, err := sharelink.Decode(token)
	if err != nil {
		printlnFn("Không thể mở liên kết chia sẻ")
		a.logger.Warn("share link rejected", "url", sharelink.CleanURL(rawURL))
		return
	}
	a.renderShared(p)
	printlnFn(sharelink.CleanURL(rawURL))
}

func (a *App) renderShared(p sharelink.Payload) {
	switch {
	case p.Assignment != nil:
		printlnFn("== Phân công ==")
		printlnFn("Tàu:", p.Assignment.TrainID)
		printlnFn("Ngày:", p.Assignment.Date)
		printlnFn(p.Assignment.Content)

	case p.Briefing != nil:
		printlnFn("== Biên bản giao ban ==")
		printlnFn(p.Briefing.Timestamp)
		printlnFn("Rút kinh nghiệm:", p.Briefing.Review)
		printlnFn("Triển khai:", p.Briefing.Plan)

	case p.Incident != nil:
		printlnFn("== Báo cáo sự cố ==")
		printlnFn(p.Incident.Timestamp)
		printlnFn(p.Incident.Description)

	case p.Document != nil:
		printlnFn("== " + p.Document.Title + " ==")
		printlnFn(p.Document.Date)
		printlnFn(p.Document.Content)

	case p.Crew != nil:
		printlnFn("== Danh sách tổ lái ==")
		for i, m := range p.Crew.List {
			printlnFn(fmt.Sprintf("%d. %s - %s - SĐT: %s", i+1, m.Name, m.Role, m.Phone))
		}
	}
}
