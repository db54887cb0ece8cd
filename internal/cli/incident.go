package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/khanhtv/traincrew/internal/services"
)

func (a *App) Incidents(context.Context) error {
	items := a.incidents.List()
	if len(items) == 0 {
		printlnFn("No incidents yet")
		return nil
	}
	for _, r := range items {
		printlnFn(fmt.Sprintf("%s  %s  (%d photos, %d PDFs)", r.ID, r.Timestamp, len(r.Images), len(r.PDFs)))
	}
	return nil
}

func (a *App) IncidentAdd(ctx context.Context) error {
	description, err := GetMultiline(a.reader, "Mô tả sự cố", os.Stdout)
	if err != nil {
		return err
	}
	images, err := GetPathList(a.reader, "Photo paths (comma separated, optional)", os.Stdout)
	if err != nil {
		return err
	}
	pdfs, err := GetPathList(a.reader, "PDF paths (comma separated, optional)", os.Stdout)
	if err != nil {
		return err
	}

	r, err := a.incidents.Report(ctx, description, images, pdfs)
	if err != nil {
		a.logger.Error("incident report failed", "error", err)
		a.printErr(err)
		return err
	}
	printlnFn("Saved incident", r.ID)
	return nil
}

func (a *App) IncidentDelete(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Incident ID", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.incidents.Remove(ctx, id); err != nil {
		a.printErr(err)
		return err
	}
	printlnFn("Removed")
	return nil
}

func (a *App) IncidentShare(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Incident ID", os.Stdout)
	if err != nil {
		return err
	}
	p, err := a.incidents.SharePayload(id)
	if err != nil {
		a.printErr(err)
		return err
	}
	r, err := a.incidents.Get(id)
	if err != nil {
		return err
	}
	text := fmt.Sprintf("Báo cáo sự cố %s\n%s", r.Timestamp, r.Description)
	return a.share(p, text, a.incidents.Attachments(r))
}

func (a *App) IncidentOpen(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Incident ID", os.Stdout)
	if err != nil {
		return err
	}
	r, err := a.incidents.Get(id)
	if err != nil {
		a.printErr(err)
		return err
	}
	files := a.incidents.Attachments(r)
	if len(files) == 0 {
		printlnFn("No attachments")
		return nil
	}
	for i, f := range files {
		printlnFn(fmt.Sprintf("%d. %s (%s)", i+1, f.Name, f.Type))
	}
	numText, err := GetSimpleText(a.reader, "Attachment number", os.Stdout)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(numText)
	if err != nil || n < 1 || n > len(files) {
		printlnFn("Invalid attachment number")
		return nil
	}

	f := files[n-1]
	path, err := a.opener.Open(ctx, f.URL, f.Name)
	if err != nil {
		a.logger.Error("open attachment failed", "name", f.Name, "error", err)
		a.printErr(err)
		return err
	}
	printlnFn("Opened", path)
	return nil
}

// Assignment composes a one-off duty assignment and shares it without
// storing anything.
func (a *App) Assignment(ctx context.Context) error {
	trainID, err := GetSimpleText(a.reader, "Train", os.Stdout)
	if err != nil {
		return err
	}
	date, err := GetSimpleText(a.reader, "Date", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Nội dung phân công", os.Stdout)
	if err != nil {
		return err
	}

	return a.share(
		services.ComposeAssignment(trainID, date, content),
		services.AssignmentText(trainID, date, content),
		nil,
	)
}
