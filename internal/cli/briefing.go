package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

func (a *App) Briefings(context.Context) error {
	items := a.briefings.List()
	if len(items) == 0 {
		printlnFn("No briefings yet")
		return nil
	}
	for _, r := range items {
		printlnFn(fmt.Sprintf("%s  %s  (%d files)", r.ID, r.Timestamp, len(r.Files)))
	}
	return nil
}

func (a *App) BriefingAdd(ctx context.Context) error {
	review, err := GetMultiline(a.reader, "Rút kinh nghiệm", os.Stdout)
	if err != nil {
		return err
	}
	plan, err := GetMultiline(a.reader, "Triển khai", os.Stdout)
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

	r, err := a.briefings.Create(ctx, review, plan, images, pdfs)
	if err != nil {
		a.logger.Error("briefing create failed", "error", err)
		a.printErr(err)
		return err
	}
	printlnFn("Saved briefing", r.ID)
	return nil
}

func (a *App) BriefingEdit(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Briefing ID", os.Stdout)
	if err != nil {
		return err
	}
	review, err := GetMultiline(a.reader, "Rút kinh nghiệm", os.Stdout)
	if err != nil {
		return err
	}
	plan, err := GetMultiline(a.reader, "Triển khai", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.briefings.Edit(ctx, id, review, plan); err != nil {
		a.logger.Error("briefing edit failed", "id", id, "error", err)
		a.printErr(err)
		return err
	}
	printlnFn("Updated")
	return nil
}

func (a *App) BriefingDelete(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Briefing ID", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.briefings.Remove(ctx, id); err != nil {
		a.printErr(err)
		return err
	}
	printlnFn("Removed")
	return nil
}

func (a *App) BriefingShare(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Briefing ID", os.Stdout)
	if err != nil {
		return err
	}
	p, err := a.briefings.SharePayload(id)
	if err != nil {
		a.printErr(err)
		return err
	}
	r, err := a.briefings.Get(id)
	if err != nil {
		return err
	}
	text := fmt.Sprintf("Biên bản giao ban %s\nRút kinh nghiệm: %s\nTriển khai: %s", r.Timestamp, r.Review, r.Plan)
	return a.share(p, text, r.Files)
}

// BriefingOpen opens one attachment of a briefing with the configured
// viewer.
func (a *App) BriefingOpen(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Briefing ID", os.Stdout)
	if err != nil {
		return err
	}
	r, err := a.briefings.Get(id)
	if err != nil {
		a.printErr(err)
		return err
	}
	if len(r.Files) == 0 {
		printlnFn("No attachments")
		return nil
	}
	for i, f := range r.Files {
		printlnFn(fmt.Sprintf("%d. %s (%s)", i+1, f.Name, f.Type))
	}
	numText, err := GetSimpleText(a.reader, "Attachment number", os.Stdout)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(numText)
	if err != nil || n < 1 || n > len(r.Files) {
		printlnFn("Invalid attachment number")
		return nil
	}

	f := r.Files[n-1]
	path, err := a.opener.Open(ctx, f.URL, f.Name)
	if err != nil {
		a.logger.Error("open attachment failed", "name", f.Name, "error", err)
		a.printErr(err)
		return err
	}
	printlnFn("Opened", path)
	return nil
}
