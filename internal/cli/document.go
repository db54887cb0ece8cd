package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/khanhtv/traincrew/internal/records"
)

// promptDocType asks which feed to use: general dispatch documents or
// coupling procedures.
func (a *App) promptDocType() (string, error) {
	answer, err := GetSimpleText(a.reader, "Feed: (g)eneral or (c)oupling", os.Stdout)
	if err != nil {
		return "", err
	}
	switch answer {
	case "c", "coupling":
		return records.DocumentCoupling, nil
	default:
		return records.DocumentGeneral, nil
	}
}

func (a *App) Documents(context.Context) error {
	docType, err := a.promptDocType()
	if err != nil {
		return err
	}
	items, err := a.documents.List(docType)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		printlnFn("No documents yet")
		return nil
	}
	for _, d := range items {
		printlnFn(fmt.Sprintf("%s  %s  %s", d.ID, d.Date, d.Title))
	}
	return nil
}

func (a *App) DocumentAdd(ctx context.Context) error {
	docType, err := a.promptDocType()
	if err != nil {
		return err
	}
	title, err := GetSimpleText(a.reader, "Title (empty = default)", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Content", os.Stdout)
	if err != nil {
		return err
	}
	pdfs, err := GetPathList(a.reader, "PDF paths (comma separated, optional)", os.Stdout)
	if err != nil {
		return err
	}

	d, err := a.documents.Create(ctx, docType, title, content, pdfs)
	if err != nil {
		a.logger.Error("document create failed", "error", err)
		a.printErr(err)
		return err
	}
	printlnFn("Saved document", d.ID)
	return nil
}

func (a *App) DocumentEdit(ctx context.Context) error {
	docType, err := a.promptDocType()
	if err != nil {
		return err
	}
	id, err := GetSimpleText(a.reader, "Document ID", os.Stdout)
	if err != nil {
		return err
	}
	title, err := GetSimpleText(a.reader, "New title (empty = keep)", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "New content (empty = keep)", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.documents.Update(ctx, docType, id, title, content); err != nil {
		a.logger.Error("document edit failed", "id", id, "error", err)
		a.printErr(err)
		return err
	}
	printlnFn("Updated")
	return nil
}

func (a *App) DocumentDelete(ctx context.Context) error {
	docType, err := a.promptDocType()
	if err != nil {
		return err
	}
	id, err := GetSimpleText(a.reader, "Document ID", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.documents.Remove(ctx, docType, id); err != nil {
		a.printErr(err)
		return err
	}
	printlnFn("Removed")
	return nil
}

func (a *App) DocumentShare(ctx context.Context) error {
	docType, err := a.promptDocType()
	if err != nil {
		return err
	}
	id, err := GetSimpleText(a.reader, "Document ID", os.Stdout)
	if err != nil {
		return err
	}
	p, err := a.documents.SharePayload(docType, id)
	if err != nil {
		a.printErr(err)
		return err
	}
	d, err := a.documents.Get(docType, id)
	if err != nil {
		return err
	}
	text := fmt.Sprintf("%s (%s)\n%s", d.Title, d.Date, d.Content)
	return a.share(p, text, d.Files)
}

func (a *App) DocumentOpen(ctx context.Context) error {
	docType, err := a.promptDocType()
	if err != nil {
		return err
	}
	id, err := GetSimpleText(a.reader, "Document ID", os.Stdout)
	if err != nil {
		return err
	}
	d, err := a.documents.Get(docType, id)
	if err != nil {
		a.printErr(err)
		return err
	}
	if len(d.Files) == 0 {
		printlnFn("No attachments")
		return nil
	}
	for i, f := range d.Files {
		printlnFn(fmt.Sprintf("%d. %s (%s)", i+1, f.Name, f.Type))
	}
	numText, err := GetSimpleText(a.reader, "Attachment number", os.Stdout)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(numText)
	if err != nil || n < 1 || n > len(d.Files) {
		printlnFn("Invalid attachment number")
		return nil
	}

	f := d.Files[n-1]
	path, err := a.opener.Open(ctx, f.URL, f.Name)
	if err != nil {
		a.logger.Error("open attachment failed", "name", f.Name, "error", err)
		a.printErr(err)
		return err
	}
	printlnFn("Opened", path)
	return nil
}
