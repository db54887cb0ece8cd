package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

func (a *App) Notifications(context.Context) error {
	items := a.notices.All()
	if len(items) == 0 {
		printlnFn("No notifications")
		return nil
	}
	for _, n := range items {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s %d  %s  %s: %s", marker, n.ID, n.Time, n.Title, n.Msg))
	}
	return nil
}

// NotificationShow prints one notification's stored details and marks it
// read.
func (a *App) NotificationShow(ctx context.Context) error {
	id, err := a.promptNoticeID()
	if err != nil {
		return err
	}
	n, err := a.notices.Get(id)
	if err != nil {
		a.printErr(err)
		return err
	}

	printlnFn(n.Title, "-", n.Time)
	printlnFn(n.Msg)
	if n.Details != nil {
		printlnFn(n.Details.Content)
		for _, f := range n.Details.Files {
			printlnFn("-", f.Name, "("+f.Type+")")
		}
	}
	if err := a.notices.MarkRead(ctx, id); err != nil {
		a.logger.Warn("mark read failed", "id", id, "error", err)
	}
	return nil
}

func (a *App) NotificationDelete(ctx context.Context) error {
	id, err := a.promptNoticeID()
	if err != nil {
		return err
	}
	if err := a.notices.Remove(ctx, id); err != nil {
		a.printErr(err)
		return err
	}
	printlnFn("Removed")
	return nil
}

func (a *App) NotificationClear(ctx context.Context) error {
	if err := a.notices.ClearAll(ctx); err != nil {
		a.printErr(err)
		return err
	}
	printlnFn("Cleared")
	return nil
}

func (a *App) promptNoticeID() (int64, error) {
	text, err := GetSimpleText(a.reader, "Notification ID", os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		printlnFn("Invalid notification ID")
		return 0, err
	}
	return id, nil
}
