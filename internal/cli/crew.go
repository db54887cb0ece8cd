package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Crew(context.Context) error {
	members := a.crew.List()
	if len(members) == 0 {
		printlnFn("No crew members yet")
		return nil
	}
	for _, m := range members {
		printlnFn(fmt.Sprintf("%s  %s (%s)  SĐT: %s  Zalo: %s", m.ID, m.Name, m.Role, m.Phone, m.Zalo))
	}
	return nil
}

func (a *App) CrewAdd(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Phone", os.Stdout)
	if err != nil {
		return err
	}
	zalo, err := GetSimpleText(a.reader, "Zalo (empty = same as phone)", os.Stdout)
	if err != nil {
		return err
	}
	role, err := GetSimpleText(a.reader, "Role (empty = default)", os.Stdout)
	if err != nil {
		return err
	}
	photo, err := GetSimpleText(a.reader, "Photo path (optional)", os.Stdout)
	if err != nil {
		return err
	}

	m, err := a.crew.Add(ctx, name, phone, zalo, role, photo)
	if err != nil {
		a.logger.Error("crew add failed", "error", err)
		a.printErr(err)
		return err
	}
	printlnFn("Added", m.Name, "with id", m.ID)
	return nil
}

func (a *App) CrewEdit(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Member ID", os.Stdout)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "New name (empty = keep)", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "New phone (empty = keep)", os.Stdout)
	if err != nil {
		return err
	}
	zalo, err := GetSimpleText(a.reader, "New zalo (empty = keep)", os.Stdout)
	if err != nil {
		return err
	}
	role, err := GetSimpleText(a.reader, "New role (empty = keep)", os.Stdout)
	if err != nil {
		return err
	}
	photo, err := GetSimpleText(a.reader, "New photo path (empty = keep)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.crew.Update(ctx, id, name, phone, zalo, role, photo); err != nil {
		a.logger.Error("crew edit failed", "id", id, "error", err)
		a.printErr(err)
		return err
	}
	printlnFn("Updated")
	return nil
}

func (a *App) CrewDelete(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Member ID", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.crew.Remove(ctx, id); err != nil {
		a.logger.Error("crew delete failed", "id", id, "error", err)
		a.printErr(err)
		return err
	}
	printlnFn("Removed")
	return nil
}

func (a *App) CrewShare(context.Context) error {
	return a.share(a.crew.SharePayload(), a.crew.RosterText(), nil)
}
