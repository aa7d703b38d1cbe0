package cli

import (
	"context"
	"fmt"
	"strings"
)

// Profile shows the signed-in account, refreshed from the server.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.auth.RefreshProfile(ctx)
	if err != nil {
		a.reportErr(ctx, err)
		return err
	}
	printlnFn(fmt.Sprintf("Name:   %s", user.Name))
	printlnFn(fmt.Sprintf("Email:  %s", user.Email))
	printlnFn(fmt.Sprintf("Role:   %s", user.Role))
	if !user.CreatedAt.IsZero() {
		printlnFn(fmt.Sprintf("Since:  %s", user.CreatedAt.Format("2006-01-02")))
	}
	return nil
}

// Rename changes the display name.
func (a *App) Rename(ctx context.Context) error {
	name, err := getOptionalText(a.reader, "New name", a.sess.User().Name, a.out)
	if err != nil {
		return err
	}
	user, err := a.auth.UpdateProfile(ctx, name)
	if err != nil {
		a.reportErr(ctx, err)
		return err
	}
	printlnFn(fmt.Sprintf("Name changed to %s", user.Name))
	return nil
}

// Passwd changes the account password, verifying the current one.
func (a *App) Passwd(ctx context.Context) error {
	current, err := getPassword("Current password", a.out)
	if err != nil {
		return err
	}
	newPassword, err := getPassword("New password", a.out)
	if err != nil {
		return err
	}
	if err := a.auth.ChangePassword(ctx, current, newPassword); err != nil {
		a.reportErr(ctx, err)
		return err
	}
	printlnFn("Password changed")
	return nil
}

// DeleteAcc removes the account after an explicit confirmation and a
// password check. The session ends with it.
func (a *App) DeleteAcc(ctx context.Context) error {
	answer, err := getSimpleText(a.reader,
		"This permanently deletes your account and collection. Continue? (y/N)", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		printlnFn("Cancelled")
		return nil
	}
	password, err := getPassword("Current password", a.out)
	if err != nil {
		return err
	}
	if err := a.auth.DeleteAccount(ctx, password); err != nil {
		a.reportErr(ctx, err)
		return err
	}
	a.view.SetTickets(nil)
	printlnFn("Account deleted")
	return nil
}
