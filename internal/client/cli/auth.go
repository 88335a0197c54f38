package cli

import (
	"context"
	"fmt"

	"github.com/navbug/compintel-cli/internal/client/validation"
)

// getSimpleText, getPassword, getMultiline and getList are indirections used
// to facilitate testing. They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline
var getList = GetList

// Register prompts for the registration form, validates it locally and
// creates the account. A successful registration logs the user in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	if err := validation.Register(name, email, password, confirm); err != nil {
		return err
	}

	resp, err := a.session.Register(ctx, name, email, password)
	if err != nil {
		return err
	}

	printlnFn("Account created. Logged in as", resp.User.Email)
	return nil
}

// Login prompts for credentials and authenticates.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	if err := validation.Login(email, password); err != nil {
		return err
	}

	resp, err := a.session.Login(ctx, email, password)
	if err != nil {
		return err
	}

	printlnFn("Logged in as", resp.User.Email)
	return nil
}

// Logout ends the session locally. It is safe to call while anonymous.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	printlnFn("Logged out.")
	return nil
}

// Whoami prints the current account and its preferences.
func (a *App) Whoami(ctx context.Context) error {
	st := a.session.Snapshot()
	if !st.Authenticated || st.User == nil {
		printlnFn("Not logged in.")
		return nil
	}

	u := st.User
	printlnFn(fmt.Sprintf("%s <%s>", u.Name, u.Email))
	printlnFn("Digest frequency:", orDash(u.Preferences.DigestFrequency))
	printlnFn("Impact threshold:", orDash(u.Preferences.NotificationSettings.ImpactThreshold))
	printlnFn("Email alerts:", onOff(u.Preferences.NotificationSettings.Email))
	printlnFn("In-app alerts:", onOff(u.Preferences.NotificationSettings.InApp))
	if len(u.Preferences.MonitoredCategories) > 0 {
		printlnFn("Monitored categories:", joinList(u.Preferences.MonitoredCategories))
	}
	return nil
}
