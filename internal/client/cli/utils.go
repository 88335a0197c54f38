package cli

import (
	"errors"
	"strings"
	"time"
)

// errNotLoggedIn is what resource commands return while the session is
// anonymous. The text is shown to the user verbatim.
var errNotLoggedIn = errors.New("Please login first.")

func (a *App) requireAuth() error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func joinList(items []string) string {
	return strings.Join(items, ", ")
}

// shortDate renders a timestamp for list views; zero times become a dash.
func shortDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// truncate shortens s to at most n runes for table cells.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
