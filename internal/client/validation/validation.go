// Package validation checks user input before it is sent to the backend.
// Rules mirror what the backend enforces so most mistakes are caught without
// a round trip; the backend remains the authority.
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps field names to human-readable messages.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e[k]))
	}
	return strings.Join(parts, "; ")
}

// orNil returns the error set, or nil when everything passed, so callers can
// use the usual "if err != nil" idiom.
func (e FieldErrors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Login checks the login form.
func Login(email, password string) error {
	errs := FieldErrors{}
	checkEmail(errs, email)
	if password == "" {
		errs["password"] = "Password is required"
	} else if len(password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}
	return errs.orNil()
}

// Register checks the registration form, including password complexity and
// the confirmation match.
func Register(name, email, password, confirm string) error {
	errs := FieldErrors{}

	name = strings.TrimSpace(name)
	switch {
	case name == "":
		errs["name"] = "Name is required"
	case len(name) < 2:
		errs["name"] = "Name must be at least 2 characters"
	case len(name) > 50:
		errs["name"] = "Name must not exceed 50 characters"
	}

	checkEmail(errs, email)

	switch {
	case password == "":
		errs["password"] = "Password is required"
	case len(password) < 6:
		errs["password"] = "Password must be at least 6 characters"
	case len(password) > 50:
		errs["password"] = "Password must not exceed 50 characters"
	case !hasMixedComplexity(password):
		errs["password"] = "Password must contain at least one uppercase letter, one lowercase letter, and one number"
	}

	if _, ok := errs["password"]; !ok && password != confirm {
		errs["confirmPassword"] = "Passwords must match"
	}

	return errs.orNil()
}

// CompetitorForm is the validated subset of a competitor create/update.
type CompetitorForm struct {
	Name        string
	Website     string
	Industry    string
	Description string
	PageURLs    []string
	FeedURLs    []string
	Frequency   string
	Priority    string
}

// Competitor checks a competitor form.
func Competitor(form CompetitorForm) error {
	errs := FieldErrors{}

	name := strings.TrimSpace(form.Name)
	switch {
	case name == "":
		errs["name"] = "Company name is required"
	case len(name) < 2:
		errs["name"] = "Name must be at least 2 characters"
	case len(name) > 100:
		errs["name"] = "Name must not exceed 100 characters"
	}

	if strings.TrimSpace(form.Website) == "" {
		errs["website"] = "Website is required"
	} else if !isURL(form.Website) {
		errs["website"] = "Must be a valid URL"
	}

	if strings.TrimSpace(form.Industry) == "" {
		errs["industry"] = "Industry is required"
	}

	if len(form.Description) > 500 {
		errs["description"] = "Description must not exceed 500 characters"
	}

	for i, u := range form.PageURLs {
		if !isURL(u) {
			errs[fmt.Sprintf("websitePages[%d]", i)] = "Must be a valid URL"
		}
	}
	for i, u := range form.FeedURLs {
		if !isURL(u) {
			errs[fmt.Sprintf("rssFeeds[%d]", i)] = "Must be a valid URL"
		}
	}

	if form.Frequency == "" {
		errs["frequency"] = "Frequency is required"
	}
	if form.Priority == "" {
		errs["priority"] = "Priority is required"
	}

	return errs.orNil()
}

func checkEmail(errs FieldErrors, email string) {
	email = strings.TrimSpace(email)
	if email == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(email) {
		errs["email"] = "Invalid email address"
	}
}

// hasMixedComplexity reports whether s contains an uppercase letter, a
// lowercase letter and a digit.
func hasMixedComplexity(s string) bool {
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

func isURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
