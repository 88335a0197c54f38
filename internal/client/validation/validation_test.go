package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErr(t *testing.T, err error) FieldErrors {
	t.Helper()
	require.Error(t, err)
	fe, ok := err.(FieldErrors)
	require.True(t, ok, "expected FieldErrors, got %T", err)
	return fe
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		password  string
		wantField string
	}{
		{name: "valid", email: "a@b.com", password: "secret1"},
		{name: "empty email", email: "", password: "secret1", wantField: "email"},
		{name: "malformed email", email: "not-an-email", password: "secret1", wantField: "email"},
		{name: "empty password", email: "a@b.com", password: "", wantField: "password"},
		{name: "short password", email: "a@b.com", password: "abc", wantField: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Login(tt.email, tt.password)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			assert.Contains(t, fieldErr(t, err), tt.wantField)
		})
	}
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name      string
		userName  string
		email     string
		password  string
		confirm   string
		wantField string
	}{
		{name: "valid", userName: "Alice", email: "a@b.com", password: "Secret1x", confirm: "Secret1x"},
		{name: "short name", userName: "A", email: "a@b.com", password: "Secret1x", confirm: "Secret1x", wantField: "name"},
		{name: "no uppercase", userName: "Alice", email: "a@b.com", password: "secret1x", confirm: "secret1x", wantField: "password"},
		{name: "no digit", userName: "Alice", email: "a@b.com", password: "Secretxx", confirm: "Secretxx", wantField: "password"},
		{name: "mismatched confirm", userName: "Alice", email: "a@b.com", password: "Secret1x", confirm: "Secret1y", wantField: "confirmPassword"},
		{name: "bad email", userName: "Alice", email: "nope", password: "Secret1x", confirm: "Secret1x", wantField: "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Register(tt.userName, tt.email, tt.password, tt.confirm)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			assert.Contains(t, fieldErr(t, err), tt.wantField)
		})
	}
}

func TestCompetitor(t *testing.T) {
	valid := CompetitorForm{
		Name:      "Acme",
		Website:   "https://acme.example",
		Industry:  "SaaS",
		Frequency: "daily",
		Priority:  "medium",
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, Competitor(valid))
	})

	t.Run("missing required fields", func(t *testing.T) {
		err := Competitor(CompetitorForm{})
		fe := fieldErr(t, err)
		for _, field := range []string{"name", "website", "industry", "frequency", "priority"} {
			assert.Contains(t, fe, field)
		}
	})

	t.Run("website must be a URL", func(t *testing.T) {
		form := valid
		form.Website = "acme dot example"
		assert.Contains(t, fieldErr(t, Competitor(form)), "website")
	})

	t.Run("scheme-less URL rejected", func(t *testing.T) {
		form := valid
		form.Website = "acme.example"
		assert.Contains(t, fieldErr(t, Competitor(form)), "website")
	})

	t.Run("channel URLs checked individually", func(t *testing.T) {
		form := valid
		form.PageURLs = []string{"https://acme.example/pricing", "nope"}
		form.FeedURLs = []string{"bad"}
		fe := fieldErr(t, Competitor(form))
		assert.NotContains(t, fe, "websitePages[0]")
		assert.Contains(t, fe, "websitePages[1]")
		assert.Contains(t, fe, "rssFeeds[0]")
	})

	t.Run("long description rejected", func(t *testing.T) {
		form := valid
		form.Description = string(make([]byte, 501))
		assert.Contains(t, fieldErr(t, Competitor(form)), "description")
	})
}

func TestFieldErrors_Error(t *testing.T) {
	err := FieldErrors{"b": "second", "a": "first"}
	assert.Equal(t, "a: first; b: second", err.Error(), "messages come out in stable order")
}
