package gateway

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := &Error{Kind: KindForbidden, Status: 403, Message: "nope"}
	assert.Equal(t, KindForbidden, KindOf(err))

	wrapped := fmt.Errorf("fetch competitors: %w", err)
	assert.Equal(t, KindForbidden, KindOf(wrapped), "kind survives wrapping")

	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsUnauthorized(&Error{Kind: KindUnauthorized}))
	assert.False(t, IsUnauthorized(&Error{Kind: KindServer}))
	assert.True(t, IsNetwork(&Error{Kind: KindNetwork}))
	assert.True(t, IsNotFound(&Error{Kind: KindNotFound}))
	assert.False(t, IsNetwork(errors.New("plain")))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "gateway error message",
			err:  &Error{Kind: KindClient, Status: 422, Message: "Email is required"},
			want: "Email is required",
		},
		{
			name: "wrapped gateway error",
			err:  fmt.Errorf("save: %w", &Error{Kind: KindServer, Status: 500, Message: "Server error. Please try again later."}),
			want: "Server error. Please try again later.",
		},
		{
			name: "plain error falls back to Error()",
			err:  errors.New("boom"),
			want: "boom",
		},
		{
			name: "nil error",
			err:  nil,
			want: "An unexpected error occurred.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestError_Error(t *testing.T) {
	assert.Equal(t, "forbidden (403): nope", (&Error{Kind: KindForbidden, Status: 403, Message: "nope"}).Error())
	assert.Equal(t, "network_error: down", (&Error{Kind: KindNetwork, Message: "down"}).Error())
}
