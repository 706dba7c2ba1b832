package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		req         RegisterRequest
		wantField   string
		wantMessage string
	}{
		{
			name:      "valid",
			req:       RegisterRequest{Username: "alice", Email: "a@x.com", Password: "secret1"},
			wantField: "",
		},
		{
			name:        "username too short",
			req:         RegisterRequest{Username: "ab", Email: "a@x.com", Password: "secret1"},
			wantField:   "username",
			wantMessage: "Username must be between 3 and 20 characters",
		},
		{
			name:      "username at lower bound",
			req:       RegisterRequest{Username: "abc", Email: "a@x.com", Password: "secret1"},
			wantField: "",
		},
		{
			name:        "username too long",
			req:         RegisterRequest{Username: "abcdefghijklmnopqrstu", Email: "a@x.com", Password: "secret1"},
			wantField:   "username",
			wantMessage: "Username must be between 3 and 20 characters",
		},
		{
			name:        "missing username",
			req:         RegisterRequest{Email: "a@x.com", Password: "secret1"},
			wantField:   "username",
			wantMessage: "Username is required",
		},
		{
			name:        "invalid email",
			req:         RegisterRequest{Username: "alice", Email: "not-an-email", Password: "secret1"},
			wantField:   "email",
			wantMessage: "Please enter a valid email address",
		},
		{
			name:        "password too short",
			req:         RegisterRequest{Username: "alice", Email: "a@x.com", Password: "abc1"},
			wantField:   "password",
			wantMessage: "Password must be at least 6 characters long",
		},
		{
			name:        "password without digit",
			req:         RegisterRequest{Username: "alice", Email: "a@x.com", Password: "abcdef"},
			wantField:   "password",
			wantMessage: "Password must contain at least one number",
		},
		{
			name:      "password with digit",
			req:       RegisterRequest{Username: "alice", Email: "a@x.com", Password: "abcdef1"},
			wantField: "",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			errs := tc.req.Validate()
			if tc.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, tc.wantField, errs[0].Field)
			assert.Equal(t, tc.wantMessage, errs[0].Message)
		})
	}
}

func TestRegisterRequest_NormalizesInput(t *testing.T) {
	t.Parallel()

	req := RegisterRequest{Username: "  alice  ", Email: "  Alice@X.COM ", Password: "secret1"}
	require.Empty(t, req.Validate())
	assert.Equal(t, "alice", req.Username)
	assert.Equal(t, "alice@x.com", req.Email)
}

func TestLoginRequest_Validate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		req       LoginRequest
		wantField string
	}{
		{"valid", LoginRequest{Email: "a@x.com", Password: "anything"}, ""},
		{"missing email", LoginRequest{Password: "anything"}, "email"},
		{"invalid email", LoginRequest{Email: "nope", Password: "anything"}, "email"},
		{"missing password", LoginRequest{Email: "a@x.com"}, "password"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			errs := tc.req.Validate()
			if tc.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, tc.wantField, errs[0].Field)
		})
	}
}
