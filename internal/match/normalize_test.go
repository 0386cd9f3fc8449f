package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	for _, in := range []string{"EmailAddress", "email_address", "email-address", "Email Address", "EMAILADDRESS"} {
		assert.Equal(t, "emailaddress", NormalizeIdent(in), in)
	}
}

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		in       string
		expected []string
	}{
		{"", nil},
		{"Account", []string{"account"}},
		{"OrderID", []string{"order", "id"}},
		{"customerName", []string{"customer", "name"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"getHTTPResponse", []string{"get", "http", "response"}},
		{"email_address", []string{"email", "address"}},
		{"__x__", []string{"x"}},
		{"V2Account", []string{"v2", "account"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, TokenizeIdent(tt.in))
		})
	}
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "account", SnakeCase("Account"))
	assert.Equal(t, "optional_flags", SnakeCase("OptionalFlags"))
	assert.Equal(t, "user_id", SnakeCase("UserID"))
	assert.Equal(t, "page", SnakeCase("page"))
}
