package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord_FallbackChains(t *testing.T) {
	tests := []struct {
		name     string
		identity map[string]any
		check    func(t *testing.T, r Record)
	}{
		{
			name:     "primary source wins",
			identity: map[string]any{"companyName": "Acme", "company": "ShadowCo"},
			check: func(t *testing.T, r Record) {
				assert.Equal(t, "Acme", r.CompanyName)
			},
		},
		{
			name:     "falls through blank primary",
			identity: map[string]any{"companyName": "   ", "organization": "OrgCo"},
			check: func(t *testing.T, r Record) {
				assert.Equal(t, "OrgCo", r.CompanyName)
			},
		},
		{
			name:     "alias from secondary name",
			identity: map[string]any{"alias": "neo"},
			check: func(t *testing.T, r Record) {
				assert.Equal(t, "neo", r.AliasName)
			},
		},
		{
			name:     "mobile falls back to phone",
			identity: map[string]any{"phone": "9876543210"},
			check: func(t *testing.T, r Record) {
				assert.Equal(t, "9876543210", r.Mobile)
			},
		},
		{
			name:     "numeric user id is rendered",
			identity: map[string]any{"id": 42},
			check: func(t *testing.T, r Record) {
				assert.Equal(t, "42", r.UserID)
			},
		},
		{
			name:     "large json-decoded user id stays decimal",
			identity: map[string]any{"id": float64(123456789)},
			check: func(t *testing.T, r Record) {
				assert.Equal(t, "123456789", r.UserID)
			},
		},
		{
			name:     "json.Number user id is rendered verbatim",
			identity: map[string]any{"userId": json.Number("9007199254740993")},
			check: func(t *testing.T, r Record) {
				assert.Equal(t, "9007199254740993", r.UserID)
			},
		},
		{
			name:     "pin code from postalCode",
			identity: map[string]any{"postalCode": "560001"},
			check: func(t *testing.T, r Record) {
				assert.Equal(t, "560001", r.PinCode)
			},
		},
		{
			name:     "missing everything yields empty fields",
			identity: map[string]any{},
			check: func(t *testing.T, r Record) {
				assert.Empty(t, r.UserName)
				assert.Empty(t, r.Email)
			},
		},
		{
			name:     "nil values are skipped",
			identity: map[string]any{"name": nil, "userName": "bob"},
			check: func(t *testing.T, r Record) {
				assert.Equal(t, "bob", r.UserName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, NewRecord(tt.identity))
		})
	}
}

func TestNewRecord_JSONDecodedIdentity(t *testing.T) {
	var identity map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{"id": 123456789, "name": "alice"}`), &identity))

	r := NewRecord(identity)
	require.Equal(t, "123456789", r.UserID)
	require.Equal(t, "alice", r.UserName)
}

func TestDisplayValue(t *testing.T) {
	require.Equal(t, "alice", DisplayValue("alice", "user name"))
	require.Equal(t, "No data found for user name", DisplayValue("", "user name"))
	require.Equal(t, "No data found for address", DisplayValue("   ", "address"))
}

func TestRecord_Initial(t *testing.T) {
	require.Equal(t, "A", Record{UserName: "alice"}.Initial())
	require.Equal(t, "U", Record{UserID: "u-42"}.Initial())
	require.Equal(t, "U", Record{}.Initial())
}
