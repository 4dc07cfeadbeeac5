// Package profile implements the profile view: a read-only snapshot of the
// account's server-known fields plus the edit/validate/submit cycle for the
// fields the user may change.
package profile

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Record is the last committed snapshot of server-known profile fields.
type Record struct {
	CompanyName   string
	UserName      string
	UserID        string
	Email         string
	Mobile        string
	AliasName     string
	BlockBuilding string
	Floor         string
	Address       string
	Location      string
	PinCode       string
}

// fieldSources lists, in precedence order, the identity-object keys accepted
// for each record field. Embedding applications name these attributes
// loosely; the first non-blank source wins.
var fieldSources = map[string][]string{
	"companyName":   {"companyName", "company", "organization"},
	"userName":      {"name", "userName", "username"},
	"userId":        {"userId", "id", "userIdAlias"},
	"email":         {"email"},
	"mobile":        {"mobile", "phone"},
	"aliasName":     {"aliasName", "alias"},
	"blockBuilding": {"blockBuilding", "building"},
	"floor":         {"floor"},
	"address":       {"address"},
	"location":      {"location", "city"},
	"pinCode":       {"pinCode", "zipCode", "postalCode"},
}

// NewRecord resolves a Record from a loosely-named identity object.
func NewRecord(identity map[string]any) Record {
	return Record{
		CompanyName:   resolve(identity, fieldSources["companyName"]),
		UserName:      resolve(identity, fieldSources["userName"]),
		UserID:        resolve(identity, fieldSources["userId"]),
		Email:         resolve(identity, fieldSources["email"]),
		Mobile:        resolve(identity, fieldSources["mobile"]),
		AliasName:     resolve(identity, fieldSources["aliasName"]),
		BlockBuilding: resolve(identity, fieldSources["blockBuilding"]),
		Floor:         resolve(identity, fieldSources["floor"]),
		Address:       resolve(identity, fieldSources["address"]),
		Location:      resolve(identity, fieldSources["location"]),
		PinCode:       resolve(identity, fieldSources["pinCode"]),
	}
}

// resolve walks the ordered source names and returns the first value that is
// non-blank after trimming. Non-string values (numeric ids and the like) are
// rendered as plain decimal text.
func resolve(identity map[string]any, sources []string) string {
	for _, name := range sources {
		v, ok := identity[name]
		if !ok || v == nil {
			continue
		}

		var s string
		switch t := v.(type) {
		case string:
			s = t
		case float64:
			// JSON-decoded numbers arrive as float64; Sprint would
			// render large ids in scientific notation.
			s = strconv.FormatFloat(t, 'f', -1, 64)
		case json.Number:
			s = t.String()
		default:
			s = fmt.Sprint(v)
		}
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// DisplayValue renders a field value for output, substituting a placeholder
// when the field is empty.
func DisplayValue(value, fieldName string) string {
	if strings.TrimSpace(value) == "" {
		return "No data found for " + fieldName
	}
	return value
}

// Initial returns the single uppercased character used for the avatar:
// the first rune of the user name, else the user id, else "U".
func (r Record) Initial() string {
	name := r.UserName
	if name == "" {
		name = r.UserID
	}
	if name == "" {
		name = "U"
	}
	return strings.ToUpper(string([]rune(name)[0]))
}
