package moneydashboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindInputValue(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		field string
		want  string
		found bool
	}{
		{
			name: "hidden field among others",
			html: `<html><body><form>
				<input type="email" name="Email" value="">
				<input name="__RequestVerificationToken" type="hidden" value="tok-123">
				<input type="password" name="Password">
				</form></body></html>`,
			field: "__RequestVerificationToken",
			want:  "tok-123",
			found: true,
		},
		{
			name:  "self closing input",
			html:  `<input name="token" value="abc"/>`,
			field: "token",
			want:  "abc",
			found: true,
		},
		{
			name:  "value attribute before name",
			html:  `<input value="xyz" name="token">`,
			field: "token",
			want:  "xyz",
			found: true,
		},
		{
			name:  "field absent",
			html:  `<html><body><input name="other" value="abc"></body></html>`,
			field: "token",
			found: false,
		},
		{
			name:  "name on a non-input element is ignored",
			html:  `<select name="token"><option value="abc"></option></select>`,
			field: "token",
			found: false,
		},
		{
			name:  "empty document",
			html:  "",
			field: "token",
			found: false,
		},
		{
			name:  "unclosed elements still scan",
			html:  `<html><body><div><input name="token" value="t1">`,
			field: "token",
			want:  "t1",
			found: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := findInputValue(strings.NewReader(tt.html), tt.field)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}
