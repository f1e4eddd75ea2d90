package moneydashboard

import (
	"io"

	"golang.org/x/net/html"
)

// findInputValue scans an HTML document for the first <input> element
// whose name attribute matches name and returns its value attribute.
// The tokenizer tolerates the malformed markup real landing pages
// serve.
func findInputValue(r io.Reader, name string) (string, bool) {
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or unrecoverable parse error; either way the
			// field is not there.
			return "", false
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.Data != "input" {
				continue
			}
			var value string
			var matched bool
			for _, attr := range tok.Attr {
				switch attr.Key {
				case "name":
					matched = attr.Val == name
				case "value":
					value = attr.Val
				}
			}
			if matched {
				return value, true
			}
		}
	}
}
