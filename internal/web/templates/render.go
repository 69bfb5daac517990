package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/contactbook/internal/storage"
)

// fieldSeparator joins the four contact fields in a display row.
const fieldSeparator = " | "

// ContactRows renders one HTML list row per contact, fields joined by a
// separator, in the order given.
//
// It is a pure data-to-string function: no template engine, no I/O, so the
// rendering contract can be tested directly.
func ContactRows(contacts []storage.Contact) string {
	var b strings.Builder
	for _, contact := range contacts {
		b.WriteString(`<li>`)
		b.WriteString(templ.EscapeString(contact.Name))
		b.WriteString(fieldSeparator)
		b.WriteString(templ.EscapeString(contact.Email))
		b.WriteString(fieldSeparator)
		b.WriteString(templ.EscapeString(contact.Phone))
		b.WriteString(fieldSeparator)
		b.WriteString(templ.EscapeString(contact.Address))
		b.WriteString(`</li>`)
	}
	return b.String()
}
