// Package templates renders the address-book HTML pages.
//
// Components are written against the templ runtime directly: the page shell
// is a templ.Component that renders its children, and dynamic content is
// produced by pure string-rendering functions so it stays unit-testable
// without a server.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/contactbook/internal/storage"
)

// Layout wraps page content in the shared document shell.
func Layout(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<!doctype html><html lang="en"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<title>`+templ.EscapeString(title)+`</title>`+
				`<style>body{font-family:sans-serif;max-width:40rem;margin:2rem auto;padding:0 1rem}`+
				`label{display:block;margin:.75rem 0 .25rem}input{width:100%;padding:.4rem}`+
				`button{margin-top:1rem;padding:.5rem 1.5rem}ul{list-style:none;padding:0}`+
				`li{padding:.5rem 0;border-bottom:1px solid #ddd}</style>`+
				`</head><body><main>`,
		); err != nil {
			return err
		}
		children := templ.GetChildren(ctx)
		if children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// ContactForm renders the static contact submission form.
//
// Field caps mirror the contacts schema; the required attributes are the only
// client-side validation the app performs.
func ContactForm() templ.Component {
	return templ.Raw(
		`<h1>Add Contact</h1>` +
			`<form method="post" action="/submit">` +
			`<label for="name">Name</label>` +
			`<input id="name" name="name" maxlength="100" required>` +
			`<label for="email">Email</label>` +
			`<input id="email" name="email" type="email" maxlength="100" required>` +
			`<label for="phone">Phone</label>` +
			`<input id="phone" name="phone" maxlength="15" required>` +
			`<label for="address">Address</label>` +
			`<input id="address" name="address" maxlength="255" required>` +
			`<button type="submit">Save</button>` +
			`</form>` +
			`<p><a href="/contacts">View contacts</a></p>`,
	)
}

// ContactList renders the stored contacts in store order.
func ContactList(contacts []storage.Contact) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Contacts</h1>`); err != nil {
			return err
		}
		if len(contacts) == 0 {
			if _, err := io.WriteString(w, `<p>No contacts yet.</p>`); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<ul>`+ContactRows(contacts)+`</ul>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `<p><a href="/">Add another</a></p>`)
		return err
	})
}
