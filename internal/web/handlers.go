package web

import (
	"bytes"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/contactbook/internal/storage"
	"github.com/louisbranch/contactbook/internal/web/httpx"
	"github.com/louisbranch/contactbook/internal/web/templates"
	"github.com/louisbranch/contactbook/internal/web/weberror"
)

type handlers struct {
	store storage.ContactStore
}

func newHandlers(store storage.ContactStore) handlers {
	return handlers{store: store}
}

// handleForm serves the static contact form. It never touches the store.
func (h handlers) handleForm(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, "Add Contact", http.StatusOK, templates.ContactForm())
}

// handleSubmit reads the four contact fields and inserts one row.
//
// Absent fields pass through as empty strings; the schema is the only
// validation layer, so constraint failures come back from the store.
func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}
	contact := storage.NewContact{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("phone"),
		Address: r.PostFormValue("address"),
	}
	if _, err := h.store.CreateContact(r.Context(), contact); err != nil {
		log.Printf("create contact failed request_id=%s err=%v", r.Header.Get("X-Request-ID"), err)
		appErr := weberror.FromStore(err)
		http.Error(w, appErr.Error(), weberror.HTTPStatus(appErr))
		return
	}
	http.Redirect(w, r, routeContacts, http.StatusFound)
}

// handleContacts lists every stored contact in store order.
func (h handlers) handleContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.store.ListContacts(r.Context())
	if err != nil {
		log.Printf("list contacts failed request_id=%s err=%v", r.Header.Get("X-Request-ID"), err)
		appErr := weberror.FromStore(err)
		http.Error(w, appErr.Error(), weberror.HTTPStatus(appErr))
		return
	}
	h.writePage(w, r, "Contacts", http.StatusOK, templates.ContactList(contacts))
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteHTML(w, http.StatusOK, "ok")
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, body templ.Component) {
	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	var rendered bytes.Buffer
	if err := templates.Layout(title).Render(ctx, &rendered); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(rendered.Bytes())
}
