package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/contactbook/internal/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestCreateListContactRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	input := storage.NewContact{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Phone:   "1234567890",
		Address: "1 Infinite Loop",
	}
	id, err := store.CreateContact(context.Background(), input)
	if err != nil {
		t.Fatalf("create contact: %v", err)
	}
	if id != 1 {
		t.Fatalf("first contact id = %d, want 1", id)
	}

	contacts, err := store.ListContacts(context.Background())
	if err != nil {
		t.Fatalf("list contacts: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("contacts len = %d, want 1", len(contacts))
	}
	got := contacts[0]
	if got.ID != id {
		t.Fatalf("id = %d, want %d", got.ID, id)
	}
	if got.Name != input.Name {
		t.Fatalf("name = %q, want %q", got.Name, input.Name)
	}
	if got.Email != input.Email {
		t.Fatalf("email = %q, want %q", got.Email, input.Email)
	}
	if got.Phone != input.Phone {
		t.Fatalf("phone = %q, want %q", got.Phone, input.Phone)
	}
	if got.Address != input.Address {
		t.Fatalf("address = %q, want %q", got.Address, input.Address)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}
}

func TestListContactsEmptyStore(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	contacts, err := store.ListContacts(context.Background())
	if err != nil {
		t.Fatalf("list contacts: %v", err)
	}
	if len(contacts) != 0 {
		t.Fatalf("contacts len = %d, want 0", len(contacts))
	}
}

func TestCreateContactAssignsAscendingIDs(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	first, err := store.CreateContact(context.Background(), testContact("Grace Hopper"))
	if err != nil {
		t.Fatalf("create first contact: %v", err)
	}
	second, err := store.CreateContact(context.Background(), testContact("Alan Turing"))
	if err != nil {
		t.Fatalf("create second contact: %v", err)
	}
	if first == second {
		t.Fatalf("ids must be distinct, both = %d", first)
	}
	if second <= first {
		t.Fatalf("second id = %d, want > %d", second, first)
	}

	contacts, err := store.ListContacts(context.Background())
	if err != nil {
		t.Fatalf("list contacts: %v", err)
	}
	if len(contacts) != 2 {
		t.Fatalf("contacts len = %d, want 2", len(contacts))
	}
	if contacts[0].Name != "Grace Hopper" || contacts[1].Name != "Alan Turing" {
		t.Fatalf("insertion order not preserved: %q, %q", contacts[0].Name, contacts[1].Name)
	}
}

func TestCreateContactRejectsConstraintViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		contact storage.NewContact
	}{
		{
			name: "address over cap",
			contact: storage.NewContact{
				Name:    "Margaret Hamilton",
				Email:   "margaret@example.com",
				Phone:   "5550100",
				Address: strings.Repeat("a", storage.MaxAddressLen+1),
			},
		},
		{
			name: "name over cap",
			contact: storage.NewContact{
				Name:    strings.Repeat("n", storage.MaxNameLen+1),
				Email:   "long@example.com",
				Phone:   "5550101",
				Address: "2 Loop Road",
			},
		},
		{
			name: "phone over cap",
			contact: storage.NewContact{
				Name:    "Katherine Johnson",
				Email:   "katherine@example.com",
				Phone:   strings.Repeat("9", storage.MaxPhoneLen+1),
				Address: "3 Loop Road",
			},
		},
		{
			name: "empty name",
			contact: storage.NewContact{
				Name:    "",
				Email:   "empty@example.com",
				Phone:   "5550102",
				Address: "4 Loop Road",
			},
		},
		{
			name: "empty address",
			contact: storage.NewContact{
				Name:    "Radia Perlman",
				Email:   "radia@example.com",
				Phone:   "5550103",
				Address: "",
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			store := openTempStore(t)

			_, err := store.CreateContact(context.Background(), tc.contact)
			if !errors.Is(err, storage.ErrConstraintViolation) {
				t.Fatalf("create error = %v, want %v", err, storage.ErrConstraintViolation)
			}

			contacts, listErr := store.ListContacts(context.Background())
			if listErr != nil {
				t.Fatalf("list contacts: %v", listErr)
			}
			if len(contacts) != 0 {
				t.Fatalf("rejected insert left %d rows", len(contacts))
			}
		})
	}
}

func TestCreateContactAtLengthCapsSucceeds(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	input := storage.NewContact{
		Name:    strings.Repeat("n", storage.MaxNameLen),
		Email:   strings.Repeat("e", storage.MaxEmailLen),
		Phone:   strings.Repeat("7", storage.MaxPhoneLen),
		Address: strings.Repeat("a", storage.MaxAddressLen),
	}
	if _, err := store.CreateContact(context.Background(), input); err != nil {
		t.Fatalf("create at caps: %v", err)
	}
}

func TestCreateContactCancelledContext(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.CreateContact(ctx, testContact("Late Caller")); err == nil {
		t.Fatal("expected cancelled context error")
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "contacts.db"))
	if err != nil {
		t.Fatalf("open temp store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func testContact(name string) storage.NewContact {
	return storage.NewContact{
		Name:    name,
		Email:   "contact@example.com",
		Phone:   "5550000",
		Address: "10 Example Way",
	}
}
