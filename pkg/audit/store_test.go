package audit

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestStoreSave(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	store := NewStoreWithDB(db)

	event := RevealEvent{
		OwnerID:  "owner-1",
		ClientIP: "10.0.0.1",
		Kind:     "password",
		RecordID: "rec-1",
		Success:  true,
	}

	mock.ExpectExec(`INSERT INTO messages`).
		WithArgs(
			FacilityAuthPriv,    // facility
			int(SeverityNotice), // severity
			sqlmock.AnyArg(),    // timestamp
			sqlmock.AnyArg(),    // hostname
			"securepass",        // appname
			sqlmock.AnyArg(),    // procid
			"reveal",            // msgid
			sqlmock.AnyArg(),    // sdata (JSON)
			sqlmock.AnyArg(),    // message
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = store.Save(event)
	if err != nil {
		t.Errorf("Save() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreSaveAuthenticateEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	store := NewStoreWithDB(db)

	event := AuthenticateEvent{
		Email:        "alice@example.com",
		ClientIP:     "10.0.0.1",
		Operation:    "signup",
		Success:      false,
		ErrorMessage: "email already registered",
	}

	mock.ExpectExec(`INSERT INTO messages`).
		WithArgs(
			FacilityAuthPriv,     // facility
			int(SeverityWarning), // severity
			sqlmock.AnyArg(),     // timestamp
			sqlmock.AnyArg(),     // hostname
			"securepass",         // appname
			sqlmock.AnyArg(),     // procid
			"authn",              // msgid
			sqlmock.AnyArg(),     // sdata (JSON)
			sqlmock.AnyArg(),     // message
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := store.Save(event); err != nil {
		t.Errorf("Save() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreSaveNilDB(t *testing.T) {
	store := &Store{}

	event := RecordEvent{
		OwnerID:   "owner-1",
		Kind:      "note",
		RecordID:  "rec-1",
		Operation: "create",
		Success:   true,
	}

	if err := store.Save(event); err != nil {
		t.Errorf("Save() with nil db should be a no-op, got error %v", err)
	}
}
