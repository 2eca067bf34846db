package service

import (
	"errors"
	"testing"

	"github.com/schoolsite/internal/db"
)

func TestContactSubmitStoresNewSubmission(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.ContactSubmission{})
	defer cleanup()

	svc := NewContactService(gdb)
	submission, err := svc.Submit(ContactInput{
		Name:    "  Priya  ",
		Email:   "priya@example.com",
		Subject: "Admission",
		Message: "When does admission open?",
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if submission.Name != "Priya" {
		t.Fatalf("expected trimmed name, got %q", submission.Name)
	}
	if submission.Status != db.ContactStatusNew {
		t.Fatalf("expected status new, got %q", submission.Status)
	}
}

func TestContactSubmitValidation(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.ContactSubmission{})
	defer cleanup()

	svc := NewContactService(gdb)

	cases := []struct {
		name  string
		input ContactInput
		want  error
	}{
		{"missing name", ContactInput{Email: "a@b.com", Message: "hi"}, ErrContactFieldsMissing},
		{"missing email", ContactInput{Name: "A", Message: "hi"}, ErrContactFieldsMissing},
		{"missing message", ContactInput{Name: "A", Email: "a@b.com"}, ErrContactFieldsMissing},
		{"whitespace message", ContactInput{Name: "A", Email: "a@b.com", Message: "   "}, ErrContactFieldsMissing},
		{"bad email", ContactInput{Name: "A", Email: "not-an-email", Message: "hi"}, ErrContactEmailInvalid},
		{"email with spaces", ContactInput{Name: "A", Email: "a b@c.com", Message: "hi"}, ErrContactEmailInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Submit(tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	var count int64
	gdb.Model(&db.ContactSubmission{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no rows after rejected submissions, got %d", count)
	}
}

func TestContactListFiltersByStatus(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.ContactSubmission{})
	defer cleanup()

	gdb.Create(&db.ContactSubmission{Name: "A", Email: "a@b.com", Message: "x", Status: db.ContactStatusNew})
	gdb.Create(&db.ContactSubmission{Name: "B", Email: "b@b.com", Message: "y", Status: db.ContactStatusRead})

	svc := NewContactService(gdb)
	all, err := svc.List("")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(all))
	}

	unread, err := svc.List(db.ContactStatusNew)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(unread) != 1 || unread[0].Name != "A" {
		t.Fatalf("expected only the new submission, got %+v", unread)
	}
}
