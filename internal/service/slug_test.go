package service

import "testing"

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Annual Sports Day", "annual-sports-day"},
		{"punctuation collapsed", "Sports  Day -- 2026!", "sports-day-2026"},
		{"diacritics stripped", "Fête de l'École", "fete-de-l-ecole"},
		{"leading and trailing trimmed", "  --Hello World--  ", "hello-world"},
		{"digits kept", "Grade 7 Results", "grade-7-results"},
		{"empty", "", ""},
		{"all punctuation", "!!! --- ???", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := GenerateSlug(tc.title); got != tc.want {
				t.Fatalf("GenerateSlug(%q) = %q, want %q", tc.title, got, tc.want)
			}
		})
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	once := GenerateSlug("Fête de l'École 2026")
	twice := GenerateSlug(once)
	if once != twice {
		t.Fatalf("expected idempotent slug, got %q then %q", once, twice)
	}
}

func TestEnsureUniqueSlug(t *testing.T) {
	existing := []string{"sports-day", "sports-day-2"}

	if got := EnsureUniqueSlug("science-fair", existing); got != "science-fair" {
		t.Fatalf("expected unchanged slug, got %q", got)
	}
	if got := EnsureUniqueSlug("sports-day", existing); got != "sports-day-3" {
		t.Fatalf("expected next free suffix, got %q", got)
	}
	if got := EnsureUniqueSlug("sports-day", nil); got != "sports-day" {
		t.Fatalf("expected unchanged slug with empty set, got %q", got)
	}
}
