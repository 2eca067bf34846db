package service

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestHomeContentListOpsDoNotMutateInput(t *testing.T) {
	base := HomeContent{
		Highlights: []Highlight{{Title: "A"}, {Title: "B"}},
	}

	added := base.AddHighlight()
	if len(base.Highlights) != 2 {
		t.Fatalf("input mutated by AddHighlight: %+v", base.Highlights)
	}
	if len(added.Highlights) != 3 {
		t.Fatalf("expected 3 highlights, got %d", len(added.Highlights))
	}

	removed := added.RemoveHighlight(0)
	if len(added.Highlights) != 3 {
		t.Fatal("input mutated by RemoveHighlight")
	}
	if len(removed.Highlights) != 2 || removed.Highlights[0].Title != "B" {
		t.Fatalf("expected remaining entries shifted left, got %+v", removed.Highlights)
	}
}

func TestHomeContentUpdateHighlight(t *testing.T) {
	base := HomeContent{Highlights: []Highlight{{Title: "Old"}}}

	updated := base.UpdateHighlight(0, "title", "New")
	if base.Highlights[0].Title != "Old" {
		t.Fatal("input mutated by UpdateHighlight")
	}
	if updated.Highlights[0].Title != "New" {
		t.Fatalf("expected updated title, got %q", updated.Highlights[0].Title)
	}

	// Out-of-range index and unknown field leave the document unchanged.
	if got := base.UpdateHighlight(5, "title", "X"); got.Highlights[0].Title != "Old" {
		t.Fatalf("out-of-range update changed the document: %+v", got)
	}
	if got := base.UpdateHighlight(0, "nope", "X"); got.Highlights[0].Title != "Old" {
		t.Fatalf("unknown field update changed the document: %+v", got)
	}
}

func TestAboutContentUpdateFacultyMember(t *testing.T) {
	base := AboutContent{Faculty: []FacultyMember{{Name: "Anita"}, {Name: "Ravi"}}}

	updated := base.UpdateFacultyMember(1, "position", "Senior Teacher")
	if updated.Faculty[1].Position != "Senior Teacher" {
		t.Fatalf("expected updated position, got %+v", updated.Faculty[1])
	}
	if base.Faculty[1].Position != "" {
		t.Fatal("input mutated by UpdateFacultyMember")
	}
}

func TestRemoveAtOutOfRange(t *testing.T) {
	list := []Highlight{{Title: "A"}}
	if got := RemoveAt(list, -1); len(got) != 1 {
		t.Fatalf("negative index changed the list: %+v", got)
	}
	if got := RemoveAt(list, 7); len(got) != 1 {
		t.Fatalf("out-of-range index changed the list: %+v", got)
	}
}

func TestDocumentsSerializeListsAsArrays(t *testing.T) {
	raw, err := json.Marshal(DefaultHomeContent())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(raw), `"highlights":[]`) {
		t.Fatalf("expected empty array, got %s", raw)
	}

	raw, err = json.Marshal(DefaultAboutContent())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(raw), `"faculty":[]`) {
		t.Fatalf("expected empty array, got %s", raw)
	}
}

func TestNormalizeReplacesNilLists(t *testing.T) {
	home := HomeContent{}.Normalize()
	if home.Highlights == nil {
		t.Fatal("expected non-nil highlights")
	}
	about := AboutContent{}.Normalize()
	if about.Faculty == nil {
		t.Fatal("expected non-nil faculty")
	}
}
