package service

// Typed schemas for the per-page content documents stored in the
// page_content table. One explicit shape per page name; lists always
// serialize as [], never null, so templates and the frontend can range
// without nil checks.

// Highlight is one entry of the home page highlight list. Order in the
// slice is the display order; there is no independent ordering field.
type Highlight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// HomeContent is the home page document.
type HomeContent struct {
	HeroTitle      string      `json:"hero_title"`
	HeroSubtitle   string      `json:"hero_subtitle"`
	HeroImage      string      `json:"hero_image,omitempty"`
	WelcomeMessage string      `json:"welcome_message"`
	Highlights     []Highlight `json:"highlights"`
}

// FacultyMember is one entry of the about page faculty list.
type FacultyMember struct {
	Name          string `json:"name"`
	Position      string `json:"position"`
	Photo         string `json:"photo,omitempty"`
	Qualification string `json:"qualification,omitempty"`
}

// AboutContent is the about page document.
type AboutContent struct {
	History          string          `json:"history"`
	Mission          string          `json:"mission"`
	Vision           string          `json:"vision"`
	PrincipalMessage string          `json:"principal_message"`
	PrincipalName    string          `json:"principal_name,omitempty"`
	PrincipalImage   string          `json:"principal_image,omitempty"`
	Faculty          []FacultyMember `json:"faculty"`
}

// MapCoordinates carries the contact page map position; 0,0 means unset.
type MapCoordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ContactContent is the contact page document.
type ContactContent struct {
	Phone          string         `json:"phone"`
	Email          string         `json:"email"`
	Address        string         `json:"address"`
	FacebookURL    string         `json:"facebook_url,omitempty"`
	MapCoordinates MapCoordinates `json:"map_coordinates"`
}

// DefaultHomeContent returns the document substituted when no stored row
// is usable. Explicit value, never ambient mutable state.
func DefaultHomeContent() HomeContent {
	return HomeContent{Highlights: []Highlight{}}
}

// DefaultAboutContent returns the default about document.
func DefaultAboutContent() AboutContent {
	return AboutContent{Faculty: []FacultyMember{}}
}

// DefaultContactContent returns the default contact document.
func DefaultContactContent() ContactContent {
	return ContactContent{}
}

// Normalize guarantees the highlight list is non-nil.
func (c HomeContent) Normalize() HomeContent {
	if c.Highlights == nil {
		c.Highlights = []Highlight{}
	}
	return c
}

// Normalize guarantees the faculty list is non-nil.
func (c AboutContent) Normalize() AboutContent {
	if c.Faculty == nil {
		c.Faculty = []FacultyMember{}
	}
	return c
}

// AppendEntry returns a new list with entry appended; the input is not
// mutated.
func AppendEntry[T any](list []T, entry T) []T {
	next := make([]T, 0, len(list)+1)
	next = append(next, list...)
	return append(next, entry)
}

// RemoveAt returns a new list without the entry at index; subsequent
// entries shift left. An out-of-range index returns an unchanged copy.
func RemoveAt[T any](list []T, index int) []T {
	next := make([]T, 0, len(list))
	for i, entry := range list {
		if i == index {
			continue
		}
		next = append(next, entry)
	}
	return next
}

// AddHighlight appends an empty highlight entry.
func (c HomeContent) AddHighlight() HomeContent {
	c.Highlights = AppendEntry(c.Highlights, Highlight{})
	return c
}

// RemoveHighlight drops the highlight at index.
func (c HomeContent) RemoveHighlight(index int) HomeContent {
	c.Highlights = RemoveAt(c.Highlights, index)
	return c
}

// UpdateHighlight sets one named field of the highlight at index and
// returns the new document. Unknown fields and out-of-range indexes
// leave the document unchanged.
func (c HomeContent) UpdateHighlight(index int, field, value string) HomeContent {
	if index < 0 || index >= len(c.Highlights) {
		return c
	}
	next := make([]Highlight, len(c.Highlights))
	copy(next, c.Highlights)
	switch field {
	case "title":
		next[index].Title = value
	case "description":
		next[index].Description = value
	case "icon":
		next[index].Icon = value
	default:
		return c
	}
	c.Highlights = next
	return c
}

// AddFacultyMember appends an empty faculty entry.
func (c AboutContent) AddFacultyMember() AboutContent {
	c.Faculty = AppendEntry(c.Faculty, FacultyMember{})
	return c
}

// RemoveFacultyMember drops the faculty entry at index.
func (c AboutContent) RemoveFacultyMember(index int) AboutContent {
	c.Faculty = RemoveAt(c.Faculty, index)
	return c
}

// UpdateFacultyMember sets one named field of the faculty entry at index
// and returns the new document.
func (c AboutContent) UpdateFacultyMember(index int, field, value string) AboutContent {
	if index < 0 || index >= len(c.Faculty) {
		return c
	}
	next := make([]FacultyMember, len(c.Faculty))
	copy(next, c.Faculty)
	switch field {
	case "name":
		next[index].Name = value
	case "position":
		next[index].Position = value
	case "photo":
		next[index].Photo = value
	case "qualification":
		next[index].Qualification = value
	default:
		return c
	}
	c.Faculty = next
	return c
}
