package confluence

import "net/http"

// Representation of a page body in Confluence storage format.
const representationStorage = "storage"

// pageType is the only content type this client writes.
const pageType = "page"

// Page is a content item returned by the lookup endpoint. The server owns ID
// and Version.
type Page struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Version *Version `json:"version,omitempty"`
}

// Version is the optimistic concurrency counter of a page.
type Version struct {
	Number    int  `json:"number"`
	MinorEdit bool `json:"minorEdit,omitempty"`
}

// Ancestor references a parent page.
type Ancestor struct {
	ID string `json:"id"`
}

// Space references a wiki space by key.
type Space struct {
	Key string `json:"key"`
}

// Body wraps the page markup.
type Body struct {
	Storage Storage `json:"storage"`
}

// Storage is page markup in a given representation.
type Storage struct {
	Value          string `json:"value"`
	Representation string `json:"representation"`
}

// PagePayload is the JSON document sent on create and update. ID and Version
// are set on update only.
type PagePayload struct {
	ID        string     `json:"id,omitempty"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Ancestors []Ancestor `json:"ancestors,omitempty"`
	Space     Space      `json:"space"`
	Body      Body       `json:"body"`
	Version   *Version   `json:"version,omitempty"`
}

// NewPagePayload builds a create payload. An empty parentID omits ancestors so
// the page lands at the space root.
func NewPagePayload(space, title, parentID, storageValue string) PagePayload {
	p := PagePayload{
		Type:  pageType,
		Title: title,
		Space: Space{Key: space},
		Body: Body{Storage: Storage{
			Value:          storageValue,
			Representation: representationStorage,
		}},
	}
	if parentID != "" {
		p.Ancestors = []Ancestor{{ID: parentID}}
	}
	return p
}

// Result is the raw outcome of a write. Every HTTP response, successful or
// not, produces a Result.
type Result struct {
	StatusCode int
	Body       string
	// Page is decoded from Body on 2xx responses when possible.
	Page *Page
}

// Success reports a 200 or 201 status.
func (r *Result) Success() bool {
	return r != nil && (r.StatusCode == http.StatusOK || r.StatusCode == http.StatusCreated)
}

type searchResponse struct {
	Results []Page `json:"results"`
	Size    int    `json:"size"`
}
