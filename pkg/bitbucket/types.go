package bitbucket

// RepositoryPage is a paginated response of repositories.
type RepositoryPage struct {
	Size          int          `json:"size"`
	Limit         int          `json:"limit"`
	IsLastPage    bool         `json:"isLastPage"`
	NextPageStart int          `json:"nextPageStart"`
	Values        []Repository `json:"values"`
}

// PullRequestPage is a paginated response of pull requests.
type PullRequestPage struct {
	Size          int           `json:"size"`
	Limit         int           `json:"limit"`
	IsLastPage    bool          `json:"isLastPage"`
	NextPageStart int           `json:"nextPageStart"`
	Values        []PullRequest `json:"values"`
}

// Repository represents a Bitbucket repository.
type Repository struct {
	Slug    string  `json:"slug"`
	Name    string  `json:"name,omitempty"`
	Project Project `json:"project"`
}

// Project represents a Bitbucket project.
type Project struct {
	Key  string `json:"key"`
	Name string `json:"name,omitempty"`
}

// PullRequest represents a Bitbucket Server pull request.
//
// CreatedDate is epoch milliseconds on every known server version but is kept
// untyped (a json.Number once decoded) so malformed values degrade to an
// unknown date instead of failing the whole page.
type PullRequest struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	State       string      `json:"state"`
	CreatedDate any         `json:"createdDate"`
	Author      Participant `json:"author"`
}

// Participant is a user's role on a pull request. Older servers put the
// display name on the participant itself.
type Participant struct {
	DisplayName string `json:"displayName,omitempty"`
	User        User   `json:"user"`
	Role        string `json:"role,omitempty"`
}

// User represents a Bitbucket user.
type User struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Slug        string `json:"slug,omitempty"`
}

// BBErrorResponse is the error body returned by the REST API.
type BBErrorResponse struct {
	Errors []struct {
		Context       string `json:"context"`
		Message       string `json:"message"`
		ExceptionName string `json:"exceptionName"`
	} `json:"errors"`
}
