package api

// QueryParams is a flat set of query string values.
type QueryParams map[string]string

// --- Classroom ---

// Classroom is the record the classroom panel displays and edits.
type Classroom struct {
	ID                  int     `json:"id"`
	Name                string  `json:"name"`
	BeginDate           string  `json:"begin_date"`
	EndDate             string  `json:"end_date"`
	GithubClassroomLink *string `json:"github_classroom_link"`
}

// Link returns the GitHub Classroom link, or "" when unset.
func (c Classroom) Link() string {
	if c.GithubClassroomLink == nil {
		return ""
	}
	return *c.GithubClassroomLink
}

// ClassroomCreate defines the fields required to create a classroom.
type ClassroomCreate struct {
	Name                string  `json:"name"`
	BeginDate           string  `json:"begin_date"`
	EndDate             string  `json:"end_date"`
	GithubClassroomLink *string `json:"github_classroom_link,omitempty"`
}

// ClassroomUpdate carries a partial update; nil fields are left untouched.
type ClassroomUpdate struct {
	Name                *string `json:"name,omitempty"`
	BeginDate           *string `json:"begin_date,omitempty"`
	EndDate             *string `json:"end_date,omitempty"`
	GithubClassroomLink *string `json:"github_classroom_link,omitempty"`
}

// --- Auth ---

// Token is the OAuth2 password-grant response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
