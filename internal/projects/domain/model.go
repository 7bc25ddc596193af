package domain

import "strings"

// Project is a portfolio entry shown on the site.
// It is storage-agnostic and used across repository and HTTP layers.
type Project struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	LiveURL      *string  `json:"liveUrl"`
	GithubURL    *string  `json:"githubUrl"`
	Featured     bool     `json:"featured"`
}

// Clone returns a deep copy so stored records can't be mutated through a result.
func (p Project) Clone() Project {
	out := p
	out.Technologies = append([]string(nil), p.Technologies...)
	if out.Technologies == nil {
		out.Technologies = []string{}
	}
	if p.LiveURL != nil {
		v := *p.LiveURL
		out.LiveURL = &v
	}
	if p.GithubURL != nil {
		v := *p.GithubURL
		out.GithubURL = &v
	}
	return out
}

// CreateProjectRequest represents data needed to insert a new project.
// Nil or empty URLs are stored as null, a nil Featured as false.
type CreateProjectRequest struct {
	Title        string
	Description  string
	Image        string
	Technologies []string
	LiveURL      *string
	GithubURL    *string
	Featured     *bool
}

// Validate checks the required text fields.
func (r CreateProjectRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" ||
		strings.TrimSpace(r.Description) == "" ||
		strings.TrimSpace(r.Image) == "" {
		return ErrInvalidProject
	}
	return nil
}

// ToProject applies the insert defaults and assigns id.
func (r CreateProjectRequest) ToProject(id int) Project {
	p := Project{
		ID:           id,
		Title:        r.Title,
		Description:  r.Description,
		Image:        r.Image,
		Technologies: r.Technologies,
		LiveURL:      optionalURL(r.LiveURL),
		GithubURL:    optionalURL(r.GithubURL),
	}
	if r.Featured != nil {
		p.Featured = *r.Featured
	}
	return p.Clone()
}

func optionalURL(u *string) *string {
	if u == nil || *u == "" {
		return nil
	}
	return u
}
