package models

import (
	"errors"
	"net/mail"
	"net/url"
	"sort"
	"strings"
)

var ErrValidation = errors.New("validation error")

// ValidationErrors maps a JSON field name to a human readable problem.
type ValidationErrors map[string]string

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Err returns nil when there are no problems, so callers can write
// `return errs.Err()`.
func (v ValidationErrors) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return v
}

func (v ValidationErrors) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
	}
}

func (v ValidationErrors) email(field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		v.Add(field, "is required")
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		v.Add(field, "is not a valid email address")
	}
}

func (v ValidationErrors) absoluteURL(field, value string) {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil || u.Scheme == "" || u.Host == "" {
		v.Add(field, "must be an absolute URL")
	}
}

func (p Profile) Validate() error {
	errs := make(ValidationErrors)
	errs.required("fullName", p.FullName)
	errs.required("title", p.Title)
	errs.email("email", p.Email)
	if p.ProfileImageURL != "" {
		errs.absoluteURL("profileImageUrl", p.ProfileImageURL)
	}
	return errs.Err()
}

func (e Education) Validate() error {
	errs := make(ValidationErrors)
	errs.required("institutionName", e.InstitutionName)
	errs.required("degree", e.Degree)
	return errs.Err()
}

func (s Skill) Validate() error {
	errs := make(ValidationErrors)
	errs.required("name", s.Name)
	if _, err := ParseSkillCategory(string(s.Category)); err != nil {
		errs.Add("category", "must be one of TECHNICAL, SOFT, FRAMEWORK")
	}
	if s.Level < 0 || s.Level > 100 {
		errs.Add("level", "must be between 0 and 100")
	}
	return errs.Err()
}

func (p Project) Validate() error {
	errs := make(ValidationErrors)
	errs.required("title", p.Title)
	errs.required("description", p.Description)
	if p.GithubURL != nil {
		errs.absoluteURL("githubUrl", *p.GithubURL)
	}
	if p.DemoURL != nil {
		errs.absoluteURL("demoUrl", *p.DemoURL)
	}
	for _, t := range p.Technologies {
		if strings.TrimSpace(t) == "" {
			errs.Add("technologies", "must not contain blank entries")
			break
		}
	}
	return errs.Err()
}

func (e Experience) Validate() error {
	errs := make(ValidationErrors)
	errs.required("role", e.Role)
	errs.required("company", e.Company)
	if _, err := ParseExperienceType(string(e.Type)); err != nil {
		errs.Add("type", "must be one of INTERNSHIP, JOB, VOLUNTEER")
	}
	return errs.Err()
}

func (l SocialLink) Validate() error {
	errs := make(ValidationErrors)
	errs.required("platform", l.Platform)
	errs.absoluteURL("url", l.URL)
	return errs.Err()
}

func (m ContactMessage) Validate() error {
	return ContactMessageRequest{Name: m.Name, Email: m.Email, Message: m.Message}.Validate()
}

func (r ContactMessageRequest) Validate() error {
	errs := make(ValidationErrors)
	errs.required("name", r.Name)
	errs.email("email", r.Email)
	errs.required("message", r.Message)
	return errs.Err()
}
