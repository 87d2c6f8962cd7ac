package models

// Resource names the REST collection a record type lives under.
type Resource string

const (
	ResourceProfiles    Resource = "profiles"
	ResourceEducations  Resource = "educations"
	ResourceSkills      Resource = "skills"
	ResourceProjects    Resource = "projects"
	ResourceExperiences Resource = "experiences"
	ResourceSocialLinks Resource = "social-links"
	ResourceContact     Resource = "contact"
)

// Profile is the singleton owner record of the portfolio.
type Profile struct {
	ID              ID     `json:"id"`
	FullName        string `json:"fullName"`
	Title           string `json:"title"`
	ShortIntro      string `json:"shortIntro"`
	Biography       string `json:"biography"`
	CareerObjective string `json:"careerObjective"`
	ProfileImageURL string `json:"profileImageUrl"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Location        string `json:"location"`
}

type Education struct {
	ID              ID     `json:"id"`
	InstitutionName string `json:"institutionName"`
	Degree          string `json:"degree"`
	FieldOfStudy    string `json:"fieldOfStudy"`
	StartYear       string `json:"startYear"`
	EndYear         string `json:"endYear"`
	Description     string `json:"description"`
}

type Skill struct {
	ID       ID            `json:"id"`
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
	Level    int           `json:"level"`
}

type Project struct {
	ID           ID       `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	GithubURL    *string  `json:"githubUrl"`
	DemoURL      *string  `json:"demoUrl"`
	Technologies []string `json:"technologies"`
}

type Experience struct {
	ID          ID             `json:"id"`
	Role        string         `json:"role"`
	Company     string         `json:"company"`
	StartDate   string         `json:"startDate"`
	EndDate     string         `json:"endDate"`
	Type        ExperienceType `json:"type"`
	Description string         `json:"description"`
}

type SocialLink struct {
	ID       ID     `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// ContactMessage is written by the public contact form and read by the admin.
type ContactMessage struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
	Read      bool   `json:"read"`
}

// ContactMessageRequest is the body of the public contact form.
type ContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (p Profile) EntityID() ID        { return p.ID }
func (e Education) EntityID() ID      { return e.ID }
func (s Skill) EntityID() ID          { return s.ID }
func (p Project) EntityID() ID        { return p.ID }
func (e Experience) EntityID() ID     { return e.ID }
func (l SocialLink) EntityID() ID     { return l.ID }
func (m ContactMessage) EntityID() ID { return m.ID }

func (p *Profile) SetEntityID(id ID)        { p.ID = id }
func (e *Education) SetEntityID(id ID)      { e.ID = id }
func (s *Skill) SetEntityID(id ID)          { s.ID = id }
func (p *Project) SetEntityID(id ID)        { p.ID = id }
func (e *Experience) SetEntityID(id ID)     { e.ID = id }
func (l *SocialLink) SetEntityID(id ID)     { l.ID = id }
func (m *ContactMessage) SetEntityID(id ID) { m.ID = id }

// StringPtr returns nil for an empty string, which is how optional URLs are
// encoded on the wire.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences an optional string.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
