package cli

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/portfolio/internal/flagx"
	"github.com/dmitrijs2005/portfolio/internal/models"
)

// form collects fields one prompt at a time. The first error sticks and
// turns the remaining prompts into no-ops.
type form struct {
	a   *App
	err error
}

func (a *App) newForm() *form {
	return &form{a: a}
}

func (f *form) text(prompt string, dst *string) {
	if f.err != nil {
		return
	}
	*dst, f.err = GetWithDefault(f.a.reader, prompt, *dst, f.a.out)
}

func (f *form) optional(prompt string, dst **string) {
	v := models.StringValue(*dst)
	f.text(prompt, &v)
	if f.err == nil {
		*dst = models.StringPtr(v)
	}
}

func (f *form) number(prompt string, dst *int) {
	v := strconv.Itoa(*dst)
	f.text(prompt, &v)
	if f.err != nil {
		return
	}
	*dst, f.err = strconv.Atoi(strings.TrimSpace(v))
}

func (f *form) list(prompt string, dst *[]string) {
	v := strings.Join(*dst, ", ")
	f.text(prompt+" (comma separated)", &v)
	if f.err == nil {
		*dst = flagx.SplitList(v)
	}
}

func (f *form) skillCategory(dst *models.SkillCategory) {
	v := string(*dst)
	f.text("Category "+optionsOf(models.SkillCategories), &v)
	if f.err == nil {
		*dst, f.err = models.ParseSkillCategory(v)
	}
}

func (f *form) experienceType(dst *models.ExperienceType) {
	v := string(*dst)
	f.text("Type "+optionsOf(models.ExperienceTypes), &v)
	if f.err == nil {
		*dst, f.err = models.ParseExperienceType(v)
	}
}

func optionsOf[T ~string](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = string(v)
	}
	return "(" + strings.Join(s, "/") + ")"
}

func (a *App) profileForm(p models.Profile) (models.Profile, error) {
	f := a.newForm()
	f.text("Full name", &p.FullName)
	f.text("Title", &p.Title)
	f.text("Short intro", &p.ShortIntro)
	f.text("Biography", &p.Biography)
	f.text("Career objective", &p.CareerObjective)
	f.text("Profile image URL", &p.ProfileImageURL)
	f.text("Email", &p.Email)
	f.text("Phone", &p.Phone)
	f.text("Location", &p.Location)
	if f.err != nil {
		return p, f.err
	}
	return p, p.Validate()
}

func (a *App) educationForm(e models.Education) (models.Education, error) {
	f := a.newForm()
	f.text("Institution", &e.InstitutionName)
	f.text("Degree", &e.Degree)
	f.text("Field of study", &e.FieldOfStudy)
	f.text("Start year", &e.StartYear)
	f.text("End year", &e.EndYear)
	f.text("Description", &e.Description)
	if f.err != nil {
		return e, f.err
	}
	return e, e.Validate()
}

func (a *App) skillForm(s models.Skill) (models.Skill, error) {
	f := a.newForm()
	f.text("Name", &s.Name)
	f.skillCategory(&s.Category)
	f.number("Level (0-100)", &s.Level)
	if f.err != nil {
		return s, f.err
	}
	return s, s.Validate()
}

func (a *App) projectForm(p models.Project) (models.Project, error) {
	f := a.newForm()
	f.text("Title", &p.Title)
	f.text("Description", &p.Description)
	f.text("Image URL", &p.ImageURL)
	f.optional("GitHub URL", &p.GithubURL)
	f.optional("Demo URL", &p.DemoURL)
	f.list("Technologies", &p.Technologies)
	if f.err != nil {
		return p, f.err
	}
	return p, p.Validate()
}

func (a *App) experienceForm(e models.Experience) (models.Experience, error) {
	f := a.newForm()
	f.text("Role", &e.Role)
	f.text("Company", &e.Company)
	f.text("Start date", &e.StartDate)
	f.text("End date", &e.EndDate)
	f.experienceType(&e.Type)
	f.text("Description", &e.Description)
	if f.err != nil {
		return e, f.err
	}
	return e, e.Validate()
}

func (a *App) socialLinkForm(l models.SocialLink) (models.SocialLink, error) {
	f := a.newForm()
	f.text("Platform", &l.Platform)
	f.text("URL", &l.URL)
	if f.err != nil {
		return l, f.err
	}
	return l, l.Validate()
}
