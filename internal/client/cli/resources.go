package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/models"
)

type kind string

const (
	kindProfile     kind = "profile"
	kindEducations  kind = "educations"
	kindSkills      kind = "skills"
	kindProjects    kind = "projects"
	kindExperiences kind = "experiences"
	kindLinks       kind = "links"
	kindMessages    kind = "messages"
)

var kindAliases = map[string]kind{
	"profile": kindProfile, "profiles": kindProfile,
	"education": kindEducations, "educations": kindEducations,
	"skill": kindSkills, "skills": kindSkills,
	"project": kindProjects, "projects": kindProjects,
	"experience": kindExperiences, "experiences": kindExperiences,
	"link": kindLinks, "links": kindLinks, "social-links": kindLinks,
	"message": kindMessages, "messages": kindMessages, "contact": kindMessages,
}

var errUsage = errors.New("wrong arguments, type 'help' for usage")

// parseArgs resolves the kind and, when withID is set, the entity id.
// The profile is a singleton and never takes an id.
func parseArgs(args []string, withID bool) (kind, models.ID, error) {
	if len(args) == 0 {
		return "", "", errUsage
	}
	k, ok := kindAliases[strings.ToLower(args[0])]
	if !ok {
		return "", "", fmt.Errorf("unknown kind %q", args[0])
	}
	if !withID || k == kindProfile {
		return k, "", nil
	}
	if len(args) < 2 {
		return "", "", fmt.Errorf("%w: an id is required", errUsage)
	}
	return k, models.ID(args[1]), nil
}

func find[T models.Entity](items []T, id models.ID) (T, error) {
	for _, it := range items {
		if it.EntityID() == id {
			return it, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s: %w", id, common.ErrorNotFound)
}

func (a *App) List(ctx context.Context, args []string) error {
	k, _, err := parseArgs(args, false)
	if err != nil {
		return err
	}
	s := a.snapshot()

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	switch k {
	case kindProfile:
		if s.Profile == nil {
			fmt.Fprintln(tw, "No profile yet, create one with 'add profile'")
			return nil
		}
		p := s.Profile
		fmt.Fprintf(tw, "ID\t%s\nName\t%s\nTitle\t%s\nIntro\t%s\nEmail\t%s\nPhone\t%s\nLocation\t%s\nImage\t%s\n",
			p.ID, p.FullName, p.Title, p.ShortIntro, p.Email, p.Phone, p.Location, p.ProfileImageURL)
	case kindEducations:
		fmt.Fprintln(tw, "ID\tINSTITUTION\tDEGREE\tFIELD\tYEARS")
		for _, e := range s.Educations {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s-%s\n", e.ID, e.InstitutionName, e.Degree, e.FieldOfStudy, e.StartYear, e.EndYear)
		}
	case kindSkills:
		fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tLEVEL")
		for _, sk := range s.Skills {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", sk.ID, sk.Name, sk.Category.Label(), sk.Level)
		}
	case kindProjects:
		fmt.Fprintln(tw, "ID\tTITLE\tTECHNOLOGIES")
		for _, p := range s.Projects {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Title, strings.Join(p.Technologies, ", "))
		}
	case kindExperiences:
		fmt.Fprintln(tw, "ID\tROLE\tCOMPANY\tTYPE\tPERIOD")
		for _, e := range s.Experiences {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s - %s\n", e.ID, e.Role, e.Company, e.Type.Label(), e.StartDate, e.EndDate)
		}
	case kindLinks:
		fmt.Fprintln(tw, "ID\tPLATFORM\tURL")
		for _, l := range s.SocialLinks {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", l.ID, l.Platform, l.URL)
		}
	case kindMessages:
		fmt.Fprintln(tw, "ID\t\tFROM\tEMAIL\tRECEIVED")
		for _, m := range s.Messages {
			flag := "*"
			if m.Read {
				flag = " "
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", m.ID, flag, m.Name, m.Email, m.CreatedAt)
		}
	}
	return nil
}

func (a *App) Add(ctx context.Context, args []string) error {
	k, _, err := parseArgs(args, false)
	if err != nil {
		return err
	}

	var id models.ID
	switch k {
	case kindProfile:
		if a.snapshot().Profile != nil {
			return fmt.Errorf("%w, use 'edit profile'", common.ErrProfileExists)
		}
		p, err := a.profileForm(models.Profile{})
		if err != nil {
			return err
		}
		created, err := a.admin.AddProfile(ctx, p)
		if err != nil {
			return err
		}
		id = created.ID
	case kindEducations:
		e, err := a.educationForm(models.Education{})
		if err != nil {
			return err
		}
		created, err := a.admin.AddEducation(ctx, e)
		if err != nil {
			return err
		}
		id = created.ID
	case kindSkills:
		s, err := a.skillForm(models.Skill{Category: models.SkillTechnical})
		if err != nil {
			return err
		}
		created, err := a.admin.AddSkill(ctx, s)
		if err != nil {
			return err
		}
		id = created.ID
	case kindProjects:
		p, err := a.projectForm(models.Project{})
		if err != nil {
			return err
		}
		created, err := a.admin.AddProject(ctx, p)
		if err != nil {
			return err
		}
		id = created.ID
	case kindExperiences:
		e, err := a.experienceForm(models.Experience{Type: models.ExperienceJob})
		if err != nil {
			return err
		}
		created, err := a.admin.AddExperience(ctx, e)
		if err != nil {
			return err
		}
		id = created.ID
	case kindLinks:
		l, err := a.socialLinkForm(models.SocialLink{})
		if err != nil {
			return err
		}
		created, err := a.admin.AddSocialLink(ctx, l)
		if err != nil {
			return err
		}
		id = created.ID
	case kindMessages:
		return errors.New("messages come from the contact form, use 'contact'")
	}

	fmt.Fprintf(a.out, "Created %s %s\n", k, id)
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	k, id, err := parseArgs(args, true)
	if err != nil {
		return err
	}
	s := a.snapshot()

	switch k {
	case kindProfile:
		if s.Profile == nil {
			return common.ErrNoProfile
		}
		p, err := a.profileForm(*s.Profile)
		if err != nil {
			return err
		}
		_, err = a.admin.UpdateProfile(ctx, p)
		return a.done(err, "Profile updated")
	case kindEducations:
		cur, err := find(s.Educations, id)
		if err != nil {
			return err
		}
		e, err := a.educationForm(cur)
		if err != nil {
			return err
		}
		_, err = a.admin.UpdateEducation(ctx, e)
		return a.done(err, "Education updated")
	case kindSkills:
		cur, err := find(s.Skills, id)
		if err != nil {
			return err
		}
		sk, err := a.skillForm(cur)
		if err != nil {
			return err
		}
		_, err = a.admin.UpdateSkill(ctx, sk)
		return a.done(err, "Skill updated")
	case kindProjects:
		cur, err := find(s.Projects, id)
		if err != nil {
			return err
		}
		p, err := a.projectForm(cur)
		if err != nil {
			return err
		}
		_, err = a.admin.UpdateProject(ctx, p)
		return a.done(err, "Project updated")
	case kindExperiences:
		cur, err := find(s.Experiences, id)
		if err != nil {
			return err
		}
		e, err := a.experienceForm(cur)
		if err != nil {
			return err
		}
		_, err = a.admin.UpdateExperience(ctx, e)
		return a.done(err, "Experience updated")
	case kindLinks:
		cur, err := find(s.SocialLinks, id)
		if err != nil {
			return err
		}
		l, err := a.socialLinkForm(cur)
		if err != nil {
			return err
		}
		_, err = a.admin.UpdateSocialLink(ctx, l)
		return a.done(err, "Link updated")
	}
	return fmt.Errorf("%s cannot be edited", k)
}

func (a *App) Delete(ctx context.Context, args []string) error {
	k, id, err := parseArgs(args, true)
	if err != nil {
		return err
	}

	switch k {
	case kindProfile:
		err = a.admin.DeleteProfile(ctx)
	case kindEducations:
		err = a.admin.DeleteEducation(ctx, id)
	case kindSkills:
		err = a.admin.DeleteSkill(ctx, id)
	case kindProjects:
		err = a.admin.DeleteProject(ctx, id)
	case kindExperiences:
		err = a.admin.DeleteExperience(ctx, id)
	case kindLinks:
		err = a.admin.DeleteSocialLink(ctx, id)
	case kindMessages:
		err = a.admin.DeleteMessage(ctx, id)
	}
	return a.done(err, "Deleted")
}

// Show prints one project (public) or one message (admin only; marks it read).
func (a *App) Show(ctx context.Context, args []string) error {
	k, id, err := parseArgs(args, true)
	if err != nil {
		return err
	}

	switch k {
	case kindProjects:
		p, err := a.admin.Project(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("project %s: %w", id, common.ErrorNotFound)
		}
		fmt.Fprintf(a.out, "%s\n\n%s\n\nTechnologies: %s\n", p.Title, p.Description, strings.Join(p.Technologies, ", "))
		if p.GithubURL != nil {
			fmt.Fprintf(a.out, "GitHub: %s\n", *p.GithubURL)
		}
		if p.DemoURL != nil {
			fmt.Fprintf(a.out, "Demo: %s\n", *p.DemoURL)
		}
		return nil
	case kindMessages:
		if !a.isLoggedIn() {
			return errors.New("please log in first")
		}
		m, err := find(a.snapshot().Messages, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "From: %s <%s>\nDate: %s\n\n%s\n", m.Name, m.Email, m.CreatedAt, m.Message)
		return a.admin.MarkMessageAsRead(ctx, id)
	}
	return fmt.Errorf("show supports projects and messages, not %s", k)
}

// Read marks a message as read.
func (a *App) Read(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: a message id is required", errUsage)
	}
	return a.admin.MarkMessageAsRead(ctx, models.ID(args[0]))
}

func (a *App) done(err error, msg string) error {
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}
