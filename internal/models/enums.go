package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownValue = errors.New("unknown enum value")

// SkillCategory groups skills for display.
type SkillCategory string

const (
	SkillTechnical SkillCategory = "TECHNICAL"
	SkillSoft      SkillCategory = "SOFT"
	SkillFramework SkillCategory = "FRAMEWORK"
)

// SkillCategories lists every category in display order.
var SkillCategories = []SkillCategory{SkillTechnical, SkillFramework, SkillSoft}

// ParseSkillCategory matches s case-insensitively against the known categories.
func ParseSkillCategory(s string) (SkillCategory, error) {
	c := SkillCategory(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case SkillTechnical, SkillSoft, SkillFramework:
		return c, nil
	}
	return "", fmt.Errorf("%w: skill category %q", ErrUnknownValue, s)
}

func (c SkillCategory) Label() string {
	switch c {
	case SkillTechnical:
		return "Technical"
	case SkillSoft:
		return "Soft skills"
	case SkillFramework:
		return "Frameworks"
	}
	return string(c)
}

func (c *SkillCategory) UnmarshalJSON(b []byte) error {
	return unmarshalEnum(b, ParseSkillCategory, c)
}

// ExperienceType tells what kind of engagement an experience entry was.
type ExperienceType string

const (
	ExperienceInternship ExperienceType = "INTERNSHIP"
	ExperienceJob        ExperienceType = "JOB"
	ExperienceVolunteer  ExperienceType = "VOLUNTEER"
)

var ExperienceTypes = []ExperienceType{ExperienceJob, ExperienceInternship, ExperienceVolunteer}

func ParseExperienceType(s string) (ExperienceType, error) {
	t := ExperienceType(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case ExperienceInternship, ExperienceJob, ExperienceVolunteer:
		return t, nil
	}
	return "", fmt.Errorf("%w: experience type %q", ErrUnknownValue, s)
}

func (t ExperienceType) Label() string {
	switch t {
	case ExperienceInternship:
		return "Internship"
	case ExperienceJob:
		return "Job"
	case ExperienceVolunteer:
		return "Volunteer"
	}
	return string(t)
}

func (t *ExperienceType) UnmarshalJSON(b []byte) error {
	return unmarshalEnum(b, ParseExperienceType, t)
}

// Role is the authorization role of an authenticated user. Only RoleAdmin may
// use the admin dashboard.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RoleAdmin, RoleUser:
		return r, nil
	}
	return "", fmt.Errorf("%w: role %q", ErrUnknownValue, s)
}

func (r Role) IsAdmin() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleUser:
		return false
	}
	return false
}

func (r *Role) UnmarshalJSON(b []byte) error {
	return unmarshalEnum(b, ParseRole, r)
}

// unmarshalEnum leaves dst untouched on a JSON null, the same way ID does.
func unmarshalEnum[T ~string](b []byte, parse func(string) (T, error), dst *T) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := parse(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
