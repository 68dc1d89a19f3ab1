package domain

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func check(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func (c *Category) Validate() error { return check(c) }

func (p *Project) Validate() error { return check(p) }

func (s *Skill) Validate() error {
	if err := check(s); err != nil {
		return err
	}
	if !slices.Contains(SkillCategories, s.Category) {
		return fmt.Errorf("%w: unknown skill category %q", ErrInvalid, s.Category)
	}
	return nil
}

func (e *Education) Validate() error { return check(e) }

func (c *Certification) Validate() error { return check(c) }

// Validate also enforces the date rules: a current position has no end date,
// and a finished one cannot end before it started.
func (e *Experience) Validate() error {
	if err := check(e); err != nil {
		return err
	}
	if e.StartDate.IsZero() {
		return fmt.Errorf("%w: start_date is required", ErrInvalid)
	}
	if e.IsCurrent && e.EndDate != nil && !e.EndDate.IsZero() {
		return fmt.Errorf("%w: a current position cannot have an end_date", ErrInvalid)
	}
	if e.EndDate != nil && !e.EndDate.IsZero() && e.EndDate.Before(e.StartDate) {
		return fmt.Errorf("%w: end_date is before start_date", ErrInvalid)
	}
	return nil
}

// Normalize fills defaults before a write.
func (e *Experience) Normalize() {
	if e.Location == "" {
		e.Location = DefaultExperienceLocation
	}
	if e.EndDate != nil && e.EndDate.IsZero() {
		e.EndDate = nil
	}
}
