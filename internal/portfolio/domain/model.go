package domain

import "time"

// Skill category labels offered by the admin API. Grouping accepts any label.
const (
	SkillLanguage  = "Language"
	SkillFramework = "Framework"
	SkillAIML      = "AI/ML"
	SkillWeb       = "Web"
	SkillTool      = "Tool"
)

var SkillCategories = []string{SkillLanguage, SkillFramework, SkillAIML, SkillWeb, SkillTool}

const DefaultExperienceLocation = "Karachi, Pakistan"

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,max=100"`
}

// Project is a showcased piece of work. DateCreated is assigned on insert and never changes.
type Project struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description"`
	Image       string   `json:"image" validate:"max=255"`
	GitLink     *string  `json:"git_link,omitempty" validate:"omitempty,url,max=200"`
	LiveLink    *string  `json:"live_link,omitempty" validate:"omitempty,url,max=200"`
	DateCreated Date     `json:"date_created"`
	Categories  []string `json:"categories" validate:"dive,required,max=100"`
}

type Skill struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required,max=100"`
	Category    string `json:"category" validate:"required,max=50"`
	Proficiency int    `json:"proficiency" validate:"min=0,max=100"`
}

type Experience struct {
	ID          int64  `json:"id"`
	Title       string `json:"title" validate:"required,max=200"`
	Company     string `json:"company" validate:"required,max=200"`
	Location    string `json:"location" validate:"max=200"`
	Description string `json:"description"`
	StartDate   Date   `json:"start_date"`
	EndDate     *Date  `json:"end_date"`
	IsCurrent   bool   `json:"is_current"`
}

// Education years are free text: EndYear may be a year or "Present".
type Education struct {
	ID          int64  `json:"id"`
	Degree      string `json:"degree" validate:"required,max=200"`
	School      string `json:"school" validate:"required,max=200"`
	Description string `json:"description"`
	StartYear   string `json:"start_year" validate:"required,max=4"`
	EndYear     string `json:"end_year" validate:"required,max=10"`
}

type Certification struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title" validate:"required,max=200"`
	IssuedBy   string  `json:"issued_by" validate:"required,max=200"`
	Link       *string `json:"link,omitempty" validate:"omitempty,url,max=200"`
	DateIssued *Date   `json:"date_issued"`
}

// ContactMessage is a visitor submission. CreatedAt comes from the database.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
