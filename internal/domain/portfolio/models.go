package portfolio

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Skill struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryName string    `gorm:"column:category_name;size:64;not null;index" json:"category_name"`
	SkillName    string    `gorm:"column:skill_name;size:128;not null;uniqueIndex" json:"skill_name"`
	SkillLevel   int       `gorm:"column:skill_level;not null;default:0" json:"skill_level"`
	Color        string    `gorm:"column:color;size:32;not null;default:''" json:"color"`
	SortOrder    int       `gorm:"column:sort_order;not null;default:0" json:"sort_order"`
	IsActive     bool      `gorm:"column:is_active;not null;index" json:"is_active"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Skill) TableName() string { return "skills" }

func (s *Skill) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type Education struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Degree      string    `gorm:"column:degree;not null" json:"degree"`
	Institution string    `gorm:"column:institution;not null" json:"institution"`
	StartYear   *int      `gorm:"column:start_year" json:"start_year,omitempty"`
	EndYear     *int      `gorm:"column:end_year;index" json:"end_year,omitempty"`
	Description string    `gorm:"column:description;type:text;not null;default:''" json:"description"`
	Status      string    `gorm:"column:status;size:16;not null;default:'completed'" json:"status"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Education) TableName() string { return "education" }

func (e *Education) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

type Experience struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string                      `gorm:"column:title;not null" json:"title"`
	Company      string                      `gorm:"column:company;not null" json:"company"`
	StartDate    *time.Time                  `gorm:"column:start_date;index" json:"start_date,omitempty"`
	EndDate      *time.Time                  `gorm:"column:end_date" json:"end_date,omitempty"`
	IsCurrent    bool                        `gorm:"column:is_current;not null;default:false" json:"is_current"`
	Description  datatypes.JSONSlice[string] `gorm:"column:description" json:"description"`
	Technologies datatypes.JSONSlice[string] `gorm:"column:technologies" json:"technologies"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Experience) TableName() string { return "experience" }

func (e *Experience) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

type Project struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string                      `gorm:"column:title;not null;uniqueIndex" json:"title"`
	Description  string                      `gorm:"column:description;type:text;not null;default:''" json:"description"`
	Technologies datatypes.JSONSlice[string] `gorm:"column:technologies" json:"technologies"`
	GithubURL    string                      `gorm:"column:github_url;not null;default:''" json:"github_url"`
	LiveURL      string                      `gorm:"column:live_url;not null;default:''" json:"live_url"`
	Featured     bool                        `gorm:"column:featured;not null;default:false;index" json:"featured"`
	StartDate    *time.Time                  `gorm:"column:start_date" json:"start_date,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type ResearchPaper struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string                      `gorm:"column:title;not null;uniqueIndex" json:"title"`
	Authors         datatypes.JSONSlice[string] `gorm:"column:authors" json:"authors"`
	Publication     string                      `gorm:"column:publication;not null;default:''" json:"publication"`
	PublicationDate *time.Time                  `gorm:"column:publication_date;index" json:"publication_date,omitempty"`
	Abstract        string                      `gorm:"column:abstract;type:text;not null;default:''" json:"abstract"`
	DOI             string                      `gorm:"column:doi;not null;default:''" json:"doi"`
	URL             string                      `gorm:"column:url;not null;default:''" json:"url"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (ResearchPaper) TableName() string { return "research_papers" }

func (r *ResearchPaper) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
