package portfolio

// Category names shared by the portfolio API, the cache and response types.
const (
	CategorySkills     = "skills"
	CategoryEducation  = "education"
	CategoryExperience = "experience"
	CategoryProjects   = "projects"
	CategoryResearch   = "research"
)

// Categories lists every live-data category in display order.
var Categories = []string{
	CategorySkills,
	CategoryEducation,
	CategoryExperience,
	CategoryProjects,
	CategoryResearch,
}

func IsCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

type SkillView struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Color string `json:"color"`
}

type SkillCategory struct {
	Name   string      `json:"name"`
	Skills []SkillView `json:"skills"`
}

type EducationView struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type ExperienceView struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Duration     string   `json:"duration"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
}

type ProjectView struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Github       string   `json:"github,omitempty"`
	Live         string   `json:"live,omitempty"`
	Featured     bool     `json:"featured"`
	Stars        int      `json:"stars"`
	Forks        int      `json:"forks"`
	Language     string   `json:"language"`
}

type ResearchView struct {
	Title    string   `json:"title"`
	Authors  []string `json:"authors"`
	Journal  string   `json:"journal"`
	Year     string   `json:"year"`
	Abstract string   `json:"abstract"`
	DOI      string   `json:"doi,omitempty"`
	URL      string   `json:"url,omitempty"`
}
