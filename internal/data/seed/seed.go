package seed

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/portfolio-assistant/internal/domain/portfolio"
)

const seedFileEnv = "SEED_FILE"

//go:embed seed.yaml
var seedFS embed.FS

type File struct {
	Intents    []Intent                    `yaml:"intents"`
	Responses  []Response                  `yaml:"responses"`
	Predefined []Canonical                 `yaml:"predefined"`
	FollowUps  map[string]FollowUpCategory `yaml:"follow_ups"`
	Portfolio  Portfolio                   `yaml:"portfolio"`
}

type Intent struct {
	Name                string   `yaml:"name"`
	Description         string   `yaml:"description"`
	ConfidenceThreshold *float64 `yaml:"confidence_threshold"`
}

type Response struct {
	Slug              string         `yaml:"slug"`
	Intent            string         `yaml:"intent"`
	TriggerPatterns   []string       `yaml:"trigger_patterns"`
	ResponseText      string         `yaml:"response_text"`
	ResponseType      string         `yaml:"response_type"`
	ResponseData      map[string]any `yaml:"response_data"`
	FollowUpQuestions []string       `yaml:"follow_up_questions"`
}

// Canonical is one entry of the predefined question table. Data is only set
// in YAML for types without a live collection; the rest are filled from the
// seeded portfolio by Load.
type Canonical struct {
	Question string `yaml:"question"`
	Type     string `yaml:"type"`
	Answer   string `yaml:"answer"`
	Data     any    `yaml:"data"`
}

type FollowUpCategory struct {
	Description string     `yaml:"description"`
	Questions   []FollowUp `yaml:"questions"`
}

type FollowUp struct {
	Question     string `yaml:"question"`
	Answer       string `yaml:"answer"`
	ResponseType string `yaml:"response_type"`
}

type Portfolio struct {
	Skills     []SkillRow      `yaml:"skills"`
	Education  []EducationRow  `yaml:"education"`
	Experience []ExperienceRow `yaml:"experience"`
	Projects   []ProjectRow    `yaml:"projects"`
	Research   []ResearchRow   `yaml:"research"`
}

type SkillRow struct {
	Category string `yaml:"category"`
	Name     string `yaml:"name"`
	Level    int    `yaml:"level"`
	Color    string `yaml:"color"`
}

type EducationRow struct {
	Degree      string `yaml:"degree"`
	Institution string `yaml:"institution"`
	StartYear   *int   `yaml:"start_year"`
	EndYear     *int   `yaml:"end_year"`
	Status      string `yaml:"status"`
	Description string `yaml:"description"`
}

type ExperienceRow struct {
	Title        string   `yaml:"title"`
	Company      string   `yaml:"company"`
	StartDate    string   `yaml:"start_date"`
	EndDate      string   `yaml:"end_date"`
	Current      bool     `yaml:"current"`
	Description  []string `yaml:"description"`
	Technologies []string `yaml:"technologies"`
}

type ProjectRow struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	GithubURL    string   `yaml:"github_url"`
	LiveURL      string   `yaml:"live_url"`
	Featured     bool     `yaml:"featured"`
	StartDate    string   `yaml:"start_date"`
}

type ResearchRow struct {
	Title           string   `yaml:"title"`
	Authors         []string `yaml:"authors"`
	Publication     string   `yaml:"publication"`
	PublicationDate string   `yaml:"publication_date"`
	Abstract        string   `yaml:"abstract"`
	DOI             string   `yaml:"doi"`
	URL             string   `yaml:"url"`
}

var (
	loadOnce sync.Once
	loaded   *File
	loadErr  error
)

// Load parses the seed once per process. SEED_FILE points at an override on disk.
func Load() (*File, error) {
	loadOnce.Do(func() {
		data, err := readSeed()
		if err != nil {
			loadErr = err
			return
		}
		loaded, loadErr = Parse(data)
	})
	return loaded, loadErr
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if err := validate(&f); err != nil {
		return nil, err
	}
	if err := f.fillCanonicalData(); err != nil {
		return nil, err
	}
	return &f, nil
}

func readSeed() ([]byte, error) {
	if path := strings.TrimSpace(os.Getenv(seedFileEnv)); path != "" {
		return os.ReadFile(path)
	}
	return seedFS.ReadFile("seed.yaml")
}

func validate(f *File) error {
	intents := map[string]bool{}
	for _, in := range f.Intents {
		if strings.TrimSpace(in.Name) == "" {
			return errors.New("seed: intent without name")
		}
		intents[in.Name] = true
	}
	slugs := map[string]bool{}
	for _, r := range f.Responses {
		if r.Slug == "" || slugs[r.Slug] {
			return fmt.Errorf("seed: missing or duplicate response slug %q", r.Slug)
		}
		slugs[r.Slug] = true
		if !intents[r.Intent] {
			return fmt.Errorf("seed: response %q references unknown intent %q", r.Slug, r.Intent)
		}
	}
	seen := map[string]bool{}
	for cat, bank := range f.FollowUps {
		for _, q := range bank.Questions {
			if q.Question == "" || seen[q.Question] {
				return fmt.Errorf("seed: empty or duplicate follow-up question in %q", cat)
			}
			seen[q.Question] = true
		}
	}
	for _, c := range f.Predefined {
		if c.Question == "" || c.Type == "" {
			return errors.New("seed: predefined entry needs question and type")
		}
	}
	return nil
}

func (f *File) fillCanonicalData() error {
	rows, err := f.PortfolioRows()
	if err != nil {
		return err
	}
	for i := range f.Predefined {
		c := &f.Predefined[i]
		if c.Data != nil {
			continue
		}
		switch c.Type {
		case portfolio.CategorySkills:
			c.Data = portfolio.FormatSkills(rows.Skills)
		case portfolio.CategoryEducation:
			c.Data = portfolio.FormatEducation(rows.Education)
		case portfolio.CategoryExperience:
			c.Data = portfolio.FormatExperience(rows.Experience)
		case portfolio.CategoryProjects:
			c.Data = portfolio.FormatProjects(rows.Projects)
		case portfolio.CategoryResearch:
			c.Data = portfolio.FormatResearch(rows.Research)
		default:
			c.Data = map[string]any{}
		}
	}
	return nil
}

// Rows holds the seed portfolio converted to store models.
type Rows struct {
	Skills     []*portfolio.Skill
	Education  []*portfolio.Education
	Experience []*portfolio.Experience
	Projects   []*portfolio.Project
	Research   []*portfolio.ResearchPaper
}

func (f *File) PortfolioRows() (*Rows, error) {
	out := &Rows{}
	order := map[string]int{}
	for _, s := range f.Portfolio.Skills {
		order[s.Category]++
		out.Skills = append(out.Skills, &portfolio.Skill{
			CategoryName: s.Category,
			SkillName:    s.Name,
			SkillLevel:   s.Level,
			Color:        s.Color,
			SortOrder:    order[s.Category],
			IsActive:     true,
		})
	}
	for _, e := range f.Portfolio.Education {
		status := e.Status
		if status == "" {
			status = "completed"
		}
		out.Education = append(out.Education, &portfolio.Education{
			Degree:      e.Degree,
			Institution: e.Institution,
			StartYear:   e.StartYear,
			EndYear:     e.EndYear,
			Description: strings.TrimSpace(e.Description),
			Status:      status,
		})
	}
	for _, e := range f.Portfolio.Experience {
		start, err := parseDate(e.StartDate)
		if err != nil {
			return nil, fmt.Errorf("seed: experience %q: %w", e.Title, err)
		}
		end, err := parseDate(e.EndDate)
		if err != nil {
			return nil, fmt.Errorf("seed: experience %q: %w", e.Title, err)
		}
		out.Experience = append(out.Experience, &portfolio.Experience{
			Title:        e.Title,
			Company:      e.Company,
			StartDate:    start,
			EndDate:      end,
			IsCurrent:    e.Current,
			Description:  e.Description,
			Technologies: e.Technologies,
		})
	}
	for _, p := range f.Portfolio.Projects {
		start, err := parseDate(p.StartDate)
		if err != nil {
			return nil, fmt.Errorf("seed: project %q: %w", p.Title, err)
		}
		out.Projects = append(out.Projects, &portfolio.Project{
			Title:        p.Title,
			Description:  strings.TrimSpace(p.Description),
			Technologies: p.Technologies,
			GithubURL:    p.GithubURL,
			LiveURL:      p.LiveURL,
			Featured:     p.Featured,
			StartDate:    start,
		})
	}
	for _, r := range f.Portfolio.Research {
		pub, err := parseDate(r.PublicationDate)
		if err != nil {
			return nil, fmt.Errorf("seed: paper %q: %w", r.Title, err)
		}
		out.Research = append(out.Research, &portfolio.ResearchPaper{
			Title:           r.Title,
			Authors:         r.Authors,
			Publication:     r.Publication,
			PublicationDate: pub,
			Abstract:        strings.TrimSpace(r.Abstract),
			DOI:             r.DOI,
			URL:             r.URL,
		})
	}
	return out, nil
}

func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FollowUpBank flattens the bank into category -> ordered entries with the
// response type defaulted.
func (f *File) FollowUpBank() map[string][]FollowUp {
	out := make(map[string][]FollowUp, len(f.FollowUps))
	for cat, bank := range f.FollowUps {
		list := make([]FollowUp, 0, len(bank.Questions))
		for _, q := range bank.Questions {
			if q.ResponseType == "" {
				q.ResponseType = "text"
			}
			q.Answer = strings.TrimSpace(q.Answer)
			list = append(list, q)
		}
		out[cat] = list
	}
	return out
}
