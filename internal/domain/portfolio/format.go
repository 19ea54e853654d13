package portfolio

import (
	"strconv"
	"time"
)

// FormatSkills groups active skills by category, keeping the incoming order
// of both categories and skills.
func FormatSkills(rows []*Skill) []SkillCategory {
	out := []SkillCategory{}
	index := map[string]int{}
	for _, s := range rows {
		if s == nil || !s.IsActive {
			continue
		}
		i, ok := index[s.CategoryName]
		if !ok {
			i = len(out)
			index[s.CategoryName] = i
			out = append(out, SkillCategory{Name: s.CategoryName, Skills: []SkillView{}})
		}
		out[i].Skills = append(out[i].Skills, SkillView{Name: s.SkillName, Level: s.SkillLevel, Color: s.Color})
	}
	return out
}

func FormatEducation(rows []*Education) []EducationView {
	out := make([]EducationView, 0, len(rows))
	for _, e := range rows {
		if e == nil {
			continue
		}
		year := "Present"
		if e.EndYear != nil && *e.EndYear > 0 {
			year = strconv.Itoa(*e.EndYear)
		}
		out = append(out, EducationView{
			Degree:      e.Degree,
			Institution: e.Institution,
			Year:        year,
			Description: e.Description,
			Status:      e.Status,
		})
	}
	return out
}

func FormatExperience(rows []*Experience) []ExperienceView {
	out := make([]ExperienceView, 0, len(rows))
	for _, e := range rows {
		if e == nil {
			continue
		}
		out = append(out, ExperienceView{
			Title:        e.Title,
			Company:      e.Company,
			Duration:     Duration(e.StartDate, e.EndDate, e.IsCurrent),
			Description:  nonNil(e.Description),
			Technologies: nonNil(e.Technologies),
		})
	}
	return out
}

// Duration renders "Jan 2020 - Present", "Jan 2020 - Mar 2022" or just the
// start month when no end is known. No start yields "".
func Duration(start, end *time.Time, current bool) string {
	if start == nil || start.IsZero() {
		return ""
	}
	from := start.Format("Jan 2006")
	switch {
	case current:
		return from + " - Present"
	case end != nil && !end.IsZero():
		return from + " - " + end.Format("Jan 2006")
	default:
		return from
	}
}

func FormatProjects(rows []*Project) []ProjectView {
	out := make([]ProjectView, 0, len(rows))
	for _, p := range rows {
		if p == nil {
			continue
		}
		out = append(out, ProjectView{
			Title:        p.Title,
			Description:  p.Description,
			Technologies: nonNil(p.Technologies),
			Github:       p.GithubURL,
			Live:         p.LiveURL,
			Featured:     p.Featured,
		})
	}
	return out
}

func FormatResearch(rows []*ResearchPaper) []ResearchView {
	out := make([]ResearchView, 0, len(rows))
	for _, r := range rows {
		if r == nil {
			continue
		}
		year := ""
		if r.PublicationDate != nil && !r.PublicationDate.IsZero() {
			year = strconv.Itoa(r.PublicationDate.Year())
		}
		out = append(out, ResearchView{
			Title:    r.Title,
			Authors:  nonNil(r.Authors),
			Journal:  r.Publication,
			Year:     year,
			Abstract: r.Abstract,
			DOI:      r.DOI,
			URL:      r.URL,
		})
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
