package portfolio

import (
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	start := time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		start   *time.Time
		end     *time.Time
		current bool
		want    string
	}{
		{name: "current", start: &start, current: true, want: "Jan 2020 - Present"},
		{name: "ended", start: &start, end: &end, want: "Jan 2020 - Mar 2022"},
		{name: "open", start: &start, want: "Jan 2020"},
		{name: "no start", end: &end, want: ""},
	}
	for _, tc := range cases {
		if got := Duration(tc.start, tc.end, tc.current); got != tc.want {
			t.Fatalf("%s: got=%q want=%q", tc.name, got, tc.want)
		}
	}
}

func TestFormatSkillsGroupsInOrder(t *testing.T) {
	rows := []*Skill{
		{CategoryName: "Backend", SkillName: "Go", SkillLevel: 9, IsActive: true},
		{CategoryName: "Frontend", SkillName: "React", SkillLevel: 8, IsActive: true},
		{CategoryName: "Backend", SkillName: "Python", SkillLevel: 8, IsActive: true},
		{CategoryName: "Backend", SkillName: "Perl", SkillLevel: 2, IsActive: false},
	}
	got := FormatSkills(rows)
	if len(got) != 2 {
		t.Fatalf("unexpected categories: %+v", got)
	}
	if got[0].Name != "Backend" || len(got[0].Skills) != 2 || got[0].Skills[1].Name != "Python" {
		t.Fatalf("unexpected backend group: %+v", got[0])
	}
	if got[1].Name != "Frontend" {
		t.Fatalf("unexpected second group: %+v", got[1])
	}
}

func TestFormatEducationAndResearchYears(t *testing.T) {
	end := 2019
	edu := FormatEducation([]*Education{
		{Degree: "PhD", EndYear: nil, Status: "current"},
		{Degree: "MSc", EndYear: &end, Status: "completed"},
	})
	if edu[0].Year != "Present" || edu[1].Year != "2019" {
		t.Fatalf("unexpected years: %q %q", edu[0].Year, edu[1].Year)
	}

	pub := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	res := FormatResearch([]*ResearchPaper{{Title: "A", PublicationDate: &pub}, {Title: "B"}})
	if res[0].Year != "2023" || res[1].Year != "" {
		t.Fatalf("unexpected research years: %q %q", res[0].Year, res[1].Year)
	}
	if res[1].Authors == nil {
		t.Fatalf("authors should never be nil")
	}
}
