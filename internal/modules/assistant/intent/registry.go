package intent

const (
	Skills     = "SKILLS_INQUIRY"
	Experience = "EXPERIENCE_INQUIRY"
	Education  = "EDUCATION_INQUIRY"
	Project    = "PROJECT_INQUIRY"
	Research   = "RESEARCH_INQUIRY"
	Contact    = "CONTACT_INQUIRY"
	Overview   = "OVERVIEW_INQUIRY"
	General    = "GENERAL_INQUIRY"
)

// Pattern describes how one intent is recognised.
type Pattern struct {
	Intent     string
	Keywords   []string
	Phrases    []string
	Predicates []Predicate
	Weight     float64
}

// Registry is an ordered, immutable list of patterns. Order breaks score ties.
type Registry struct {
	patterns []Pattern
}

func NewRegistry(patterns ...Pattern) *Registry {
	cp := make([]Pattern, len(patterns))
	copy(cp, patterns)
	return &Registry{patterns: cp}
}

func (r *Registry) Patterns() []Pattern {
	cp := make([]Pattern, len(r.patterns))
	copy(cp, r.patterns)
	return cp
}

func (r *Registry) Len() int { return len(r.patterns) }

func DefaultRegistry() *Registry {
	return NewRegistry(
		Pattern{
			Intent: Skills,
			Keywords: []string{
				"skill", "technology", "tech", "programming", "language", "framework",
				"tool", "expertise", "proficient", "know", "use",
			},
			Phrases: []string{
				"what technologies", "programming languages", "technical skills",
				"what can you do", "tech stack",
			},
			Predicates: []Predicate{
				HasWord("skill", "technology"),
				Tagged("skill", "technology"),
				Sequence("what|which", "#Person", "know|use|good"),
			},
			Weight: 1.2,
		},
		Pattern{
			Intent: Experience,
			Keywords: []string{
				"experience", "work", "job", "career", "professional", "company", "role",
				"position", "employment", "background",
			},
			Phrases: []string{
				"work experience", "professional background", "job history",
				"where worked", "career path",
			},
			Predicates: []Predicate{
				HasWord("experience", "work"),
				Sequence("#Person", "#Verb", "#Work"),
				Sequence("where|what", "#Person", "work|worked|job"),
			},
			Weight: 1.2,
		},
		Pattern{
			Intent: Education,
			Keywords: []string{
				"education", "degree", "phd", "university", "college", "academic", "study",
				"qualification", "school", "graduate",
			},
			Phrases: []string{
				"educational background", "academic qualification", "university degree",
				"phd research",
			},
			Predicates: []Predicate{
				HasWord("education", "degree", "phd"),
				Tagged("education", "university"),
				Sequence("where|what", "#Person", "study|studied|graduate"),
			},
			Weight: 1.1,
		},
		Pattern{
			Intent: Project,
			Keywords: []string{
				"project", "built", "created", "developed", "portfolio", "github", "repo",
				"application", "website", "app",
			},
			Phrases: []string{
				"projects worked on", "things built", "portfolio projects",
				"github projects", "what built",
			},
			Predicates: []Predicate{
				HasWord("project", "built", "created"),
				Sequence("#Person", "#Verb", "#Create"),
				Sequence("what|show", "#Person", "built|made|created|developed"),
			},
			Weight: 1.2,
		},
		Pattern{
			Intent: Research,
			Keywords: []string{
				"research", "paper", "publication", "academic", "study", "findings",
				"thesis", "dissertation", "conference",
			},
			Phrases: []string{
				"research work", "published papers", "academic research", "research findings",
			},
			Predicates: []Predicate{
				HasWord("research", "paper", "publication"),
				Tagged("research", "academic"),
				Sequence("what|show", "#Person", "research|published|wrote"),
			},
			Weight: 1.1,
		},
		Pattern{
			Intent: Contact,
			Keywords: []string{
				"contact", "email", "reach", "connect", "hire", "availability",
				"get in touch", "message",
			},
			Phrases: []string{
				"how to contact", "get in touch", "hire you", "email address",
				"contact information",
			},
			Predicates: []Predicate{
				HasWord("contact", "email", "hire"),
				Sequence("how|can", "#Person", "contact|reach|hire"),
				HasWord("get in touch"),
			},
			Weight: 1.0,
		},
		Pattern{
			Intent: Overview,
			Keywords: []string{
				"about", "who", "background", "introduction", "biography", "profile",
				"overview", "summary",
			},
			Phrases: []string{
				"tell me about", "who are you", "about yourself", "background information",
				"brief overview",
			},
			Predicates: []Predicate{
				HasWord("about", "who"),
				Sequence("tell|who|what", "#Person"),
				Sequence("about", "you|yourself|suresh"),
			},
			Weight: 0.8,
		},
	)
}

var suggestions = map[string][]string{
	Skills: {
		"What projects has Suresh worked on?",
		"Tell me about Suresh's experience",
		"What is Suresh's educational background?",
	},
	Experience: {
		"What are Suresh's technical skills?",
		"What projects has Suresh built?",
		"What research has Suresh done?",
	},
	Education: {
		"What is Suresh's professional experience?",
		"What research has Suresh published?",
		"What are Suresh's technical skills?",
	},
	Project: {
		"What technologies does Suresh use?",
		"Tell me about Suresh's work experience",
		"How can I contact Suresh?",
	},
	Research: {
		"What is Suresh's educational background?",
		"What projects has Suresh worked on?",
		"What are Suresh's technical skills?",
	},
	Contact: {
		"Tell me about Suresh's background",
		"What projects has Suresh built?",
		"What are Suresh's technical skills?",
	},
	Overview: {
		"What are Suresh's technical skills?",
		"What is Suresh's professional experience?",
		"What projects has Suresh worked on?",
	},
	General: {
		"Tell me about Suresh's background",
		"What are Suresh's technical skills?",
		"What projects has Suresh worked on?",
	},
}

// Suggestions returns three related questions for an intent, falling back to
// the general list for unknown names.
func Suggestions(intentName string) []string {
	list, ok := suggestions[intentName]
	if !ok {
		list = suggestions[General]
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}
