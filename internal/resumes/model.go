package resumes

// SectionEntry is a single row of a resume section (a job, a course, a link).
// The editor owns the shape of these rows and replaces whole sections on
// save, so they stay schema-flexible.
type SectionEntry map[string]any

// AdditionalSections flags which optional sections the editor shows.
type AdditionalSections struct {
	Courses         bool `json:"courses"`
	Recommendations bool `json:"recommendations"`
	Languages       bool `json:"languages"`
	Hobbies         bool `json:"hobbies"`
}

// ResumeBase holds document-level settings and the human-readable save stamp.
type ResumeBase struct {
	Title              string             `json:"title"`
	Template           string             `json:"template"`
	Date               string             `json:"date"`
	AdditionalSections AdditionalSections `json:"additionalSections"`
}

// ResumeData holds the profile and content fields of a resume.
type ResumeData struct {
	Avatar          string         `json:"avatar"`
	Job             string         `json:"job"`
	Name            string         `json:"name"`
	Surname         string         `json:"surname"`
	Birth           string         `json:"birth"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	Country         string         `json:"country"`
	City            string         `json:"city"`
	Summary         string         `json:"summary"`
	Jobs            []SectionEntry `json:"jobs"`
	Education       []SectionEntry `json:"education"`
	Links           []SectionEntry `json:"links"`
	Skills          []SectionEntry `json:"skills"`
	Courses         []SectionEntry `json:"courses"`
	Recommendations []SectionEntry `json:"recommendations"`
	Languages       []SectionEntry `json:"languages"`
	Hobbies         string         `json:"hobbies"`
}

// Resume is a stored resume document. Owner records the creating user's id at
// creation time; the store never re-validates it against the users table.
type Resume struct {
	ID    string     `json:"id"`
	Owner string     `json:"owner"`
	Base  ResumeBase `json:"resumeBase"`
	Data  ResumeData `json:"resumeData"`
}

const defaultTitle = "Название резюме"

// DefaultBase returns the placeholder settings for a newly created resume.
func DefaultBase(date string) ResumeBase {
	return ResumeBase{
		Title:    defaultTitle,
		Template: "base",
		Date:     date,
	}
}

// DefaultData returns empty content for a newly created resume. Sequences are
// non-nil so they serialize as empty arrays.
func DefaultData() ResumeData {
	return ResumeData{
		Jobs:            []SectionEntry{},
		Education:       []SectionEntry{},
		Links:           []SectionEntry{},
		Skills:          []SectionEntry{},
		Courses:         []SectionEntry{},
		Recommendations: []SectionEntry{},
		Languages:       []SectionEntry{},
	}
}
