package models

// Profile holds the text for the hero and about sections
type Profile struct {
	Name          string   `json:"name" yaml:"name"`
	Tagline       string   `json:"tagline" yaml:"tagline"`
	CallToAction  string   `json:"call_to_action" yaml:"call_to_action"`
	About         []string `json:"about" yaml:"about"`
	ProjectsIntro string   `json:"projects_intro" yaml:"projects_intro"`
}

// FormField is one input of the contact form
type FormField struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	// Type is an <input> type, or "textarea" for multi-line input
	Type string `yaml:"type"`
	Rows int    `yaml:"rows"`
}

// Multiline reports whether the field renders as a textarea
func (f FormField) Multiline() bool {
	return f.Type == "textarea"
}

// ContactForm describes the contact section. It has no submission endpoint.
type ContactForm struct {
	Heading     string      `yaml:"heading"`
	SubmitLabel string      `yaml:"submit_label"`
	Fields      []FormField `yaml:"fields"`
}

// Site wraps everything shown on the page besides the catalog
type Site struct {
	Title   string      `yaml:"title"`
	Profile Profile     `yaml:"profile"`
	Contact ContactForm `yaml:"contact"`
}
