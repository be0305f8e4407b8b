package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"

	"jun.dev/internal/models"
)

// ErrNoContactEndpoint reports that the contact form collected a message but
// there is nowhere to deliver it
var ErrNoContactEndpoint = errors.New("no contact submission endpoint is configured")

// ContactMessage holds the values entered into the contact form, keyed by field id
type ContactMessage map[string]string

// contactForm mirrors the page's contact section as a huh form
type contactForm struct {
	spec   models.ContactForm
	values []string
	form   *huh.Form
}

func newContactForm(spec models.ContactForm) *contactForm {
	cf := &contactForm{spec: spec, values: make([]string, len(spec.Fields))}

	fields := make([]huh.Field, 0, len(spec.Fields))
	for i, f := range spec.Fields {
		if f.Multiline() {
			lines := f.Rows
			if lines <= 0 {
				lines = 4
			}
			fields = append(fields, huh.NewText().Title(f.Label).Lines(lines).Value(&cf.values[i]))
			continue
		}
		fields = append(fields, huh.NewInput().Title(f.Label).Value(&cf.values[i]))
	}
	cf.form = huh.NewForm(huh.NewGroup(fields...))
	return cf
}

// message returns the entered values keyed by field id
func (cf *contactForm) message() ContactMessage {
	msg := make(ContactMessage, len(cf.spec.Fields))
	for i, f := range cf.spec.Fields {
		msg[f.ID] = cf.values[i]
	}
	return msg
}

// RunContact shows the contact form. The form is a stub: once the user
// fills it in, RunContact returns the entered values with ErrNoContactEndpoint.
func RunContact(ctx context.Context, spec models.ContactForm) (ContactMessage, error) {
	cf := newContactForm(spec)
	if err := cf.form.RunWithContext(ctx); err != nil {
		return nil, err
	}
	return cf.message(), ErrNoContactEndpoint
}
