// Package wizard prompts for the router login on first use.
package wizard

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/FreeMasen/orbi-helpers/internal/config"
)

var errPasswordRequired = errors.New("a password is required")

// Answers holds the user's responses.
type Answers struct {
	Username string
	Password string
}

// Defaults prefills the form from an existing config. The password is
// never prefilled; leaving it empty keeps the stored one.
func Defaults(cfg *config.Config) Answers {
	if cfg == nil {
		return Answers{Username: "admin"}
	}
	a := Answers{Username: cfg.Username}
	if a.Username == "" {
		a.Username = "admin"
	}
	return a
}

// Apply copies the answers onto cfg. An empty password keeps cfg's.
func (a Answers) Apply(cfg *config.Config) {
	cfg.Username = a.Username
	if a.Password != "" {
		cfg.Password = a.Password
	}
}

// Run shows the interactive form.
func Run(defaults Answers, hasPassword bool) (*Answers, error) {
	answers := defaults

	passwordDesc := "The password of the router's admin page."
	if hasPassword {
		passwordDesc += " Leave empty to keep the stored one."
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Router username").
				Description("Usually \"admin\".").
				Validate(huh.ValidateNotEmpty()).
				Value(&answers.Username),
			huh.NewInput().
				Title("Router password").
				Description(passwordDesc).
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if s == "" && !hasPassword {
						return errPasswordRequired
					}
					return nil
				}).
				Value(&answers.Password),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}
	return &answers, nil
}
