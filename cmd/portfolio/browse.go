package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jun.dev/internal/services"
	"jun.dev/internal/tui"
)

var browseStyle string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the project catalog in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := tui.New(services.NewProjectService(cfg.Projects), *cfg.Site, browseStyle)
		if err != nil {
			return err
		}
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("run browser: %w", err)
		}
		return nil
	},
}

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Fill in the contact form",
	Long: `contact shows the same fields as the page's contact form.
No submission endpoint is configured, so the message is not sent anywhere.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := tui.RunContact(cmd.Context(), cfg.Site.Contact)
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if errors.Is(err, tui.ErrNoContactEndpoint) {
			logger.Debug("contact form completed", zap.Int("fields", len(msg)))
			fmt.Fprintln(cmd.OutOrStdout(), "Thanks! Message delivery is not set up yet, so nothing was sent.")
			return nil
		}
		return err
	},
}

func init() {
	browseCmd.Flags().StringVar(&browseStyle, "style", "dark", "glamour style for the about text (dark, light, notty)")
}
