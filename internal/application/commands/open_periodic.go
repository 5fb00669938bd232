package commands

import (
	"context"
	"fmt"
	"strings"

	"mindmap/internal/application"
	"mindmap/internal/domain"
	"mindmap/internal/ports"
)

// OpenPeriodicResult contains the result of opening a periodic note
type OpenPeriodicResult struct {
	Path    string
	Period  domain.Period
	Written bool // False when an existing planning note was kept
	Message string
}

// OpenPeriodicCommand writes the note for the current day, week, month,
// quarter or year.
//
// The daily note is rewritten on every call; the longer periods are only
// written when missing.
type OpenPeriodicCommand struct {
	vault  ports.Vault
	clock  ports.Clock
	layout domain.Layout
	Period domain.Period
}

// NewOpenPeriodicCommand creates a new OpenPeriodicCommand
func NewOpenPeriodicCommand(vault ports.Vault, clock ports.Clock, layout domain.Layout, period domain.Period) *OpenPeriodicCommand {
	return &OpenPeriodicCommand{
		vault:  vault,
		clock:  clock,
		layout: layout,
		Period: period,
	}
}

// NewOpenTodayCommand creates an OpenPeriodicCommand for the daily note
func NewOpenTodayCommand(vault ports.Vault, clock ports.Clock, layout domain.Layout) *OpenPeriodicCommand {
	return NewOpenPeriodicCommand(vault, clock, layout, domain.PeriodDaily)
}

// Validate checks if the period is known
func (c *OpenPeriodicCommand) Validate() error {
	for _, p := range domain.Periods() {
		if p == c.Period {
			return nil
		}
	}
	return &application.ValidationError{
		Field:   "period",
		Message: fmt.Sprintf("unknown period (%d)", int(c.Period)),
	}
}

// Execute runs the open periodic command
func (c *OpenPeriodicCommand) Execute(ctx context.Context) (*OpenPeriodicResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	path := c.layout.PeriodNotePath(c.Period, now)

	fallback, _ := domain.BuiltinTemplate(c.Period.Label())
	body, err := application.ResolveTemplate(c.vault, c.layout, c.Period.Label(), fallback)
	if err != nil {
		return nil, err
	}

	tokens := domain.NewTokens(now).With(map[string]string{
		domain.TokenTitle: strings.TrimSuffix(domain.BaseName(path), ".md"),
		domain.TokenKind:  c.Period.Label(),
	})
	content := domain.ApplyTokens(body, tokens)

	written := true
	if c.Period.Replaces() {
		err = application.WriteOrReplace(c.vault, path, content)
	} else {
		written, err = application.WriteIfMissing(c.vault, path, content)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to write %s note: %w", c.Period.String(), err)
	}

	entry, err := application.PathExists(c.vault, path)
	if err != nil {
		return nil, err
	}
	if !entry.IsFile() {
		return nil, &application.CreationError{Path: path, Reason: c.failureReason()}
	}

	return &OpenPeriodicResult{
		Path:    path,
		Period:  c.Period,
		Written: written,
		Message: fmt.Sprintf("Opened %s", strings.TrimSuffix(domain.BaseName(path), ".md")),
	}, nil
}

func (c *OpenPeriodicCommand) failureReason() string {
	if c.Period == domain.PeriodDaily {
		return "failed to create/open today's note"
	}
	return fmt.Sprintf("failed to create/open this %s's note", c.Period.String())
}
