package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/phoswap/phodeploy/internal/config"
	"github.com/phoswap/phodeploy/internal/usecase"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// ConfirmerAdapter asks the operator before transactions are broadcast
type ConfirmerAdapter struct {
	config *config.RuntimeConfig
}

// NewConfirmerAdapter creates a new confirmer adapter
func NewConfirmerAdapter(cfg *config.RuntimeConfig) *ConfirmerAdapter {
	return &ConfirmerAdapter{config: cfg}
}

// Confirm returns true when the operator accepts. --yes always accepts;
// non-interactive mode without --yes refuses.
func (c *ConfirmerAdapter) Confirm(ctx context.Context, prompt string) (bool, error) {
	if c.config.AssumeYes {
		return true, nil
	}
	if c.config.NonInteractive {
		return false, fmt.Errorf("confirmation required; pass --yes to run non-interactively")
	}

	p := promptui.Prompt{
		Label:     color.New(color.FgYellow).Sprint(prompt),
		IsConfirm: true,
	}
	if _, err := p.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return true, nil
}

// SuggestNames returns the known names closest to input, best match first
func SuggestNames(input string, known []string) []string {
	if input == "" || len(known) == 0 {
		return nil
	}

	lowered := make([]string, len(known))
	for i, k := range known {
		lowered[i] = strings.ToLower(k)
	}

	var suggestions []string
	for _, match := range fuzzy.Find(strings.ToLower(input), lowered) {
		suggestions = append(suggestions, known[match.Index])
	}
	// fuzzy needs input to be a subsequence; also catch the reverse (e.g. "farms")
	for i, k := range lowered {
		if strings.Contains(strings.ToLower(input), k) && !lo.Contains(suggestions, known[i]) {
			suggestions = append(suggestions, known[i])
		}
	}
	return suggestions
}

// Ensure the adapter implements the interface
var _ usecase.Confirmer = (*ConfirmerAdapter)(nil)
