package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phoswap/phodeploy/internal/adapters/interactive"
	"github.com/phoswap/phodeploy/internal/domain"
)

// hintedError keeps the original error for errors.As while adding operator hints
type hintedError struct {
	err  error
	hint string
}

func (e *hintedError) Error() string {
	return e.err.Error() + "\n" + e.hint
}

func (e *hintedError) Unwrap() error {
	return e.err
}

// withHint adds suggestions for errors the operator can fix
func withHint(err error) error {
	var lookupErr *domain.ConfigLookupError
	if errors.As(err, &lookupErr) {
		var lines []string
		if suggestions := interactive.SuggestNames(lookupErr.Name, lookupErr.Known); len(suggestions) > 0 {
			lines = append(lines, fmt.Sprintf("  did you mean: %s?", strings.Join(suggestions, ", ")))
		}
		if len(lookupErr.Known) > 0 {
			lines = append(lines, fmt.Sprintf("  registered on %s: %s", lookupErr.Network, strings.Join(lookupErr.Known, ", ")))
		}
		lines = append(lines, fmt.Sprintf("  record it with: phodeploy contracts set %s <address> --network %s", lookupErr.Name, lookupErr.Network))
		return &hintedError{err: err, hint: strings.Join(lines, "\n")}
	}

	if errors.Is(err, domain.ErrNetworkNotConfigured) {
		return &hintedError{err: err, hint: "  add a [networks.<name>] table with rpc_url to phodeploy.toml"}
	}

	return err
}
