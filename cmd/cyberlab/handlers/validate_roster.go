package handlers

import (
	"context"
	"fmt"

	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/roster"
)

// ValidateRoster parses a roster file and prints what would be invited.
func ValidateRoster(ctx context.Context, path string) error {
	if path == "" {
		path = roster.DefaultFile
	}

	r, err := roster.NewCSVSource(path).Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	fmt.Fprint(stdout, renderRoster(r, isTerminal()))
	return nil
}
