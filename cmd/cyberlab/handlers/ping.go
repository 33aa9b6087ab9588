package handlers

import (
	"context"
	"fmt"

	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/config"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/provisioning"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/report"
)

// Ping checks connectivity and credentials without creating anything.
func Ping(ctx context.Context, configPath string, verbose bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.Join(cfg.ValidateCredentials()); err != nil {
		return err
	}

	observer := provisioning.NewConsoleObserver(verbosity(verbose))
	failures := report.NewCollector()
	api := newAPIClient(cfg, failures, nil, observer.Logger())

	pctx := provisioning.NewContext(ctx, cfg, "", api, nil, failures)
	pctx.Observer = observer

	res := provisioning.Run(pctx, []provisioning.Phase{
		provisioning.NewConnectivityPhase(),
		provisioning.NewIdentityPhase(),
	})
	if res.Status != provisioning.StatusCompleted {
		if !failures.Empty() {
			fmt.Fprint(stdout, report.RenderPlain(failures.Records()))
		}
		return fmt.Errorf("ping failed: %w", res.Err)
	}

	fmt.Fprintf(stdout, "API reachable at %s; authenticated as %s\n", cfg.API.BaseURL, res.State.OwnerEmail)
	return nil
}
