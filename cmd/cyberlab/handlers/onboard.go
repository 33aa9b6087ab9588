// Package handlers implements the business logic for CLI commands.
//
// Handlers are called by the command definitions in the commands package.
// Collaborators are reached through factory variables so tests can replace
// them without a terminal or network.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/config"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/metrics"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/platform/cloudshare"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/platform/s3"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/provisioning"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/report"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/roster"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/util/naming"
)

// Uploader stores a report document and returns where it went.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte) (string, error)
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfig builds the effective configuration.
	loadConfig = config.Load

	// newAPIClient creates the signed CloudShare client.
	newAPIClient = func(cfg *config.Config, rec report.Recorder, obs cloudshare.CallObserver, log logr.Logger) cloudshare.LabAPI {
		return cloudshare.NewClient(
			cloudshare.Credentials{APIID: cfg.Credentials.APIID, APIKey: cfg.Credentials.APIKey},
			cloudshare.WithBaseURL(cfg.API.BaseURL),
			cloudshare.WithTimeout(cfg.API.Timeout),
			cloudshare.WithRecorder(rec),
			cloudshare.WithCallObserver(obs),
			cloudshare.WithLogger(log),
		)
	}

	// newUploader creates the report archive client.
	newUploader = func(ctx context.Context, a config.ArchiveConfig) (Uploader, error) {
		client, err := s3.NewClient(ctx, a.Endpoint, a.Region, a.AccessKey, a.SecretKey, a.PathStyle)
		if err != nil {
			return nil, err
		}
		return s3.NewArchiver(client, a.Bucket), nil
	}

	// newPrompter returns the interactive roster prompter.
	newPrompter = func() roster.Prompter { return roster.HuhPrompter{} }

	// promptCustomer asks for the customer name on the terminal.
	promptCustomer = promptCustomerHuh

	// isTerminal reports whether stdout is an interactive terminal.
	isTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// newRunID identifies a run in reports and archive keys.
	newRunID = uuid.NewString

	// stdout receives all handler output.
	stdout io.Writer = os.Stdout
)

// OnboardOptions are the flags of the onboard command.
type OnboardOptions struct {
	ConfigPath     string
	RosterPath     string
	Customer       string
	ReportFile     string
	MetricsFile    string
	DryRun         bool
	NonInteractive bool
	Verbose        bool
}

// Onboard runs the full onboarding workflow for one customer.
//
// Only pre-flight failures (validation, connectivity, identity) are returned
// as errors. Aborted and partially failed runs print their failure report
// and return nil.
func Onboard(ctx context.Context, opts OnboardOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	interactive := !opts.NonInteractive && isTerminal()

	customer, err := resolveCustomer(ctx, opts.Customer, interactive)
	if err != nil {
		return err
	}

	r, err := loadRoster(ctx, opts.RosterPath, interactive)
	if err != nil {
		return err
	}

	if opts.DryRun {
		printIssues(cfg.Validate())
		fmt.Fprint(stdout, renderPlan(provisioning.BuildPlan(cfg, customer, r)))
		return nil
	}

	if err := config.Join(cfg.ValidateCredentials()); err != nil {
		return err
	}

	observer := provisioning.NewConsoleObserver(verbosity(opts.Verbose))
	failures := report.NewCollector()
	rec := metrics.New()
	api := newAPIClient(cfg, failures, rec, observer.Logger())

	pctx := provisioning.NewContext(ctx, cfg, customer, api, r, failures)
	pctx.Observer = observer
	pctx.Metrics = rec

	res := provisioning.Run(pctx, provisioning.DefaultPhases())

	styled := isTerminal()
	fmt.Fprint(stdout, renderSummary(res, failures.Len(), styled))
	if !failures.Empty() {
		if styled {
			fmt.Fprint(stdout, report.RenderStyled(failures.Records()))
		} else {
			fmt.Fprint(stdout, report.RenderPlain(failures.Records()))
		}
	}
	if note := orphanNote(res); note != "" {
		fmt.Fprintln(stdout, note)
	}

	doc := report.Document{RunID: newRunID(), Customer: customer, Failures: failures.Records()}
	if err := exportReport(ctx, cfg, opts, doc, res); err != nil {
		fmt.Fprintf(stdout, "Warning: %v\n", err)
	}

	if opts.MetricsFile != "" {
		if err := rec.WriteTextfile(opts.MetricsFile); err != nil {
			fmt.Fprintf(stdout, "Warning: %v\n", err)
		}
	}

	if res.ExitCode() != 0 {
		return fmt.Errorf("onboarding %s stopped at %s: %w", customer, res.AbortedStep, res.Err)
	}
	return nil
}

func resolveCustomer(ctx context.Context, flag string, interactive bool) (string, error) {
	customer := strings.TrimSpace(flag)
	if customer != "" {
		return customer, nil
	}
	if !interactive {
		return "", errors.New("customer name is required (use --customer)")
	}
	customer, err := promptCustomer(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read customer name: %w", err)
	}
	return strings.TrimSpace(customer), nil
}

func promptCustomerHuh(ctx context.Context) (string, error) {
	var customer string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Customer Name").
				Description("Used for the project, team and environment names").
				Value(&customer).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("customer name is required")
					}
					return nil
				}),
		),
	).RunWithContext(ctx)
	return customer, err
}

func loadRoster(ctx context.Context, path string, interactive bool) (*roster.Roster, error) {
	if path == "" {
		path = roster.DefaultFile
	}

	src, prompted, err := roster.Resolve(path, interactive, newPrompter())
	if err != nil {
		return nil, err
	}
	if prompted {
		fmt.Fprintf(stdout, "Roster file %s not found; enter users interactively.\n", path)
	}

	r, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	for _, d := range r.Diagnostics {
		fmt.Fprintf(stdout, "Roster: %s\n", d)
	}
	return r, nil
}

// exportReport writes the JSON report file and archives failed runs.
func exportReport(ctx context.Context, cfg *config.Config, opts OnboardOptions, doc report.Document, res *provisioning.Result) error {
	var errs []error

	if opts.ReportFile != "" {
		if err := report.WriteJSONFile(opts.ReportFile, doc); err != nil {
			errs = append(errs, err)
		} else {
			fmt.Fprintf(stdout, "Report written to %s\n", opts.ReportFile)
		}
	}

	if a := cfg.Report.Archive; a.Enabled && len(doc.Failures) > 0 {
		uri, err := archiveReport(ctx, a, doc, res)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to archive report: %w", err))
		} else {
			fmt.Fprintf(stdout, "Report archived to %s\n", uri)
		}
	}

	return errors.Join(errs...)
}

func archiveReport(ctx context.Context, a config.ArchiveConfig, doc report.Document, res *provisioning.Result) (string, error) {
	up, err := newUploader(ctx, a)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := report.WriteJSON(&buf, doc); err != nil {
		return "", err
	}

	key := naming.ReportKey(a.Prefix, doc.Customer, doc.RunID, res.Finished)
	return up.Upload(ctx, key, []byte(buf.String()))
}

func printIssues(issues []config.ValidationError) {
	for _, ve := range issues {
		fmt.Fprintln(stdout, ve.Error())
	}
}

func verbosity(verbose bool) int {
	if verbose {
		return 1
	}
	return 0
}
