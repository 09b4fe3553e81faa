package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/goliatone/go-readmegen/internal/logging"
	"github.com/goliatone/go-readmegen/internal/prompt"
	"github.com/goliatone/go-readmegen/pkg/model"
	"github.com/goliatone/go-readmegen/pkg/orchestrator"
	"github.com/goliatone/go-readmegen/pkg/templates"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, nil))
}

type options struct {
	template       string
	profile        string
	output         string
	theme          string
	variant        string
	locale         string
	strict         bool
	skipValidation bool
	interactive    bool
	list           bool
	concurrency    int
	logLevel       string
	logFormat      string
}

// run executes the CLI and returns the process exit code. A nil driver uses
// survey prompts when -interactive is set.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, driver prompt.Driver) int {
	flags := flag.NewFlagSet("readmegen-cli", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var opts options
	flags.StringVar(&opts.template, "template", "minimal", "built-in template id or path to a template document")
	flags.StringVar(&opts.profile, "profile", "", "path to a JSON or YAML profile document")
	flags.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	flags.StringVar(&opts.theme, "theme", "", "theme name")
	flags.StringVar(&opts.variant, "variant", "", "theme variant")
	flags.StringVar(&opts.locale, "locale", "", "locale")
	flags.BoolVar(&opts.strict, "strict", false, "abort on the first failed section instead of emitting warnings")
	flags.BoolVar(&opts.skipValidation, "skip-validation", false, "skip the validation gate")
	flags.BoolVar(&opts.interactive, "interactive", false, "choose template, sections and missing profile fields interactively")
	flags.BoolVar(&opts.list, "list", false, "list built-in templates and exit")
	flags.IntVar(&opts.concurrency, "concurrency", 0, "render up to n sections in parallel")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format (text or json)")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger := logging.New(logging.Config{Level: opts.logLevel, Format: opts.logFormat, Output: stderr})

	catalog, err := templates.Builtin()
	if err != nil {
		logger.Error("load built-in templates", "error", err)
		return 1
	}

	if opts.list {
		listTemplates(stdout, catalog.List())
		return 0
	}

	code, err := render(ctx, opts, catalog, logger, stdout, driver)
	if err != nil {
		fmt.Fprintf(stderr, "readmegen: %v\n", err)
	}
	return code
}

func render(ctx context.Context, opts options, catalog *templates.Catalog, logger *slog.Logger, stdout io.Writer, driver prompt.Driver) (int, error) {
	var wizard *prompt.Wizard
	if opts.interactive {
		wizard = prompt.NewWizard(driver)
		id, err := wizard.ChooseTemplate(ctx, catalog.List(), opts.template)
		if err != nil {
			return 1, err
		}
		opts.template = id
	}

	tpl, err := resolveTemplate(catalog, opts.template)
	if err != nil {
		return 1, err
	}

	var profile model.UserProfile
	if strings.TrimSpace(opts.profile) != "" {
		profile, err = templates.LoadProfileFile(opts.profile)
		if err != nil {
			return 1, err
		}
	}

	if wizard != nil {
		if tpl, err = wizard.ChooseSections(ctx, tpl); err != nil {
			return 1, err
		}
		if profile, err = wizard.CompleteProfile(ctx, tpl, profile); err != nil {
			return 1, err
		}
	}

	orch := orchestrator.New(
		orchestrator.WithLogger(logger),
		orchestrator.WithConcurrency(opts.concurrency),
	)
	result := orch.Render(ctx, tpl, profile,
		orchestrator.WithTheme(opts.theme),
		orchestrator.WithVariant(opts.variant),
		orchestrator.WithLocale(opts.locale),
		orchestrator.WithSkipValidation(opts.skipValidation),
		orchestrator.WithContinueOnError(!opts.strict),
	)

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return 1, fmt.Errorf("encode result: %w", err)
	}
	payload = append(payload, '\n')

	if opts.output != "" {
		if err := os.WriteFile(opts.output, payload, 0o644); err != nil {
			return 1, fmt.Errorf("write output: %w", err)
		}
		logger.Info("render written", "path", opts.output)
	} else if _, err := stdout.Write(payload); err != nil {
		return 1, fmt.Errorf("write output: %w", err)
	}

	if !result.Success {
		return 1, result.Err()
	}
	for _, warning := range result.Output.Metadata.Warnings {
		logger.Warn("section skipped", "section", warning.SectionID, "code", warning.Code, "message", warning.Message)
	}
	return 0, nil
}

// resolveTemplate treats ref as a built-in id first and as a file path
// otherwise.
func resolveTemplate(catalog *templates.Catalog, ref string) (model.Template, error) {
	ref = strings.TrimSpace(ref)
	if entry, ok := catalog.Lookup(ref); ok {
		return entry.Template, nil
	}
	if _, err := os.Stat(ref); err == nil {
		return templates.LoadTemplateFile(ref)
	}
	return catalog.Get(ref)
}

func listTemplates(w io.Writer, available []model.Metadata) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tVERSION\tDESCRIPTION")
	for _, meta := range available {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", meta.ID, meta.Name, meta.Version, meta.Description)
	}
	tw.Flush()
}
