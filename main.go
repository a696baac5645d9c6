package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jpoz/gitdash/internal/aggregate"
	"github.com/jpoz/gitdash/internal/config"
	"github.com/jpoz/gitdash/internal/github"
	"github.com/jpoz/gitdash/internal/gitlab"
	"github.com/jpoz/gitdash/internal/httpapi"
	"github.com/jpoz/gitdash/internal/logging"
	"github.com/jpoz/gitdash/internal/metrics"
	"github.com/jpoz/gitdash/internal/platform"
	"github.com/jpoz/gitdash/internal/report"
	"github.com/jpoz/gitdash/internal/state"
	"github.com/jpoz/gitdash/internal/tui"
	"github.com/jpoz/gitdash/internal/version"
)

type options struct {
	platform    string
	user        string
	report      bool
	out         string
	serve       bool
	addr        string
	checkUpdate bool
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var opts options
	flag.StringVar(&opts.platform, "platform", "", "platform to search: github or gitlab")
	flag.StringVar(&opts.user, "user", "", "username to load on start")
	flag.BoolVar(&opts.report, "report", false, "write a PDF report for -user and exit")
	flag.StringVar(&opts.out, "out", "", "directory for the PDF report")
	flag.BoolVar(&opts.serve, "serve", false, "serve the JSON API instead of the terminal UI")
	flag.StringVar(&opts.addr, "addr", "", "listen address for -serve")
	flag.BoolVar(&opts.checkUpdate, "check-update", false, "print update information and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	interactive := !opts.report && !opts.serve && !opts.checkUpdate
	logOutput := cfg.Logging.Output
	if interactive && (logOutput == "stdout" || logOutput == "stderr") {
		logOutput = config.StateLogPath()
	}
	logger, closer, err := logging.New(cfg.Logging.Level, logOutput)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closer.Close()
	slog.SetDefault(logger)

	p, err := pickPlatform(opts.platform)
	if err != nil {
		return err
	}

	svc := aggregate.New(
		github.NewClient(github.Config{
			BaseURL:    cfg.GitHub.BaseURL,
			HTTPClient: upstreamClient(platform.GitHub, cfg.GitHub.Timeout, logger),
		}),
		gitlab.NewClient(gitlab.Config{
			BaseURL:    cfg.GitLab.BaseURL,
			HTTPClient: upstreamClient(platform.GitLab, cfg.GitLab.Timeout, logger),
		}),
		aggregate.WithLogger(logger),
	)

	switch {
	case opts.checkUpdate:
		return checkUpdate(ctx, cfg)
	case opts.report:
		dir := opts.out
		if dir == "" {
			dir = cfg.Report.Dir
		}
		return writeReport(ctx, svc, opts.user, p, dir)
	case opts.serve:
		addr := opts.addr
		if addr == "" {
			addr = cfg.HTTP.Addr
		}
		return serve(ctx, svc, cfg.HTTP, addr, logger)
	}

	return runTUI(ctx, svc, opts.user, p, cfg.Report.Dir, logger)
}

// pickPlatform resolves the -platform flag, falling back to the last platform
// the user picked and then to GitHub.
func pickPlatform(flagValue string) (platform.Platform, error) {
	if flagValue != "" {
		return platform.Parse(flagValue)
	}
	if p, err := platform.Parse(config.LoadPlatform()); err == nil {
		return p, nil
	}
	return platform.GitHub, nil
}

// upstreamClient builds the HTTP client for one platform. Requests are
// debug-logged and counted.
func upstreamClient(p platform.Platform, timeout time.Duration, logger *slog.Logger) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &logging.Transport{
			Next:   &metrics.Transport{Platform: p.Slug()},
			Logger: logger,
		},
	}
}

func checkUpdate(ctx context.Context, cfg config.Config) error {
	checker := version.NewChecker(cfg.Update.ManifestURL, &http.Client{Timeout: 10 * time.Second})
	info, err := checker.Check(ctx)
	if err != nil {
		return fmt.Errorf("check for updates: %w", err)
	}

	fmt.Printf("gitdash %s\n", info.Current)
	if !info.UpdateAvailable {
		fmt.Println("✓ Up to date")
		return nil
	}
	fmt.Printf("Update available: %s\n", info.Latest)
	if info.Mandatory {
		fmt.Println("This update is required.")
	}
	if info.ReleaseNotes != "" {
		fmt.Println()
		fmt.Println(info.ReleaseNotes)
	}
	if info.DownloadURL != "" {
		fmt.Printf("\nDownload: %s\n", info.DownloadURL)
	}
	return nil
}

func writeReport(ctx context.Context, svc *aggregate.Service, username string, p platform.Platform, dir string) error {
	if username == "" {
		return errors.New("-report needs -user")
	}
	ctx = logging.WithNewRequestID(ctx)

	res := svc.GetSummary(ctx, username, p)
	sum, ok := res.Value()
	if !ok {
		return fmt.Errorf("load %s user %s: %s", p, username, res.Message())
	}
	if sum.ContributionsError != "" {
		fmt.Fprintf(os.Stderr, "Warning: activity unavailable: %s\n", sum.ContributionsError)
	}

	path, err := report.Save(dir, sum.Summary)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Printf("✓ Report saved to %s\n", path)
	return nil
}

func serve(ctx context.Context, svc *aggregate.Service, cfg config.HTTPConfig, addr string, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      httpapi.NewRouter(svc),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

func runTUI(ctx context.Context, svc *aggregate.Service, username string, p platform.Platform, reportDir string, logger *slog.Logger) error {
	store := state.NewStore(state.Initial(p))
	holder := state.NewHolder(ctx, svc, store, logger)
	defer func() {
		holder.Close()
		holder.Wait()
	}()

	if username != "" {
		holder.SetQuery(username)
	}

	model := tui.New(ctx, holder, tui.Options{
		Theme:     config.LoadTheme(),
		ReportDir: reportDir,
	})
	prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if username != "" {
		go prog.Send(tui.SearchMsg{Username: username})
	}

	_, err := prog.Run()
	if err := config.SavePlatform(holder.State().Platform.Slug()); err != nil {
		logger.Warn("save platform preference", "error", err)
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
