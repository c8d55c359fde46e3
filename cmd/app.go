// Package cmd implements the CLI application to track a portfolio and plan its rebalancing.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/invest"
	"github.com/etnz/invest/config"
	"github.com/etnz/invest/logger"
	"github.com/etnz/invest/renderer"
	"github.com/etnz/invest/store"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// group is a set of subcommands listed together in the help.
type group struct {
	name     string
	commands []subcommands.Command
}

// groups lists every subcommand, in help order.
var groups = []group{
	{"holdings", []subcommands.Command{&addCmd{}, &editCmd{}, &rmCmd{}, &holdingsCmd{}, &classesCmd{}}},
	{"plan", []subcommands.Command{&targetCmd{}, &contributionCmd{}}},
	{"reports", []subcommands.Command{&summaryCmd{}, &allocationCmd{}, &rebalanceCmd{}, &insightsCmd{}, &reportCmd{}, &queryCmd{}}},
	{"data", []subcommands.Command{&exportCmd{}, &importCmd{}, &sampleCmd{}, &resetCmd{}}},
	{"help", []subcommands.Command{&topicCmd{}}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", config.DefaultPath(), "Path to the TOML configuration file")
	dataDir    = flag.String("data-dir", "", "Directory of the database. Overrides the configuration.")
	currency   = flag.String("currency", "", "ISO 4217 code of the currency used to display amounts. Overrides the configuration.")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error or disabled. Overrides the configuration.")
	plain      = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal")
)

// stdout and stderr are where commands write, swapped by tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// session is everything a command needs to work on the stored portfolio.
type session struct {
	cfg   *config.Config
	log   zerolog.Logger
	db    *store.DB
	kv    *store.KV
	state *store.State
}

// loadConfig reads the configuration and applies the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *currency != "" {
		cfg.Currency = strings.ToUpper(*currency)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openSession loads the configuration, opens the database and loads the
// stored state. The session must be closed.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Pretty,
		Out:    stderr,
	})
	logger.SetGlobalLogger(log)

	db, err := store.Open(cfg.DBPath(), log)
	if err != nil {
		return nil, err
	}
	kv := db.KV()
	state := store.NewState(kv, log)
	if err := state.Load(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot load portfolio: %w", err)
	}
	return &session{cfg: cfg, log: log, db: db, kv: kv, state: state}, nil
}

func (s *session) Close() {
	if err := s.db.Close(); err != nil {
		s.log.Error().Err(err).Msg("cannot close database")
	}
}

// dashboard formats the current state for the renderer.
func (s *session) dashboard() *renderer.Dashboard {
	return renderer.NewDashboard(s.state.Portfolio(), s.state.Analysis(), s.cfg.Currency)
}

// withSession opens a session, runs fn and closes it. Errors are printed.
func withSession(ctx context.Context, fn func(*session) subcommands.ExitStatus) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()
	return fn(s)
}

// printMarkdown renders md for the terminal, or prints it as is when the
// output is not a terminal or -plain is set.
func printMarkdown(md string) {
	if *plain || !logger.IsTerminal(stdout) {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// matchClass returns the asset class named s, ignoring case and surrounding spaces.
func matchClass(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, c := range invest.AssetClasses() {
		if strings.EqualFold(c, s) {
			return c, true
		}
	}
	return "", false
}

// printValidationErrors prints one line per invalid field.
func printValidationErrors(err error) {
	var verrs invest.ValidationErrors
	if !errors.As(err, &verrs) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return
	}
	for _, k := range slices.Sorted(maps.Keys(verrs)) {
		fmt.Fprintf(stderr, "Error: %s: %s\n", k, verrs[k])
	}
}
