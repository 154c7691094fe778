// Package config reads the graftt command line options.
//
// Every option can also come from the environment, and a .env file in the
// working directory is loaded first. Flags win over the environment.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"graftt/internal/logging"
)

// Options are the graftt command line options.
type Options struct {
	Classpath []string `short:"c" long:"classpath" env:"GRAFTT_CLASSPATH" env-delim:":" description:"directory of YAML class files (repeatable)"`
	Plan      string   `short:"p" long:"plan" env:"GRAFTT_PLAN" description:"graft plan file"`
	Output    string   `short:"o" long:"output" env:"GRAFTT_OUTPUT" default:"graftt-out" description:"directory for grafted classes"`
	LogLevel  string   `short:"l" long:"log-level" env:"GRAFTT_LOG_LEVEL" default:"info" description:"debug, info, warn or error"`
	CacheSize int      `long:"cache-size" env:"GRAFTT_CACHE_SIZE" default:"256" description:"number of parsed classes to cache"`
	Dump      bool     `short:"d" long:"dump" description:"dump grafted classes to stdout"`
	NoVerify  bool     `long:"no-verify" description:"skip structural verification"`
	DryRun    bool     `short:"n" long:"dry-run" description:"graft without writing output"`
}

// Load reads .env (if present) and parses args into Options.
func Load(args []string) (*Options, error) {
	_ = godotenv.Load()

	opts := &Options{}

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "graftt"

	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	return opts, opts.Validate()
}

// IsHelp reports whether err is the request for usage text.
func IsHelp(err error) bool {
	var ferr *flags.Error
	return errors.As(err, &ferr) && ferr.Type == flags.ErrHelp
}

// Validate checks option values.
func (o *Options) Validate() error {
	var errs []error

	if len(o.Classpath) == 0 {
		errs = append(errs, errors.New("no classpath given (--classpath or GRAFTT_CLASSPATH)"))
	}

	if o.Plan == "" {
		errs = append(errs, errors.New("no plan given (--plan or GRAFTT_PLAN)"))
	}

	if !o.DryRun && o.Output == "" {
		errs = append(errs, errors.New("no output directory given"))
	}

	if _, err := logging.ParseLevel(o.LogLevel); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	return nil
}

// Roots returns the classpath directories, cleaned.
func (o *Options) Roots() []string {
	roots := make([]string, 0, len(o.Classpath))
	for _, c := range o.Classpath {
		if c == "" {
			continue
		}

		roots = append(roots, filepath.Clean(c))
	}

	return roots
}
