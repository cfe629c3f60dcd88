package main

import (
	"bufio"
	"errors"
	"fmt"
	"html"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pterm/pterm"

	"github.com/zephyrtronium/molmass"
)

const defaultConfigFilename = "molmass.conf"

type options struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`
	In         string `long:"in" description:"Input file with one formula per line, or - for stdin (default stdin if no args given)"`
	Fmt        string `long:"fmt" default:"%.3f" description:"Formatting verb for total masses"`
	Verbose    bool   `short:"v" long:"verbose" description:"Print a table of per-element masses"`
	HTML       bool   `long:"html" description:"Print each result as an HTML table"`
	Strict     bool   `long:"strict" description:"Require groups to close with the bracket style that opened them"`
	MaxDepth   int    `long:"maxdepth" default:"64" description:"Maximum group nesting depth, 0 for no limit"`
	Prec       uint   `short:"p" long:"prec" default:"64" description:"Precision of calculations in bits"`
	LogLevel   string `long:"loglevel" default:"disabled" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"disabled" description:"Log level"`
}

func main() {
	opts, args, err := parseOptions(os.Args[1:])
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) {
			// The parser has already printed the message.
			if ferr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1)
		}
		fatal(err)
	}
	logger := pterm.DefaultLogger.WithLevel(logLevel(opts.LogLevel)).WithWriter(os.Stderr)
	molmass.UseLogger(logger)

	srcs, err := inputs(opts.In, args)
	if err != nil {
		fatal(err)
	}
	failed, err := run(os.Stdout, os.Stderr, opts, srcs)
	if err != nil {
		fatal(err)
	}
	if failed > 0 {
		logger.Debug("Some formulas failed", logger.Args("failed", failed, "total", len(srcs)))
		os.Exit(1)
	}
}

func fatal(err error) {
	pterm.Error.WithWriter(os.Stderr).Println(err)
	os.Exit(1)
}

// parseOptions reads the config file, then the command line over it.
func parseOptions(argv []string) (*options, []string, error) {
	var configFile string
	for i, arg := range argv {
		if strings.HasPrefix(arg, "--configfile=") {
			configFile = strings.TrimPrefix(arg, "--configfile=")
		} else if (arg == "-C" || arg == "--configfile") && len(argv) > i+1 {
			configFile = argv[i+1]
		}
	}
	if configFile == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			configFile = filepath.Join(dir, "molmass", defaultConfigFilename)
		}
	}

	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[options] [formula...]"
	if configFile != "" {
		err := flags.NewIniParser(parser).ParseFile(configFile)
		if err != nil {
			var perr *os.PathError
			if !errors.As(err, &perr) {
				return nil, nil, fmt.Errorf("parsing config file %s: %w", configFile, err)
			}
		}
	}
	args, err := parser.ParseArgs(argv)
	if err != nil {
		return nil, nil, err
	}
	return &opts, args, nil
}

func logLevel(name string) pterm.LogLevel {
	switch name {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "info":
		return pterm.LogLevelInfo
	case "warn":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelDisabled
	}
}

// inputs collects formulas from the arguments and the input file. With no
// arguments and no file, formulas are read from stdin.
func inputs(inname string, args []string) ([]string, error) {
	srcs := append([]string(nil), args...)
	f, err := infile(inname, len(args) == 0)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return srcs, nil
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if molmass.StripSpace(line) == "" {
			continue
		}
		srcs = append(srcs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.Name(), err)
	}
	return srcs, nil
}

func infile(inname string, std bool) (*os.File, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}

// run evaluates each formula and writes the results to w. Failures are
// reported to errw, and the mass written for them is 0. The result is the
// number of formulas that failed.
func run(w, errw io.Writer, opts *options, srcs []string) (int, error) {
	mopts := []molmass.Option{molmass.MaxDepth(opts.MaxDepth), molmass.Prec(opts.Prec)}
	if opts.Strict {
		mopts = append(mopts, molmass.Strict())
	}
	verb := opts.Fmt + "\n"
	failed := 0
	for _, src := range srcs {
		r := molmass.Evaluate(src, mopts...)
		if r.Err != nil {
			failed++
			pterm.Error.WithWriter(errw).Println(r.Message())
		}
		switch {
		case opts.HTML:
			if r.Err != nil {
				fmt.Fprintln(w, html.EscapeString(r.Message()))
				continue
			}
			fmt.Fprintln(w, molmass.TableHTML(r.Formula, r.Report))
		case opts.Verbose:
			if r.Err != nil {
				continue
			}
			s, err := table(r)
			if err != nil {
				return failed, err
			}
			fmt.Fprintln(w, r.Formula.Subscript())
			fmt.Fprintln(w, s)
		default:
			total := new(big.Float)
			if r.Err == nil {
				total = r.Report.Total
			}
			fmt.Fprintf(w, verb, total)
		}
	}
	return failed, nil
}

// table renders a result's mass breakdown for a terminal.
func table(r *molmass.Result) (string, error) {
	data := pterm.TableData{molmass.Header}
	data = append(data, r.Report.Rows()...)
	data = append(data, []string{"Total", "", "", r.Report.Total.Text('f', 3), r.Report.TotalPercent()})
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
