package commands

import (
	"bufio"
	"fmt"
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/guychait/minigrep/config"
	minigreplog "github.com/guychait/minigrep/log"
	"github.com/guychait/minigrep/mimetype"
	"github.com/guychait/minigrep/scanners/filescanner"
	"github.com/guychait/minigrep/search"
	"github.com/guychait/minigrep/sources"
)

// Exit codes for the command-line contract. The overall code escalates to
// the worst outcome observed across all sources.
const (
	ExitMatch   = 0
	ExitNoMatch = 1
	ExitError   = 2
)

type SearchCommand struct {
	IgnoreCase bool   `short:"i" long:"ignore-case" description:"ignore case distinctions (ASCII range only)"`
	LineNumber bool   `short:"n" long:"line-number" description:"prefix each output line with its 1-based line number"`
	WholeLine  bool   `short:"x" long:"whole-line" description:"match only when the pattern equals the entire line"`
	ListFiles  bool   `short:"l" long:"files-with-matches" description:"print only the names of sources containing matches"`
	Invert     bool   `short:"v" long:"invert-match" description:"select lines not matching the pattern"`
	Count      bool   `short:"c" long:"count" description:"print only a count of matching lines per source"`
	Color      bool   `long:"color" description:"highlight matches; cannot be combined with --machine"`
	Machine    bool   `short:"m" long:"machine" description:"machine-readable output: source:line:column:match"`
	Text       bool   `short:"a" long:"text" description:"process binary sources as if they were text"`
	ConfigPath string `long:"config" description:"YAML file with default option values" value-name:"PATH"`
	Debug      bool   `long:"debug" description:"enable debug logging"`
	Version    func() `long:"version" description:"print the version and exit"`

	Args struct {
		Pattern string   `positional-arg-name:"pattern" required:"yes" description:"the literal string to search for"`
		Files   []string `positional-arg-name:"file" description:"files to search; omit to read standard input"`
	} `positional-args:"yes"`
}

// Execute runs the search across all sources sequentially and returns the
// process exit code.
func (command *SearchCommand) Execute() int {
	cfg, err := config.Load(command.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "minigrep: %s\n", err)
		return ExitError
	}
	command.applyDefaults(cfg)

	if command.Color && command.Machine {
		fmt.Fprintln(os.Stderr, "minigrep: --color and --machine cannot be used together")
		return ExitError
	}

	logger := command.buildLogger()

	query := search.Query{
		Pattern:       command.Args.Pattern,
		CaseSensitive: !command.IgnoreCase,
		WholeLine:     command.WholeLine,
		Invert:        command.Invert,
	}
	collectSpans := command.Machine || command.Color
	searcher := search.NewSearcher(query.Matcher(), collectSpans)

	srcs := command.sources()
	formatter := newFormatter(command, len(srcs) > 1, os.Stdout)

	clean := newCleanup()

	var failures error

	for _, src := range srcs {
		if err := command.scanSource(logger, searcher, formatter, clean, src); err != nil {
			fmt.Fprintf(os.Stderr, "minigrep: %s\n", err)
			failures = multierror.Append(failures, err)
		}
	}

	switch {
	case failures != nil:
		return ExitError
	case formatter.matched():
		return ExitMatch
	default:
		return ExitNoMatch
	}
}

func (command *SearchCommand) scanSource(
	logger lager.Logger,
	searcher search.Searcher,
	formatter *formatter,
	clean *cleanup,
	src sources.Source,
) error {
	logger = logger.Session("scan-source", lager.Data{"source": src.Name()})
	logger.Debug("starting")
	defer logger.Debug("done")

	rc, err := src.Open()
	if err != nil {
		logger.Error("open-failed", err)
		return err
	}
	defer rc.Close()

	release := clean.register(func() { rc.Close() })
	defer release()

	br := bufio.NewReader(rc)

	binary := false
	if !command.Text {
		prefix, _ := br.Peek(mimetype.SniffLen)
		binary = !mimetype.IsText(prefix)
	}
	formatter.beginSource(src.Name(), binary)

	err = searcher.Search(logger, filescanner.New(br, src.Name()), formatter.handleMatch)
	formatter.endSource()
	if err != nil {
		logger.Error("scan-failed", err)
		return fmt.Errorf("%s: %s", src.Name(), err)
	}

	return nil
}

func (command *SearchCommand) sources() []sources.Source {
	if len(command.Args.Files) == 0 {
		return []sources.Source{sources.Stdin(os.Stdin)}
	}

	srcs := make([]sources.Source, 0, len(command.Args.Files))
	for _, path := range command.Args.Files {
		srcs = append(srcs, sources.File(path))
	}

	return srcs
}

func (command *SearchCommand) applyDefaults(cfg *config.Config) {
	command.IgnoreCase = command.IgnoreCase || cfg.IgnoreCase
	command.LineNumber = command.LineNumber || cfg.LineNumber
	command.WholeLine = command.WholeLine || cfg.WholeLine
	command.Invert = command.Invert || cfg.Invert
	command.Count = command.Count || cfg.Count
	command.ListFiles = command.ListFiles || cfg.ListFiles
	command.Color = command.Color || cfg.Color
	command.Machine = command.Machine || cfg.Machine
	command.Text = command.Text || cfg.Text
}

func (command *SearchCommand) buildLogger() lager.Logger {
	if !command.Debug {
		return minigreplog.NewNullLogger()
	}

	logger := lager.NewLogger("minigrep")
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	return logger
}
