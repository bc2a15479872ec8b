package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/snapcore/go-timeago"
	"github.com/snapcore/go-timeago/internal/config"
	"github.com/snapcore/go-timeago/internal/status"
)

var (
	stdout  io.Writer = os.Stdout
	stderr  io.Writer = os.Stderr
	timeNow           = time.Now
)

var formatTime = func() string {
	return timeNow().Format("2006-01-02 15:04-0700")
}

type options struct {
	Locale string `short:"l" long:"locale" value-name:"LOCALE" description:"locale to use, \"auto\" to detect it (default from TIMEAGO_LOCALE)"`

	Directories []string `short:"D" long:"directory" value-name:"DIRECTORY" description:"search DIRECTORY for locale resources before the bundled ones"`

	EnvFiles []string `long:"env-file" value-name:"FILE" description:"read settings from FILE instead of ./.env"`

	Verbose bool `short:"v" long:"verbose" description:"log resource loading"`

	Diff    diffCommand    `command:"diff" description:"render the difference between two dates"`
	Locales localesCommand `command:"locales" description:"list available locales and their capabilities"`
	Status  statusCommand  `command:"status" description:"report catalogue completion against a base locale"`
	Export  exportCommand  `command:"export" description:"export a catalogue as a PO file"`
}

var opts options

func newTranslator() (timeago.Translator, *slog.Logger, error) {
	cfg, err := config.Load(opts.EnvFiles...)
	if err != nil {
		return timeago.Translator{}, nil, err
	}

	level := cfg.LogLevel
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var dirs []timeago.Directory
	for _, path := range append(opts.Directories, cfg.Directories...) {
		fi, err := os.Stat(path)
		if err != nil {
			return timeago.Translator{}, nil, err
		}
		if !fi.IsDir() {
			return timeago.Translator{}, nil, fmt.Errorf("%s is not a directory", path)
		}
		dirs = append(dirs, timeago.Dir(path))
	}
	dirs = append(dirs, timeago.Builtin())

	translatorOpts := []timeago.Option{
		timeago.WithLogger(logger),
		timeago.WithDirectories(dirs...),
		timeago.WithFallback(cfg.Fallback...),
	}
	if cfg.AliasFile != "" {
		f, err := os.Open(cfg.AliasFile)
		if err != nil {
			return timeago.Translator{}, nil, err
		}
		aliases, err := timeago.ParseLocaleAlias(f)
		f.Close()
		if err != nil {
			return timeago.Translator{}, nil, fmt.Errorf("cannot read %s: %w", cfg.AliasFile, err)
		}
		translatorOpts = append(translatorOpts, timeago.WithAliases(aliases))
	}
	t := timeago.New(translatorOpts...)

	locale := cfg.Locale
	if opts.Locale != "" {
		locale = opts.Locale
	}
	if err := t.SetLocale(locale); err != nil {
		return timeago.Translator{}, nil, err
	}
	logger.Debug("active locale", "locale", t.Locale())
	return t, logger, nil
}

// parseDate accepts RFC 3339 timestamps, "2006-01-02 15:04:05" and
// "2006-01-02" dates, or a duration such as "-3h" relative to reference.
func parseDate(value string, reference time.Time) (time.Time, error) {
	if d, err := time.ParseDuration(value); err == nil {
		return reference.Add(d), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if date, err := time.ParseInLocation(layout, value, reference.Location()); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q", value)
}

type diffCommand struct {
	Reference string `short:"r" long:"reference" value-name:"DATE" description:"date to compare with (default now)"`
	Other     bool   `short:"o" long:"other" description:"phrase the difference relative to the reference date"`
	Absolute  bool   `short:"a" long:"absolute" description:"omit the ago/from now wrapping"`
	Short     bool   `short:"s" long:"short" description:"use short unit names"`
	Parts     int    `short:"p" long:"parts" default:"1" value-name:"N" description:"render up to N units"`

	Args struct {
		Date string `positional-arg-name:"DATE" required:"yes"`
	} `positional-args:"yes"`
}

func (cmd *diffCommand) Execute(args []string) error {
	t, _, err := newTranslator()
	if err != nil {
		return err
	}

	reference := timeNow()
	if cmd.Reference != "" {
		if reference, err = parseDate(cmd.Reference, reference); err != nil {
			return err
		}
	}
	date, err := parseDate(cmd.Args.Date, reference)
	if err != nil {
		return err
	}

	diffOpts := timeago.DiffOptions{Short: cmd.Short, Parts: cmd.Parts}
	switch {
	case cmd.Absolute:
		diffOpts.Syntax = timeago.Absolute
	case cmd.Other:
		diffOpts.Syntax = timeago.RelativeToOther
	}
	text, err := t.DiffForHumans(timeago.Between(date, reference), diffOpts)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, text)
	return nil
}

type localesCommand struct{}

func (cmd *localesCommand) Execute(args []string) error {
	t, logger, err := newTranslator()
	if err != nil {
		return err
	}

	yesNo := func(b bool) string {
		if b {
			return "yes"
		}
		return "-"
	}
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Locale\tShort units\tDiff syntax\tOne day words\tTwo day words\tPeriod syntax")
	for _, locale := range t.AvailableLocales() {
		c, err := t.Catalog(locale)
		if err != nil {
			logger.Debug("skipping locale", "locale", locale, "error", err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", locale,
			yesNo(c.HasShortUnits()),
			yesNo(c.HasDiffSyntax()),
			yesNo(c.HasDiffOneDayWords()),
			yesNo(c.HasDiffTwoDayWords()),
			yesNo(c.HasPeriodSyntax()))
	}
	return w.Flush()
}

// resolvedMessages returns the messages of locale merged over those of
// its parent.
func resolvedMessages(t timeago.Translator, locale string) (map[string]string, error) {
	c, err := t.Catalog(locale)
	if err != nil {
		return nil, err
	}
	chain := timeago.FallbackChain(c.Locale())
	messages := make(map[string]string)
	for i := len(chain) - 1; i >= 0; i-- {
		for key, value := range t.Messages(chain[i]) {
			messages[key] = value
		}
	}
	return messages, nil
}

type statusCommand struct {
	Base    string   `short:"b" long:"base" default:"en" value-name:"LOCALE" description:"locale other catalogues are compared with"`
	Format  string   `short:"f" long:"format" default:"markdown" choice:"markdown" choice:"json" description:"report format"`
	Sources []string `short:"S" long:"source" value-name:"DIR" description:"report keys used by Go files in DIR that the base locale lacks"`
	Output  string   `short:"o" long:"output" value-name:"FILE" description:"output to specified file"`
}

func (cmd *statusCommand) Execute(args []string) error {
	t, _, err := newTranslator()
	if err != nil {
		return err
	}

	catalogs := make(map[string]map[string]string)
	for _, locale := range t.AvailableLocales() {
		messages, err := resolvedMessages(t, locale)
		if err != nil {
			return err
		}
		catalogs[locale] = messages
	}

	var extractor status.Extractor
	extractor.AddDefaultKeywords()
	for _, dir := range cmd.Sources {
		if err := extractor.ParseDir(dir); err != nil {
			return fmt.Errorf("cannot parse sources in %s: %w", dir, err)
		}
	}

	rep, err := status.Build(timeago.Normalize(cmd.Base), catalogs, extractor.Used())
	if err != nil {
		return err
	}
	return withOutput(cmd.Output, func(w io.Writer) error {
		if cmd.Format == "json" {
			return status.WriteJSON(w, rep)
		}
		return status.WriteMarkdown(w, rep)
	})
}

type exportCommand struct {
	Base   string `short:"b" long:"base" default:"en" value-name:"LOCALE" description:"locale providing the source templates"`
	Output string `short:"o" long:"output" value-name:"FILE" description:"output to specified file"`

	PackageName      string `long:"package-name" value-name:"PACKAGE" description:"set package name in output"`
	MsgidBugsAddress string `long:"msgid-bugs-address" default:"EMAIL" value-name:"ADDRESS" description:"set report address for msgid bugs"`

	Args struct {
		Locale string `positional-arg-name:"LOCALE" required:"yes"`
	} `positional-args:"yes"`
}

func (cmd *exportCommand) Execute(args []string) error {
	t, _, err := newTranslator()
	if err != nil {
		return err
	}

	base, err := resolvedMessages(t, cmd.Base)
	if err != nil {
		return err
	}
	locale := timeago.Normalize(cmd.Args.Locale)
	translations, err := resolvedMessages(t, locale)
	if err != nil {
		return err
	}

	header := status.Header{
		PackageName:      cmd.PackageName,
		MsgidBugsAddress: cmd.MsgidBugsAddress,
		CreationDate:     formatTime(),
		Language:         locale,
	}
	return withOutput(cmd.Output, func(w io.Writer) error {
		return status.WritePO(w, header, base, translations)
	})
}

func withOutput(path string, write func(w io.Writer) error) error {
	if path == "" || path == "-" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func run(args []string) error {
	opts = options{}
	parser := flags.NewParser(&opts, flags.Default)
	parser.Name = "timeago"
	_, err := parser.ParseArgs(args)
	return err
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
