package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/k0kubun/pp"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/quizdown"
	"pkt.systems/version"
)

const (
	defaultWidth = 80
	defaultName  = "quizdown"
	checkWidth   = 72
)

func init() {
	version.SetDefaultModule("pkt.systems/quizdown")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	format         string
	outPath        string
	name           string
	course         string
	themeName      string
	lang           string
	noneOfTheAbove bool
	configPath     string
	listThemes     bool
	printConfig    bool
	check          bool
	dump           bool
	verbose        bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("quizdown", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.format, "format", "f", "", "Output format: "+strings.Join(quizdown.OutputFormats(), "|")+" (guessed from --output if unset)")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVar(&opts.name, "name", "", "Quiz name (defaults to the first input's base name)")
	flags.StringVar(&opts.course, "course", "", "Course name; prefixes the quiz name as course/name")
	flags.StringVarP(&opts.themeName, "theme", "t", quizdown.DefaultTheme, "Syntax highlighting theme")
	flags.StringVar(&opts.lang, "lang", quizdown.DefaultLang, "Language of unlabeled code blocks and inline code")
	flags.BoolVar(&opts.noneOfTheAbove, "none-of-the-above", false, "Append a \"None of the above.\" option to every question")
	flags.StringVar(&opts.configPath, "config", "", "Config file (YAML or JSON)")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.BoolVar(&opts.printConfig, "print-config", false, "Print the effective configuration of each input as JSON and exit")
	flags.BoolVar(&opts.check, "check", false, "Parse only and print one line per question")
	flags.BoolVar(&opts.dump, "dump", false, "Pretty-print the parsed questions")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Trace processing to stderr")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: quizdown [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, quiz Markdown is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.verbose {
		gtrace.CoreTracer = gologadapter.New()
		gtrace.CoreTracer.SetOutput(stderr)
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	}

	if opts.listThemes {
		printThemes(stdout, terminalWidth(stdout, defaultWidth))
		return 0
	}

	cfg := quizdown.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := loadConfig(opts.configPath)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
		cfg = loaded
	}
	overrides := flagOverrides(flags, opts)
	cfg = cfg.With(overrides...)

	inputs := flags.Args()
	if len(inputs) == 0 && isTerminal(stdin) {
		if opts.printConfig {
			return printConfig(stdout, stderr, cfg)
		}
		flags.Usage()
		return 2
	}
	sources, err := readSources(context.Background(), inputs, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	var questions []quizdown.Question
	for _, src := range sources {
		// Flags win over front matter, which wins over the config file.
		srcCfg := src.config(cfg, overrides)
		if opts.printConfig {
			if code := printConfig(stdout, stderr, srcCfg); code != 0 {
				return code
			}
			continue
		}
		if !knownTheme(stderr, srcCfg.Syntax.Theme) {
			return 2
		}
		qs, err := src.process(srcCfg)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
		questions = append(questions, qs...)
	}
	if opts.printConfig {
		return 0
	}

	if opts.check {
		printCheck(stdout, questions, checkWidth)
		return 0
	}
	if opts.dump {
		pp.ColoringEnabled = isTerminal(stdout)
		if _, err := pp.Fprintln(stdout, questions); err != nil {
			fmt.Fprintf(stderr, "dump: %v\n", err)
			return 1
		}
		return 0
	}

	format, err := resolveFormat(opts.format, opts.outPath)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}
	name := quizName(opts, sources[0])
	output, err := quizdown.Render(format, name, questions)
	if err != nil {
		fmt.Fprintf(stderr, "render: %v\n", err)
		return 1
	}

	writer, closeOut, err := createOutput(opts.outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}
	if _, err := io.WriteString(writer, output); err != nil {
		fmt.Fprintf(stderr, "write output: %v\n", err)
		return 1
	}
	if opts.outPath != "" {
		fmt.Fprintf(stderr, "wrote %d questions as %s to %s (%s)\n",
			len(questions), format, opts.outPath, humanize.Bytes(uint64(len(output))))
	}
	return 0
}

func printConfig(stdout, stderr io.Writer, cfg quizdown.Config) int {
	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, "print config: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, string(out))
	return 0
}

func knownTheme(stderr io.Writer, theme string) bool {
	if _, ok := quizdown.ThemeByName(theme); ok {
		return true
	}
	fmt.Fprintf(stderr, "unknown theme %q\n", theme)
	if suggestions := suggestThemes(theme); len(suggestions) > 0 {
		fmt.Fprintf(stderr, "did you mean: %s?\n", strings.Join(suggestions, ", "))
	}
	fmt.Fprintln(stderr, "use --list-themes to see all themes")
	return false
}

// flagOverrides returns the settings given explicitly on the command line.
func flagOverrides(flags *pflag.FlagSet, opts options) []quizdown.Option {
	var overrides []quizdown.Option
	if flags.Changed("theme") {
		overrides = append(overrides, quizdown.WithTheme(opts.themeName))
	}
	if flags.Changed("lang") {
		overrides = append(overrides, quizdown.WithDefaultLang(opts.lang))
	}
	if flags.Changed("none-of-the-above") {
		overrides = append(overrides, quizdown.WithNoneOfTheAbove(opts.noneOfTheAbove))
	}
	return overrides
}

func loadConfig(path string) (quizdown.Config, error) {
	data, err := os.ReadFile(normalizePath(path))
	if err != nil {
		return quizdown.Config{}, errors.Wrap(err, "could not open config")
	}
	cfg, err := quizdown.ParseConfig(data)
	if err != nil {
		return quizdown.Config{}, errors.Wrap(err, "could not parse config")
	}
	return cfg, nil
}

func resolveFormat(flag, outPath string) (quizdown.OutputFormat, error) {
	if strings.TrimSpace(flag) != "" {
		return quizdown.ParseOutputFormat(flag)
	}
	if format, ok := quizdown.GuessOutputFormat(outPath); ok {
		return format, nil
	}
	return 0, errors.New("no output format: use --format or an output file ending in .html, .moodle, .xml or .json")
}

// quizName picks the name from --name, the first input's front matter or
// its base name, in that order, and prefixes the course if given.
func quizName(opts options, first quizSource) string {
	name := strings.TrimSpace(opts.name)
	if name == "" {
		name = strings.TrimSpace(first.meta.Name)
	}
	if name == "" {
		name = first.stem
	}
	if name == "" {
		name = defaultName
	}
	if course := strings.TrimSpace(opts.course); course != "" {
		name = course + "/" + name
	}
	return name
}

func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if width, _, err := term.GetSize(fd); err == nil && width > 0 {
				return width
			}
		}
	}
	return fallback
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
