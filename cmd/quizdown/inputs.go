package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"pkt.systems/quizdown"
)

const (
	fetchTimeout = 30 * time.Second
	stdinLabel   = "<stdin>"
)

// quizSource is one input document, read in full with its front matter
// decoded. Sources are processed independently and their questions joined
// in argument order.
type quizSource struct {
	// label names the source in messages.
	label string
	// stem is the base name without extension, empty for stdin.
	stem string
	meta quizdown.FrontMatter
	text string
}

// config layers the source's front matter over base; explicit flags win.
func (s quizSource) config(base quizdown.Config, flags []quizdown.Option) quizdown.Config {
	return s.meta.Apply(base).With(flags...)
}

func (s quizSource) process(cfg quizdown.Config) ([]quizdown.Question, error) {
	questions, err := quizdown.Process(s.text, cfg)
	if err == nil {
		return questions, nil
	}
	var perr *quizdown.ParseError
	if errors.As(err, &perr) {
		perr.Source = s.label
		return nil, perr
	}
	return nil, errors.Wrap(err, s.label)
}

// readSources reads every argument: files, file:// and http(s) URLs, and
// "-" for stdin. Without arguments stdin is the only source.
func readSources(ctx context.Context, args []string, stdin io.Reader) ([]quizSource, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	sources := make([]quizSource, 0, len(args))
	for _, arg := range args {
		src, err := readSource(ctx, arg, stdin)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func readSource(ctx context.Context, arg string, stdin io.Reader) (quizSource, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return quizSource{}, errors.New("empty input argument")
	}
	src := quizSource{label: arg}
	var data []byte
	var err error
	switch u, perr := url.Parse(arg); {
	case arg == "-":
		src.label = stdinLabel
		data, err = io.ReadAll(stdin)
	case perr == nil && (u.Scheme == "http" || u.Scheme == "https"):
		src.stem = stem(path.Base(u.Path))
		data, err = fetch(ctx, arg)
	case perr == nil && u.Scheme == "file":
		p := u.Path
		if p == "" {
			p = u.Host
		}
		if unescaped, uerr := url.PathUnescape(p); uerr == nil {
			p = unescaped
		}
		src.stem = stem(filepath.Base(p))
		data, err = os.ReadFile(normalizePath(p))
	default:
		src.stem = stem(filepath.Base(arg))
		data, err = os.ReadFile(normalizePath(arg))
	}
	if err != nil {
		return quizSource{}, errors.Wrapf(err, "read %s", src.label)
	}
	src.meta, _, err = quizdown.SplitFrontMatter(data)
	if err != nil {
		return quizSource{}, errors.Wrap(err, src.label)
	}
	src.text = string(data)
	return src, nil
}

func stem(base string) string {
	switch base {
	case "", ".", "/":
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func fetch(ctx context.Context, raw string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("http %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// createOutput opens the output file, creating parent directories. An
// empty path or "-" is stdout.
func createOutput(p string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(p) == "" || p == "-" {
		return stdout, nil, nil
	}
	clean := normalizePath(p)
	if err := os.MkdirAll(filepath.Dir(clean), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

// normalizePath expands a leading ~ and makes the path absolute.
func normalizePath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
