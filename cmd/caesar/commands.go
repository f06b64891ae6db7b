package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/cipherkit/pkg/api"
	"github.com/dmitrymomot/cipherkit/pkg/engine"
	"github.com/dmitrymomot/cipherkit/pkg/lexicon"
	"github.com/dmitrymomot/cipherkit/pkg/logger"
)

// flagsSet reports which flags were given on the command line.
func flagsSet(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func setup(stderr io.Writer, level slog.Level) (*app, int) {
	a, err := newApp(context.Background(), stderr, level)
	if err != nil {
		fmt.Fprintf(stderr, "caesar: %v\n", err)
		return nil, 1
	}
	return a, 0
}

func runShift(args []string, stdin io.Reader, stdout, stderr io.Writer, encrypt bool) int {
	name := "decrypt"
	if encrypt {
		name = "encrypt"
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	key := fs.Int("key", 0, "shift key (any integer)")
	text := fs.String("text", "", "text to transform (default: stdin)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	set := flagsSet(fs)
	if !set["key"] {
		fmt.Fprintln(stderr, "-key flag is required")
		return 2
	}

	input, err := readText(*text, set["text"], stdin)
	if err != nil {
		fmt.Fprintf(stderr, "caesar: %v\n", err)
		return 1
	}

	a, code := setup(stderr, slog.LevelWarn)
	if a == nil {
		return code
	}
	defer a.close()

	ctx := context.Background()
	var out string
	if encrypt {
		out, err = a.engine.Encrypt(ctx, input, *key)
	} else {
		out, err = a.engine.Decrypt(ctx, input, *key)
	}
	if err != nil {
		fmt.Fprintln(stderr, engine.Message(err))
		return 1
	}
	fmt.Fprintln(stdout, out)
	return 0
}

func runCrack(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("crack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	crib := fs.String("crib", "", "known plaintext expected in the result (case-sensitive)")
	threshold := fs.Float64("threshold", 0, "share of words that must be English, 0..1 (default from CAESAR_DEFAULT_THRESHOLD)")
	words := fs.String("words", "", "word file to validate against instead of the configured lexicon")
	text := fs.String("text", "", "ciphertext (default: stdin)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	set := flagsSet(fs)
	if set["crib"] && (set["threshold"] || set["words"]) {
		fmt.Fprintln(stderr, "-crib cannot be combined with -threshold or -words")
		return 2
	}
	if set["crib"] && *crib == "" {
		fmt.Fprintln(stderr, "-crib must not be empty")
		return 2
	}

	input, err := readText(*text, set["text"], stdin)
	if err != nil {
		fmt.Fprintf(stderr, "caesar: %v\n", err)
		return 1
	}

	a, code := setup(stderr, slog.LevelWarn)
	if a == nil {
		return code
	}
	defer a.close()

	ctx := context.Background()
	if set["crib"] {
		r, err := a.engine.DecryptWithCrib(ctx, input, *crib)
		if err != nil {
			fmt.Fprintln(stderr, engine.Message(err))
			return 1
		}
		fmt.Fprintln(stdout, engine.SuccessMessage(r))
		return 0
	}

	t := a.engine.DefaultThreshold()
	if set["threshold"] {
		t = *threshold
	}
	src := a.engine.Source()
	if set["words"] {
		src = lexicon.NewFileSource(*words)
	}

	r, err := a.engine.DecryptWords(ctx, src, input, t)
	if err != nil {
		fmt.Fprintln(stderr, engine.Message(err))
		return 1
	}
	fmt.Fprintln(stdout, engine.SuccessMessage(r))
	return 0
}

func runCandidates(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("candidates", flag.ContinueOnError)
	fs.SetOutput(stderr)
	top := fs.Int("top", 26, "number of candidates to print")
	text := fs.String("text", "", "ciphertext (default: stdin)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *top < 1 {
		fmt.Fprintln(stderr, "-top must be positive")
		return 2
	}
	set := flagsSet(fs)

	input, err := readText(*text, set["text"], stdin)
	if err != nil {
		fmt.Fprintf(stderr, "caesar: %v\n", err)
		return 1
	}

	a, code := setup(stderr, slog.LevelWarn)
	if a == nil {
		return code
	}
	defer a.close()

	list, err := a.engine.Candidates(context.Background(), input)
	if err != nil {
		fmt.Fprintln(stderr, engine.Message(err))
		return 1
	}
	for _, c := range list[:min(*top, len(list))] {
		fmt.Fprintf(stdout, "%2d  %10.2f  %s\n", c.Key, c.ChiSquared, c.Plaintext)
	}
	return 0
}

func runServe(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	addr := fs.String("addr", "", "listen address (default from HTTP_ADDR)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, stderr, slog.LevelInfo)
	if err != nil {
		fmt.Fprintf(stderr, "caesar: %v\n", err)
		return 1
	}
	defer a.close()

	if err := a.engine.Init(ctx); err != nil {
		a.log.ErrorContext(ctx, "engine initialization failed", logger.Error(err))
		return 1
	}

	httpCfg := a.cfg.HTTP
	if *addr != "" {
		httpCfg.Addr = *addr
	}
	srv := api.NewServerFromConfig(httpCfg, api.WithLogger(a.log))
	handler := api.Router(a.engine,
		api.WithRouterLogger(a.log),
		api.WithMaxBodyBytes(httpCfg.MaxBodyBytes),
	)

	if err := srv.Run(ctx, handler); err != nil {
		a.log.ErrorContext(ctx, "server stopped with error", logger.Error(err))
		return 1
	}
	return 0
}
