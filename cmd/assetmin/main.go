// Command assetmin minifies a directory's index.html, styles.css, and app.js
// into another directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/thatguystone/assetmin"
	"github.com/thatguystone/assetmin/internal/config"
	"github.com/thatguystone/cog/stringc"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	exitOK            = 0
	exitBuildFailure  = 1
	exitInvalidConfig = 2

	errIndent = "    "
)

type stringsFlag []string

func (s *stringsFlag) String() string { return strings.Join(*s, ",") }

func (s *stringsFlag) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()

	os.Exit(code)
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	var (
		configs stringsFlag
		src     string
		dst     string
		names   string
		watch   bool
		verbose bool
	)

	flags := flag.NewFlagSet("assetmin", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Var(&configs, "config", "YAML config `file` to load (may be repeated)")
	flags.StringVar(&src, "src", "", "source `dir` holding the assets")
	flags.StringVar(&dst, "dst", "", "destination `dir` for the minified assets")
	flags.StringVar(&names, "names", "",
		"asset file name overrides, eg. `markup=page.html&script=main.js`")
	flags.BoolVar(&watch, "watch", false, "rebuild whenever a source changes")
	flags.BoolVar(&verbose, "v", false, "log at debug level")

	err := flags.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}

	if err != nil {
		return exitInvalidConfig
	}

	cfg := config.New()

	err = cfg.Load(configs...)
	if err == nil {
		err = cfg.LoadEnv()
	}

	if err == nil && names != "" {
		err = cfg.SetNames(names)
	}

	if src != "" {
		cfg.Src = src
	}

	if dst != "" {
		cfg.Dst = dst
	}

	cfg.Watch = cfg.Watch || watch
	cfg.Debug = cfg.Debug || verbose

	if err == nil {
		err = cfg.Validate()
	}

	if err == nil && flags.NArg() > 0 {
		err = fmt.Errorf("unexpected arguments: %s", strings.Join(flags.Args(), " "))
	}

	// Whatever loaded before a failure still picks the log format
	logger := newLogger(cfg, stderr)
	// Flush before exiting to avoid mangled output
	defer logger.Sync()

	if err != nil {
		logger.Errorf("Invalid config: %v", err)
		return exitInvalidConfig
	}

	logger.Debugw("Starting",
		"src", cfg.Src,
		"dst", cfg.Dst,
		"names", cfg.Names,
		"watch", cfg.Watch)

	opts := cfg.Opts(logger.Infof)

	if cfg.Watch {
		err = assetmin.Watch(ctx, opts, nil)
		if err != nil {
			logger.Errorf("Watch failed: %v", err)
			return exitBuildFailure
		}

		return exitOK
	}

	res, err := assetmin.Build(opts)
	if err != nil {
		logger.Errorf("Build failed:\n%s", stringc.Indent(err.Error(), errIndent))
		return exitBuildFailure
	}

	var before, after int
	for _, a := range res.Assets {
		before += a.SrcSize
		after += a.DstSize
	}

	logger.Infow("Build done",
		"assets", len(res.Assets),
		"bytesIn", before,
		"bytesOut", after)

	return exitOK
}

func newLogger(cfg *config.C, w io.Writer) *zap.SugaredLogger {
	logConfig := zap.NewDevelopmentConfig()
	encoder := zapcore.NewConsoleEncoder(logConfig.EncoderConfig)

	if cfg.Prod {
		logConfig = zap.NewProductionConfig()
		encoder = zapcore.NewJSONEncoder(logConfig.EncoderConfig)
	}

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if cfg.Debug {
		level.SetLevel(zap.DebugLevel)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}
