// Command glyphed is an interactive glyph grid editor.
//
// It reads commands from a readline prompt (or from -c) and writes the
// editor view, text previews and the alphabet sheet as PNG files:
//
//	glyphed -config glyphed.yaml
//	glyph A 2x3 > paint 0 0
//	glyph A 2x3 > render
//
// The session is saved after every change and restored on the next start.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/gogpu/glyphkit"
	"github.com/gogpu/glyphkit/editor"
	"github.com/gogpu/glyphkit/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file")
		statePath  = flag.String("state", "", "session file (default $XDG_CONFIG_HOME/glyphkit/state.json)")
		noState    = flag.Bool("no-state", false, "do not load or save the session")
		outDir     = flag.String("out", "", "directory for PNG output (overrides config)")
		alphabet   = flag.String("alphabet", "", "alphabet for a fresh session: uppercase or full")
		logLevel   = flag.String("log", "warn", "log level: debug, info, warn, error")
		script     = flag.String("c", "", "run ';'-separated commands and exit")
	)
	flag.Parse()

	initDisplay()
	if err := initLogging(*logLevel); err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
	if *outDir != "" {
		cfg.OutDir = *outDir
	}
	if *alphabet != "" {
		cfg.Alphabet = *alphabet
	}
	if *statePath != "" {
		cfg.StatePath = *statePath
	}
	if err := cfg.Validate(); err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}

	opts := []editor.Option{
		editor.WithAlphabet(cfg.AlphabetSet()),
		editor.WithBounds(cfg.Bounds),
		editor.WithDefaultCols(cfg.DefaultCols),
		editor.WithTypography(cfg.Typography),
	}
	if !*noState {
		path := cfg.StatePath
		if path == "" {
			if path, err = editor.DefaultStatePath(); err != nil {
				pterm.Warning.Println(err)
			}
		}
		if path != "" {
			opts = append(opts, editor.WithStore(editor.NewFileStore(path)))
		}
	}

	intp := &Intp{ed: editor.New(opts...), cfg: cfg}

	if *script != "" {
		for _, line := range strings.Split(*script, ";") {
			quit, err := intp.Execute(line)
			if err != nil {
				pterm.Error.Println(err)
				os.Exit(1)
			}
			if quit {
				break
			}
		}
		return
	}

	repl, err := readline.NewEx(&readline.Config{
		Prompt:       intp.prompt(),
		AutoComplete: completer(),
	})
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(3)
	}
	defer repl.Close()

	pterm.Info.Println("glyphed " + glyphkit.Version + ". Type help for commands, quit with <ctrl>D")
	intp.REPL(repl)
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " i ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func initLogging(level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}
	glyphkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}

// REPL reads commands until EOF or quit.
func (intp *Intp) REPL(repl *readline.Instance) {
	for {
		repl.SetPrompt(intp.prompt())
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		quit, err := intp.Execute(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func completer() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(verbs))
	for _, v := range verbs {
		items = append(items, readline.PcItem(v.name))
	}
	return readline.NewPrefixCompleter(items...)
}
