// Command lined is a small read-eval-print shell around the line editor.
// It reads lines with full interactive editing, echoes each one back, and
// keeps a command history recallable with the up and down arrows, either
// in memory or persisted in a database file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"lined.dev/pkg/editor"
	"lined.dev/pkg/histutil"
	"lined.dev/pkg/logutil"
	"lined.dev/pkg/store"
)

var (
	configFlag = flag.String("config", "", "path to a YAML configuration file")
	dbFlag     = flag.String("db", "", "history database file; empty keeps history in memory")
	promptFlag = flag.String("prompt", "> ", "prompt shown before each line")
	stifleFlag = flag.Int("stifle", 0, "in-memory history entries to keep; 0 keeps all")
	maxLenFlag = flag.Int("max-length", 0, "line length cap in bytes; 0 means unlimited")
	maskFlag   = flag.String("mask", "", "show this character instead of what is typed")
	logFlag    = flag.String("log", "", "file to write debug logs to")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "lined:", err)
		os.Exit(2)
	}
}

func run() error {
	cfg := defaultConfig()
	if *configFlag != "" {
		if err := cfg.loadFile(*configFlag); err != nil {
			return err
		}
	}
	applyFlags(&cfg)

	if cfg.LogFile != "" {
		if err := logutil.SetOutputFile(cfg.LogFile); err != nil {
			return err
		}
	}

	var db store.Store
	var hist histutil.Store
	if cfg.HistoryFile != "" {
		var err error
		db, err = store.NewStore(cfg.HistoryFile)
		if err != nil {
			return err
		}
		defer db.Close()
		hist, err = histutil.NewDBStore(db)
		if err != nil {
			return err
		}
	} else {
		hist = histutil.New(cfg.Stifle)
	}

	ed := editor.New(os.Stdin, os.Stdout)
	if cfg.MaxLineLength > 0 {
		ed.LimitLineLength(cfg.MaxLineLength)
	}
	if cfg.Mask != "" {
		ed.DisableEcho([]rune(cfg.Mask)[0])
	}

	// History recall walks a cursor over the history, newest first. The
	// cursor is opened lazily on the first up-arrow of each line, so it
	// sees everything added before the prompt, and walking down past the
	// newest entry restores whatever was being typed.
	var cursor histutil.Cursor
	var pending string
	openCursor := func() histutil.Cursor {
		if db != nil {
			if s, err := histutil.NewDBStore(db); err == nil {
				return s.Cursor("")
			}
		}
		return hist.Cursor("")
	}
	ed.BindSpecial(editor.KeyUp, func([]byte) bool {
		if cursor == nil {
			cursor = openCursor()
			pending = ed.Line()
		}
		cursor.Prev()
		cmd, err := cursor.Get()
		if err != nil {
			return false
		}
		ed.SetLine(cmd.Text)
		return true
	})
	ed.BindSpecial(editor.KeyDown, func([]byte) bool {
		if cursor == nil {
			return false
		}
		cursor.Next()
		cmd, err := cursor.Get()
		if err != nil {
			cursor = nil
			ed.SetLine(pending)
			return true
		}
		ed.SetLine(cmd.Text)
		return true
	})

	for {
		cursor, pending = nil, ""
		line, err := ed.ReadLine(cfg.Prompt)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		fmt.Println(line)
		if _, err := hist.AddCmd(line); err != nil {
			return err
		}
	}
}

func applyFlags(cfg *Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "prompt":
			cfg.Prompt = *promptFlag
		case "db":
			cfg.HistoryFile = *dbFlag
		case "stifle":
			cfg.Stifle = *stifleFlag
		case "max-length":
			cfg.MaxLineLength = *maxLenFlag
		case "mask":
			cfg.Mask = *maskFlag
		case "log":
			cfg.LogFile = *logFlag
		}
	})
}
