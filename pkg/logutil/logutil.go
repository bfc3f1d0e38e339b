// Package logutil provides the module's debug loggers. Packages obtain a
// logger with GetLogger at init time; all loggers write to a shared
// destination that discards output until SetOutput or SetOutputFile routes
// it somewhere.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mutex   sync.Mutex
	out     io.Writer = io.Discard
	outFile *os.File
	loggers []*log.Logger
)

// GetLogger returns a logger with the given prefix.
func GetLogger(prefix string) *log.Logger {
	mutex.Lock()
	defer mutex.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers, current and future, to w.
func SetOutput(w io.Writer) {
	mutex.Lock()
	defer mutex.Unlock()
	closeFile()
	out = w
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile is like SetOutput with a file opened for appending, except
// that an empty name discards output again. The previous output file, if
// any, is closed.
func SetOutputFile(name string) error {
	if name == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	SetOutput(file)
	mutex.Lock()
	outFile = file
	mutex.Unlock()
	return nil
}

func closeFile() {
	if outFile != nil {
		outFile.Close()
		outFile = nil
	}
}
