// The package logger defines a simple logger with INFO, WARN and ERROR prints.
package logger

import (
	"io"
	"log"
	"os"
)

// Aggregate groups one logger per level. A nil *Aggregate discards everything,
// so components can be built without a logger.
type Aggregate struct {
	InfoLogger  *log.Logger
	WarnLogger  *log.Logger
	ErrorLogger *log.Logger
}

// New() returns an Aggregate that writes every level to out.
func New(out io.Writer) *Aggregate {
	return &Aggregate{
		InfoLogger:  log.New(out, "INFO: ", log.LstdFlags),
		WarnLogger:  log.New(out, "WARN: ", log.LstdFlags),
		ErrorLogger: log.New(out, "ERROR: ", log.LstdFlags),
	}
}

// Discard() returns an Aggregate that writes nowhere.
func Discard() *Aggregate {
	return New(io.Discard)
}

// Info() prints an INFO log
func (l *Aggregate) Info(s string, v ...any) {
	if l == nil {
		return
	}
	l.InfoLogger.Printf(s, v...)
}

// Warn() prints a WARN log
func (l *Aggregate) Warn(s string, v ...any) {
	if l == nil {
		return
	}
	l.WarnLogger.Printf(s, v...)
}

// Error() prints an ERROR log
func (l *Aggregate) Error(s string, v ...any) {
	if l == nil {
		return
	}
	l.ErrorLogger.Printf(s, v...)
}

// Init() opens (or creates) the file at filePath in append mode, and returns
// an Aggregate that writes to it. The caller must close the file.
func Init(filePath string) (*Aggregate, *os.File, error) {
	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil, nil, err
	}
	return New(file), file, nil
}
