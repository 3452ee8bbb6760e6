package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/llmsdocs/internal/logfields"
)

// Process exit codes.
const (
	ExitGeneral    = 1
	ExitValidation = 2
	ExitConfig     = 7
	ExitInternal   = 10
	ExitBuild      = 11
)

var exitCodes = map[ErrorCategory]int{
	CategoryValidation: ExitValidation,
	CategoryConfig:     ExitConfig,
	CategoryBuild:      ExitBuild,
	CategoryFileSystem: ExitBuild,
	CategoryInternal:   ExitInternal,
}

// CLIErrorAdapter turns a command error into one stderr line and an exit code.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	stderr  io.Writer
	exit    func(int)
}

func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{verbose: verbose, logger: logger, stderr: os.Stderr, exit: os.Exit}
}

func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	if de, ok := As(err); ok {
		if code, ok := exitCodes[de.Category]; ok {
			return code
		}
	}
	return ExitGeneral
}

// FormatError is the stderr line. Config and validation messages are shown
// bare; other categories are prefixed with the category name.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	de, ok := As(err)
	switch {
	case !ok:
		return "Error: " + err.Error()
	case a.verbose:
		return de.Error()
	}

	msg := de.Message
	if path, ok := de.Context["path"]; ok {
		msg = fmt.Sprintf("%s: %v", msg, path)
	}
	if de.Category == CategoryConfig || de.Category == CategoryValidation {
		return msg
	}
	return fmt.Sprintf("%s: %s", de.Category, msg)
}

// HandleError prints err and exits. Internal and unclassified errors are
// also logged with their context, as is everything in verbose mode.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}
	de, ok := As(err)
	if a.verbose || !ok || de.Category == CategoryInternal {
		a.log(err, de)
	}
	_, _ = fmt.Fprintln(a.stderr, a.FormatError(err))
	a.exit(a.ExitCodeFor(err))
}

func (a *CLIErrorAdapter) log(err error, de *DocError) {
	if de == nil {
		a.logger.Error("Unclassified error", logfields.Error(err))
		return
	}
	attrs := []slog.Attr{
		slog.String("category", string(de.Category)),
		slog.String("severity", string(de.Severity)),
	}
	for k, v := range de.Context {
		attrs = append(attrs, slog.Any(k, v))
	}
	if de.Cause != nil {
		attrs = append(attrs, logfields.Error(de.Cause))
	}
	a.logger.LogAttrs(context.Background(), slog.LevelError, de.Message, attrs...)
}
