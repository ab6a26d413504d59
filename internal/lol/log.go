// Package lol (log of location) is a small levelled logger that prints a
// timestamp, the level and the source location of each print, to make tracing
// errors simpler. Levels above the current one are filtered out.
package lol

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

const (
	Off = iota
	Fatal
	Error
	Warn
	Info
	Debug
	Trace
)

var LevelNames = []string{
	"off",
	"fatal",
	"error",
	"warn",
	"info",
	"debug",
	"trace",
}

type (
	// Ln prints lists of interfaces with spaces in between.
	Ln func(a ...any)
	// F prints like fmt.Printf surrounded by the log details.
	F func(format string, a ...any)
	// S prints a spew.Sdump of its arguments.
	S func(a ...any)
	// Chk prints the error if it is not nil, and reports whether it was.
	Chk func(e error) bool
	// Err builds an error with fmt.Errorf, prints it, and returns it.
	Err func(format string, a ...any) error

	// LevelPrinter is the set of log printers on one level.
	LevelPrinter struct {
		Ln
		F
		S
		Chk
		Err
	}

	// LevelSpec is the name, ID and colorizer for a log level.
	LevelSpec struct {
		ID        int
		Name      string
		Colorizer func(a ...any) string
	}
)

var (
	// LevelSpecs specifies the id, short name and color-printing function.
	LevelSpecs = []LevelSpec{
		{Off, "", NoSprint},
		{Fatal, "FTL", color.New(color.BgRed, color.FgHiWhite).Sprint},
		{Error, "ERR", color.New(color.FgHiRed).Sprint},
		{Warn, "WRN", color.New(color.FgHiYellow).Sprint},
		{Info, "INF", color.New(color.FgHiGreen).Sprint},
		{Debug, "DBG", color.New(color.FgHiBlue).Sprint},
		{Trace, "TRC", color.New(color.FgHiMagenta).Sprint},
	}

	// NoTimeStamp disables the timestamp prefix, which keeps test output stable.
	NoTimeStamp atomic.Bool

	msgCol = color.New(color.FgBlue).Sprint
)

// NoSprint returns nothing no matter what is given to it.
func NoSprint(a ...any) string { return "" }

// Log is a set of log printers for each level.
type Log struct {
	F, E, W, I, D, T LevelPrinter
}

// Check is the set of error checkers for each level.
type Check struct {
	F, E, W, I, D, T Chk
}

// Errorf is the set of log-and-return error constructors for each level.
type Errorf struct {
	F, E, W, I, D, T Err
}

// Logger bundles the printers, checkers and error constructors.
type Logger struct {
	*Log
	*Check
	*Errorf
}

// Level is the level that the logger is printing at.
var Level atomic.Int32

// Main is the main logger.
var Main = &Logger{}

func init() {
	Main.Log, Main.Check, Main.Errorf = New(os.Stderr)
	SetLoggers(Info)
}

// SetLoggers sets the log level by number.
func SetLoggers(level int) {
	if level < Off || level > Trace {
		level = Info
	}
	Level.Store(int32(level))
	Main.Log.T.F("log level %s", LevelSpecs[level].Colorizer(LevelNames[level]))
}

// SetLogLevel sets the level by name. Unknown names are ignored.
func SetLogLevel(level string) {
	for i := range LevelNames {
		if level == LevelNames[i] {
			SetLoggers(i)
			return
		}
	}
}

// joinStrings joins anything into a string with spaces between the items.
func joinStrings(a ...any) (s string) {
	for i := range a {
		s += fmt.Sprint(a[i])
		if i < len(a)-1 {
			s += " "
		}
	}
	return
}

func emit(writer io.Writer, l int32, text string) {
	fmt.Fprintf(writer,
		"%s%s %s %s\n",
		msgCol(TimeStamper()),
		LevelSpecs[l].Colorizer(LevelSpecs[l].Name),
		text,
		msgCol(GetLoc(3)),
	)
}

// GetPrinter returns a LevelPrinter for level l that writes to writer.
func GetPrinter(l int32, writer io.Writer) LevelPrinter {
	return LevelPrinter{
		Ln: func(a ...any) {
			if Level.Load() < l {
				return
			}
			emit(writer, l, joinStrings(a...))
		},
		F: func(format string, a ...any) {
			if Level.Load() < l {
				return
			}
			emit(writer, l, fmt.Sprintf(format, a...))
		},
		S: func(a ...any) {
			if Level.Load() < l {
				return
			}
			emit(writer, l, spew.Sdump(a...))
		},
		Chk: func(e error) bool {
			if e == nil {
				return false
			}
			if Level.Load() >= l {
				emit(writer, l, e.Error())
			}
			return true
		},
		Err: func(format string, a ...any) error {
			err := fmt.Errorf(format, a...)
			if Level.Load() >= l {
				emit(writer, l, err.Error())
			}
			return err
		},
	}
}

// New creates the printers, checkers and error constructors for every level.
func New(writer io.Writer) (l *Log, c *Check, errorf *Errorf) {
	l = &Log{
		T: GetPrinter(Trace, writer),
		D: GetPrinter(Debug, writer),
		I: GetPrinter(Info, writer),
		W: GetPrinter(Warn, writer),
		E: GetPrinter(Error, writer),
		F: GetPrinter(Fatal, writer),
	}
	c = &Check{
		F: l.F.Chk,
		E: l.E.Chk,
		W: l.W.Chk,
		I: l.I.Chk,
		D: l.D.Chk,
		T: l.T.Chk,
	}
	errorf = &Errorf{
		F: l.F.Err,
		E: l.E.Err,
		W: l.W.Err,
		I: l.I.Err,
		D: l.D.Err,
		T: l.T.Err,
	}
	return
}

// TimeStamper generates the timestamp for logs.
func TimeStamper() (s string) {
	if NoTimeStamp.Load() {
		return
	}
	return time.Now().Format("2006-01-02T15:04:05Z07:00.000 ")
}

// GetLoc returns the code location of the caller skip frames up.
func GetLoc(skip int) (loc string) {
	_, file, line, _ := runtime.Caller(skip)
	return fmt.Sprintf("%s:%d", file, line)
}
