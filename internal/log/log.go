// Package log is a small leveled logger. The terminal belongs to tcell while
// an application runs, so output normally goes to a file set with SetOutput.
package log

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/logrusorgru/aurora"
)

var (
	Flags = log.Ltime | log.Lmicroseconds

	PrefixPanic  = "PANIC! "
	PrefixError  = "Error: "
	PrefixInfo   = "Info:  "
	PrefixDebug  = "Debug: "
	DebugGreyLvl = uint8(11)

	// EnableDebug turns on Debugf and Debugln output.
	EnableDebug = false

	// EnableColors colours the level prefixes.
	EnableColors = true
)

var (
	mu     sync.Mutex
	output io.Writer = os.Stderr

	logPanic *log.Logger
	logError *log.Logger
	logInfo  *log.Logger
	logDebug *log.Logger
)

func init() {
	ResetLoggers()
}

func newLogger(w io.Writer, prefix aurora.Value) *log.Logger {
	if !EnableColors {
		return log.New(w, prefix.String(), Flags)
	}
	return log.New(w, prefix.Bold().String(), Flags)
}

// SetOutput redirects all levels to w and rebuilds the loggers.
func SetOutput(w io.Writer) {
	mu.Lock()
	output = w
	mu.Unlock()
	ResetLoggers()
}

// ResetLoggers rebuilds the loggers after a prefix or flag change.
func ResetLoggers() {
	mu.Lock()
	defer mu.Unlock()

	au := aurora.NewAurora(EnableColors)
	logPanic = newLogger(output, au.BgRed(au.White(PrefixPanic)))
	logError = newLogger(output, au.Red(PrefixError))
	logInfo = newLogger(output, au.Blue(PrefixInfo))
	logDebug = newLogger(output, au.Gray(DebugGreyLvl, PrefixDebug))
}

func Infof(f string, v ...interface{}) {
	logInfo.Printf(f, v...)
}
func Infoln(v ...interface{}) {
	logInfo.Println(v...)
}

func Debugf(f string, v ...interface{}) {
	if !EnableDebug {
		return
	}
	logDebug.Printf(f, v...)
}
func Debugln(v ...interface{}) {
	if !EnableDebug {
		return
	}
	logDebug.Println(v...)
}

func Errorf(f string, v ...interface{}) {
	logError.Printf(f, v...)
}
func Errorln(v ...interface{}) {
	logError.Println(v...)
}

func Panicf(f string, v ...interface{}) {
	logPanic.Panicf(f, v...)
}
func Fatalf(f string, v ...interface{}) {
	logPanic.Fatalf(f, v...)
}
