// Package debug provides a small printer for ad-hoc diagnostics. A disabled
// printer discards everything, so calls can stay in place.
package debug

import (
	"fmt"
	"io"
	"os"
	rtdebug "runtime/debug"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config controls a Printer. The zero value is a disabled printer.
type Config struct {
	Enabled bool

	// PrintCaller prefixes every write with the caller's file:line.
	PrintCaller bool

	// Output defaults to os.Stderr.
	Output io.Writer
}

// Printer writes unstructured diagnostics through zap.
type Printer struct {
	logger *zap.Logger
}

// New returns a Printer for cfg. A disabled config yields a no-op printer.
func New(cfg Config) *Printer {
	if !cfg.Enabled {
		return &Printer{logger: zap.NewNop()}
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	core := zapcore.NewCore(newPrintEncoder(cfg.PrintCaller), zapcore.AddSync(out), zapcore.DebugLevel)

	return &Printer{
		logger: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)),
	}
}

// Print writes its operands like fmt.Print, without a trailing newline.
func (p *Printer) Print(v ...any) {
	p.logger.Debug(fmt.Sprint(v...))
}

// Println writes its operands like fmt.Println.
func (p *Printer) Println(v ...any) {
	p.logger.Debug(fmt.Sprintln(v...))
}

func (p *Printer) Printf(format string, v ...any) {
	p.logger.Debug(fmt.Sprintf(format, v...))
}

// PrintStack writes the stack trace of the calling goroutine.
func (p *Printer) PrintStack() {
	if !p.Enabled() {
		return
	}
	p.logger.Debug(string(rtdebug.Stack()))
}

func (p *Printer) Enabled() bool {
	return p.logger.Core().Enabled(zapcore.DebugLevel)
}
