package debug

import (
	"github.com/fatih/color"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

var (
	bufPool     = buffer.NewPool()
	callerColor = color.New(color.FgHiBlack)
)

// printEncoder writes the bare message, optionally prefixed by the caller's
// file:line. Everything but the prefix is delegated to a console encoder that
// only knows about the message key.
type printEncoder struct {
	zapcore.Encoder
	printCaller bool
}

func newPrintEncoder(printCaller bool) zapcore.Encoder {
	return &printEncoder{
		Encoder: zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey:       "msg",
			SkipLineEnding:   true,
			ConsoleSeparator: " ",
		}),
		printCaller: printCaller,
	}
}

func (enc *printEncoder) Clone() zapcore.Encoder {
	return &printEncoder{
		Encoder:     enc.Encoder.Clone(),
		printCaller: enc.printCaller,
	}
}

func (enc *printEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	line, err := enc.Encoder.EncodeEntry(entry, fields)
	if err != nil {
		return nil, err
	}
	defer line.Free()

	buf := bufPool.Get()

	if enc.printCaller && entry.Caller.Defined {
		buf.AppendString(callerColor.Sprint(entry.Caller.TrimmedPath()))
		buf.AppendString(": ")
	}

	_, _ = buf.Write(line.Bytes())

	return buf, nil
}
