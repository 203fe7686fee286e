package debug

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	goleak.VerifyTestMain(m)
}

func TestPrint(t *testing.T) {
	testCases := []struct {
		testName string
		write    func(p *Printer)
		want     string
	}{
		{
			testName: "print",
			write:    func(p *Printer) { p.Print("x=", 3) },
			want:     "x=3",
		},
		{
			testName: "println",
			write:    func(p *Printer) { p.Println("x", 3) },
			want:     "x 3\n",
		},
		{
			testName: "printf",
			write:    func(p *Printer) { p.Printf("%s(%d)", "tup", 2) },
			want:     "tup(2)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			var out bytes.Buffer

			tc.write(New(Config{Enabled: true, Output: &out}))
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestPrintCaller(t *testing.T) {
	var out bytes.Buffer

	p := New(Config{Enabled: true, PrintCaller: true, Output: &out})
	p.Println("hello")
	p.Print("world")

	assert.Regexp(t, `^debug/debug_test\.go:\d+: hello\ndebug/debug_test\.go:\d+: world$`, out.String())
}

func TestDisabled(t *testing.T) {
	var out bytes.Buffer

	p := New(Config{Output: &out, PrintCaller: true})
	assert.False(t, p.Enabled())

	p.Print("a")
	p.Println("b")
	p.Printf("%d", 1)
	p.PrintStack()

	assert.Zero(t, out.Len())
}

func TestPrintStack(t *testing.T) {
	var out bytes.Buffer

	p := New(Config{Enabled: true, Output: &out})
	require.True(t, p.Enabled())

	p.PrintStack()

	assert.Contains(t, out.String(), "goroutine ")
	assert.Contains(t, out.String(), "TestPrintStack")
}

func TestEncodeEntry(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()

	entry := zapcore.Entry{
		Level:   zapcore.DebugLevel,
		Time:    time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
		Message: "hello",
		Caller: zapcore.EntryCaller{
			Defined: true,
			File:    "/src/barghos/pool/deque.go",
			Line:    42,
		},
	}

	out, err := newPrintEncoder(true).EncodeEntry(entry, []zapcore.Field{zap.Int("n", 1)})
	require.NoError(t, err)
	assert.Equal(t, "\x1b[90mpool/deque.go:42\x1b[0m: hello {\"n\": 1}", out.String())

	out, err = newPrintEncoder(false).Clone().EncodeEntry(entry, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", out.String())
}
