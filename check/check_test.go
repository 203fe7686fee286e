package check

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type thing struct{}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestArgumentNull(t *testing.T) {
	err := ArgumentNull("src")
	assert.True(t, errors.Is(err, ErrArgumentNull))
	assert.False(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, "src: argument must not be nil", err.Error())
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("count", "must not be negative")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, "count must not be negative: invalid argument", err.Error())
}

func TestIsNil(t *testing.T) {
	var (
		ptr   *thing
		slice []int
		m     map[string]int
		fn    func()
		iface error
	)

	testCases := []struct {
		testName string
		v        any
		want     bool
	}{
		{"untyped nil", nil, true},
		{"typed nil pointer", ptr, true},
		{"nil slice", slice, true},
		{"nil map", m, true},
		{"nil func", fn, true},
		{"nil interface", iface, true},
		{"pointer", &thing{}, false},
		{"struct", thing{}, false},
		{"int", 0, false},
		{"empty string", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, IsNil(tc.v))
		})
	}
}

func TestModeChecks(t *testing.T) {
	var ptr *thing

	assert.ErrorIs(t, Enabled.NotNil("p", ptr), ErrArgumentNull)
	assert.NoError(t, Enabled.NotNil("p", &thing{}))
	assert.NoError(t, Disabled.NotNil("p", ptr))

	assert.ErrorIs(t, Enabled.NotNegative("count", -1), ErrInvalidArgument)
	assert.NoError(t, Enabled.NotNegative("count", 0))
	assert.NoError(t, Disabled.NotNegative("count", -1))
}

func TestModeFlag(t *testing.T) {
	var mode Mode

	assert.True(t, mode.Enabled(), "zero value must validate")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&mode, "validation", "argument validation")

	require.NoError(t, fs.Parse([]string{"-validation", "disabled"}))
	assert.Equal(t, Disabled, mode)
	assert.False(t, mode.Enabled())
	assert.Equal(t, "disabled", mode.String())

	err := mode.Set("sometimes")
	assert.ErrorIs(t, err, ErrInvalidMode)
	assert.Equal(t, Disabled, mode)

	assert.Equal(t, []Mode{Enabled, Disabled}, ModeList())
}
