package check

import "github.com/pkg/errors"

// Mode selects whether argument validation runs. The zero value validates.
type Mode uint8

const (
	Enabled Mode = iota
	Disabled
)

var ErrInvalidMode = errors.New("invalid Mode")

var _Mode_string_to_type = map[string]Mode{
	"enabled":  Enabled,
	"disabled": Disabled,
}

var _Mode_type_to_string = map[Mode]string{
	Enabled:  "enabled",
	Disabled: "disabled",
}

// Enabled reports whether arguments are validated.
func (i Mode) Enabled() bool {
	return i != Disabled
}

func (i Mode) String() string {
	return _Mode_type_to_string[i]
}

// Set implements flag.Value.
func (i *Mode) Set(s string) error {
	if t, ok := _Mode_string_to_type[s]; ok {
		*i = t
		return nil
	}
	return errors.Wrap(ErrInvalidMode, s)
}

func (i *Mode) Type() string {
	return "mode"
}

func ModeList() []Mode {
	return []Mode{
		Enabled,
		Disabled,
	}
}
