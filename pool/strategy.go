package pool

import "github.com/pkg/errors"

// Strategy selects the backing store New builds.
type Strategy uint8

const (
	Deque Strategy = iota
	Stack
)

var ErrInvalidStrategy = errors.New("invalid Strategy")

var _Strategy_string_to_type = map[string]Strategy{
	"deque": Deque,
	"stack": Stack,
}

var _Strategy_type_to_string = map[Strategy]string{
	Deque: "deque",
	Stack: "stack",
}

func (i Strategy) String() string {
	return _Strategy_type_to_string[i]
}

// Set implements flag.Value.
func (i *Strategy) Set(s string) error {
	if t, ok := _Strategy_string_to_type[s]; ok {
		*i = t
		return nil
	}
	return errors.Wrap(ErrInvalidStrategy, s)
}

func (i *Strategy) Type() string {
	return "strategy"
}

func StrategyList() []Strategy {
	return []Strategy{
		Deque,
		Stack,
	}
}
