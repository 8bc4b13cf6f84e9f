package integrators

import (
	"fmt"
	"strings"

	"github.com/san-kum/oscillator/internal/dynamo"
)

// Method names one of the supported step schemes. The set is closed.
type Method uint8

const (
	MethodVerlet Method = iota + 1
	MethodBeeman
	MethodGear5
)

func (m Method) String() string {
	switch m {
	case MethodVerlet:
		return "verlet"
	case MethodBeeman:
		return "beeman"
	case MethodGear5:
		return "gear"
	default:
		return fmt.Sprintf("Method(%d)", uint8(m))
	}
}

func (m Method) Valid() bool {
	return m >= MethodVerlet && m <= MethodGear5
}

// Methods lists every scheme in a stable order.
func Methods() []Method {
	return []Method{MethodVerlet, MethodBeeman, MethodGear5}
}

func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "verlet":
		return MethodVerlet, nil
	case "beeman":
		return MethodBeeman, nil
	case "gear", "gear5", "gear-5":
		return MethodGear5, nil
	default:
		return 0, fmt.Errorf("%w: %q", dynamo.ErrUnknownIntegrator, name)
	}
}

func (m Method) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %s", dynamo.ErrUnknownIntegrator, m)
	}
	return []byte(m.String()), nil
}

func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// New returns a fresh strategy instance for m. Instances carry history
// and must not be shared between systems.
func New(m Method) (dynamo.Integrator, error) {
	switch m {
	case MethodVerlet:
		return NewVerlet(), nil
	case MethodBeeman:
		return NewBeeman(), nil
	case MethodGear5:
		return NewGear5(), nil
	default:
		return nil, fmt.Errorf("%w: %s", dynamo.ErrUnknownIntegrator, m)
	}
}
