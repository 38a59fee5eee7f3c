package a11y

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// Provider supplies the string table used by the describers.
type Provider interface {
	Strings() Strings
}

// Mode selects the provider built at configuration time.
type Mode string

const (
	ModeNormal Mode = "normal"
	// ModeFault appends a markup payload to every string, to check that consumers escape what
	// they render.
	ModeFault Mode = "xss"
)

// FaultPayload is appended to every string by the fault-injection provider.
const FaultPayload = `<img src="data:image/png;base64,iVBORw0KGgo=" onload="alert(document.title)" />`

// ParseMode parses a provider mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeNormal:
		return ModeNormal, nil
	case ModeFault:
		return ModeFault, nil
	}
	return "", fmt.Errorf("unknown strings mode %q (want %q or %q)", s, ModeNormal, ModeFault)
}

type static Strings

func (s static) Strings() Strings { return Strings(s) }

// Default returns a provider for the built-in English table.
func Default() Provider {
	return static(English())
}

// Static wraps a fixed table.
func Static(s Strings) Provider {
	return static(s)
}

type faultInjection struct {
	base    Provider
	payload string
}

// FaultInjection wraps base so that every string carries payload.
func FaultInjection(base Provider, payload string) Provider {
	return faultInjection{base: base, payload: payload}
}

func (f faultInjection) Strings() Strings {
	s := f.base.Strings()
	v := reflect.ValueOf(&s).Elem()
	for i := 0; i < v.NumField(); i++ {
		if field := v.Field(i); field.Kind() == reflect.String {
			field.SetString(field.String() + f.payload)
		}
	}
	return s
}

// LoadOverrides reads a YAML file of string overrides on top of base. Keys are the yaml names
// of the Strings fields; keys missing from the file keep the base value.
func LoadOverrides(path string, base Provider) (Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading strings file: %w", err)
	}

	s := base.Strings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing strings file: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("strings file %s: %w", path, err)
	}
	return static(s), nil
}

// Validate checks that every string in the table is a usable pattern, naming the offending
// keys by their yaml names.
func (s Strings) Validate() error {
	var errs []error
	v := reflect.ValueOf(s)
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if field.Kind() != reflect.String {
			continue
		}
		if err := checkPattern(field.String()); err != nil {
			name, _, _ := strings.Cut(v.Type().Field(i).Tag.Get("yaml"), ",")
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// New builds the provider for a mode, applying overrides from file when it is not empty.
func New(mode Mode, file string) (Provider, error) {
	p := Default()
	if file != "" {
		var err error
		p, err = LoadOverrides(file, p)
		if err != nil {
			return nil, err
		}
	}

	switch mode {
	case "", ModeNormal:
		return p, nil
	case ModeFault:
		return FaultInjection(p, FaultPayload), nil
	}
	return nil, fmt.Errorf("unknown strings mode %q", mode)
}
