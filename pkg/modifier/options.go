package modifier

import (
	stderrors "errors"
	"fmt"
	"math"
	"sort"

	"github.com/matzehuels/symbolmod/pkg/errors"
)

// Option keys as they appear in loosely typed option sets (JSON, TOML, query strings).
const (
	KeyReinforced          = "reinforced"
	KeySignature           = "signature"
	KeySpecialHeadquarters = "specialheadquarter"
	KeyStack               = "stack"
)

// SignatureDummy is the only signature value that draws a marker.
const SignatureDummy = "!"

// Options selects which modifiers are drawn.
type Options struct {
	Reinforced          Reinforcement `json:"reinforced"`
	Signature           string        `json:"signature,omitempty"`
	SpecialHeadquarters string        `json:"specialheadquarter,omitempty"`
	Stack               int           `json:"stack,omitempty"` // number of echeloned symbols behind this one
}

// Interpret decodes a loosely typed option set. Every option is checked on
// its own: a value of the wrong type or shape is left at its zero value and
// reported, and the remaining options are still decoded. The returned error
// is nil when every option was accepted, otherwise it joins one
// ErrCodeInvalidOption error per rejected option. Unrecognized keys belong to
// other renderers and are ignored.
func Interpret(raw map[string]any) (Options, error) {
	var (
		opts  Options
		diags []error
	)

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := raw[k]
		if v == nil {
			continue
		}
		var err error
		switch k {
		case KeyReinforced:
			var s string
			if s, err = stringOption(k, v); err == nil {
				opts.Reinforced = ParseReinforcement(s)
			}
		case KeySignature:
			var s string
			if s, err = stringOption(k, v); err == nil {
				if s != "" && s != SignatureDummy {
					err = errors.New(errors.ErrCodeInvalidOption, "%s must be %q or empty, got %q", k, SignatureDummy, s)
				} else {
					opts.Signature = s
				}
			}
		case KeySpecialHeadquarters:
			var s string
			if s, err = stringOption(k, v); err == nil {
				opts.SpecialHeadquarters = s
			}
		case KeyStack:
			var n int
			if n, err = stackOption(v); err == nil {
				opts.Stack = n
			}
		}
		if err != nil {
			diags = append(diags, err)
		}
	}
	return opts, stderrors.Join(diags...)
}

// Validate checks an already typed option set with the same rules Interpret applies.
func (o Options) Validate() error {
	var diags []error
	if err := errors.ValidateLabel(KeyReinforced, o.Reinforced.String()); err != nil {
		diags = append(diags, err)
	}
	if o.Signature != "" && o.Signature != SignatureDummy {
		diags = append(diags, errors.New(errors.ErrCodeInvalidOption, "%s must be %q or empty, got %q", KeySignature, SignatureDummy, o.Signature))
	}
	if err := errors.ValidateLabel(KeySpecialHeadquarters, o.SpecialHeadquarters); err != nil {
		diags = append(diags, err)
	}
	if err := errors.ValidateStack(o.Stack); err != nil {
		diags = append(diags, err)
	}
	return stderrors.Join(diags...)
}

func stringOption(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidOption, "%s must be a string, got %T", key, v)
	}
	if err := errors.ValidateLabel(key, s); err != nil {
		return "", err
	}
	return s, nil
}

func stackOption(v any) (int, error) {
	var n int
	switch x := v.(type) {
	case int:
		n = x
	case int64:
		if x > math.MaxInt32 || x < math.MinInt32 {
			return 0, stackRangeError(x)
		}
		n = int(x)
	case int32:
		n = int(x)
	case uint:
		if x > math.MaxInt32 {
			return 0, stackRangeError(x)
		}
		n = int(x)
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) {
			return 0, errors.New(errors.ErrCodeInvalidOption, "%s must be a whole number, got %v", KeyStack, x)
		}
		if x > math.MaxInt32 || x < math.MinInt32 {
			return 0, stackRangeError(x)
		}
		n = int(x)
	default:
		return 0, errors.New(errors.ErrCodeInvalidOption, "%s must be a number, got %T", KeyStack, v)
	}
	if err := errors.ValidateStack(n); err != nil {
		return 0, err
	}
	return n, nil
}

func stackRangeError(v any) error {
	return errors.New(errors.ErrCodeInvalidOption, "%s out of range, got %v", KeyStack, v)
}

// Map returns o as a loosely typed option set accepted by Interpret.
func (o Options) Map() map[string]any {
	m := map[string]any{}
	if !o.Reinforced.IsZero() {
		m[KeyReinforced] = o.Reinforced.String()
	}
	if o.Signature != "" {
		m[KeySignature] = o.Signature
	}
	if o.SpecialHeadquarters != "" {
		m[KeySpecialHeadquarters] = o.SpecialHeadquarters
	}
	if o.Stack != 0 {
		m[KeyStack] = o.Stack
	}
	return m
}

func (o Options) String() string {
	return fmt.Sprintf("reinforced=%q signature=%q specialheadquarter=%q stack=%d",
		o.Reinforced, o.Signature, o.SpecialHeadquarters, o.Stack)
}
