package webstore

import "fmt"

// Keys recognized by ParseOptions.
const (
	ConfigStoreType = "storeType"
	ConfigPrefix    = "prefix"
)

// ParseOptions reads a loosely-typed config object, e.g. one decoded from JSON
// or handed over from JavaScript. Missing entries and a nil storeType keep
// their defaults; unknown keys are ignored.
//
// A storeType that is not a supported string yields *ConfigError. A prefix
// that is present but not a string, including nil (JavaScript null), yields
// *TypeError.
func ParseOptions(cfg map[string]any) (Options, error) {
	var o Options
	if v, ok := cfg[ConfigStoreType]; ok && v != nil {
		s, isStr := v.(string)
		if !isStr || !StoreType(s).Valid() {
			return Options{}, &ConfigError{Field: ConfigStoreType, Value: fmt.Sprint(v), Err: ErrUnsupportedStoreType}
		}
		o.StoreType = StoreType(s)
	}
	if v, ok := cfg[ConfigPrefix]; ok {
		s, isStr := v.(string)
		if !isStr {
			return Options{}, &TypeError{Field: ConfigPrefix, Got: fmt.Sprintf("%T", v), Err: ErrPrefixNotString}
		}
		o.Prefix = Prefix(s)
	}
	return o, nil
}

// NewFromConfig parses cfg with ParseOptions and builds a Provider. Env,
// Memory, Codec and Logger are taken from base; parsed entries override
// base's StoreType and Prefix.
func NewFromConfig(cfg map[string]any, base Options) (*Provider, error) {
	o, err := ParseOptions(cfg)
	if err != nil {
		return nil, err
	}
	if o.StoreType != "" {
		base.StoreType = o.StoreType
	}
	if o.Prefix != nil {
		base.Prefix = o.Prefix
	}
	return New(base)
}
