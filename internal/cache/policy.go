package cache

import (
	"sort"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const DefaultTTL = 5 * time.Minute

// Policy resolves the time-to-live of a key. The longest matching prefix wins;
// keys without a match use DefaultTTL.
type Policy struct {
	DefaultTTL time.Duration            `koanf:"default_ttl"`
	Prefixes   map[string]time.Duration `koanf:"prefixes"`
}

func DefaultPolicy() Policy {
	return Policy{DefaultTTL: DefaultTTL, Prefixes: map[string]time.Duration{}}
}

func (p Policy) TTLFor(key string) time.Duration {
	best, ttl := -1, p.DefaultTTL
	for prefix, d := range p.Prefixes {
		if strings.HasPrefix(key, prefix) && len(prefix) > best {
			best, ttl = len(prefix), d
		}
	}
	if ttl <= 0 {
		return DefaultTTL
	}
	return ttl
}

// PrefixList returns the configured prefixes in a stable order.
func (p Policy) PrefixList() []string {
	prefixes := make([]string, 0, len(p.Prefixes))
	for prefix := range p.Prefixes {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	return prefixes
}

// LoadPolicy layers, from lowest to highest precedence, defaultTTL, the YAML
// file at path (skipped when empty) and CACHE_ prefixed env vars such as
// CACHE_DEFAULT_TTL=10m.
func LoadPolicy(path string, defaultTTL time.Duration) (Policy, error) {
	policy := DefaultPolicy()
	if defaultTTL > 0 {
		policy.DefaultTTL = defaultTTL
	}

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Policy{}, errors.Wrapf(err, "loading cache policy %s", path)
		}
	}

	envProvider := env.Provider("CACHE_", ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), "cache_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Policy{}, errors.Wrap(err, "loading cache policy env")
	}

	if err := k.UnmarshalWithConf("", &policy, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Policy{}, errors.Wrap(err, "decoding cache policy")
	}

	if policy.DefaultTTL <= 0 {
		return Policy{}, errors.New("cache policy default_ttl must be positive")
	}
	for prefix, ttl := range policy.Prefixes {
		if ttl <= 0 {
			return Policy{}, errors.Errorf("cache policy ttl for %q must be positive", prefix)
		}
	}
	if policy.Prefixes == nil {
		policy.Prefixes = map[string]time.Duration{}
	}

	return policy, nil
}
