package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/davechallis/erd-go/pkg/ast"
	"github.com/davechallis/erd-go/pkg/options"
)

// defaultConfigFile is looked up in the working directory when --config is
// not given. A missing file is not an error.
const defaultConfigFile = "erd.toml"

// config mirrors the TOML configuration file. Each table supplies global
// option overrides for one scope, in the same shape as the corresponding
// directive block in the markup:
//
//	[title]
//	label = "Invoicing schema"
//
//	[entity]
//	bgcolor = "#fcecec"
type config struct {
	Title        map[string]string `toml:"title"`
	Header       map[string]string `toml:"header"`
	Entity       map[string]string `toml:"entity"`
	Relationship map[string]string `toml:"relationship"`
}

// loadConfig reads override options from path. When path is empty the
// default file is tried and a missing file yields no overrides. An
// explicitly named file must exist.
func loadConfig(path string) (map[options.Scope]ast.OptionSet, error) {
	explicit := path != ""
	if path == "" {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	overrides := map[options.Scope]ast.OptionSet{
		options.ScopeTitle:        toOptionSet(cfg.Title),
		options.ScopeHeader:       toOptionSet(cfg.Header),
		options.ScopeEntity:       toOptionSet(cfg.Entity),
		options.ScopeRelationship: toOptionSet(cfg.Relationship),
	}
	return overrides, nil
}

// toOptionSet converts a TOML table to an option set with keys in sorted
// order, keeping warning output deterministic.
func toOptionSet(m map[string]string) ast.OptionSet {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	set := make(ast.OptionSet, 0, len(keys))
	for _, k := range keys {
		set = append(set, ast.Option{Key: k, Value: m[k]})
	}
	return set
}
