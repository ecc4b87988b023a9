package cmd

import (
	"fmt"

	"github.com/chunkfmt/chunkfmt/options"
)

// buildOptions merges (in increasing precedence) options.Defaults(), the
// config file loaded into v by loadConfig, and overrides supplied
// directly on the format command line, into one options.Provider.
func buildOptions(overrides map[string]string) options.Provider {
	seed := map[string]string{}
	for key, val := range v.AllSettings() {
		seed[key] = fmt.Sprintf("%v", val)
	}
	for key, val := range overrides {
		seed[key] = val
	}
	return options.NewOrderedMapProvider(seed)
}
