package config

import (
	"fmt"

	"github.com/katalvlaran/hmatrix/measure"
	"github.com/spf13/viper"
)

// Load reads path (yaml/json/toml/ini, detected by extension) and
// flattens it into a measure.Config. Recognized keys include a
// non-exhaustive set: "delim" (delimiter spec), "measure" (catalog
// name), "cost_matrix" (substitution-cost matrix path), "ngram_len",
// "normalize", "prefix_scale", "alphabet_size", plus whatever
// additional per-measure keys a catalog entry reads via Config's typed
// accessors.
//
// Load does not validate keys against any particular measure's
// expectations — an unrecognized key is simply ignored by whichever
// measure.Configure call reads the resulting Config.
func Load(path string) (measure.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: Load(%q): %w", path, err)
	}

	flat := make(measure.Config, len(v.AllSettings()))
	for key, val := range v.AllSettings() {
		flat[key] = fmt.Sprintf("%v", val)
	}

	return flat, nil
}
