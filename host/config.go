package host

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoadConfig reads Options overrides from a TOML file. A missing file
// is not an error, the defaults apply.
func LoadConfig(path string) (Options, error) {
	var opts Options

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return opts, nil
	}

	if err != nil {
		return opts, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse config %q: %w", path, err)
	}

	return opts, nil
}
