//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config loads the optional tedit.toml configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/timburks/tedit/pkg/fsys"
)

const (
	DefaultTitle   = "Text Editor"
	configFileName = ".tedit.toml"
	logFileName    = ".teditlog"
)

// Config holds settings read from the configuration file.
type Config struct {
	Title   string `toml:"title,omitempty"`
	LogFile string `toml:"log_file,omitempty"` // log destination in interactive mode
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Title:   DefaultTitle,
		LogFile: filepath.Join(os.Getenv("HOME"), logFileName),
	}
}

// DefaultPath returns the configuration file in the user's home directory.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), configFileName)
}

// Load reads the configuration at path. A missing file yields the defaults;
// values not set in the file keep their defaults.
func Load(files fsys.FS, path string) (Config, error) {
	cfg := Default()
	data, err := files.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
