// SPDX-License-Identifier: MIT
package configdoc

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Load reads and parses the YAML document at path, in the corpus's own
// viper-based loader pattern: viper handles the file read, a plain struct
// unmarshal gives the typed shape. YAML/IO errors are surfaced as-is.
func Load(path string) (*Document, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))

	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}

	doc := &Document{}
	if err := vp.Unmarshal(doc); err != nil {
		return nil, err
	}
	return doc, nil
}
