package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// LoadDir reads items.json, buffs.json, and prefixes.json from dir, the
// catalog snapshot produced by the out-of-scope asset pipeline. Any file
// may be absent, in which case that slice comes back empty rather than
// erroring.
func LoadDir(dir string) (items []ItemMeta, buffs []BuffMeta, prefixes []PrefixMeta, err error) {
	if err := loadJSON(filepath.Join(dir, "items.json"), &items); err != nil {
		return nil, nil, nil, err
	}
	if err := loadJSON(filepath.Join(dir, "buffs.json"), &buffs); err != nil {
		return nil, nil, nil, err
	}
	if err := loadJSON(filepath.Join(dir, "prefixes.json"), &prefixes); err != nil {
		return nil, nil, nil, err
	}
	return items, buffs, prefixes, nil
}

func loadJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}
	return nil
}
