package main

import (
	"github.com/spf13/cobra"

	"github.com/terra-rs/save-codec/internal/catalog"
)

// addCatalogFlag registers the --catalog flag shared by every verb that
// needs item/buff/prefix lookups (decrypt doesn't; encrypt doesn't;
// batch/watch do, since a mismatched item name would otherwise desync the
// write).
func addCatalogFlag(cmd *cobra.Command) *string {
	dir := cmd.Flags().String("catalog", "catalog", "directory containing items.json, buffs.json, prefixes.json")
	return dir
}

func openCatalog(dir string) (*catalog.Store, error) {
	items, buffs, prefixes, err := catalog.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	return catalog.NewStore(items, buffs, prefixes), nil
}
