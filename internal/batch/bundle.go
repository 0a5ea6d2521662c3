package batch

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
)

// BundleCorpus writes every ".dplr" fixture under dir into a single
// gzip-compressed tar stream at outPath, for portable distribution of a
// decrypted test corpus.
func BundleCorpus(dir, outPath string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "creating %s", outPath)
	}
	defer out.Close()

	gz, err := gzip.NewWriterLevel(out, gzip.BestCompression)
	if err != nil {
		return errors.Wrap(err, "constructing gzip writer")
	}
	defer gz.Close()

	tw := tar.NewWriter(gz)
	defer tw.Close()

	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if !strings.HasSuffix(strings.ToLower(d.Name()), ".dplr") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return errors.Wrapf(err, "stat %s", path)
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return errors.Wrapf(err, "relativizing %s", path)
		}

		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return errors.Wrapf(err, "building tar header for %s", path)
		}
		hdr.Name = rel

		if err := tw.WriteHeader(hdr); err != nil {
			return errors.Wrapf(err, "writing tar header for %s", path)
		}

		f, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "opening %s", path)
		}
		defer f.Close()

		if _, err := io.Copy(tw, f); err != nil {
			return errors.Wrapf(err, "copying %s into bundle", path)
		}
		return nil
	})
}
