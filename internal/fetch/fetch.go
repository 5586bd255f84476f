// Package fetch downloads dataset archives over HTTP and unpacks tar.gz
// archives. Downloads go to a temporary file first so an interrupted
// transfer never leaves a truncated archive behind.
package fetch

import (
	"archive/tar"
	"compress/gzip"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/earthobs-data/bigearthnet/internal/monitoring"
	"github.com/earthobs-data/bigearthnet/internal/security"
)

// Client is the HTTP client used for downloads. Archive transfers run for a
// long time, so only the handshake phases carry timeouts.
var Client = &http.Client{
	Transport: &http.Transport{
		TLSHandshakeTimeout:   30 * time.Second,
		ResponseHeaderTimeout: 60 * time.Second,
	},
}

// DownloadIfMissing fetches url into dest unless dest already exists. When
// md5sum is non-empty the file's digest is verified (for pre-existing files
// too) and a mismatch is an error.
func DownloadIfMissing(url, dest, md5sum string) error {
	if _, err := os.Stat(dest); err == nil {
		if md5sum != "" {
			return verifyMD5(dest, md5sum)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("failed to create download directory: %w", err)
	}

	monitoring.Logf("downloading %s", url)
	resp, err := Client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch %s: status %s", url, resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".part-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	bar := progressbar.DefaultBytes(resp.ContentLength, filepath.Base(dest))
	_, err = io.Copy(io.MultiWriter(tmp, bar), resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}

	if md5sum != "" {
		if err := verifyMD5(tmp.Name(), md5sum); err != nil {
			return err
		}
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("failed to move download into place: %w", err)
	}
	return nil
}

func verifyMD5(path, want string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return fmt.Errorf("failed to hash %s: %w", path, err)
	}
	got := hex.EncodeToString(h.Sum(nil))
	if !strings.EqualFold(got, want) {
		return fmt.Errorf("md5 mismatch for %s: got %s, want %s", path, got, want)
	}
	return nil
}

// ExtractTarGz unpacks archive into destDir. Entries that would escape
// destDir are rejected.
func ExtractTarGz(archive, destDir string) error {
	f, err := os.Open(archive)
	if err != nil {
		return err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("failed to open gzip stream: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read archive entry: %w", err)
		}

		target := filepath.Join(destDir, filepath.Clean(hdr.Name))
		if err := security.ValidatePathWithinDirectory(target, destDir); err != nil {
			return fmt.Errorf("rejecting archive entry %s: %w", hdr.Name, err)
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := writeEntry(target, tr, hdr.FileInfo().Mode()); err != nil {
				return err
			}
		}
	}
}

func writeEntry(target string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode.Perm())
	if err != nil {
		return err
	}
	_, err = io.Copy(out, r)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}
