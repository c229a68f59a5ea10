package cache

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"shiritori/dictionary"
	"shiritori/model"
)

const gobVersion = 1

type gobSnapshot struct {
	Version int
	Words   []model.Word
}

// GobStore keeps the graph as a zstd-compressed gob stream.
type GobStore struct{}

// Path returns "<dict>.graph.cache".
func (GobStore) Path(dictPath string) string {
	return dictPath + ".graph.cache"
}

// Read decodes the snapshot at path. Undecodable data and version
// mismatches are reported as ErrCorrupt.
func (GobStore) Read(path string) (*dictionary.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	defer zr.Close()

	var snap gobSnapshot
	if err := gob.NewDecoder(zr).Decode(&snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if snap.Version != gobVersion {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrCorrupt, snap.Version, gobVersion)
	}
	return restore(snap.Words)
}

// Write encodes g to a temporary file and renames it over path.
func (GobStore) Write(path string, g *dictionary.Graph) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := encode(f, g); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func encode(f *os.File, g *dictionary.Graph) error {
	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return err
	}
	snap := gobSnapshot{Version: gobVersion, Words: snapshot(g)}
	if err := gob.NewEncoder(zw).Encode(&snap); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
