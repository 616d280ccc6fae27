package localstore

import (
	"fmt"
	"os"
	"path/filepath"
)

// File stores each key as one framed file under BaseDir. Writes go through
// a temp file + rename so a crash never leaves a half-written value.
type File struct {
	BaseDir string
	codec   *Codec
}

func NewFile(baseDir string, secret []byte) *File {
	return &File{BaseDir: baseDir, codec: NewCodec(secret)}
}

func (f *File) Get(key string) ([]byte, bool, error) {
	b, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	payload, err := f.codec.Decode(b)
	if err != nil {
		// Corrupt or tampered content reads as absent.
		return nil, false, nil
	}
	return payload, true, nil
}

func (f *File) Set(key string, payload []byte) error {
	if err := os.MkdirAll(f.BaseDir, 0o755); err != nil {
		return err
	}

	dst := f.path(key)
	tmp := dst + ".tmp"
	if err := os.WriteFile(tmp, f.codec.Encode(payload), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, dst)
}

func (f *File) Delete(key string) error {
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (f *File) path(key string) string {
	return filepath.Join(f.BaseDir, filepath.Base(key)+".dat")
}

func (f *File) String() string { return fmt.Sprintf("file(%s)", f.BaseDir) }
