package content

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/mod/semver"

	"github.com/abhisek/secplus/internal/schema"
)

// SupportedFormat is the manifest format major version this build reads.
const SupportedFormat = "v1"

const (
	manifestFile = "manifest.json"
	domainsFile  = "domains.json"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported content format")
	ErrBadManifest       = errors.New("invalid content manifest")
)

//go:embed data/*.json
var embedded embed.FS

// Source supplies raw content documents.
type Source interface {
	ReadDomains() ([]byte, error)
	ReadFlashcards(domainID int) ([]byte, error)
}

// FSSource reads content documents from a file system.
type FSSource struct {
	fsys     fs.FS
	manifest Manifest
}

// OpenFS checks the manifest in fsys and returns a source over it.
func OpenFS(fsys fs.FS) (*FSSource, error) {
	raw, err := fs.ReadFile(fsys, manifestFile)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := schema.Decode(ManifestSchema, raw, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadManifest, err)
	}
	if err := checkFormat(m.Format); err != nil {
		return nil, err
	}
	return &FSSource{fsys: fsys, manifest: m}, nil
}

// OpenDir opens a content directory on disk.
func OpenDir(dir string) (*FSSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir: %s is not a directory", dir)
	}
	return OpenFS(os.DirFS(dir))
}

// Embedded returns the content bundled into the binary.
func Embedded() (*FSSource, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return OpenFS(sub)
}

// Manifest returns the manifest read when the source was opened.
func (s *FSSource) Manifest() Manifest { return s.manifest }

func (s *FSSource) ReadDomains() ([]byte, error) {
	return fs.ReadFile(s.fsys, domainsFile)
}

func (s *FSSource) ReadFlashcards(domainID int) ([]byte, error) {
	return fs.ReadFile(s.fsys, FlashcardsFile(domainID))
}

// FlashcardsFile is the document name holding a domain's cards.
func FlashcardsFile(domainID int) string {
	return fmt.Sprintf("flashcards_domain%d.json", domainID)
}

func checkFormat(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: format %q is not a semantic version", ErrBadManifest, v)
	}
	if semver.Major(v) != SupportedFormat {
		return fmt.Errorf("%w: %s (want %s.x)", ErrUnsupportedFormat, v, SupportedFormat)
	}
	return nil
}

// decodeList validates raw against s and decodes the array into a slice.
func decodeList[T any](s *schema.Schema, raw []byte) ([]T, error) {
	if err := schema.Validate(s, raw); err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Name, err)
	}
	return out, nil
}
