package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"ara/internal/catalog/models"
	pstrings "ara/pkg/platform/strings"
)

// Dataset file names inside the catalog filesystem.
const (
	StandardFile = "standard.yaml"
	ControlsFile = "controls.yaml"
	RegistryFile = "registry.yaml"
)

// ErrInvalidCatalog wraps every validation failure returned by Load.
var ErrInvalidCatalog = errors.New("invalid catalog")

type standardDoc struct {
	Standard models.Standard `yaml:"standard"`
	Domains  []models.Domain `yaml:"domains"`
}

type controlsDoc struct {
	Controls []models.ControlRequirement `yaml:"controls"`
}

type registryDoc struct {
	Entries []models.RegistryEntry `yaml:"entries"`
}

// Load reads and validates the three dataset files from fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	var std standardDoc
	if err := decodeFile(fsys, StandardFile, &std); err != nil {
		return nil, err
	}
	var ctl controlsDoc
	if err := decodeFile(fsys, ControlsFile, &ctl); err != nil {
		return nil, err
	}
	var reg registryDoc
	if err := decodeFile(fsys, RegistryFile, &reg); err != nil {
		return nil, err
	}

	version, err := semver.NewVersion(std.Standard.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: standard version %q: %w", ErrInvalidCatalog, std.Standard.Version, err)
	}
	std.Standard.Version = version.String()

	for i := range ctl.Controls {
		ctl.Controls[i].EvidenceRequirements = nonNil(pstrings.DedupeAndTrim(ctl.Controls[i].EvidenceRequirements))
		ctl.Controls[i].RelatedControls = nonNil(pstrings.DedupeAndTrim(ctl.Controls[i].RelatedControls))
	}
	for i := range reg.Entries {
		if reg.Entries[i].RevocationHistory == nil {
			reg.Entries[i].RevocationHistory = []models.RevocationEvent{}
		}
	}

	c := &Catalog{
		standard:    std.Standard,
		domains:     std.Domains,
		controls:    ctl.Controls,
		entries:     reg.Entries,
		domainIndex: make(map[int]int, len(std.Domains)),
	}
	for i, d := range c.domains {
		c.domainIndex[d.ID] = i
	}

	if problems := validate(c); len(problems) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(problems...))
	}
	return c, nil
}

// LoadDir loads a catalog from a directory on disk.
func LoadDir(dir string) (*Catalog, error) {
	return Load(os.DirFS(dir))
}

// LoadEmbedded loads the dataset compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	return Load(EmbeddedFS())
}

func decodeFile(fsys fs.FS, name string, out any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: decode %s: %w", ErrInvalidCatalog, name, err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
