package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// AssetKind tells shape specs apart from scene scripts.
type AssetKind int

const (
	AssetSpec AssetKind = iota + 1
	AssetScript
)

func (k AssetKind) String() string {
	switch k {
	case AssetSpec:
		return "spec"
	case AssetScript:
		return "script"
	default:
		return fmt.Sprintf("AssetKind(%d)", int(k))
	}
}

// Classify reports the asset kind of a file by extension.
func Classify(name string) (AssetKind, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return AssetSpec, true
	case ".tengo":
		return AssetScript, true
	}
	return 0, false
}

// DiskRoot is where edited copies of the embedded assets are looked up.
const DiskRoot = "prefabs"

//go:embed *.yaml scripts/*.tengo
var embedded embed.FS

// Load returns a YAML spec by file name.
func Load(name string) ([]byte, error) {
	return Read(AssetSpec, name)
}

// LoadScript returns a scene script by file name.
func LoadScript(name string) ([]byte, error) {
	return Read(AssetScript, name)
}

// Read returns the asset called name. A copy under DiskRoot wins over the
// embedded one so edits apply without a rebuild. Leading directories in name
// are ignored.
func Read(kind AssetKind, name string) ([]byte, error) {
	rel, err := assetPath(kind, name)
	if err != nil {
		return nil, err
	}
	if data, err := os.ReadFile(filepath.Join(DiskRoot, filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	data, err := embedded.ReadFile(rel)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s %q: %w", kind, name, err)
	}
	return data, nil
}

func assetPath(kind AssetKind, name string) (string, error) {
	base := path.Base(filepath.ToSlash(name))
	if name == "" || base == "." || base == "/" {
		return "", fmt.Errorf("prefabs: empty %s name", kind)
	}
	if got, ok := Classify(base); !ok || got != kind {
		return "", fmt.Errorf("prefabs: %q is not a %s", name, kind)
	}
	if kind == AssetScript {
		return "scripts/" + base, nil
	}
	return base, nil
}
