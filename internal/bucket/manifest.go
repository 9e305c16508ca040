package bucket

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// manifest is the subset of a manifest file the index cares about.
type manifest struct {
	Version string `json:"version" yaml:"version" toml:"version"`
}

// decoders maps a manifest file extension to its decoder.
var decoders = map[string]func([]byte, any) error{
	".json": json.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".toml": toml.Unmarshal,
}

// manifestName derives the package name from a manifest file name. The second
// return value is false for files with an unsupported extension.
func manifestName(fileName string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if _, ok := decoders[ext]; !ok {
		return "", false
	}
	return strings.TrimSuffix(fileName, filepath.Ext(fileName)), true
}

// readManifestVersion extracts the version field from a manifest file. The
// second return value is false when the file cannot be read or decoded, or
// carries no version; such manifests are skipped.
func readManifestVersion(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debug("manifest not readable, skipping", "path", path, "err", err)
		return "", false
	}

	decode := decoders[strings.ToLower(filepath.Ext(path))]
	var m manifest
	if err := decode(data, &m); err != nil {
		log.Debug("manifest malformed, skipping", "path", path, "err", err)
		return "", false
	}
	if m.Version == "" {
		log.Debug("manifest has no version, skipping", "path", path)
		return "", false
	}
	return m.Version, true
}
