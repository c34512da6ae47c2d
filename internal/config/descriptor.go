package config

import (
	"DotenvBuildpack/internal/constants"
	"DotenvBuildpack/internal/layerenv"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	toml "github.com/pelletier/go-toml/v2"
)

// Descriptor holds the decoded buildpack.toml.
type Descriptor struct {
	API       string        `toml:"api"`
	Buildpack BuildpackInfo `toml:"buildpack"`
	Metadata  Metadata      `toml:"-"`
}

// BuildpackInfo holds the [buildpack] table.
type BuildpackInfo struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	Version  string `toml:"version"`
	Homepage string `toml:"homepage"`
}

// Metadata is the validated [metadata] table.
type Metadata struct {
	// DotenvSuffix selects ".env.<suffix>"; empty selects ".env".
	DotenvSuffix string
	Scope        layerenv.Scope
	Modification layerenv.Modification
	Delimiter    string
	// Launch marks the layer as visible at launch time.
	Launch bool
}

// rawMetadata mirrors [metadata] exactly; unknown keys are rejected.
type rawMetadata struct {
	DotenvSuffix *string `toml:"dotenv_suffix"`
	Scope        string  `toml:"scope"`
	Modification string  `toml:"modification"`
	Delimiter    string  `toml:"delimiter"`
	Launch       bool    `toml:"launch"`
}

type rawDescriptor struct {
	API       string         `toml:"api"`
	Buildpack BuildpackInfo  `toml:"buildpack"`
	Metadata  map[string]any `toml:"metadata"`
}

// LoadDescriptor reads and validates buildpack.toml from dir.
func LoadDescriptor(dir string) (Descriptor, error) {
	path := filepath.Join(dir, constants.BuildpackDescriptor)
	data, err := os.ReadFile(path)
	if err != nil {
		return Descriptor{}, &InvalidConfigurationError{Path: path, Reason: "cannot read descriptor", Err: err}
	}
	d, err := ParseDescriptor(data)
	if err != nil {
		var invalid *InvalidConfigurationError
		if errors.As(err, &invalid) {
			invalid.Path = path
		}
		return Descriptor{}, err
	}
	return d, nil
}

// ParseDescriptor decodes and validates buildpack.toml content.
func ParseDescriptor(data []byte) (Descriptor, error) {
	var raw rawDescriptor
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Descriptor{}, &InvalidConfigurationError{Reason: "malformed TOML", Err: err}
	}

	if err := checkAPI(raw.API); err != nil {
		return Descriptor{}, err
	}

	md, err := decodeMetadata(raw.Metadata)
	if err != nil {
		return Descriptor{}, err
	}

	return Descriptor{
		API:       raw.API,
		Buildpack: raw.Buildpack,
		Metadata:  md,
	}, nil
}

func checkAPI(api string) error {
	if api == "" {
		return &InvalidConfigurationError{Reason: "missing buildpack api"}
	}
	v, err := semver.NewVersion(api)
	if err != nil {
		return &InvalidConfigurationError{Reason: fmt.Sprintf("invalid buildpack api %q", api), Err: err}
	}
	c, err := semver.NewConstraint(constants.MinBuildpackAPI)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return &InvalidConfigurationError{Reason: fmt.Sprintf("buildpack api %s does not satisfy %s", api, constants.MinBuildpackAPI)}
	}
	return nil
}

// decodeMetadata re-encodes the loosely decoded table and decodes it strictly.
func decodeMetadata(table map[string]any) (Metadata, error) {
	if table == nil {
		return Metadata{}, &InvalidConfigurationError{Reason: "missing [metadata] table"}
	}
	data, err := toml.Marshal(table)
	if err != nil {
		return Metadata{}, &InvalidConfigurationError{Reason: "cannot re-encode [metadata]", Err: err}
	}

	var raw rawMetadata
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return Metadata{}, &InvalidConfigurationError{Reason: "invalid [metadata]", Err: err}
	}

	if raw.DotenvSuffix == nil {
		return Metadata{}, &InvalidConfigurationError{Reason: "missing metadata.dotenv_suffix"}
	}

	md := Metadata{
		DotenvSuffix: *raw.DotenvSuffix,
		Delimiter:    raw.Delimiter,
		Launch:       raw.Launch,
	}
	if md.Scope, err = layerenv.ParseScope(raw.Scope); err != nil {
		return Metadata{}, &InvalidConfigurationError{Reason: "invalid metadata.scope", Err: err}
	}
	// A launch-only scope needs a launch layer.
	if !md.Scope.Build() && !md.Launch {
		return Metadata{}, &InvalidConfigurationError{Reason: fmt.Sprintf("metadata.scope %q requires metadata.launch = true", md.Scope)}
	}
	if md.Modification, err = layerenv.ParseModification(raw.Modification); err != nil {
		return Metadata{}, &InvalidConfigurationError{Reason: "invalid metadata.modification", Err: err}
	}
	return md, nil
}
