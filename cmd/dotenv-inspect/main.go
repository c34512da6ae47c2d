// dotenv-inspect runs detection and parsing outside a lifecycle and prints the
// environment the buildpack would contribute.
package main

import (
	"DotenvBuildpack/internal/buildpack"
	"DotenvBuildpack/internal/config"
	"DotenvBuildpack/internal/console"
	"DotenvBuildpack/internal/dotenv"
	"DotenvBuildpack/internal/layerenv"
	"DotenvBuildpack/internal/logger"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type change struct {
	Name         string `yaml:"name" toml:"name"`
	Value        string `yaml:"value" toml:"value"`
	Scope        string `yaml:"scope" toml:"scope"`
	Modification string `yaml:"modification" toml:"modification"`
	Delimiter    string `yaml:"delimiter,omitempty" toml:"delimiter,omitempty"`
}

type skipped struct {
	Line   int    `yaml:"line" toml:"line"`
	Text   string `yaml:"text" toml:"text"`
	Reason string `yaml:"reason" toml:"reason"`
}

type report struct {
	File           string            `yaml:"file" toml:"file"`
	Detected       bool              `yaml:"detected" toml:"detected"`
	OverrideSource string            `yaml:"override_source,omitempty" toml:"override_source,omitempty"`
	Changes        []change          `yaml:"changes" toml:"changes"`
	Skipped        []skipped         `yaml:"skipped,omitempty" toml:"skipped,omitempty"`
	BuildEnv       map[string]string `yaml:"build_env" toml:"build_env"`
	LaunchEnv      map[string]string `yaml:"launch_env" toml:"launch_env"`
}

type options struct {
	appDir        string
	platformDir   string
	suffix        string
	buildpackTOML string
	process       string
	format        string
	debug         bool
}

func main() {
	slog.SetDefault(logger.NewLogger())
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) (exitCode int) {
	ctx := context.Background()
	defer logger.Recover(&exitCode)

	var opts options
	fs := pflag.NewFlagSet("dotenv-inspect", pflag.ContinueOnError)
	fs.StringVar(&opts.appDir, "app-dir", ".", "Application directory")
	fs.StringVar(&opts.platformDir, "platform", "", "Platform directory consulted for BP_DOTENV_SUFFIX")
	fs.StringVar(&opts.suffix, "suffix", "", "Suffix override (wins over buildpack.toml)")
	fs.StringVar(&opts.buildpackTOML, "buildpack-toml", "", "buildpack.toml to read [metadata] from")
	fs.StringVar(&opts.process, "process", "", "Process type for the launch environment")
	fs.StringVar(&opts.format, "format", "yaml", "Output format: yaml, toml or env")
	fs.BoolVarP(&opts.debug, "debug", "x", false, "Debug output")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		logger.Error(ctx, err.Error())
		return 2
	}
	if opts.debug {
		logger.SetLevel(logger.LevelDebug)
	}

	rep, err := inspect(opts)
	if err != nil {
		logger.FatalNoTrace(ctx, "%v", err)
	}
	for _, s := range rep.Skipped {
		logger.Warn(ctx, "Skipping line {{_Skipped_}}%d{{|-|}}: %s", s.Line, s.Reason)
	}

	data, err := render(rep, opts.format)
	if err != nil {
		logger.FatalNoTrace(ctx, "%v", err)
	}
	if _, err := out.Write(data); err != nil {
		logger.FatalNoTrace(ctx, "%v", err)
	}
	if !rep.Detected {
		logger.Notice(ctx, "{{_File_}}%s{{|-|}} not found, detection would fail.", rep.File)
		return 100
	}
	return 0
}

func inspect(opts options) (report, error) {
	var md config.Metadata
	if opts.buildpackTOML != "" {
		data, err := os.ReadFile(opts.buildpackTOML)
		if err != nil {
			return report{}, err
		}
		desc, err := config.ParseDescriptor(data)
		if err != nil {
			return report{}, err
		}
		md = desc.Metadata
	}
	var (
		name string
		ov   config.Override
		err  error
	)
	if opts.suffix != "" {
		name, ov = dotenv.Filename(opts.suffix), config.Override{Value: opts.suffix, Source: "flag"}
	} else if name, ov, err = buildpack.ResolveFilename(md, opts.platformDir); err != nil {
		return report{}, err
	}

	rep := report{
		File:           name,
		OverrideSource: ov.Source,
		Detected:       dotenv.Exists(opts.appDir, name),
		Changes:        []change{},
		BuildEnv:       map[string]string{},
		LaunchEnv:      map[string]string{},
	}
	if !rep.Detected {
		return rep, nil
	}

	result, err := dotenv.ParseFile(filepath.Join(opts.appDir, name))
	if err != nil {
		return report{}, err
	}
	for _, s := range result.Skipped {
		rep.Skipped = append(rep.Skipped, skipped{Line: s.Number, Text: s.Text, Reason: s.Err.Error()})
	}

	patch := buildpack.NewPatch(result, md)
	for _, c := range patch.Changes() {
		rep.Changes = append(rep.Changes, change{
			Name:         c.Name,
			Value:        c.Value,
			Scope:        c.Scope.String(),
			Modification: c.Modification.String(),
			Delimiter:    c.Delimiter,
		})
	}
	rep.BuildEnv = patch.Apply(nil, layerenv.PhaseBuild, "")
	rep.LaunchEnv = patch.Apply(nil, layerenv.PhaseLaunch, opts.process)
	return rep, nil
}

func render(rep report, format string) ([]byte, error) {
	switch format {
	case "yaml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "toml":
		return toml.Marshal(rep)
	case "env":
		content, err := godotenv.Marshal(rep.BuildEnv)
		if err != nil {
			return nil, err
		}
		if content != "" {
			content += "\n"
		}
		return []byte(content), nil
	}
	return nil, fmt.Errorf("unknown format %s", console.Sprintf("{{_Value_}}%q{{|-|}}", format))
}
