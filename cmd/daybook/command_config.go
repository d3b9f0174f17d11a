package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"daybook/internal/app"
	"daybook/internal/config"
)

const (
	configFormatJSON = "json"
	configFormatTOML = "toml"
)

type configOutput struct {
	ConfigPath  string            `json:"config_path"`
	DataDir     string            `json:"data_dir"`
	Config      config.Config     `json:"config"`
	Keybindings map[string]string `json:"keybindings"`
}

func newConfigCommand(wiring commandWiring) *cobra.Command {
	var defaults bool
	var format string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := resolveConfigFormat(format)
			if err != nil {
				return err
			}
			cfg := config.DefaultConfig()
			if !defaults {
				cfg, err = wiring.loadConfig()
				if err != nil {
					return err
				}
			}
			return writeConfigOutput(wiring.stdout, resolved, cfg)
		},
	}
	cmd.Flags().BoolVar(&defaults, "default", false, "print default config values")
	cmd.Flags().StringVar(&format, "format", configFormatTOML, "output format: toml|json")
	return cmd
}

func resolveConfigFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", configFormatTOML:
		return configFormatTOML, nil
	case configFormatJSON:
		return configFormatJSON, nil
	default:
		return "", eris.Errorf("unsupported format %q (expected toml or json)", raw)
	}
}

func writeConfigOutput(out io.Writer, format string, cfg config.Config) error {
	if format == configFormatTOML {
		data, err := config.Encode(cfg)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	configPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	dataDir, err := config.DataDir()
	if err != nil {
		return err
	}
	payload := configOutput{
		ConfigPath:  configPath,
		DataDir:     dataDir,
		Config:      cfg,
		Keybindings: app.NewKeybindings(cfg.KeybindingOverrides()).Bindings(),
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return eris.Wrap(err, "encode config")
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
