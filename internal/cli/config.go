package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// secretKeys hold connection strings whose passwords are masked on output.
var secretKeys = [][2]string{
	{"mongo", "uri"},
	{"postgres", "dsn"},
	{"redis", "url"},
}

func newConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := a.v.AllSettings()
			for _, k := range secretKeys {
				section, ok := settings[k[0]].(map[string]any)
				if !ok {
					continue
				}
				if s, ok := section[k[1]].(string); ok {
					section[k[1]] = redact(s)
				}
			}

			out, err := yaml.Marshal(settings)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

// redact masks the password of URL-style connection strings.
func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	return u.Redacted()
}
