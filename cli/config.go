package cli

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables read as configuration,
// e.g. SEDML_LOGLEVEL
const EnvPrefix = "SEDML"

// NewConfig returns a configuration reading SEDML_* environment
// variables, with the default log level set
func NewConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("loglevel", DefaultLogLevel)
	return v
}

// LoadConfig reads the YAML file path into v, when path is set, and
// applies the configured values to the flags of cmd and its subcommands
// which were not set on the command line
func LoadConfig(v *viper.Viper, cmd *cobra.Command, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading configuration %s", path)
		}
		log.Debug().Str("path", v.ConfigFileUsed()).Msg("using configuration file")
	}
	return bindFlags(v, cmd)
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	var err error
	apply := func(f *pflag.Flag) {
		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if err != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			err = sv.Replace(v.GetStringSlice(f.Name))
		} else {
			err = f.Value.Set(v.GetString(f.Name))
		}
		if err != nil {
			err = errors.Wrapf(err, "configuration value for %s", f.Name)
		}
	}
	cmd.PersistentFlags().VisitAll(apply)
	cmd.Flags().VisitAll(apply)
	for _, sub := range cmd.Commands() {
		if err != nil {
			break
		}
		err = bindFlags(v, sub)
	}
	return err
}
