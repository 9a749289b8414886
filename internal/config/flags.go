package config

import (
	"strings"

	"github.com/philipparndt/gochibi/pkg/chibi"
	"github.com/spf13/pflag"
)

// Flag names shared by the commands that generate parts
const (
	FlagConfig    = "config"
	FlagType      = "type"
	FlagGender    = "gender"
	FlagScale     = "scale"
	FlagTolerance = "tolerance"
	FlagHair      = "hair"
	FlagClothing  = "clothing"
	FlagOut       = "out"
	FlagFormat    = "format"
	FlagASCII     = "ascii"
	FlagZip       = "zip"
	FlagLogLevel  = "log-level"
	FlagLogFile   = "log-file"
)

// RegisterFlags adds the override flags to fs. Their defaults are only
// shown in help; ApplyFlags copies a value only when the flag was set.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()

	fs.StringP(FlagConfig, "c", "", "Path to config file (default: "+FileName+" or the user config dir)")
	fs.String(FlagType, d.Model.CharacterType, "Character type ("+strings.Join(chibi.CharacterTypes, ", ")+")")
	fs.String(FlagGender, d.Model.Gender, "Gender ("+strings.Join(chibi.Genders, ", ")+")")
	fs.Float64(FlagScale, d.Model.Scale, "Overall size factor")
	fs.Float64(FlagTolerance, d.Model.Tolerance, "Connector tolerance, zero or negative")
	fs.String(FlagHair, string(d.Model.HairStyle), "Hair style (short, long, none)")
	fs.String(FlagClothing, string(d.Model.Clothing), "Clothing (none, shirt, hat)")
	fs.StringP(FlagOut, "o", d.Export.Dir, "Output directory")
	fs.StringP(FlagFormat, "f", d.Export.Format, "Export format (STL, OBJ)")
	fs.Bool(FlagASCII, false, "Write ASCII instead of binary STL")
	fs.Bool(FlagZip, false, "Also bundle the exported files into a zip")
	fs.String(FlagLogLevel, d.Logging.Level, "Log level (debug, info, warn, error)")
	fs.String(FlagLogFile, "", "Also write logs to this rotating file")
}

// ConfigPath returns the explicit --config value, if any
func ConfigPath(fs *pflag.FlagSet) string {
	path, _ := fs.GetString(FlagConfig)
	return path
}

// ApplyFlags copies every flag the user set onto cfg
func ApplyFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error
	setString := func(name string, dst *string) {
		if err == nil && fs.Changed(name) {
			*dst, err = fs.GetString(name)
		}
	}
	setFloat := func(name string, dst *float64) {
		if err == nil && fs.Changed(name) {
			*dst, err = fs.GetFloat64(name)
		}
	}
	setBool := func(name string, dst *bool) {
		if err == nil && fs.Changed(name) {
			*dst, err = fs.GetBool(name)
		}
	}

	setString(FlagType, &cfg.Model.CharacterType)
	setString(FlagGender, &cfg.Model.Gender)
	setFloat(FlagScale, &cfg.Model.Scale)
	setFloat(FlagTolerance, &cfg.Model.Tolerance)
	setString(FlagOut, &cfg.Export.Dir)
	setString(FlagFormat, &cfg.Export.Format)
	setBool(FlagASCII, &cfg.Export.ASCIISTL)
	setBool(FlagZip, &cfg.Export.Zip)
	setString(FlagLogLevel, &cfg.Logging.Level)
	setString(FlagLogFile, &cfg.Logging.LogFile)

	var hair, clothing string
	setString(FlagHair, &hair)
	setString(FlagClothing, &clothing)
	if err != nil {
		return err
	}

	if fs.Changed(FlagHair) {
		style, err := chibi.ParseHairStyle(hair)
		if err != nil {
			return err
		}
		cfg.Model.HairStyle = style
	}
	if fs.Changed(FlagClothing) {
		cfg.Model.Clothing = chibi.Clothing(strings.ToLower(clothing))
	}
	return nil
}

// Resolve loads the file named by --config (or the first one found), applies
// the flags the user set and validates the result
func Resolve(fs *pflag.FlagSet) (*Config, error) {
	cfg, err := Load(ConfigPath(fs))
	if err != nil {
		return nil, err
	}
	if err := ApplyFlags(cfg, fs); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
