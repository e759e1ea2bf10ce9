// Package config resolves where launchdex keeps its state and which
// directories it scans.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"launchdex/internal/adapters/filesystem"
	"launchdex/internal/application"
	"launchdex/internal/domain"
)

const (
	// AppName is the application name.
	AppName = "launchdex"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// EnvPrefix prefixes environment overrides, e.g. LAUNCHDEX_PICKER_COMMAND.
	EnvPrefix = "LAUNCHDEX"

	// BuiltinPicker selects the built-in terminal picker
	BuiltinPicker = "builtin"

	indexFileName   = "index.json"
	historyFileName = "history.json"
)

// ErrMissingEnv is wrapped by EnvError
var ErrMissingEnv = errors.New("missing environment variable")

// EnvError reports an environment variable needed to compute a default
// that was neither set nor overridden in the configuration.
type EnvError struct {
	Var string
	Key string // config key whose default needs Var
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("%s is not set (needed for %s; set %s_%s to override)",
		e.Var, e.Key, EnvPrefix, strings.ToUpper(strings.ReplaceAll(e.Key, ".", "_")))
}

func (e *EnvError) Is(target error) bool {
	return target == ErrMissingEnv
}

// PickerConfig selects the line picker
type PickerConfig struct {
	Command string   `mapstructure:"command" toml:"command"`
	Args    []string `mapstructure:"args" toml:"args"`
}

// Builtin reports whether the built-in terminal picker is selected
func (p PickerConfig) Builtin() bool {
	return strings.EqualFold(p.Command, BuiltinPicker)
}

// Config is the resolved configuration
type Config struct {
	DataDir       string       `mapstructure:"data_dir" toml:"data_dir"`
	IndexPath     string       `mapstructure:"index_path" toml:"index_path"`
	HistoryPath   string       `mapstructure:"history_path" toml:"history_path"`
	Picker        PickerConfig `mapstructure:"picker" toml:"picker"`
	Extensions    []string     `mapstructure:"extensions" toml:"extensions"`
	StartMenuDirs []string     `mapstructure:"start_menu_dirs" toml:"start_menu_dirs"`
	SearchPath    []string     `mapstructure:"search_path" toml:"search_path"`
	LogLevel      string       `mapstructure:"log_level" toml:"log_level"`
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigFilePath is an explicit config file; it must exist.
	ConfigFilePath string
	// ConfigDirPath overrides the platform config directory.
	ConfigDirPath string
	// Getenv looks up the variables used for platform defaults.
	// Defaults to os.Getenv.
	Getenv func(string) string
	// GOOS selects the platform defaults. Defaults to runtime.GOOS.
	GOOS string
}

func (o LoadOptions) withDefaults() LoadOptions {
	if o.Getenv == nil {
		o.Getenv = os.Getenv
	}
	if o.GOOS == "" {
		o.GOOS = runtime.GOOS
	}
	return o
}

// ConfigDir returns the launchdex configuration directory using platform
// conventions: %APPDATA% on Windows, ~/Library/Application Support on
// macOS and $XDG_CONFIG_HOME (defaulting to ~/.config) elsewhere.
func ConfigDir(opts LoadOptions) (string, error) {
	opts = opts.withDefaults()
	if opts.ConfigDirPath != "" {
		return opts.ConfigDirPath, nil
	}

	var configDir string
	switch opts.GOOS {
	case "windows":
		configDir = opts.Getenv("AppData")
		if configDir == "" {
			return "", &EnvError{Var: "AppData", Key: "config"}
		}
	case "darwin":
		home := opts.Getenv("HOME")
		if home == "" {
			return "", &EnvError{Var: "HOME", Key: "config"}
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = opts.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home := opts.Getenv("HOME")
			if home == "" {
				return "", &EnvError{Var: "HOME", Key: "config"}
			}
			configDir = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(configDir, AppName), nil
}

// Load resolves the configuration from defaults, the optional config file
// and LAUNCHDEX_* environment variables, in increasing precedence.
func Load(opts LoadOptions) (*Config, string, error) {
	opts = opts.withDefaults()

	v := viper.New()
	defaults, needs := platformDefaults(opts)
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()
	// AutomaticEnv only consults keys viper already knows about
	for _, key := range []string{"data_dir", "index_path", "history_path", "picker.command", "picker.args", "extensions", "start_menu_dirs", "search_path", "log_level"} {
		if err := v.BindEnv(key); err != nil {
			return nil, "", fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	resolvedPath, err := readConfigFile(v, opts)
	if err != nil {
		return nil, "", err
	}

	for key, envVar := range needs {
		if !v.IsSet(key) {
			return nil, "", &EnvError{Var: envVar, Key: key}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.resolve(); err != nil {
		return nil, "", err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, resolvedPath, nil
}

// readConfigFile merges the explicit or default config file into v.
// A missing default file is not an error.
func readConfigFile(v *viper.Viper, opts LoadOptions) (string, error) {
	path := opts.ConfigFilePath
	if path == "" {
		dir, err := ConfigDir(opts)
		if err != nil {
			var envErr *EnvError
			if errors.As(err, &envErr) {
				return "", nil // No place to look for a config file
			}
			return "", err
		}
		path = filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
		if !fileExists(path) {
			return "", nil
		}
	} else if !fileExists(path) {
		return "", fmt.Errorf("config file not found: %s", path)
	}

	v.SetConfigFile(path)
	v.SetConfigType(ConfigFileExt)
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return path, nil
}

// platformDefaults returns the default values that can be computed from the
// environment, and for each default that cannot, the variable it needs.
func platformDefaults(opts LoadOptions) (map[string]any, map[string]string) {
	getenv := opts.Getenv
	defaults := map[string]any{
		"extensions":  filesystem.DefaultExtensions,
		"search_path": filepath.SplitList(getenv("PATH")),
		"log_level":   "info",
	}
	needs := make(map[string]string)

	switch opts.GOOS {
	case "windows":
		defaults["picker.command"] = "wlines"

		appData, programData := getenv("AppData"), getenv("ProgramData")
		if appData != "" {
			defaults["data_dir"] = filepath.Join(appData, AppName)
		} else {
			needs["data_dir"] = "AppData"
		}
		switch {
		case appData == "":
			needs["start_menu_dirs"] = "AppData"
		case programData == "":
			needs["start_menu_dirs"] = "ProgramData"
		default:
			defaults["start_menu_dirs"] = []string{
				startMenuPrograms(appData),
				startMenuPrograms(programData),
			}
		}
	default:
		defaults["picker.command"] = BuiltinPicker

		dataHome := getenv("XDG_DATA_HOME")
		if dataHome == "" {
			if home := getenv("HOME"); home != "" {
				dataHome = filepath.Join(home, ".local", "share")
			}
		}
		if dataHome != "" {
			defaults["data_dir"] = filepath.Join(dataHome, AppName)
			defaults["start_menu_dirs"] = []string{
				filepath.Join(dataHome, "applications"),
				"/usr/share/applications",
			}
		} else {
			needs["data_dir"] = "HOME"
			needs["start_menu_dirs"] = "HOME"
		}
	}
	return defaults, needs
}

func startMenuPrograms(base string) string {
	return filepath.Join(base, "Microsoft", "Windows", "Start Menu", "Programs")
}

// resolve fills derived paths and makes them absolute
func (c *Config) resolve() error {
	var err error
	if c.DataDir, err = absPath(c.DataDir); err != nil {
		return err
	}
	if c.IndexPath == "" {
		c.IndexPath = filepath.Join(c.DataDir, indexFileName)
	}
	if c.HistoryPath == "" {
		c.HistoryPath = filepath.Join(c.DataDir, historyFileName)
	}
	if c.IndexPath, err = absPath(c.IndexPath); err != nil {
		return err
	}
	if c.HistoryPath, err = absPath(c.HistoryPath); err != nil {
		return err
	}
	if c.StartMenuDirs, err = absPaths(c.StartMenuDirs); err != nil {
		return err
	}
	if c.SearchPath, err = absPaths(c.SearchPath); err != nil {
		return err
	}

	c.Picker.Command = strings.TrimSpace(c.Picker.Command)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	return nil
}

// Validate checks the resolved configuration
func (c *Config) Validate() error {
	if err := application.ValidateAbsolutePath("dataDir", c.DataDir); err != nil {
		return err
	}
	if err := application.ValidateAbsolutePath("indexPath", c.IndexPath); err != nil {
		return err
	}
	if err := application.ValidateAbsolutePath("historyPath", c.HistoryPath); err != nil {
		return err
	}
	if err := application.ValidateRequired("picker", c.Picker.Command); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return &application.ValidationError{Field: "logLevel", Message: err.Error()}
	}
	return nil
}

// Level returns the configured log level
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Roots returns the discovery roots: start menu directories (recursive)
// followed by every search path directory (non-recursive).
func (c *Config) Roots() []domain.Root {
	roots := make([]domain.Root, 0, len(c.StartMenuDirs)+len(c.SearchPath))
	for _, dir := range c.StartMenuDirs {
		roots = append(roots, domain.Root{Dir: dir, Source: domain.SourceStartMenu, Recursive: true})
	}
	for _, dir := range c.SearchPath {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		roots = append(roots, domain.Root{Dir: dir, Source: domain.SourcePath})
	}
	return roots
}

// HistoryUsesSQLite reports whether the history path names a SQLite database
func (c *Config) HistoryUsesSQLite() bool {
	switch strings.ToLower(filepath.Ext(c.HistoryPath)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	default:
		return false
	}
}

func absPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}

// absPaths resolves every non-blank entry of paths and drops blank ones
func absPaths(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		abs, err := absPath(p)
		if err != nil {
			return nil, err
		}
		out = append(out, abs)
	}
	return out, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
