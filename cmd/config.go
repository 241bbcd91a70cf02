package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "notes"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName      = "output"
	noSaveFlagName      = "no-save"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"
	runParallelFlagName = "parallel"
	viewIDFlagName      = "id"

	runParallelConfigKey = "run.parallel"

	defaultReportsDir  = ".notes-reports"
	defaultNoSave      = false
	defaultRunParallel = 1

	envPrefix = "NOTES"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".notes.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var (
	globalLogger *slog.Logger

	// configLoadErr holds a notes.yaml that exists but could not be read.
	// It is reported once the logger is up.
	configLoadErr error
)

func init() {
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	setConfigDefaults()

	configLoadErr = loadConfigFile()
}

func setConfigDefaults() {
	defaults := map[string]any{
		configVersionKey:     currentConfigVersion,
		outputFlagName:       defaultReportsDir,
		noSaveFlagName:       defaultNoSave,
		runParallelConfigKey: defaultRunParallel,
		logFilenameKey:       defaultLogFilename,
		logLevelKey:          defaultLogLevel,
		logVerboseKey:        defaultLogVerbose,
		logMaxSizeKey:        defaultLogMaxSize,
		logMaxBackupsKey:     defaultLogMaxBackups,
		logMaxAgeKey:         defaultLogMaxAge,
		logCompressKey:       defaultLogCompress,
	}

	for key, value := range defaults {
		viper.SetDefault(key, value)
	}
}

// loadConfigFile merges notes.yaml into viper. Running without a config file
// is normal; anything else is returned.
func loadConfigFile() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("failed to read %s: %w", viper.ConfigFileUsed(), err)
}

// warnConfigLoadError reports a broken config file on stderr and in the log.
// Defaults and environment values stay in effect.
func warnConfigLoadError(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}

	slog.Warn("Ignoring config file", "error", err)
	cmd.PrintErrf("warning: %v; using defaults\n", err)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// numeric levels, -4 is debug
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger points the default slog logger at a rotated log file.
// verbose forces debug level.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
