package internal

import (
	"cmp"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	defHost           = "0.0.0.0"
	defPort           = 3000
	defDataDir        = "data"
	defMigrationsPath = "migrations"
	defIDPolicy       = "length"
	defDebug          = false
	defMemory         = false
)

type Config struct {
	Host        string `json:"host" yaml:"host"`
	Port        int    `json:"port" yaml:"port"`
	DataDir     string `json:"data_dir" yaml:"data_dir"`
	DNS         string `json:"dns" yaml:"dns"`
	MigratePath string `json:"migrate_path" yaml:"migrate_path"`
	SQLitePath  string `json:"sqlite_path" yaml:"sqlite_path"`
	Memory      bool   `json:"memory" yaml:"memory"`
	IDPolicy    string `json:"id_policy" yaml:"id_policy"`
	Debug       bool   `json:"debug" yaml:"debug"`
}

type Flags struct {
	ConfigPath  string
	Host        string
	Port        int
	DataDir     string
	DNS         string
	MigratePath string
	SQLitePath  string
	Memory      bool
	IDPolicy    string
	Debug       bool
}

// Дефолты не указывал, так как заданы отдельно.
func parseFlags(fs *flag.FlagSet, args []string) Flags {
	var flags Flags

	fs.StringVar(&flags.ConfigPath, "c", "", "Path to config file (json or yaml)")
	fs.StringVar(&flags.Host, "host", "", "Server host")
	fs.IntVar(&flags.Port, "port", 0, "Server port")
	fs.StringVar(&flags.DataDir, "data-dir", "", "Directory for users.json, tags.json and tasks.json")
	fs.StringVar(&flags.DNS, "dns", "", "Postgres connection string, enables the postgres store")
	fs.StringVar(&flags.MigratePath, "migrate-path", "", "Path to migrations folder")
	fs.StringVar(&flags.SQLitePath, "sqlite", "", "Path to sqlite database, enables the sqlite store")
	fs.BoolVar(&flags.Memory, "memory", false, "Keep collections in memory only")
	fs.StringVar(&flags.IDPolicy, "id-policy", "", "Id assignment: length (len+1) or max (max+1)")
	fs.BoolVar(&flags.Debug, "debug", false, "Debug mode")

	_ = fs.Parse(args)

	return flags
}

func configFromFlags(flags *Flags) Config {
	return Config{
		Host:        flags.Host,
		Port:        flags.Port,
		DataDir:     flags.DataDir,
		DNS:         flags.DNS,
		MigratePath: flags.MigratePath,
		SQLitePath:  flags.SQLitePath,
		Memory:      flags.Memory,
		IDPolicy:    flags.IDPolicy,
		Debug:       flags.Debug,
	}
}

func configFromEnv() Config {
	cfg := Config{}

	cfg.Host = os.Getenv("HOST")
	cfg.Port, _ = strconv.Atoi(os.Getenv("PORT"))
	cfg.DataDir = os.Getenv("DATA_DIR")
	cfg.DNS = os.Getenv("DB_DNS")
	cfg.MigratePath = os.Getenv("MIGRATE_PATH")
	cfg.SQLitePath = os.Getenv("SQLITE_PATH")
	cfg.Memory, _ = strconv.ParseBool(os.Getenv("MEMORY"))
	cfg.IDPolicy = os.Getenv("ID_POLICY")
	cfg.Debug, _ = strconv.ParseBool(os.Getenv("DEBUG"))

	return cfg
}

func configFromFile(path string) Config {
	cfg := Config{}

	if path == "" {
		log.Info().Msg("Config file path is empty")
		return cfg
	}

	data, err := os.ReadFile(path)

	if err != nil {
		log.Info().Err(err).Msg("Config file read failed")
		return cfg
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		log.Info().Err(err).Msg("Config file unmarshal failed")
		return Config{}
	}

	return cfg
}

func defaultConfig() Config {
	return Config{
		Host:        defHost,
		Port:        defPort,
		DataDir:     defDataDir,
		MigratePath: defMigrationsPath,
		Memory:      defMemory,
		IDPolicy:    defIDPolicy,
		Debug:       defDebug,
	}
}

// ReadConfig - чтение конфига приложения: флаги, затем окружение, файл и дефолты.
func ReadConfig() Config {
	return readConfig(flag.CommandLine, os.Args[1:])
}

// cmp.Or возвращает первое ненулевое значение, поэтому булевы флаги нельзя выключить уровнем ниже.
func readConfig(fs *flag.FlagSet, args []string) Config {
	flags := parseFlags(fs, args)

	return mergeConfigs(
		configFromFlags(&flags),
		configFromEnv(),
		configFromFile(flags.ConfigPath),
		defaultConfig(),
	)
}

func mergeConfigs(flagCfg, envCfg, fileCfg, defCfg Config) Config {
	config := Config{}

	config.Host = cmp.Or(flagCfg.Host, envCfg.Host, fileCfg.Host, defCfg.Host)
	config.Port = cmp.Or(flagCfg.Port, envCfg.Port, fileCfg.Port, defCfg.Port)
	config.DataDir = cmp.Or(flagCfg.DataDir, envCfg.DataDir, fileCfg.DataDir, defCfg.DataDir)
	config.DNS = cmp.Or(flagCfg.DNS, envCfg.DNS, fileCfg.DNS, defCfg.DNS)
	config.MigratePath = cmp.Or(flagCfg.MigratePath, envCfg.MigratePath, fileCfg.MigratePath, defCfg.MigratePath)
	config.SQLitePath = cmp.Or(flagCfg.SQLitePath, envCfg.SQLitePath, fileCfg.SQLitePath, defCfg.SQLitePath)
	config.Memory = cmp.Or(flagCfg.Memory, envCfg.Memory, fileCfg.Memory, defCfg.Memory)
	config.IDPolicy = cmp.Or(flagCfg.IDPolicy, envCfg.IDPolicy, fileCfg.IDPolicy, defCfg.IDPolicy)
	config.Debug = cmp.Or(flagCfg.Debug, envCfg.Debug, fileCfg.Debug, defCfg.Debug)

	return config
}
