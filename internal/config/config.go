package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Store backend types.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

type Configuration struct {
	// Addr is the listen address of the HTTP server.
	Addr string
	// StoreBackend selects how collections are persisted: "json", "sqlite"
	// or "memory".
	StoreBackend string
	// DataDir is the root directory of the json store.
	DataDir string
	// DbUrl is the path to the sqlite database file used by the sqlite store.
	DbUrl string
	// MigrationsFolder holds the sqlite schema migrations.
	MigrationsFolder string
	// QueueDbUrl is the path to the sqlite database backing the notification
	// task queue.
	QueueDbUrl string
	// AvatarTemplate is the external avatar generation endpoint; the single
	// %s verb receives the URL-escaped display name.
	AvatarTemplate string
	// SessionKey signs the session cookies.
	SessionKey string
	// BcryptCost is the work factor applied when hashing credentials.
	BcryptCost int
	// Debug, if true, will make the application log all HTTP requests and
	// other events.
	Debug bool
}

func ReadConfig() (Configuration, error) {
	v := viper.New()
	v.SetConfigName("microblog")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/microblog")
	v.SetEnvPrefix("microblog")
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("storebackend", StoreJSON)
	v.SetDefault("datadir", "data")
	v.SetDefault("dburl", "microblog.db")
	v.SetDefault("migrationsfolder", "migrations")
	v.SetDefault("queuedburl", "queue.db")
	v.SetDefault("avatartemplate", "https://ui-avatars.com/api/?name=%s&background=a855f7&color=fff&size=200")
	v.SetDefault("sessionkey", "u46IpCV9y5Vlur8YvODJEhgOY8m9JVE4")
	v.SetDefault("bcryptcost", 10)
	v.SetDefault("debug", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Configuration{}, err
		}
	}

	var c Configuration
	err := v.Unmarshal(&c)
	return c, err
}
