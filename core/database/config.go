package database

// Config holds the database connection settings. Host, Port, User and
// Password only apply to mysql.
type Config struct {
	Driver   string `mapstructure:"driver" default:"mysql"`
	Host     string `mapstructure:"host" default:"localhost"`
	Port     int    `mapstructure:"port" default:"3306"`
	User     string `mapstructure:"user" default:"root"`
	Password string `mapstructure:"password" default:""`
	// Name is the schema name for mysql and the file path for sqlite.
	Name string `mapstructure:"name" default:"inventory"`
	// TimeoutSeconds bounds the dial, each read and write, and the startup ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// AutoMigrate migrates the schema when the server starts.
	AutoMigrate bool `mapstructure:"auto_migrate" default:"false"`
}
