package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Timezone       string   `mapstructure:"timezone"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsDebug reports whether the server runs in gin debug mode.
func (s *ServerConfig) IsDebug() bool {
	return s.Mode == "debug"
}

type MigrationConfig struct {
	// Strategy is one of "goose", "golang_migrate" or "auto".
	Strategy string `mapstructure:"strategy"`
}

type DatabaseConfig struct {
	// Driver is "mysql" or "sqlite".
	Driver          string          `mapstructure:"driver"`
	Host            string          `mapstructure:"host"`
	Port            int             `mapstructure:"port"`
	Username        string          `mapstructure:"username"`
	Password        string          `mapstructure:"password"`
	Database        string          `mapstructure:"database"`
	Path            string          `mapstructure:"path"`
	MaxIdleConns    int             `mapstructure:"max_idle_conns"`
	MaxOpenConns    int             `mapstructure:"max_open_conns"`
	ConnMaxLifetime int             `mapstructure:"conn_max_lifetime"`
	Migration       MigrationConfig `mapstructure:"migration"`
}

// GetDSN builds the MySQL DSN. clientFoundRows makes UPDATE report matched
// rather than changed rows, which the not-found checks rely on.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=Local&clientFoundRows=true",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

// GetMigrationDSN is GetDSN with multiStatements enabled for script runners.
func (d *DatabaseConfig) GetMigrationDSN() string {
	return d.GetDSN() + "&multiStatements=true"
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	// PasswordScheme is "md5" (legacy stored hashes) or "bcrypt".
	PasswordScheme string    `mapstructure:"password_scheme"`
	BcryptCost     int       `mapstructure:"bcrypt_cost"`
	JWT            JWTConfig `mapstructure:"jwt"`
}

type RedisConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Password        string `mapstructure:"password"`
	DB              int    `mapstructure:"db"`
	StatsTTLSeconds int    `mapstructure:"stats_ttl_seconds"`
	// LoginPerMinute caps login attempts per client IP. Zero disables it.
	LoginPerMinute  int    `mapstructure:"login_per_minute"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

// Enabled reports whether an SMTP relay is configured.
func (e *EmailConfig) Enabled() bool {
	return e.SMTPHost != ""
}

type StorageConfig struct {
	UploadDir   string `mapstructure:"upload_dir"`
	MaxUploadMB int    `mapstructure:"max_upload_mb"`
}
