package conf

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/env"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/google/wire"
	"github.com/joho/godotenv"

	_ "github.com/go-kratos/kratos/v2/encoding/yaml"
)

// CodeCharset lists every character a short code may contain. Alphabets are
// restricted to it so any issued code is routable.
const CodeCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_-"

// EnvPrefix scopes the environment variables visible to config placeholders.
const EnvPrefix = "SHORTENER_"

// ProviderSet exposes each config section to wire.
var ProviderSet = wire.NewSet(wire.FieldsOf(new(*Bootstrap), "Server", "Data", "Shortcode", "Analytics", "Log"))

type Bootstrap struct {
	Server    *Server    `json:"server"`
	Data      *Data      `json:"data"`
	Shortcode *Shortcode `json:"shortcode"`
	Analytics *Analytics `json:"analytics"`
	Log       *Log       `json:"log"`
}

type Server struct {
	HTTP        *HTTP    `json:"http"`
	BaseURL     string   `json:"base_url"`
	RateLimit   int      `json:"rate_limit"`
	CORSOrigins []string `json:"cors_origins"`
}

type HTTP struct {
	Network string   `json:"network"`
	Addr    string   `json:"addr"`
	Timeout Duration `json:"timeout"`
}

type Data struct {
	Database *Database `json:"database"`
	Redis    *Redis    `json:"redis"`
}

type Database struct {
	// Driver is "sqlite" or "postgres".
	Driver      string `json:"driver"`
	Source      string `json:"source"`
	AutoMigrate bool   `json:"auto_migrate"`
}

// Redis is optional; an empty Addr disables the lookup cache.
type Redis struct {
	Addr         string   `json:"addr"`
	Password     string   `json:"password"`
	DB           int      `json:"db"`
	ReadTimeout  Duration `json:"read_timeout"`
	WriteTimeout Duration `json:"write_timeout"`
	CacheTTL     Duration `json:"cache_ttl"`
}

type Shortcode struct {
	Alphabet      string   `json:"alphabet"`
	Length        int      `json:"length"`
	MaxAttempts   int      `json:"max_attempts"`
	Retention     Duration `json:"retention"`
	PurgeSchedule string   `json:"purge_schedule"`
}

type Analytics struct {
	GeoIPPath string `json:"geoip_path"`
	// Pipeline is "direct" or "bus".
	Pipeline string `json:"pipeline"`
}

type Log struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// Duration decodes "1.5s"-style strings as well as raw nanoseconds.
type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case string:
		if value == "" {
			*d = 0
			return nil
		}
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		*d = Duration(parsed)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
	return nil
}

// Load reads an optional .env file, then the config file or directory at path.
// Values may reference SHORTENER_* environment variables as ${NAME:default}.
func Load(path string) (*Bootstrap, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	c := config.New(
		config.WithSource(
			file.NewSource(path),
			env.NewSource(EnvPrefix),
		),
		config.WithResolveActualTypes(true),
	)
	defer c.Close()

	if err := c.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	bc := Default()
	if err := c.Scan(bc); err != nil {
		return nil, fmt.Errorf("scan config: %w", err)
	}
	if err := bc.Validate(); err != nil {
		return nil, err
	}
	return bc, nil
}

// Default returns the configuration used for any value the file leaves out.
func Default() *Bootstrap {
	return &Bootstrap{
		Server: &Server{
			HTTP: &HTTP{
				Network: "tcp",
				Addr:    "0.0.0.0:8080",
				Timeout: Duration(5 * time.Second),
			},
			BaseURL:     "http://localhost:8080",
			RateLimit:   100,
			CORSOrigins: []string{"https://*", "http://*"},
		},
		Data: &Data{
			Database: &Database{
				Driver:      "sqlite",
				Source:      "data/shortlink.db",
				AutoMigrate: true,
			},
			Redis: &Redis{
				ReadTimeout:  Duration(200 * time.Millisecond),
				WriteTimeout: Duration(200 * time.Millisecond),
				CacheTTL:     Duration(10 * time.Minute),
			},
		},
		Shortcode: &Shortcode{
			Alphabet:      "0123456789abcdefghijklmnopqrstuvwxyz",
			Length:        6,
			MaxAttempts:   5,
			Retention:     Duration(30 * 24 * time.Hour),
			PurgeSchedule: "@hourly",
		},
		Analytics: &Analytics{
			Pipeline: "direct",
		},
		Log: &Log{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate rejects configurations the service cannot start with.
func (b *Bootstrap) Validate() error {
	if b.Server == nil || b.Server.HTTP == nil || b.Data == nil || b.Data.Database == nil ||
		b.Shortcode == nil || b.Analytics == nil || b.Log == nil {
		return errors.New("config: missing section")
	}
	switch b.Data.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("config: unsupported database driver %q", b.Data.Database.Driver)
	}
	switch b.Analytics.Pipeline {
	case "direct", "bus":
	default:
		return fmt.Errorf("config: unsupported analytics pipeline %q", b.Analytics.Pipeline)
	}
	if b.Shortcode.Length < 1 || b.Shortcode.Length > 32 {
		return fmt.Errorf("config: shortcode length must be 1-32, got %d", b.Shortcode.Length)
	}
	if err := validateAlphabet(b.Shortcode.Alphabet); err != nil {
		return err
	}
	if b.Shortcode.MaxAttempts < 1 {
		return fmt.Errorf("config: shortcode max_attempts must be positive, got %d", b.Shortcode.MaxAttempts)
	}
	if b.Server.RateLimit < 1 {
		return fmt.Errorf("config: rate_limit must be positive, got %d", b.Server.RateLimit)
	}
	return nil
}

func validateAlphabet(alphabet string) error {
	if len(alphabet) < 2 {
		return errors.New("config: shortcode alphabet needs at least two characters")
	}
	seen := make(map[byte]bool, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if !strings.ContainsRune(CodeCharset, rune(c)) {
			return fmt.Errorf("config: shortcode alphabet contains %q, allowed characters are %s", c, CodeCharset)
		}
		if seen[c] {
			return fmt.Errorf("config: shortcode alphabet repeats %q", c)
		}
		seen[c] = true
	}
	return nil
}
