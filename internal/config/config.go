package config

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
)

const defaultConnectionString = "Host=localhost;Port=5432;Database=bytebank_db;Username=postgres;Password=postgres;Timeout=30;CommandTimeout=30"
const defaultHTTPAddr = ":8080"
const defaultChannelID = "BytebankApp"
const defaultChannelKey = "BytebankKey001"
const defaultMigrationsDir = "migrations"

type Config struct {
	DatabaseDSN    string
	MigrationsDir  string
	HTTPAddr       string
	ChannelID      string
	ChannelKeyHash string
	ClosePolicy    domain.ClosePolicy
}

func Load() (Config, error) {
	conn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if conn == "" {
		conn = defaultConnectionString
	}

	migrationsDir := strings.TrimSpace(os.Getenv("MIGRATIONS_DIR"))
	if migrationsDir == "" {
		migrationsDir = defaultMigrationsDir
	}

	httpAddr := strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if httpAddr == "" {
		httpAddr = defaultHTTPAddr
	}

	channelID := strings.TrimSpace(os.Getenv("CHANNEL_ID"))
	if channelID == "" {
		channelID = defaultChannelID
	}

	// The channel key may be supplied pre-hashed; a plaintext key is hashed
	// at startup so the middleware only ever holds the bcrypt digest.
	channelKeyHash := strings.TrimSpace(os.Getenv("CHANNEL_KEY_HASH"))
	if channelKeyHash == "" {
		channelKey := strings.TrimSpace(os.Getenv("CHANNEL_KEY"))
		if channelKey == "" {
			channelKey = defaultChannelKey
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(channelKey), bcrypt.DefaultCost)
		if err != nil {
			return Config{}, fmt.Errorf("hash channel key: %w", err)
		}
		channelKeyHash = string(hashed)
	}

	closePolicy, err := domain.ParseClosePolicy(os.Getenv("CLOSE_POLICY"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CLOSE_POLICY: %w", err)
	}

	return Config{
		DatabaseDSN:    normalizeConnectionString(conn),
		MigrationsDir:  migrationsDir,
		HTTPAddr:       httpAddr,
		ChannelID:      channelID,
		ChannelKeyHash: channelKeyHash,
		ClosePolicy:    closePolicy,
	}, nil
}

func normalizeConnectionString(raw string) string {
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
