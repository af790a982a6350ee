package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (pgx or sqlite3)
//	-max-open-conns database pool size
//	-c/-config json file path with configs
//	-version application version
//	-log-level minimum log level
//	-password-hash-cost bcrypt cost
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("course-catalog", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, driver string
	var maxOpenConns int
	var jsonConfigPath string
	var version, logLevel string
	var passwordHashCost int
	var requestTimeout, shutdownTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "Database driver (pgx or sqlite3)")
	fs.IntVar(&maxOpenConns, "max-open-conns", 0, "Database connection pool size")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&version, "version", "", "Application version")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.IntVar(&passwordHashCost, "password-hash-cost", 0, "bcrypt cost for password hashing")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:          version,
			LogLevel:         logLevel,
			PasswordHashCost: passwordHashCost,
		},
		Storage: Storage{
			DB: DB{
				Driver:       driver,
				DSN:          databaseDSN,
				MaxOpenConns: maxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address yields an empty string so it does not override other
// sources during merging.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces; otherwise it must be "localhost" or a
// valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
