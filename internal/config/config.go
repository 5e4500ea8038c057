package config // package config loads application configuration from environment variables

import (
    "log"     // log reports when insecure defaults are in use
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations
// and costs.
type Config struct {
    Env            string // application environment (e.g. "dev", "prod")
    Port           string // HTTP port to listen on
    DBUser         string // database username
    DBPass         string // database password (optional)
    DBHost         string // database host address
    DBPort         string // database port number
    DBName         string // database name
    AccessSecret   string // secret used to sign access tokens
    RefreshSecret  string // secret used to sign refresh tokens
    AccessTTLHours int    // access token time-to-live in hours
    RefreshTTLDays int    // refresh token time-to-live in days
    BcryptCost     int    // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables and returns a
// Config.  Every variable has a development default so the server can boot
// on a fresh checkout; the token secrets in particular must be overridden
// before the service faces real traffic.  A warning is logged whenever a
// signing secret falls back to its built-in value.
func Load() Config {
    cfg := Config{
        Env:            getenv("APP_ENV", "dev"),
        Port:           getenv("APP_PORT", "3000"),
        DBUser:         getenv("DB_USER", "root"),
        DBPass:         os.Getenv("DB_PASS"), // empty password allowed
        DBHost:         getenv("DB_HOST", "localhost"),
        DBPort:         getenv("DB_PORT", "3306"),
        DBName:         getenv("DB_NAME", "movie_booking"),
        AccessSecret:   getenv("JWT_ACCESS_SECRET", "dev-access-secret"),
        RefreshSecret:  getenv("JWT_REFRESH_SECRET", "dev-refresh-secret"),
        AccessTTLHours: getenvInt("ACCESS_TOKEN_TTL_HOURS", 24),
        RefreshTTLDays: getenvInt("REFRESH_TOKEN_TTL_DAYS", 7),
        BcryptCost:     getenvInt("BCRYPT_COST", 10),
    }
    if os.Getenv("JWT_ACCESS_SECRET") == "" || os.Getenv("JWT_REFRESH_SECRET") == "" {
        log.Printf("config: using built-in JWT secrets; set JWT_ACCESS_SECRET and JWT_REFRESH_SECRET outside development")
    }
    return cfg
}

// getenvInt is like getenv but converts the value to an integer.  Invalid
// values fall back to the default rather than halting startup.
func getenvInt(key string, def int) int {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    n, err := strconv.Atoi(v)
    if err != nil {
        log.Printf("config: invalid int for %s: %q, using %d", key, v, def)
        return def
    }
    return n
}
