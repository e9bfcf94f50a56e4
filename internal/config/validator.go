package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists environment variables required by every store driver
var RequiredEnvVars = []string{
	EnvSchemaVersion,
	EnvStoreDriver,
}

// DriverEnvVars lists the extra variables each store driver needs
var DriverEnvVars = map[string][]string{
	StoreDriverMemory:   nil,
	StoreDriverFile:     {EnvSaveFile},
	StoreDriverSQLite:   {EnvSQLitePath},
	StoreDriverPostgres: {EnvDBUser, EnvDBPassword, EnvDBHost, EnvDBPort, EnvDBName},
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	driver := os.Getenv(EnvStoreDriver)
	if driver != "" {
		extra, ok := DriverEnvVars[driver]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownStoreDriver, driver)
		}
		for _, envVar := range extra {
			if os.Getenv(envVar) == "" {
				missing = append(missing, envVar)
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv(EnvStoreDriver) == StoreDriverPostgres && os.Getenv(EnvDBPassword) == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv(EnvAPIKey) == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if os.Getenv(EnvAPIKey) == "" {
		warnings = append(warnings, "API_KEY is not set - the daycare API is open to anyone who can reach it")
	}

	return warnings, nil
}
