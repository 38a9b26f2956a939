// Package config manages user-level settings stored at ~/.simpkg/config.yaml.
// Values can also come from SIMPKG_* environment variables, e.g. SIMPKG_HOME
// for the installation root and SIMPKG_LOG_LEVEL for log verbosity.
package config
