// Package scan walks an installation root and collects the raw metadata file
// of every installed package. Anomalies in a single package (no packageinfo
// directory, no metadata file, unreadable file) are logged and returned as
// diagnostics; they never stop the scan of the remaining packages.
package scan
