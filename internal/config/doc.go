// Package config provides configuration loading, merging, and validation
// facilities for the ShopSphere backend.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables, optionally seeded from a .env file
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. Validation runs on the final
// merged configuration; missing secrets or external credentials are fatal at
// startup.
package config
