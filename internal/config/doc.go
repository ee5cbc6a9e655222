// Package config provides configuration loading, merging, and validation
// facilities for the CMS server and the admin client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables (a .env file is loaded first without overriding)
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetServerConfig] for the server and
// [GetClientConfig] for the admin client.
package config
