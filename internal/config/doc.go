// Package config provides configuration loading, merging, and validation
// facilities for the LMS client.
//
// Configuration is assembled from multiple sources; for every field the
// first source providing a non-zero value wins:
//  1. Environment variables (a .env file is loaded into the environment)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// On top of that the client reads two settings documents, the general
// settings (url_api, api_key) and the REST route table, into an immutable
// [Settings] value.
//
// The main entry point is [GetClientConfig].
package config
