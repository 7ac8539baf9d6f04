// Package config holds description length guidelines and the settings file
// they are loaded from.
//
// Settings files may be YAML, JSON or TOML, chosen by file extension:
//
//	guidelines:
//	  search:    {lower: 45, good_lower: 80, good_upper: 160, upper: 320}
//	  opengraph: {lower: 45, good_lower: 80, good_upper: 200, upper: 300}
//	  twitter:   {lower: 45, good_lower: 80, good_upper: 200, upper: 200}
//	suffix: "..."
//
// A Watcher reloads the file when it changes. LoadEnv reads a .env file into
// the process environment before settings are resolved.
package config
