// Package config loads runtime settings for the Booka CLI from, in order of
// increasing precedence: built-in defaults, the environment (with optional
// .env file), an optional JSON config file (-c/-config), and command-line
// flags.
package config
