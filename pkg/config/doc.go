// Package config loads tsscaffold's settings.
//
// Settings are layered with koanf, later layers overriding earlier ones:
//
//  1. the embedded defaults.toml
//  2. an optional .tsscaffold.toml in the project root
//  3. TSSCAFFOLD_<SECTION>__<KEY> environment variables
//  4. command-line flags the user set explicitly
//
// With no config file and no environment the defaults reproduce the plain
// scaffold behaviour.
package config
