// Package config loads the flat measure.Config map a CLI invocation
// needs from a file on disk, via viper. It is an external collaborator:
// measure.Config itself is a plain map[string]string with no
// knowledge of any file format.
package config
