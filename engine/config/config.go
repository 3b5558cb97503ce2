/*
File    : exprscript/engine/config/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package config loads engine.Options from a TOML file, for hosts that want
// file-based configuration instead of constructing Options programmatically
// (§6's "[ADDED] Config loading"). Grounded on dekarrin-tunaq's
// BurntSushi/toml use (internal/tqw/tqw.go's toml.Unmarshal) for the
// decode-into-tagged-struct idiom.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// File mirrors engine.Options' fields under their TOML key names. It is a
// separate type rather than tags on engine.Options itself so engine never
// has to import this package (config depends on engine's shape, not the
// other way around).
type File struct {
	TimeoutMS      int64 `toml:"timeout_ms"`
	ParseCallLimit int   `toml:"parse_call_limit"`
	StackLimit     int   `toml:"stack_limit"`
	LoadStdlib     bool  `toml:"load_stdlib"`
}

// Load parses path as TOML into a File.
func Load(path string) (File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	return f, nil
}

// Timeout converts TimeoutMS to a time.Duration for engine.Options.Timeout.
func (f File) Timeout() time.Duration {
	return time.Duration(f.TimeoutMS) * time.Millisecond
}
