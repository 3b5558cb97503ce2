/*
File    : exprscript/engine/config/config_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.toml")
	assert.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_DecodesAllFields(t *testing.T) {
	path := writeConfig(t, `
timeout_ms = 500
parse_call_limit = 10000
stack_limit = 256
load_stdlib = true
`)

	f, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, int64(500), f.TimeoutMS)
	assert.Equal(t, 10000, f.ParseCallLimit)
	assert.Equal(t, 256, f.StackLimit)
	assert.True(t, f.LoadStdlib)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Error(t, err)
}

func TestLoad_MalformedTomlErrors(t *testing.T) {
	path := writeConfig(t, `this is not = = valid toml`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestFile_TimeoutConvertsMillisecondsToDuration(t *testing.T) {
	f := File{TimeoutMS: 1500}
	assert.Equal(t, 1500*time.Millisecond, f.Timeout())
}

func TestFile_ZeroTimeoutMSYieldsZeroDuration(t *testing.T) {
	f := File{}
	assert.Equal(t, time.Duration(0), f.Timeout())
}
