/*
File    : exprscript/std/hashing.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - hashing.go
// Hashing standard functions, generalizing the teacher's std/crypto.go
// (md5/sha1/sha256 hex digests) to the value.Value domain.
package std

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"hash/crc32"

	"github.com/akashmaji946/exprscript/state"
	"github.com/akashmaji946/exprscript/value"
)

func hashHex(s string, sum func([]byte) []byte) string {
	return hex.EncodeToString(sum([]byte(s)))
}

func hashingFuncs() []state.FuncEntry {
	hexDigest := func(name, doc string, sum func([]byte) []byte) state.FuncEntry {
		return state.FuncEntry{
			Name: name, Category: "Hashing", Doc: doc,
			Params:     []state.Param{{Name: "s", Type: value.TString}},
			ReturnType: value.TString,
			Handler:    func(st *state.State, args []value.Value) (value.Value, error) { return value.String(hashHex(args[0].AsString(), sum)), nil },
		}
	}

	return []state.FuncEntry{
		hexDigest("md5", "md5(s) returns the hex-encoded MD5 digest of s.", func(b []byte) []byte { s := md5.Sum(b); return s[:] }),
		hexDigest("sha1", "sha1(s) returns the hex-encoded SHA-1 digest of s.", func(b []byte) []byte { s := sha1.Sum(b); return s[:] }),
		hexDigest("sha256", "sha256(s) returns the hex-encoded SHA-256 digest of s.", func(b []byte) []byte { s := sha256.Sum256(b); return s[:] }),
		{
			Name: "crc32", Category: "Hashing",
			Doc:        "crc32(s) returns the IEEE CRC-32 checksum of s as an unsigned 32-bit integer.",
			Params:     []state.Param{{Name: "s", Type: value.TString}},
			ReturnType: value.TUint32,
			Handler: func(st *state.State, args []value.Value) (value.Value, error) {
				return value.Uint32(crc32.ChecksumIEEE([]byte(args[0].AsString()))), nil
			},
		},
	}
}
