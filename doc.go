// Package machineid generates Steam machine IDs. Machine IDs are most
// commonly supplied to Steam when logging in, as an opaque binary field of
// the logon request.
//
// # Zero Dependencies
//
// The library relies exclusively on the Go standard library. The only
// third-party module in go.mod is a test dependency.
//
// # Overview
//
// A machine ID is a triple of SHA1-derived hash values, one per field label
// (BB3, FF2, 3B3), packed into a fixed 155-byte tagged key/value object.
// Each value is stored as 40 uppercase hexadecimal characters. Three
// derivation modes exist:
//
//   - [Random] — each value hashes fresh random entropy
//   - [FromAccountName] — values derive deterministically from an account name
//   - [FromCustomFormat] — one caller-supplied string per field
//
// # Quick Start
//
//	id, err := machineid.FromAccountName("accountname")
//	if err != nil {
//		return err
//	}
//	login.MachineID = id.ToMessage()
//
// # Wire Format
//
// [MachineID.ToMessage] produces exactly 155 bytes: an object-start marker,
// the null-terminated type name "MessageObject", three tagged byte-string
// fields (type tag 0x01, null-terminated field name, 40 hex bytes, null
// terminator), and two 0x08 end-of-object markers. The layout is documented
// byte-by-byte on ToMessage.
//
// # Display Format
//
// [MachineID.String] renders "BB3.<hex>:FF2.<hex>:3B3.<hex>" with 40
// uppercase hex characters per field, matching the form Steam surfaces in
// diagnostics.
//
// # Not a Security Primitive
//
// SHA1 here is a stable fingerprint, not a cryptographic commitment. The
// random mode hashes the decimal string of a float32 in [0,1), giving only
// about 2^24 distinct values per field. Do not use machine IDs for
// authentication decisions beyond what Steam itself requires.
//
// # Input Validation
//
// Account names and custom values containing a null byte are rejected with
// [ErrEmbeddedNull] (wrapped in an [InputError] naming the input), because
// the wire format cannot escape nulls. Once constructed, a [MachineID] is
// immutable and its ToMessage and String methods cannot fail.
//
// # Thread Safety
//
// MachineID is a plain value type. A [Generator] is safe for concurrent use
// after configuration is complete; the default random source is the
// process-wide math/rand source, which is goroutine-safe.
//
// # Testing
//
// Inject a custom [RandomSource] via [Generator.WithRandomSource] to make
// the random derivation path deterministic:
//
//	gen := machineid.New().WithRandomSource(mySeededSource)
//	id := gen.Random()
//
// # Installation
//
// To use the library in your Go project:
//
//	go get github.com/slashdevops/steam-machineid
//
// To install the CLI tool:
//
//	go install github.com/slashdevops/steam-machineid/cmd/steam-machineid@latest
//
// # CLI Tool
//
// A ready-to-use command-line tool is provided in cmd/steam-machineid:
//
//	steam-machineid
//	steam-machineid -account myaccount
//	steam-machineid -account myaccount -message
//	steam-machineid -custom "one,two,three" -json
//	steam-machineid -version
package machineid
