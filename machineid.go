package machineid

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
)

// HashValueLength is the byte length of a hex-encoded SHA1 hash value.
const HashValueLength = 40

// HashValue is one derived hash value: a 20-byte SHA1 digest stored as
// 40 uppercase hexadecimal ASCII bytes. The length is fixed; a HashValue
// never carries a null terminator itself.
type HashValue [HashValueLength]byte

// Field labels naming the three slots of the encoded message object.
const (
	labelBB3 = "BB3"
	labelFF2 = "FF2"
	label3B3 = "3B3"
)

// Input names recorded in [InputError] when a caller-supplied string is
// rejected.
const (
	InputAccountName = "accountName"
	InputBB3         = labelBB3
	InputFF2         = labelFF2
	Input3B3         = label3B3
)

// MachineID is a Steam machine ID: an immutable triple of hash values, one
// per field label. MachineID is a plain value type, comparable with ==;
// equality is byte-for-byte on all three fields.
type MachineID struct {
	// ValueBB3 is the BB3 hash value, hexadecimal encoded.
	ValueBB3 HashValue
	// ValueFF2 is the FF2 hash value, hexadecimal encoded.
	ValueFF2 HashValue
	// Value3B3 is the 3B3 hash value, hexadecimal encoded.
	Value3B3 HashValue
}

// RandomSource supplies the floating-point samples consumed by
// [Generator.Random], allowing for dependency injection and testing.
type RandomSource interface {
	Float32() float32
}

// systemRandomSource implements RandomSource using the process-wide
// math/rand source, which is safe for concurrent use.
type systemRandomSource struct{}

func (systemRandomSource) Float32() float32 {
	return rand.Float32()
}

// Generator configures and constructs machine IDs.
// A Generator is safe for concurrent use after configuration is complete,
// provided its RandomSource is.
type Generator struct {
	random RandomSource
	logger *slog.Logger
}

// New creates a new Generator with default settings.
// The generator draws from the process-wide random source by default.
func New() *Generator {
	return &Generator{
		random: systemRandomSource{},
	}
}

// WithRandomSource sets a custom [RandomSource], enabling deterministic
// testing of the random derivation path without altering production behavior.
func (g *Generator) WithRandomSource(random RandomSource) *Generator {
	g.random = random

	return g
}

// WithLogger sets an optional [*slog.Logger] for observability.
// When set, the generator logs which derivation mode produced an ID and any
// rejected inputs. A nil logger (the default) disables all logging with zero
// overhead. Derived hash values are only ever logged at debug level.
func (g *Generator) WithLogger(logger *slog.Logger) *Generator {
	g.logger = logger

	return g
}

// Random creates a machine ID whose three hash values are each derived
// independently from fresh random entropy.
//
// Each value hashes the decimal string of a random float32 in [0,1), so the
// entropy per value is roughly 2^24 distinct inputs. This matches the format
// Steam expects but is a fingerprint, not a security primitive.
func (g *Generator) Random() MachineID {
	id := MachineID{
		ValueBB3: randomHashValue(g.random),
		ValueFF2: randomHashValue(g.random),
		Value3B3: randomHashValue(g.random),
	}

	g.logDebug("derived machine ID", "mode", "random", "id", id.String())

	return id
}

// FromAccountName creates a machine ID derived from the given account name.
// The derivation is deterministic: the same account name always yields the
// same machine ID.
//
// Returns [ErrEmbeddedNull] wrapped in an [InputError] if accountName
// contains a null byte.
func (g *Generator) FromAccountName(accountName string) (MachineID, error) {
	if err := checkInput(InputAccountName, accountName); err != nil {
		g.logWarn("rejected account name", "error", err)

		return MachineID{}, err
	}

	id := MachineID{
		ValueBB3: accountNameHashValue(labelBB3, accountName),
		ValueFF2: accountNameHashValue(labelFF2, accountName),
		Value3B3: accountNameHashValue(label3B3, accountName),
	}

	g.logDebug("derived machine ID", "mode", "accountName", "id", id.String())

	return id, nil
}

// FromCustomFormat creates a machine ID by hashing one caller-supplied
// string per field. The strings can be anything, but should generally follow
// the account-name format:
//
//	id, err := machineid.FromCustomFormat(
//		fmt.Sprintf("SteamUser Hash BB3 %s", accountName),
//		fmt.Sprintf("SteamUser Hash FF2 %s", accountName),
//		fmt.Sprintf("SteamUser Hash 3B3 %s", accountName),
//	)
//
// Returns [ErrEmbeddedNull] wrapped in an [InputError] naming the offending
// field if any of the strings contains a null byte.
func (g *Generator) FromCustomFormat(valueBB3, valueFF2, value3B3 string) (MachineID, error) {
	inputs := []struct {
		name  string
		value string
	}{
		{InputBB3, valueBB3},
		{InputFF2, valueFF2},
		{Input3B3, value3B3},
	}

	for _, input := range inputs {
		if err := checkInput(input.name, input.value); err != nil {
			g.logWarn("rejected custom value", "error", err)

			return MachineID{}, err
		}
	}

	id := MachineID{
		ValueBB3: customHashValue(valueBB3),
		ValueFF2: customHashValue(valueFF2),
		Value3B3: customHashValue(value3B3),
	}

	g.logDebug("derived machine ID", "mode", "customFormat", "id", id.String())

	return id, nil
}

// Random creates a random machine ID using the process-wide random source.
func Random() MachineID {
	return New().Random()
}

// FromAccountName creates a machine ID from the given account name.
func FromAccountName(accountName string) (MachineID, error) {
	return New().FromAccountName(accountName)
}

// FromCustomFormat creates a machine ID from one caller-supplied string per
// field.
func FromCustomFormat(valueBB3, valueFF2, value3B3 string) (MachineID, error) {
	return New().FromCustomFormat(valueBB3, valueFF2, value3B3)
}

// String renders the machine ID as "BB3.<hex>:FF2.<hex>:3B3.<hex>" with
// 40 uppercase hex characters per field.
func (id MachineID) String() string {
	return fmt.Sprintf("%s.%s:%s.%s:%s.%s",
		labelBB3, id.ValueBB3[:],
		labelFF2, id.ValueFF2[:],
		label3B3, id.Value3B3[:],
	)
}

// checkInput rejects caller-supplied strings containing an embedded null
// byte. Validation happens here, at the construction boundary; once a
// MachineID exists, encoding is infallible.
func checkInput(name, value string) error {
	if strings.IndexByte(value, 0) >= 0 {
		return &InputError{Input: name, Err: ErrEmbeddedNull}
	}

	return nil
}

// logDebug logs at debug level if a logger is configured.
func (g *Generator) logDebug(msg string, args ...any) {
	if g.logger != nil {
		g.logger.Debug(msg, args...)
	}
}

// logWarn logs at warn level if a logger is configured.
func (g *Generator) logWarn(msg string, args ...any) {
	if g.logger != nil {
		g.logger.Warn(msg, args...)
	}
}
