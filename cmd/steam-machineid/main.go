package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	machineid "github.com/slashdevops/steam-machineid"
	"github.com/slashdevops/steam-machineid/internal/version"
)

const applicationName = "steam-machineid"

func main() {
	// Derivation mode flags
	account := flag.String("account", "", "Derive the machine ID from this account name")
	custom := flag.String("custom", "", "Derive from three comma-separated custom strings: <bb3>,<ff2>,<3b3>")

	// Output options
	message := flag.Bool("message", false, "Output the encoded 155-byte message object as hex")
	jsonOutput := flag.Bool("json", false, "Output result as JSON")

	// Info flags
	versionFlag := flag.Bool("version", false, "Show version information")
	versionLongFlag := flag.Bool("version.long", false, "Show detailed version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "steam-machineid - Generate Steam machine IDs for logon requests\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n  steam-machineid [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  steam-machineid                               Generate a random machine ID\n")
		fmt.Fprintf(os.Stderr, "  steam-machineid -account myaccount            Deterministic ID from account name\n")
		fmt.Fprintf(os.Stderr, "  steam-machineid -account myaccount -message   Hex dump of the binary message\n")
		fmt.Fprintf(os.Stderr, "  steam-machineid -custom \"a,b,c\" -json         Custom strings, JSON output\n")
		fmt.Fprintf(os.Stderr, "  steam-machineid -version                      Show version\n")
		fmt.Fprintf(os.Stderr, "  steam-machineid -version.long                 Show detailed version\n")
	}

	flag.Parse()

	// Handle version flag
	if *versionFlag {
		if version.Version == "0.0.0" {
			if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s version: %s\n", applicationName, info.Main.Version)
			} else {
				fmt.Printf("%s version: %s\n", applicationName, version.Version)
			}
		} else {
			fmt.Printf("%s version: %s\n", applicationName, version.Version)
		}

		os.Exit(0)
	}

	// Handle detailed version flag
	if *versionLongFlag {
		var sb strings.Builder

		if version.Version == "0.0.0" {
			if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Fprintf(&sb, "%s version: %s, ", applicationName, info.Main.Version)
				fmt.Fprintf(&sb, "Git commit: %s, ", info.Main.Sum)
				fmt.Fprintf(&sb, "Go version: %s\n", info.GoVersion)
			} else {
				fmt.Fprintf(&sb, "%s version: %s\n", applicationName, version.Version)
				fmt.Fprintf(&sb, "Build date: %s, ", version.BuildDate)
				fmt.Fprintf(&sb, "Build user: %s, ", version.BuildUser)
				fmt.Fprintf(&sb, "Git commit: %s, ", version.GitCommit)
				fmt.Fprintf(&sb, "Git branch: %s, ", version.GitBranch)
				fmt.Fprintf(&sb, "Go version: %s\n", version.GoVersion)
			}
		} else {
			fmt.Fprintf(&sb, "%s version: %s, ", applicationName, version.Version)
			fmt.Fprintf(&sb, "Build date: %s, ", version.BuildDate)
			fmt.Fprintf(&sb, "Build user: %s, ", version.BuildUser)
			fmt.Fprintf(&sb, "Git commit: %s, ", version.GitCommit)
			fmt.Fprintf(&sb, "Git branch: %s, ", version.GitBranch)
			fmt.Fprintf(&sb, "Go version: %s\n", version.GoVersion)
		}

		fmt.Print(sb.String())
		os.Exit(0)
	}

	if *account != "" && *custom != "" {
		slog.Error("flags -account and -custom are mutually exclusive")
		flag.Usage()
		os.Exit(1)
	}

	id, mode, err := generate(*account, *custom)
	if err != nil {
		slog.Error("failed to generate machine ID", "error", err)
		os.Exit(1)
	}

	// Output
	if *jsonOutput {
		output := map[string]any{
			"id":   id.String(),
			"mode": mode,
		}
		if *message {
			msg := id.ToMessage()
			output["message"] = hexDump(msg)
			output["length"] = len(msg)
		}
		printJSON(output)
		return
	}

	if *message {
		fmt.Println(hexDump(id.ToMessage()))
		return
	}

	fmt.Println(id)
}

// generate builds the machine ID for the selected derivation mode and
// reports which mode was used.
func generate(account, custom string) (machineid.MachineID, string, error) {
	gen := machineid.New()

	switch {
	case custom != "":
		values, err := parseCustomValues(custom)
		if err != nil {
			return machineid.MachineID{}, "", err
		}

		id, err := gen.FromCustomFormat(values[0], values[1], values[2])

		return id, "custom", err

	case account != "":
		id, err := gen.FromAccountName(account)

		return id, "account", err

	default:
		return gen.Random(), "random", nil
	}
}

// parseCustomValues splits the -custom argument into the three per-field
// strings.
func parseCustomValues(s string) ([3]string, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return [3]string{}, fmt.Errorf("expected 3 comma-separated values, got %d", len(parts))
	}

	return [3]string{parts[0], parts[1], parts[2]}, nil
}

// hexDump renders the binary message as uppercase hex text.
func hexDump(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		slog.Error("failed to encode JSON", "error", err)
		os.Exit(1)
	}
}
