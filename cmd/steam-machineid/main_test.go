package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	machineid "github.com/slashdevops/steam-machineid"
)

func TestParseCustomValues(t *testing.T) {
	tests := []struct {
		input   string
		want    [3]string
		wantErr bool
	}{
		{"a,b,c", [3]string{"a", "b", "c"}, false},
		{"one,two,three", [3]string{"one", "two", "three"}, false},
		{",,", [3]string{"", "", ""}, false},
		{"a,b", [3]string{}, true},
		{"a,b,c,d", [3]string{}, true},
		{"", [3]string{}, true},
	}

	for _, tt := range tests {
		got, err := parseCustomValues(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseCustomValues(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseCustomValues(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestGenerateRandomMode(t *testing.T) {
	id, mode, err := generate("", "")
	if err != nil {
		t.Fatalf("generate() error = %v", err)
	}
	if mode != "random" {
		t.Errorf("generate() mode = %q, want %q", mode, "random")
	}
	if len(id.ToMessage()) != machineid.MessageLength {
		t.Errorf("message length = %d, want %d", len(id.ToMessage()), machineid.MessageLength)
	}
}

func TestGenerateAccountMode(t *testing.T) {
	id, mode, err := generate("accountname", "")
	if err != nil {
		t.Fatalf("generate() error = %v", err)
	}
	if mode != "account" {
		t.Errorf("generate() mode = %q, want %q", mode, "account")
	}

	again, _, err := generate("accountname", "")
	if err != nil {
		t.Fatalf("generate() error = %v", err)
	}
	if id != again {
		t.Error("generate() with the same account name is not deterministic")
	}
}

func TestGenerateCustomMode(t *testing.T) {
	id, mode, err := generate("", "a,b,c")
	if err != nil {
		t.Fatalf("generate() error = %v", err)
	}
	if mode != "custom" {
		t.Errorf("generate() mode = %q, want %q", mode, "custom")
	}
	if len(id.ToMessage()) != machineid.MessageLength {
		t.Errorf("message length = %d, want %d", len(id.ToMessage()), machineid.MessageLength)
	}
}

func TestGenerateCustomModeMalformed(t *testing.T) {
	if _, _, err := generate("", "only-one-value"); err == nil {
		t.Error("generate() with malformed -custom value should fail")
	}
}

func TestGenerateRejectsNullByte(t *testing.T) {
	if _, _, err := generate("bad\x00name", ""); err == nil {
		t.Error("generate() with a null byte in the account name should fail")
	}
}

func TestHexDump(t *testing.T) {
	got := hexDump([]byte{0x00, 0xab, 0x08})
	want := "00AB08"
	if got != want {
		t.Errorf("hexDump() = %q, want %q", got, want)
	}
}

func TestPrintJSON(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	printJSON(map[string]any{"key": "value"})

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("printJSON output is not valid JSON: %v", err)
	}
	if result["key"] != "value" {
		t.Errorf("Expected key=value, got %v", result["key"])
	}
}
