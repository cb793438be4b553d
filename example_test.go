package machineid_test

import (
	"fmt"

	machineid "github.com/slashdevops/steam-machineid"
)

// ExampleFromAccountName demonstrates deterministic derivation from an
// account name.
func ExampleFromAccountName() {
	id, err := machineid.FromAccountName("accountname")
	if err != nil {
		fmt.Printf("Error creating machine ID: %v\n", err)
		return
	}

	fmt.Println(id)

	// Output:
	// BB3.6BB2445F8825BFED65E64392F0A4D549FFF7D3E1:FF2.57AD645E54976AFF3B3662E9CB335D0A24AC7D08:3B3.C1884025D23FB1A0DDBF125B5D9B8C0812F83390
}

// ExampleMachineID_ToMessage demonstrates encoding a machine ID into the
// binary message object carried by a logon request.
func ExampleMachineID_ToMessage() {
	id, err := machineid.FromAccountName("accountname")
	if err != nil {
		fmt.Printf("Error creating machine ID: %v\n", err)
		return
	}

	msg := id.ToMessage()

	fmt.Printf("length: %d\n", len(msg))
	fmt.Printf("object start: %d\n", msg[0])
	fmt.Printf("type name: %s\n", msg[1:14])
	fmt.Printf("end markers: %d %d\n", msg[153], msg[154])

	// Output:
	// length: 155
	// object start: 0
	// type name: MessageObject
	// end markers: 8 8
}

// ExampleRandom demonstrates generating a random machine ID. The values are
// nondeterministic but the encoded message size never changes.
func ExampleRandom() {
	id := machineid.Random()

	fmt.Println(len(id.ToMessage()))

	// Output:
	// 155
}

// ExampleFromCustomFormat demonstrates supplying one string per field.
func ExampleFromCustomFormat() {
	id, err := machineid.FromCustomFormat("test", "test", "test")
	if err != nil {
		fmt.Printf("Error creating machine ID: %v\n", err)
		return
	}

	fmt.Println(id)

	// Output:
	// BB3.A94A8FE5CCB19BA61C4C0873D391E987982FBBD3:FF2.A94A8FE5CCB19BA61C4C0873D391E987982FBBD3:3B3.A94A8FE5CCB19BA61C4C0873D391E987982FBBD3
}

// halfSource is a RandomSource that always returns the same sample.
type halfSource struct{}

func (halfSource) Float32() float32 { return 0.5 }

// ExampleGenerator_WithRandomSource demonstrates injecting a deterministic
// random source for reproducible tests.
func ExampleGenerator_WithRandomSource() {
	first := machineid.New().WithRandomSource(halfSource{}).Random()
	second := machineid.New().WithRandomSource(halfSource{}).Random()

	fmt.Println(first == second)

	// Output:
	// true
}
