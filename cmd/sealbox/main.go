package main

import (
	"github.com/awnumar/memguard"

	"github.com/mwhitfield/sealbox/cmd/sealbox/cmd"
)

func main() {
	// Wipe enclave buffers if the process is interrupted.
	memguard.CatchInterrupt()
	defer memguard.Purge()

	cmd.Execute()
}
