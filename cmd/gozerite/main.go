// Copyright 2026 Zerite Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	zerite "github.com/zeritelabs/gozerite"
	"github.com/zeritelabs/gozerite/batch"
)

type globalFlags struct {
	flagset *flag.FlagSet
	workers int
	short   bool
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.IntVar(
		&f.workers,
		"workers",
		0,
		"number of validation workers for bulk mode (defaults to CPU count)",
	)
	f.flagset.BoolVar(
		&f.short,
		"short",
		false,
		"display addresses in abbreviated form",
	)
	return f
}

func main() {
	f := newGlobalFlags()
	err := f.flagset.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	if len(f.flagset.Args()) > 0 {
		switch f.flagset.Arg(0) {
		case "inspect":
			runInspect(f)
		case "validate":
			runValidate(f)
		default:
			fmt.Printf("Unknown subcommand: %s\n", f.flagset.Arg(0))
			os.Exit(1)
		}
	} else {
		fmt.Printf("You must specify a subcommand (inspect or validate)\n")
		os.Exit(1)
	}
}

func runInspect(f *globalFlags) {
	args := f.flagset.Args()[1:]
	if len(args) == 0 {
		fmt.Printf("You must specify at least one address to inspect\n")
		os.Exit(1)
	}
	for _, arg := range args {
		addr, err := zerite.NewAddress(arg)
		if err != nil {
			fmt.Printf("%s: %s\n", arg, err)
			os.Exit(1)
		}
		checksum := addr.Checksum()
		fmt.Printf("Address:      %s\n", addr.String())
		fmt.Printf("Short form:   %s\n", addr.ShortString())
		fmt.Printf(
			"Version:      0x%02x (%s)\n",
			addr.Version(),
			zerite.VersionById(addr.Version()),
		)
		fmt.Printf("Payload:      %s\n", hex.EncodeToString(addr.Payload()))
		fmt.Printf("Checksum:     %s\n", hex.EncodeToString(checksum[:]))
		fmt.Printf("Content hash: %s\n", addr.ContentHash())
		fmt.Println()
	}
}

func runValidate(f *globalFlags) {
	inputs := f.flagset.Args()[1:]
	if len(inputs) == 0 {
		// Read addresses from stdin, one per line
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			inputs = append(inputs, line)
		}
		if err := scanner.Err(); err != nil {
			fmt.Printf("failed to read from stdin: %s\n", err)
			os.Exit(1)
		}
	}
	opts := []batch.ValidatorOption{}
	if f.workers > 0 {
		opts = append(opts, batch.WithWorkers(f.workers))
	}
	results, err := batch.ValidateAll(context.Background(), inputs, opts...)
	if err != nil {
		fmt.Printf("failed to validate addresses: %s\n", err)
		os.Exit(1)
	}
	var invalidCount int
	for _, result := range results {
		if result.Valid() {
			display := result.Address.String()
			if f.short {
				display = result.Address.ShortString()
			}
			fmt.Printf("%s: OK\n", display)
		} else {
			invalidCount++
			fmt.Printf("%s: %s\n", result.Text, result.Err)
		}
	}
	if invalidCount > 0 {
		os.Exit(1)
	}
}
