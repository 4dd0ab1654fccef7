package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - hash-password: Print the bcrypt hash for operator.passwordHash
// - check-config:  Load the active config and report problems

func main() {
	hashCmd := flag.NewFlagSet("hash-password", flag.ExitOnError)
	checkCmd := flag.NewFlagSet("check-config", flag.ExitOnError)

	// hash-password parameters
	hashPassword := hashCmd.String("password", "", "Operator password (read from stdin when empty)")
	hashCost := hashCmd.Int("cost", 0, "bcrypt cost (library default when 0)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	flags := relayctlFlags{
		Hash: hashFlags{
			cmd:      hashCmd,
			password: hashPassword,
			cost:     hashCost,
		},
		Check: checkFlags{
			cmd: checkCmd,
		},
	}

	if err := runSubcommand(&flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type relayctlFlags struct {
	Hash  hashFlags
	Check checkFlags
}

type hashFlags struct {
	cmd      *flag.FlagSet
	password *string
	cost     *int
}

type checkFlags struct {
	cmd *flag.FlagSet
}

func runSubcommand(flags *relayctlFlags) error {
	switch os.Args[1] {
	case "hash-password":
		return handleHash(flags)
	case "check-config":
		return handleCheck(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleHash(flags *relayctlFlags) error {
	if err := flags.Hash.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse hash-password flags")
	}

	password := *flags.Hash.password
	if password == "" {
		var err error
		password, err = readPassword(os.Stdin)
		if err != nil {
			return err
		}
	}

	hash, err := runHash(password, *flags.Hash.cost)
	if err != nil {
		return err
	}

	fmt.Println(hash)

	return nil
}

func handleCheck(flags *relayctlFlags) error {
	if err := flags.Check.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse check-config flags")
	}

	return runCheck(os.Stdout)
}

func printUsage() {
	fmt.Println("Usage: relayctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  hash-password    Hash an operator password for operator.passwordHash")
	fmt.Println("  check-config     Load the active config and report problems")
	fmt.Println("")
	fmt.Println("Use 'relayctl <command> -h' for more information about a command.")
}
