// Command hash-password prints the bcrypt hash of each password given on the
// command line, for seeding accounts directly in the database.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/brayannhc07/webapiautores/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: hash-password [-cost N] PASSWORD...")
		os.Exit(2)
	}

	if err := hashAll(os.Stdout, auth.NewBcryptHasher(*cost), flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// hashAll writes one hash per line, in argument order.
func hashAll(w io.Writer, hasher auth.PasswordHasher, passwords []string) error {
	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, hash); err != nil {
			return err
		}
	}
	return nil
}
