// Command token prints a bearer token for the given user id, signed with the
// configured JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"backend-socialnet/internal/auth"
	"backend-socialnet/internal/config"
)

func main() {
	if err := run(os.Args[1:], config.Load); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, loadConfig func() config.Config) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	userID := fs.Int64("user", 0, "user id the token is issued for")
	ttl := fs.Duration("ttl", auth.AccessTokenTTL, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *userID <= 0 {
		return fmt.Errorf("-user must be a positive id")
	}

	token, err := auth.IssueToken(loadConfig().JWTSecret, *userID, *ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
