package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/staking/base/config"
	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/domain"
	auth_usecase "github.com/x-xyz/staking/stores/auth/usecase"
)

// signer mints the bearer token a principal signs its requests with
func main() {
	flags := pflag.NewFlagSet("signer", pflag.ExitOnError)
	principal := flags.String("principal", "", "account the token speaks for")
	ttl := flags.Duration("ttl", 0, "token lifetime, auth.ttl when unset")
	if err := config.Load(flags, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	lifetime := *ttl
	if lifetime <= 0 {
		lifetime = viper.GetDuration("auth.ttl")
	}

	name, err := domain.ParseName(*principal)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"))
	tkn, err := auth.SignToken(ctx.Background(), name, lifetime)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(tkn)
}
