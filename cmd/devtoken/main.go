// Command devtoken mints a bearer token for local testing of the booking API.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"venuebooking/config"
	"venuebooking/internal/adapters/auth"
)

func main() {
	requester := flag.String("requester", "", "requester ID placed in the token subject")
	emailAddr := flag.String("email", "", "optional e-mail claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *requester == "" {
		fmt.Fprintln(os.Stderr, "devtoken: -requester is required")
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "devtoken:", err)
		os.Exit(1)
	}
	token, err := auth.NewJWTIssuer(cfg.JWTSecret).Issue(*requester, *emailAddr, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "devtoken:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
