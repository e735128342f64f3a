package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"time"

	"parcelhub/contexts/identity-access/auth-gate/adapters/signedtoken"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
)

// tokenmint issues development bearer tokens for the signed-token verifier.
//
//	tokenmint --keygen
//	tokenmint --key <private key> --subject rider@example.com --ttl 24h
func main() {
	flags := pflag.NewFlagSet("tokenmint", pflag.ExitOnError)
	keygen := flags.Bool("keygen", false, "print a new key pair and exit")
	key := flags.String("key", os.Getenv("AUTH_PRIVATE_KEY"), "base64 Ed25519 private key or seed")
	subject := flags.String("subject", "", "token subject (user email)")
	audience := flags.String("audience", "parcelhub", "token audience")
	ttl := flags.Duration("ttl", time.Hour, "token lifetime")
	_ = flags.Parse(os.Args[1:])

	if *keygen {
		publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			log.Fatalf("generate key failed: %v", err)
		}
		fmt.Printf("AUTH_PUBLIC_KEY=%s\n", base64.StdEncoding.EncodeToString(publicKey))
		fmt.Printf("AUTH_PRIVATE_KEY=%s\n", base64.StdEncoding.EncodeToString(privateKey.Seed()))
		return
	}

	if *subject == "" {
		log.Fatal("--subject is required")
	}
	privateKey, err := signedtoken.ParsePrivateKey(*key)
	if err != nil {
		log.Fatalf("parse private key failed: %v", err)
	}

	now := time.Now().UTC()
	token, err := signedtoken.Mint(privateKey, signedtoken.Claims{
		Subject:   *subject,
		Audience:  *audience,
		ID:        uuid.NewString(),
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(*ttl).Unix(),
	})
	if err != nil {
		log.Fatalf("mint token failed: %v", err)
	}
	fmt.Println(token)
}
