package main

import (
	"fmt"
	"time"

	"github.com/mamadou288/shop-api/config"
	"github.com/mamadou288/shop-api/internal/auth/jwt"
	"github.com/spf13/cobra"
)

var (
	tokenSubject string
	tokenTTL     time.Duration

	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Mint an admin JWT for the analytics API",
		RunE:  mintToken,
	}
)

func init() {
	tokenCmd.Flags().StringVarP(&tokenSubject, "subject", "s", "admin", "token subject")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime (defaults to auth.jwt_ttl)")
}

func mintToken(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}
	ja, err := jwt.New(cfg.Auth)
	if err != nil {
		return err
	}
	ttl := tokenTTL
	if ttl <= 0 {
		if ttl, err = cfg.Auth.TTL(); err != nil {
			return err
		}
	}
	tok, err := jwt.NewAdminToken(ja, ttl, tokenSubject)
	if err != nil {
		return fmt.Errorf("can't sign token: %w", err)
	}
	if _, err := jwt.VerifyToken(ja, tok); err != nil {
		return fmt.Errorf("minted token does not verify: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}
