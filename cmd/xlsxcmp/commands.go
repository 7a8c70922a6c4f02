package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/py-simplified/comparison-tool/pkg/auth"
	"github.com/py-simplified/comparison-tool/pkg/compare/xlsx"
	"github.com/py-simplified/comparison-tool/pkg/config"
)

// hashCmd generates a new password hash, optionally updating the
// config file in place.
func hashCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Generate a password hash for the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(os.Stderr, "Enter new 4-digit password: ")
			password, err := readPassword()
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return err
			}
			if len(password) != 4 || !allDigits(password) {
				return errors.New("password must be exactly 4 digits")
			}

			fmt.Fprint(os.Stderr, "Confirm new password: ")
			confirm, err := readPassword()
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return err
			}
			if password != confirm {
				return errors.New("passwords do not match")
			}

			hash := auth.HashPassword(password)

			if write {
				path := config.FindPath(configPath)
				if path == "" {
					return errors.New("no config file found to update; pass --config or create config.yaml")
				}
				cfg, err := config.Load(path)
				if err != nil {
					return err
				}
				cfg.Auth.PasswordHash = hash
				if err := config.Save(cfg, path); err != nil {
					return err
				}
				fmt.Printf("Updated password hash in %s\n", path)
				return nil
			}

			fmt.Printf("Password hash: %s\n", hash)
			fmt.Println("Set auth.password_hash in the config file to this value.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "Update the config file in place")
	return cmd
}

// fixturesCmd generates sample input workbooks with seeded differences.
func fixturesCmd() *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Generate sample new/prev/template workbooks for a trial run",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := xlsx.GenerateFixtures(base); err != nil {
				return fmt.Errorf("generating fixtures: %w", err)
			}
			fmt.Printf("Sample workbooks written under %s\n", base)
			return nil
		},
	}

	cmd.Flags().StringVarP(&base, "base", "b", ".", "Base directory to create the folders in")
	return cmd
}

func readPassword() (string, error) {
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
