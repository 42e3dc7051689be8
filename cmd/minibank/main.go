// Package main is the entry point for the minibank demo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gobank-labs/minibank/internal/catalog"
	"github.com/gobank-labs/minibank/internal/config"
	"github.com/gobank-labs/minibank/internal/domain"
	"github.com/gobank-labs/minibank/internal/repository"
	"github.com/gobank-labs/minibank/internal/utils"
)

var (
	seedFile string

	rootCmd = &cobra.Command{
		Use:           "minibank",
		Short:         "In-memory account ledger and course catalog demos",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	ledgerCmd = &cobra.Command{
		Use:   "ledger",
		Short: "Run the account ledger walkthrough",
		RunE:  runLedger,
	}

	catalogCmd = &cobra.Command{
		Use:   "catalog",
		Short: "Print the course catalog overviews",
		Run:   runCatalog,
	}
)

func init() {
	ledgerCmd.Flags().StringVar(&seedFile, "seed", "",
		"YAML file with accounts to insert before the walkthrough")
	rootCmd.AddCommand(ledgerCmd, catalogCmd)
}

func main() {
	cfg := config.Load()

	// Initialize structured logger
	utils.InitLogger(cfg.Environment, "minibank", cfg.LogLevel)

	if err := rootCmd.Execute(); err != nil {
		utils.Error("command failed", "error", err.Error())
		os.Exit(1)
	}
}

// runLedger replays the original bank walkthrough: seed two accounts (or the
// ones from --seed), list them, look one up, update a balance, remove one,
// and list what remains. Repository errors are printed and never abort the
// run; every one of them is recoverable.
func runLedger(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	repo := repository.NewAccountsRepo()

	seed, err := seedAccounts()
	if err != nil {
		return err
	}

	for _, acct := range seed {
		id, err := repo.Insert(ctx, acct)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Printf("Added account with ID: %d\n", id)
	}

	fmt.Println("\nAll accounts:")
	for _, acct := range repo.ListAll(ctx) {
		fmt.Printf("%+v\n", acct)
	}

	if acct, ok := repo.Get(ctx, 1); ok {
		fmt.Printf("\nFound account: %+v\n", acct)
	}

	if err := repo.UpdateBalance(ctx, 1, 1500.0); err != nil {
		fmt.Printf("Error updating balance: %v\n", err)
	} else {
		fmt.Println("Updated account 1 balance")
	}

	if removed, err := repo.Remove(ctx, 2); err != nil {
		fmt.Printf("Error: %v\n", err)
	} else {
		fmt.Printf("Removed account: %+v\n", removed)
	}

	fmt.Println("\nRemaining accounts:")
	for _, acct := range repo.ListAll(ctx) {
		fmt.Printf("%+v\n", acct)
	}

	return nil
}

// seedAccounts returns the walkthrough's starting accounts, either the
// built-in pair or the entries of the --seed file in file order.
func seedAccounts() ([]domain.Account, error) {
	if seedFile == "" {
		return []domain.Account{
			domain.NewAccount(0, "Alice", 1000.0),
			domain.NewAccount(0, "Bob", 2000.0),
		}, nil
	}

	seed, err := config.LoadSeed(seedFile)
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(seed.Accounts))
	for _, entry := range seed.Accounts {
		accounts = append(accounts, entry.Account())
	}
	return accounts, nil
}

// runCatalog prints the overview of each demo course.
func runCatalog(_ *cobra.Command, _ []string) {
	courses := []catalog.Course{
		catalog.Workshop{
			Title:      "Go Programming Workshop",
			Instructor: "Alice Smith",
			Duration:   "3",
		},
		catalog.Seminar{
			Title:    "Advanced Go Seminar",
			Speaker:  "Bob Johnson",
			Location: "Room 101",
		},
	}

	for _, course := range courses {
		overview, err := course.Overview()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Println(overview)
	}
}
