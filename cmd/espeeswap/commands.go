package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/espeeswap/espeeswap-go/pkg/espees"
)

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			if _, err := client.Auth.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			fmt.Println("logged in")
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func ratesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Show current Espee exchange rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			rates, err := client.Attributes.Rates(cmd.Context())
			if err != nil {
				return err
			}

			for ccy, rate := range rates.ExchangeRates {
				fmt.Printf("%s\t%.4f\n", ccy, rate)
			}
			fmt.Printf("charge\t%.2f%%\n", rates.PercentageCharge)
			return nil
		},
	}
}

func banksCmd() *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "banks",
		Short: "List payout banks for a currency",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			banks, err := client.Attributes.Banks(cmd.Context(), currency)
			if err != nil {
				return err
			}
			for _, b := range banks {
				fmt.Printf("%d\t%s\n", b.ID, b.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&currency, "currency", "c", "NGN", "destination currency")
	return cmd
}

func resolveCmd() *cobra.Command {
	var bankID int64
	var account string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a bank account to its owner name",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			resolved, err := client.Attributes.ResolveAccount(cmd.Context(), bankID, account)
			if err != nil {
				return err
			}
			fmt.Println(resolved.AccountName)
			return nil
		},
	}

	cmd.Flags().Int64Var(&bankID, "bank", 0, "bank ID")
	cmd.Flags().StringVar(&account, "account", "", "account number")
	_ = cmd.MarkFlagRequired("bank")
	_ = cmd.MarkFlagRequired("account")
	return cmd
}

func swapCmd() *cobra.Command {
	var amount float64
	var currency, account string
	var bankID int64

	cmd := &cobra.Command{
		Use:   "swap",
		Short: "Create a swap transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			txn, err := client.Transactions.Create(cmd.Context(), &espees.CreateTransactionParams{
				EspeeAmount:         amount,
				DestinationCurrency: currency,
				BankAccount: espees.BankAccount{
					BankID:        bankID,
					AccountNumber: account,
				},
			})
			if err != nil {
				return err
			}

			fmt.Printf("transaction %s (%s): %.2f ESP -> %.2f %s, status %s\n",
				txn.ID, txn.Reference, txn.EspeeAmount, txn.FiatAmount, txn.Currency, txn.PaymentStatus)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Espee amount to swap")
	cmd.Flags().StringVarP(&currency, "currency", "c", "NGN", "destination currency")
	cmd.Flags().Int64Var(&bankID, "bank", 0, "bank ID")
	cmd.Flags().StringVar(&account, "account", "", "account number")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("bank")
	_ = cmd.MarkFlagRequired("account")
	return cmd
}

func transactionsCmd() *cobra.Command {
	var currency, id string
	var cancel bool

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List, inspect, or cancel swap transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			if id != "" {
				if cancel {
					if err := client.Transactions.Cancel(cmd.Context(), id); err != nil {
						return err
					}
					fmt.Println("cancelled")
					return nil
				}

				txn, err := client.Transactions.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				fmt.Printf("%s\t%s\t%.2f %s\t%s\n", txn.ID, txn.Reference, txn.FiatAmount, txn.Currency, txn.PaymentStatus)
				return nil
			}

			list, err := client.Transactions.List(cmd.Context(), currency)
			if err != nil {
				return err
			}
			for _, txn := range list.Data {
				fmt.Printf("%s\t%s\t%.2f %s\t%s\n", txn.ID, txn.Reference, txn.FiatAmount, txn.Currency, txn.PaymentStatus)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&currency, "currency", "c", "NGN", "destination currency")
	cmd.Flags().StringVar(&id, "id", "", "transaction ID")
	cmd.Flags().BoolVar(&cancel, "cancel", false, "cancel the transaction given by --id")
	return cmd
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Probe API liveness",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			if err := client.Ping(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("ok")
			return nil
		},
	}
}
