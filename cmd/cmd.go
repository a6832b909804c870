package cmd

import (
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "yolo",
	Short: "travel planning backend",
	Long:  `yolo is the backend for a travel planning service: trips, budgets, reviews, FAQs and support inquiries over a REST API`,
}

func init() {
	RootCmd.AddCommand(serverCommand())
	RootCmd.AddCommand(migrateCommand())
}
