package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/brunacaffaro/cashflowcontrol-backend/internal/transaction"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample transactions for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			if err := db.Exec(`DELETE FROM "transaction"`).Error; err != nil {
				log.Fatalf("failed to clear transactions: %v", err)
			}
			fmt.Println("Cleared existing transactions")
		}

		comment := "Monthly"
		samples := []transaction.Transaction{
			{
				Name:     "Rent-Jan",
				Date:     time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
				Amount:   1200.0,
				Type:     "Saída",
				Category: "Housing",
				Comment:  &comment,
			},
			{
				Name:     "Salary-Jan",
				Date:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				Amount:   4500.0,
				Type:     "Entrada",
				Category: "Income",
				Status:   true,
			},
			{
				Name:     "Groceries-W1",
				Date:     time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
				Amount:   230.75,
				Type:     "Saída",
				Category: "Food",
			},
		}

		for i := range samples {
			var exists int64
			db.Model(&transaction.Transaction{}).Where("name = ?", samples[i].Name).Count(&exists)
			if exists > 0 {
				fmt.Printf("transaction %q already exists, skipping\n", samples[i].Name)
				continue
			}
			if err := db.Create(&samples[i]).Error; err != nil {
				log.Fatalf("failed to seed transaction %q: %v", samples[i].Name, err)
			}
			fmt.Printf("Seeded transaction: %s\n", samples[i].Name)
		}
	},
}
