// Bulk catalog import: reads books from an Excel spreadsheet and inserts
// them into the catalog, skipping rows whose isbn13 already exists.
//
// Expected columns: title, author, isbn13, isbn, publisher, pub_date
// (YYYY-MM-DD), category, description.
//
// Usage: go run scripts/import_books/main.go <file.xlsx>
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/binehq/bine-server/internal/models"
	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: import_books <file.xlsx>")
	}

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}

	f, err := excelize.OpenFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	totalImported := 0
	totalSkipped := 0

	for _, sheetName := range f.GetSheetList() {
		fmt.Printf("Importing sheet: %s\n", sheetName)
		rows, err := f.GetRows(sheetName)
		if err != nil {
			fmt.Printf("Error reading sheet %s: %v\n", sheetName, err)
			continue
		}

		for i, row := range rows {
			if i == 0 || len(row) < 3 { // Skip header or invalid rows
				continue
			}

			// row[0]: title
			// row[1]: author
			// row[2]: isbn13
			// row[3]: isbn
			// row[4]: publisher
			// row[5]: pub_date
			// row[6]: category
			// row[7]: description
			book := models.Book{
				Title:  row[0],
				Author: row[1],
				ISBN13: row[2],
			}
			if len(row) > 3 {
				book.ISBN = row[3]
			}
			if len(row) > 4 {
				book.Publisher = row[4]
			}
			if len(row) > 5 && row[5] != "" {
				if pubDate, err := time.Parse("2006-01-02", row[5]); err == nil {
					book.PubDate = &pubDate
				}
			}
			if len(row) > 7 {
				book.Description = row[7]
			}

			if len(row) > 6 && row[6] != "" {
				var category models.BookCategory
				if err := db.Where("name = ?", row[6]).First(&category).Error; err == nil {
					book.CategoryID = &category.ID
				}
			}

			var existing models.Book
			if err := db.Where("isbn13 = ?", book.ISBN13).First(&existing).Error; err == nil {
				totalSkipped++
				continue
			}

			if err := db.Create(&book).Error; err != nil {
				fmt.Printf("Row %d: failed to insert %q: %v\n", i+1, book.Title, err)
				continue
			}
			totalImported++
		}
	}

	fmt.Printf("Done: %d imported, %d skipped (duplicate isbn13)\n", totalImported, totalSkipped)
}
