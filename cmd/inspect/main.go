// Command inspect dumps the board's tables to stdout for debugging.
package main

import (
	"database/sql"
	"flag"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"msgboard/repositories"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "board.db", "Path to the SQLite database")
	flag.Parse()

	db, err := repositories.OpenSQLite(*dbPath)
	if err != nil {
		log.Fatal("Error while opening database: ", err)
	}
	defer db.Close()

	if err := dumpUsers(db); err != nil {
		log.Fatal(err)
	}
	if err := dumpMessages(db); err != nil {
		log.Fatal(err)
	}
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func dumpUsers(db *sql.DB) error {
	color.New(color.BgBlack, color.FgGreen).Println("users")

	rows, err := db.Query("SELECT id, username, email, password, created_at FROM users")
	if err != nil {
		return err
	}
	defer rows.Close()

	table := newTable([]string{"ID", "Username", "Email", "Password hash", "Created at"})
	count := 0
	for rows.Next() {
		var (
			id        int64
			username  string
			email     string
			password  string
			createdAt int64
		)
		if err := rows.Scan(&id, &username, &email, &password, &createdAt); err != nil {
			return err
		}
		// Only show the hash prefix, enough to see the algorithm and cost.
		if len(password) > 12 {
			password = password[:12] + "..."
		}
		table.Append([]string{
			itoa(id),
			username,
			email,
			password,
			time.Unix(createdAt, 0).UTC().Format(time.RFC3339),
		})
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if count == 0 {
		color.Yellow.Println("No data found in users table.")
		return nil
	}
	table.Render()
	return nil
}

func dumpMessages(db *sql.DB) error {
	color.New(color.BgBlack, color.FgGreen).Println("messages")

	repo := repositories.NewMessageRepository(db, slog.Default())
	messages, err := repo.ListMessages()
	if err != nil {
		return err
	}

	if len(messages) == 0 {
		color.Yellow.Println("No data found in messages table.")
		return nil
	}

	table := newTable([]string{"ID", "Author", "Parent", "Timestamp", "Content"})
	for _, m := range messages {
		parent := "-"
		if m.ParentID != nil {
			parent = itoa(*m.ParentID)
		}
		table.Append([]string{
			itoa(m.ID),
			m.Author,
			parent,
			m.CreatedAt.Format("15:04:05"),
			m.Content,
		})
	}
	table.Render()
	return nil
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
