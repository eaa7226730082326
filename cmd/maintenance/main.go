package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/soomspa/spa-backend-go/internal/config"
	"github.com/soomspa/spa-backend-go/internal/pkg/database"
)

const usage = `Usage: maintenance <command> [flags]

Commands:
  purge-sales        delete sales sold before a cutoff date
  audit-settlements  report inconsistencies in the settlement ledger
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	switch os.Args[1] {
	case "purge-sales":
		err = purgeSales(ctx, db, os.Args[2:], cfg.Location())
	case "audit-settlements":
		err = auditSettlements(ctx, db)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// purgeSales hard-deletes sales sold before the cutoff. Therapist rows go
// with them through the FK cascade.
func purgeSales(ctx context.Context, db *database.DB, args []string, loc *time.Location) error {
	fs := flag.NewFlagSet("purge-sales", flag.ExitOnError)
	before := fs.String("before", "", "cutoff date (YYYY-MM-DD), exclusive")
	dryRun := fs.Bool("dry-run", false, "report the count without deleting")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cutoff, err := time.ParseInLocation("2006-01-02", *before, loc)
	if err != nil {
		return fmt.Errorf("invalid -before date: %w", err)
	}

	if *dryRun {
		var count int
		err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM sales WHERE sold_at < $1`, cutoff).Scan(&count)
		if err != nil {
			return err
		}
		fmt.Printf("%d sales would be deleted\n", count)
		return nil
	}

	tag, err := db.Pool.Exec(ctx, `DELETE FROM sales WHERE sold_at < $1`, cutoff)
	if err != nil {
		return err
	}
	fmt.Printf("%d sales deleted\n", tag.RowsAffected())
	return nil
}

// auditSettlements looks for ledger states the repository guards should
// make impossible. A non-empty report means manual repair is needed.
func auditSettlements(ctx context.Context, db *database.DB) error {
	problems := 0

	// Settled extra payments must point at a live settlement.
	rows, err := db.Pool.Query(ctx, `
		SELECT ep.id
		FROM extra_payments ep
		LEFT JOIN settlements s ON s.id = ep.settlement_id AND s.deleted_at IS NULL
		WHERE ep.is_settled AND s.id IS NULL
	`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return err
		}
		fmt.Printf("extra payment %s is flagged settled but has no live settlement\n", id)
		problems++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	// Live settlements of the same type must not overlap per employee.
	rows, err = db.Pool.Query(ctx, `
		SELECT a.id, b.id
		FROM settlements a
		JOIN settlements b ON a.employee_id = b.employee_id
			AND a.type = b.type
			AND a.id < b.id
			AND a.period_start <= b.period_end
			AND a.period_end >= b.period_start
		WHERE a.deleted_at IS NULL AND b.deleted_at IS NULL
	`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var aID, bID string
		if err := rows.Scan(&aID, &bID); err != nil {
			return err
		}
		fmt.Printf("settlements %s and %s overlap\n", aID, bID)
		problems++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if problems == 0 {
		fmt.Println("ledger is consistent")
		return nil
	}
	return fmt.Errorf("%d problems found", problems)
}
