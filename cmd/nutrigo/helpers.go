package nutrigo

import (
	"database/sql"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ozc/nutrigo/internal/app"
	"github.com/ozc/nutrigo/internal/db"
	"github.com/ozc/nutrigo/internal/service"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

func printTotals(w io.Writer, header string, totals service.Totals) {
	fmt.Fprintln(w, header)
	for _, key := range service.ReportedKeys() {
		v := totals[key]
		fmt.Fprintf(w, "  %-8s %10.2f %s\n", key, v.Amount, v.Unit)
	}
}

func printSkipped(w io.Writer, skipped []service.ResolveFailure) {
	for _, s := range skipped {
		fmt.Fprintf(w, "skipped: %v\n", s.Err)
	}
}
