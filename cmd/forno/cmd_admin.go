package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/forno/config"
	"github.com/shashiranjanraj/forno/pkg/crypt"
	"github.com/shashiranjanraj/forno/pkg/storage"
)

// forno backup — timestamped copies of every table on the active disk.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up the table files on the active storage disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list"); list {
			return listBackups()
		}

		stamp := time.Now().Format("20060102150405")
		tables := []string{config.AccountsFile(), config.OrdersFile(), config.LegacyOrdersFile()}

		backed := 0
		for _, path := range tables {
			if storage.Missing(path) {
				continue
			}
			dst := fmt.Sprintf("%s.%s.bak", path, stamp)
			if err := storage.Copy(path, dst); err != nil {
				return err
			}
			fmt.Println(color.GreenString("✅ %s → %s", path, dst))
			backed++
		}
		if backed == 0 {
			fmt.Println("Nothing to back up — no table files exist yet.")
		}
		return nil
	},
}

func listBackups() error {
	files, err := storage.Files("")
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "BACKUP\tBYTES\tMODIFIED")
	found := false
	for _, f := range files {
		if !strings.HasSuffix(f, ".bak") {
			continue
		}
		found = true
		size, _ := storage.Size(f)
		mod, _ := storage.LastModified(f)
		fmt.Fprintf(w, "%s\t%d\t%s\n", f, size, mod.Format(time.RFC3339))
	}
	if !found {
		fmt.Println("No backups found.")
		return nil
	}
	return w.Flush()
}

// forno hash-override <password> — emit a bcrypt hash for ADMIN_OVERRIDE_HASH,
// so the override credential never has to sit in config as plain text.
var hashOverrideCmd = &cobra.Command{
	Use:   "hash-override <password>",
	Short: "Print a bcrypt hash suitable for ADMIN_OVERRIDE_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := crypt.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("ADMIN_OVERRIDE_HASH=%s\n", hash)
		return nil
	},
}

func init() {
	backupCmd.Flags().Bool("list", false, "list existing backups instead of creating new ones")
}
