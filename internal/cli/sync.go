// ABOUTME: Sync subcommand for Charm cloud backup of the journal files
// ABOUTME: Provides status, push, pull, link, unlink, repair and reset (SSH key auth)
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/proto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/dreamdecoder/internal/charm"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Back up the dream journal with Charm",
	Long: `Back up your journal and symbol guide securely to the cloud using Charm.

Authentication is automatic via SSH keys - no login required!

Commands:
  status  - Show sync status and Charm user ID
  push    - Upload the journal files
  pull    - Replace the local journal files with the backup
  link    - Link this device to another Charm account
  unlink  - Disconnect this device from Charm
  repair  - Repair the local backup store
  reset   - Reset the local backup store from the cloud
  wipe    - Delete all backups, locally and in the cloud

Set auto_sync = true in the config to push after every change.

Examples:
  dreamdecoder sync status
  dreamdecoder sync push
  dreamdecoder sync repair --force`,
}

// newSync builds the backup for the configured data directory.
func newSync() (*app, *charm.Client, *charm.Backup, error) {
	a, err := newApp()
	if err != nil {
		return nil, nil, nil, err
	}
	c, err := charm.NewClient(a.cfg.CharmHost)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create Charm client: %w", err)
	}
	return a, c, charm.NewBackup(c, a.log), nil
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, c, backup, err := newSync()
		if err != nil {
			return err
		}

		id, err := c.ID()
		if err != nil {
			fmt.Printf("Charm:     not connected (%v)\n", err)
			fmt.Println("\nRun 'dreamdecoder sync link' to connect to a Charm account.")
			return nil
		}

		fmt.Printf("Charm ID:  %s\n", id)
		fmt.Printf("Server:    %s\n", charm.GetCharmHost())
		fmt.Printf("Data dir:  %s\n", a.cfg.DataDir)

		last, err := backup.LastPush()
		switch {
		case err != nil:
			fmt.Printf("Last push: unknown (%v)\n", err)
		case last.IsZero():
			fmt.Println("Last push: never")
		default:
			fmt.Printf("Last push: %s\n", last.Local().Format("2006-01-02 15:04:05"))
		}

		if a.cfg.AutoSync {
			color.Green("Status:    Connected, pushing after every change")
		} else {
			color.Yellow("Status:    Connected, manual push only")
		}
		return nil
	},
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload the journal and symbol guide",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, backup, err := newSync()
		if err != nil {
			return err
		}
		pushed, err := backup.Push(a.cfg.JournalPath(), a.cfg.SymbolGuidePath())
		if err != nil {
			return err
		}
		color.Green("Pushed %s", strings.Join(pushed, ", "))
		return nil
	},
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Replace local journal files with the backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, backup, err := newSync()
		if err != nil {
			return err
		}

		fmt.Printf("This will overwrite the journal files in %s.\n", a.cfg.DataDir)
		if !confirm("Continue? [y/N]: ", "y", "yes") {
			fmt.Println("Aborted.")
			return nil
		}

		written, err := backup.Pull(a.cfg.DataDir)
		if err != nil {
			return err
		}
		if len(written) == 0 {
			color.Yellow("Nothing to pull; no backup found.")
			return nil
		}
		color.Green("Pulled %s", strings.Join(written, ", "))
		return nil
	},
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this device to a Charm account",
	Long: `Link this device to an existing Charm account.

This will generate a link code that you can enter on another device
that's already linked to your Charm account.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cc, err := client.NewClientWithDefaults()
		if err != nil {
			return fmt.Errorf("failed to create Charm client: %w", err)
		}

		if _, err := cc.ID(); err == nil {
			color.Green("Already linked to a Charm account!")
			fmt.Println("Run 'dreamdecoder sync status' to see your account info.")
			return nil
		}

		fmt.Println("Generating link request...")
		fmt.Println("Enter this code on a device that's already linked to your Charm account.")

		lh := &linkHandler{}
		if err := cc.LinkGen(lh); err != nil {
			return fmt.Errorf("link failed: %w", err)
		}
		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Disconnect this device from Charm",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("This will disconnect this device from your Charm account.")
		fmt.Println("Your local journal will remain, but it won't be backed up anymore.")
		if !confirm("\nType 'unlink' to confirm: ", "unlink") {
			fmt.Println("Aborted.")
			return nil
		}

		cc, err := client.NewClientWithDefaults()
		if err != nil {
			return fmt.Errorf("failed to create Charm client: %w", err)
		}

		keys, err := cc.AuthorizedKeysWithMetadata()
		if err != nil {
			return fmt.Errorf("failed to get authorized keys: %w", err)
		}
		for _, key := range keys.Keys {
			if key.Key != "" {
				if err := cc.UnlinkAuthorizedKey(key.Key); err != nil {
					fmt.Printf("Warning: failed to unlink key: %v\n", err)
				}
			}
		}

		color.Green("\nDevice unlinked successfully")
		fmt.Println("Run 'dreamdecoder sync link' to link to a different account.")
		return nil
	},
}

var (
	repairForce bool
)

var syncRepairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Repair the local backup store",
	Long: `Attempt to repair corruption in the local Charm KV store that holds backups.
Your journal CSV files are not touched.

Use --force to attempt recovery and cloud reset if corruption persists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		c, err := charm.NewClient(a.cfg.CharmHost)
		if err != nil {
			return fmt.Errorf("failed to create Charm client: %w", err)
		}

		fmt.Println("Repairing backup store...")
		result, err := c.Repair(repairForce)
		if err != nil {
			return fmt.Errorf("repair failed: %w", err)
		}

		if result.WalCheckpointed {
			color.Green("  ✓ WAL checkpointed")
		}
		if result.ShmRemoved {
			color.Green("  ✓ SHM file removed")
		}
		if result.IntegrityOK {
			color.Green("  ✓ Integrity check passed")
		} else {
			color.Red("  ✗ Integrity check failed")
		}
		if result.Vacuumed {
			color.Green("  ✓ Store vacuumed")
		}
		if result.RecoveryAttempted {
			color.Yellow("  ! Recovery attempted")
		}
		if result.ResetFromCloud {
			color.Green("  ✓ Reset from cloud")
		}

		fmt.Println()
		switch {
		case result.IntegrityOK:
			color.Green("Repair complete.")
		case !repairForce:
			color.Yellow("Repair incomplete. Run with --force to attempt recovery and cloud reset.")
		default:
			color.Red("Repair failed. Backup store may be unrecoverable.")
		}
		return nil
	},
}

var syncResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the local backup store from the cloud",
	Long: `Delete the local copy of the Charm backup store and re-sync it from the cloud.
Your journal CSV files and cloud data are not affected; run 'dreamdecoder sync pull'
afterwards to restore the journal from the backup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		c, err := charm.NewClient(a.cfg.CharmHost)
		if err != nil {
			return fmt.Errorf("failed to create Charm client: %w", err)
		}

		fmt.Println("This will delete the local backup store and re-sync from cloud.")
		if !confirm("Continue? [y/N]: ", "y", "yes") {
			fmt.Println("Aborted.")
			return nil
		}

		fmt.Println("\nResetting backup store...")
		if err := c.Reset(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		color.Green("Reset complete!")
		return nil
	},
}

var syncWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all backups, locally and in the cloud",
	Long: `Completely wipe the dreamdecoder backup store.

This will:
- Delete the local backup store
- Delete all cloud backups
- Remove backups from all linked devices

Your journal CSV files are kept. THIS CANNOT BE UNDONE!`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		c, err := charm.NewClient(a.cfg.CharmHost)
		if err != nil {
			return fmt.Errorf("failed to create Charm client: %w", err)
		}

		fmt.Println("This will DELETE all dreamdecoder backups from EVERYWHERE.")
		fmt.Println("\nTHIS CANNOT BE UNDONE!")
		if !confirm("\nType 'wipe' to confirm: ", "wipe") {
			fmt.Println("Aborted.")
			return nil
		}

		fmt.Println("\nWiping backups...")
		result, err := c.Wipe()
		if err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}

		fmt.Printf("Cloud backups deleted: %d\n", result.CloudBackupsDeleted)
		fmt.Printf("Local files deleted:   %d\n", result.LocalFilesDeleted)
		color.Green("Wipe complete!")
		return nil
	},
}

func init() {
	syncRepairCmd.Flags().BoolVarP(&repairForce, "force", "f", false, "Force repair even if the store appears healthy")

	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncPushCmd)
	syncCmd.AddCommand(syncPullCmd)
	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncUnlinkCmd)
	syncCmd.AddCommand(syncRepairCmd)
	syncCmd.AddCommand(syncResetCmd)
	syncCmd.AddCommand(syncWipeCmd)

	rootCmd.AddCommand(syncCmd)
}

// confirm prompts on stdout and reports whether the answer is one of accept.
func confirm(prompt string, accept ...string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	for _, a := range accept {
		if answer == a {
			return true
		}
	}
	return false
}

// linkHandler implements proto.LinkHandler for the link flow.
type linkHandler struct{}

func (lh *linkHandler) TokenCreated(l *proto.Link) {
	fmt.Printf("\nLink code: %s\n\n", l.Token)
	fmt.Println("Waiting for approval...")
}

func (lh *linkHandler) TokenSent(l *proto.Link) {}

func (lh *linkHandler) ValidToken(l *proto.Link) {}

func (lh *linkHandler) InvalidToken(l *proto.Link) {
	fmt.Println("Invalid or expired token. Please try again.")
}

func (lh *linkHandler) Request(l *proto.Link) bool {
	fmt.Printf("\nLink request from: %s\n", l.RequestAddr)
	return confirm("Approve? [y/N]: ", "y", "yes")
}

func (lh *linkHandler) RequestDenied(l *proto.Link) {
	fmt.Println("Link request denied.")
}

func (lh *linkHandler) SameUser(l *proto.Link) {
	color.Green("\nSuccessfully linked!")
}

func (lh *linkHandler) Success(l *proto.Link) {
	color.Green("\nSuccessfully linked!")
}

func (lh *linkHandler) Timeout(l *proto.Link) {
	fmt.Println("\nLink request timed out. Please try again.")
}

func (lh *linkHandler) Error(l *proto.Link) {
	fmt.Println("\nError during linking")
}
