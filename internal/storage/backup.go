package storage

import (
	"fmt"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files.
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep.
	MaxBackupCount = 3
)

// BackupPath returns the path of the backup with the given rotation number
// for a document. Lower numbers are more recent: .bak.1 is the newest.
func BackupPath(docPath string, n int) string {
	return fmt.Sprintf("%s%s.%d", docPath, BackupSuffix, n)
}

// rotateBackups shifts existing backups to make room for a new one:
// .bak.2 -> .bak.3, .bak.1 -> .bak.2, dropping the oldest.
func rotateBackups(docPath string) error {
	oldest := BackupPath(docPath, MaxBackupCount)
	if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		if err := os.Rename(BackupPath(docPath, i), BackupPath(docPath, i+1)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// CreateBackup copies the document at docPath to .bak.1, rotating existing
// backups. Called before destructive operations (import, reset, archive).
// A missing document is not an error; there is simply nothing to back up.
func CreateBackup(docPath string) error {
	if _, err := os.Stat(docPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(docPath); err != nil {
		return err
	}

	data, err := os.ReadFile(docPath)
	if err != nil {
		return err
	}
	return os.WriteFile(BackupPath(docPath, 1), data, 0644)
}

// BackupInfo describes one existing backup file.
type BackupInfo struct {
	Number int    // rotation number, 1 is most recent
	Path   string // full path to the backup file
}

// ListBackups returns the existing backups for a document, newest first.
func ListBackups(docPath string) []BackupInfo {
	var backups []BackupInfo
	for i := 1; i <= MaxBackupCount; i++ {
		p := BackupPath(docPath, i)
		if _, err := os.Stat(p); err == nil {
			backups = append(backups, BackupInfo{Number: i, Path: p})
		}
	}
	return backups
}

// RestoreBackup copies backup n back over the live document. The current
// state is backed up first so a mistaken restore is itself recoverable.
func RestoreBackup(docPath string, n int) error {
	if n < 1 || n > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", n, MaxBackupCount)
	}

	backupPath := BackupPath(docPath, n)
	data, err := os.ReadFile(backupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("backup %d does not exist", n)
		}
		return err
	}

	if err := CreateBackup(docPath); err != nil {
		return err
	}

	return os.WriteFile(docPath, data, 0644)
}
