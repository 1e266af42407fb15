package service

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedKey(t *testing.T, key, value string) {
	t.Helper()
	opts := badger.DefaultOptions(dbPath).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	}))
}

func captureOutput(f func()) string {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func mockStdin(input string, f func()) {
	oldStdin := os.Stdin
	r, w, _ := os.Pipe()
	os.Stdin = r

	go func() {
		w.Write([]byte(input))
		w.Close()
	}()

	f()

	os.Stdin = oldStdin
}

func setupTestPaths(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	oldDbPath := dbPath
	oldBackupDir := backupDir
	dbPath = filepath.Join(tmpDir, "badger")
	backupDir = filepath.Join(tmpDir, "backups")
	t.Cleanup(func() {
		dbPath = oldDbPath
		backupDir = oldBackupDir
	})

	return tmpDir
}

func TestHandleCommand(t *testing.T) {
	setupTestPaths(t)

	tests := []struct {
		name           string
		args           []string
		expectedOutput string
		expectedExit   int
	}{
		{
			name:           "no arguments",
			args:           []string{},
			expectedOutput: "Usage: cosmicdevspace data",
			expectedExit:   1,
		},
		{
			name:           "help command",
			args:           []string{"help"},
			expectedOutput: "Usage: cosmicdevspace data",
			expectedExit:   0,
		},
		{
			name:           "unknown command",
			args:           []string{"unknown"},
			expectedOutput: "Unknown data command: unknown",
			expectedExit:   1,
		},
		{
			name:           "restore without file",
			args:           []string{"restore"},
			expectedOutput: "Error: backup file path required for restore",
			expectedExit:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var exitCode int
			oldOsExit := osExit
			defer func() { osExit = oldOsExit }()
			osExit = func(code int) {
				exitCode = code
				panic("exit")
			}

			output := captureOutput(func() {
				defer func() {
					if r := recover(); r != nil {
						if r != "exit" {
							panic(r)
						}
					}
				}()
				HandleCommand(tt.args)
			})

			assert.Contains(t, output, tt.expectedOutput)
			if tt.expectedExit > 0 {
				assert.Equal(t, tt.expectedExit, exitCode)
			}
		})
	}
}

func TestInitDb(t *testing.T) {
	setupTestPaths(t)

	t.Run("initialize new database", func(t *testing.T) {
		output := captureOutput(func() {
			initDb()
		})

		assert.Contains(t, output, "Database initialized successfully")
		assert.DirExists(t, dbPath)
	})

	t.Run("initialize existing database", func(t *testing.T) {
		output := captureOutput(func() {
			initDb()
		})

		assert.Contains(t, output, "Database already exists")
	})
}

func TestClean(t *testing.T) {
	setupTestPaths(t)

	t.Run("clean non-existent database", func(t *testing.T) {
		output := captureOutput(func() {
			clean()
		})

		assert.Contains(t, output, "Database is already clean")
	})

	t.Run("clean existing database - confirmed", func(t *testing.T) {
		initDb()
		assert.DirExists(t, dbPath)

		var output string
		mockStdin("y\n", func() {
			output = captureOutput(func() {
				clean()
			})
		})

		assert.Contains(t, output, "Database cleaned successfully")
		assert.NoDirExists(t, dbPath)
	})

	t.Run("clean existing database - cancelled", func(t *testing.T) {
		initDb()
		assert.DirExists(t, dbPath)

		var output string
		mockStdin("n\n", func() {
			output = captureOutput(func() {
				clean()
			})
		})

		assert.Contains(t, output, "Operation cancelled")
		assert.DirExists(t, dbPath)
	})
}

func TestBackupAndRestore(t *testing.T) {
	tmpDir := setupTestPaths(t)

	t.Run("backup non-existent database", func(t *testing.T) {
		output := captureOutput(func() {
			backup()
		})

		assert.Contains(t, output, "No database exists to backup")
	})

	t.Run("restore non-existent backup", func(t *testing.T) {
		output := captureOutput(func() {
			restore(filepath.Join(tmpDir, "nonexistent.db"))
		})

		assert.Contains(t, output, "Backup file does not exist")
	})

	t.Run("backup then restore round trip", func(t *testing.T) {
		initDb()
		assert.DirExists(t, dbPath)

		// Seed one record so the backup stream is non-empty.
		seedKey(t, "item:seed", `{"id":"seed"}`)

		output := captureOutput(func() {
			backup()
		})
		assert.Contains(t, output, "Database backed up successfully")

		backups, err := filepath.Glob(filepath.Join(backupDir, "backup_*.db"))
		require.NoError(t, err)
		require.NotEmpty(t, backups)

		var code int
		mockStdin("y\n", func() {
			output = captureOutput(func() {
				code = restore(backups[0])
			})
		})

		assert.Equal(t, 0, code)
		assert.Contains(t, output, "Database restored successfully")
	})

	t.Run("restore with existing database - cancelled", func(t *testing.T) {
		initDb()

		backupFile := filepath.Join(tmpDir, "manual_backup.db")
		require.NoError(t, os.WriteFile(backupFile, []byte("placeholder"), 0644))

		var output string
		mockStdin("n\n", func() {
			output = captureOutput(func() {
				restore(backupFile)
			})
		})

		assert.Contains(t, output, "Operation cancelled")
	})
}
