// config_test.go
//
// Admissions desk: application intake, employee task workflow and lead follow-up service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of admissions-desk.
// admissions-desk is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// admissions-desk is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with admissions-desk.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", "")
	t.Setenv("DB_TYPE", "mysql")
	t.Setenv("DB_DATABASE", "admissions")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_CONNECTION_LIMIT", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 10, cfg.DBConnectionLimit)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.IsSQLite())
}

func TestLoadRequiresDatabase(t *testing.T) {
	t.Setenv("ENV_FILE", "")
	t.Setenv("DB_DATABASE", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadSQLiteWithoutUser(t *testing.T) {
	t.Setenv("ENV_FILE", "")
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_DATABASE", "admissions.db")
	t.Setenv("DB_USER", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsSQLite())
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("DB_TYPE=sqlite\nREQUEST_TIMEOUT=3s\n"), 0o600))

	t.Setenv("ENV_FILE", envPath)
	t.Setenv("DB_DATABASE", "from-env.db")
	t.Setenv("DB_USER", "")
	// godotenv never overrides variables that are already present, even when empty
	for _, key := range []string{"DB_TYPE", "REQUEST_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}
