package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("COURSEDECK_CONFIG", filepath.Join(dir, "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, SourceSQLite, cfg.Catalog.Source)
	require.Equal(t, 10*time.Second, cfg.Catalog.Timeout)
	require.Equal(t, "/departments", cfg.Catalog.DepartmentsPath)
	require.Equal(t, "/subjects/{id}", cfg.Navigation.Route)
	require.False(t, cfg.Navigation.IncludeName)
	require.Equal(t, filepath.Join(dir, ".local", "share", "coursedeck", "coursedeck.db"), cfg.Database.Path)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	t.Setenv("HOME", dir)
	t.Setenv("COURSEDECK_CONFIG", path)

	body := `
[catalog]
source = "http"
base_url = "https://catalog.example.edu/api"
timeout = "3s"

[navigation]
include_name = true
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("COURSEDECK_NAVIGATION_ROUTE", "/course")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, SourceHTTP, cfg.Catalog.Source)
	require.Equal(t, "https://catalog.example.edu/api", cfg.Catalog.BaseURL)
	require.Equal(t, 3*time.Second, cfg.Catalog.Timeout)
	require.True(t, cfg.Navigation.IncludeName)
	require.Equal(t, "/course", cfg.Navigation.Route)
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("COURSEDECK_CONFIG", filepath.Join(dir, "missing.toml"))
	t.Setenv("COURSEDECK_CATALOG_SOURCE", "ftp")

	_, err := Load()
	require.ErrorContains(t, err, `unknown catalog.source "ftp"`)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("COURSEDECK_CONFIG", filepath.Join(dir, "nested", "config.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Navigation.BaseURL = "https://learn.example.edu"
	cfg.Catalog.Timeout = 5 * time.Second
	require.NoError(t, Save(cfg))

	again, err := Load()
	require.NoError(t, err)
	require.Equal(t, cfg, again)
}
