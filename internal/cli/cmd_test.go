package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nmorrow/spectra/internal/repository"
	"github.com/nmorrow/spectra/internal/service"
	"github.com/nmorrow/spectra/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)
	return &App{
		Snapshots:     service.NewSnapshotService(repository.NewSQLiteSnapshotRepo(db)),
		BaseURL:       "https://spectra.app/profile",
		IsInteractive: func() bool { return false },
	}
}

func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.Execute()
}

func TestShowCmd_RejectsOutOfRangeScore(t *testing.T) {
	err := execute(t, testApp(t), "show", "--fc", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestRootCmd_RejectsNonShareLink(t *testing.T) {
	err := execute(t, testApp(t), "https://example.com/?page=2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a shared profile link")
}

func TestViewCmd_RejectsGarbage(t *testing.T) {
	err := execute(t, testApp(t), "view", "fc=99&so=banana")
	require.Error(t, err)
}

func TestViewCmd_RendersSharedProfileNonInteractively(t *testing.T) {
	// Non-interactive viewing prints a static report; success is enough
	// here, the formatting is covered by the formatter tests.
	err := execute(t, testApp(t), "view", "https://spectra.app/profile?fc=1&so=4&name=Alex")
	assert.NoError(t, err)
}

func TestExportCmd_WritesCSVFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "profile.csv")
	err := execute(t, testApp(t), "export", "--format", "csv", "--fc", "1", "-o", out)
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), "=== METRICS ===")
	assert.Contains(t, string(content), `"Focus","1",`)
}

func TestExportCmd_RejectsUnknownFormat(t *testing.T) {
	err := execute(t, testApp(t), "export", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestSnapshotCmds_SaveShowDeleteRoundTrip(t *testing.T) {
	app := testApp(t)

	require.NoError(t, execute(t, app, "snapshot", "save", "--name", "alex", "--fc", "1", "--se", "0"))
	require.NoError(t, execute(t, app, "snapshot", "show", "alex"))
	require.NoError(t, execute(t, app, "snapshot", "delete", "alex"))

	err := execute(t, app, "snapshot", "show", "alex")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSnapshotSaveCmd_RequiresNameWhenNonInteractive(t *testing.T) {
	err := execute(t, testApp(t), "snapshot", "save")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestShareCmd_PrintsDecodableLink(t *testing.T) {
	// share prints via fmt, so success plus flag handling is what this
	// covers; the link format itself is covered in internal/share.
	err := execute(t, testApp(t), "share", "--fc", "2", "--name", "Sam")
	assert.NoError(t, err)
}

func TestShowCmd_FromSnapshot(t *testing.T) {
	app := testApp(t)
	require.NoError(t, execute(t, app, "snapshot", "save", "--name", "base", "--mo", "0"))

	assert.NoError(t, execute(t, app, "show", "--from", "base"))
	err := execute(t, app, "show", "--from", "missing")
	require.Error(t, err)
	assert.Contains(t, strings.ToLower(err.Error()), "loading snapshot")
}
