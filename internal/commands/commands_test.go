package commands_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"max.ks1230/home-ledger/internal/commands"
	"max.ks1230/home-ledger/internal/entity/ledger"
	"max.ks1230/home-ledger/internal/model/allocator"
	"max.ks1230/home-ledger/internal/model/reports"
	"max.ks1230/home-ledger/internal/model/summary"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "storage:\n  backend: memory\nauth:\n  email: owner@example.com\n  password-hash: \"" + string(hash) + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runTracker(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHashPassword_FromArgument(t *testing.T) {
	out, err := runTracker(t, "", "hash-password", "--cost", "4", "hunter2")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter2")))
}

func TestHashPassword_FromStdin(t *testing.T) {
	out, err := runTracker(t, "hunter2\n", "hash-password", "--cost", "4")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter2")))
}

func TestHashPassword_RejectsEmpty(t *testing.T) {
	_, err := runTracker(t, "\n", "hash-password")
	assert.Error(t, err)
}

func TestSummary_PrintsJSON(t *testing.T) {
	path := writeConfig(t)

	out, err := runTracker(t, "", "--config", path, "summary", "--date", "2024-03-05")
	require.NoError(t, err)

	var s summary.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, ledger.Date("2024-03-05"), s.Date)
	assert.True(t, s.DailyBalance.IsZero())
}

func TestSummary_RejectsBadDate(t *testing.T) {
	path := writeConfig(t)

	_, err := runTracker(t, "", "--config", path, "summary", "--date", "05/03/2024")
	assert.ErrorIs(t, err, ledger.ErrBadDate)
}

func TestGiveHome_NeedsBalance(t *testing.T) {
	path := writeConfig(t)

	_, err := runTracker(t, "", "--config", path, "give-home", "--recipient", "mom")
	assert.ErrorIs(t, err, allocator.ErrNoBalance)

	_, err = runTracker(t, "", "--config", path, "give-home", "--recipient", "sister")
	assert.ErrorIs(t, err, ledger.ErrUnknownRecipient)

	_, err = runTracker(t, "", "--config", path, "give-home")
	assert.Error(t, err)
}

func TestGiveHome_NonPositiveAmount(t *testing.T) {
	path := writeConfig(t)

	for _, amount := range []string{"0", "-5"} {
		_, err := runTracker(t, "", "--config", path, "give-home", "--recipient", "mom", "--amount="+amount)
		assert.ErrorIs(t, err, allocator.ErrNoBalance, amount)
	}
}

func TestUndoHome_NothingToUndo(t *testing.T) {
	path := writeConfig(t)

	_, err := runTracker(t, "", "--config", path, "undo-home")
	assert.ErrorIs(t, err, allocator.ErrNothingToUndo)
}

func TestReport_Range(t *testing.T) {
	path := writeConfig(t)

	out, err := runTracker(t, "", "--config", path, "report", "range", "--from", "2024-03-01", "--to", "2024-03-03")
	require.NoError(t, err)
	var r reports.RangeReport
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Len(t, r.Days, 3)

	_, err = runTracker(t, "", "--config", path, "report", "range", "--from", "2024-03-03", "--to", "2024-03-01")
	assert.ErrorIs(t, err, reports.ErrBadRange)
}

func TestReport_Period(t *testing.T) {
	path := writeConfig(t)

	_, err := runTracker(t, "", "--config", path, "report", "period", "month")
	assert.NoError(t, err)

	_, err = runTracker(t, "", "--config", path, "report", "period", "decade")
	assert.ErrorIs(t, err, reports.ErrUnknownPeriod)
}

func TestReport_Monthly(t *testing.T) {
	path := writeConfig(t)

	out, err := runTracker(t, "", "--config", path, "report", "monthly", "--month", "2024-02")
	require.NoError(t, err)
	var r reports.MonthlyReport
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, ledger.Month("2024-02"), r.Month)
}

func TestMigrate_MemoryHasNoSchema(t *testing.T) {
	path := writeConfig(t)

	_, err := runTracker(t, "", "--config", path, "migrate")
	assert.Error(t, err)
}

func TestEventsTail_NeedsKafka(t *testing.T) {
	path := writeConfig(t)

	_, err := runTracker(t, "", "--config", path, "events", "tail")
	assert.Error(t, err)
}

func TestConfig_MissingFile(t *testing.T) {
	_, err := runTracker(t, "", "--config", filepath.Join(t.TempDir(), "absent.yaml"), "summary")
	assert.Error(t, err)
}
