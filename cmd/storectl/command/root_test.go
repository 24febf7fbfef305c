package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"migrate", "up"},
		{"migrate", "down"},
		{"migrate", "version"},
		{"seed"},
	} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	flag := migrateDownCmd.Flags().Lookup("steps")
	require.NotNil(t, flag)
	assert.Equal(t, "1", flag.DefValue)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("database-url"))
}

func TestMigrateDownRejectsZeroSteps(t *testing.T) {
	rootCmd.SetArgs([]string{"migrate", "down", "--steps", "0"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		downSteps = 1
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--steps")
}
