package cmd

import (
	"testing"

	"github.com/samzong/gsc/internal/workflow"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, "dev", Version)
	assert.Equal(t, "unknown", BuildTime)

	assert.NotNil(t, versionCmd)
	assert.Equal(t, "version", versionCmd.Use)
	assert.Equal(t, "Show gsc version information", versionCmd.Short)
}

func TestRootCommand(t *testing.T) {
	assert.NotNil(t, rootCmd)
	assert.Equal(t, "gsc [files...]", rootCmd.Use)
	assert.Equal(t, "gsc - Git Sync Commit", rootCmd.Short)
	assert.Contains(t, rootCmd.Long, "guided prompts")
	assert.True(t, rootCmd.SilenceErrors)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestInitConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfgFile = ""
	assert.NotPanics(t, func() {
		initConfig()
	})
}

func TestHandleErrors(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, handleErrors(nil))
	})

	t.Run("no pending changes exits silently non-zero", func(t *testing.T) {
		err := handleErrors(workflow.ErrNoPendingChanges)
		assert.Error(t, err)
		assert.True(t, IsSilentExit(err))
	})

	t.Run("merge conflict exits silently non-zero", func(t *testing.T) {
		err := handleErrors(workflow.ErrMergeConflict)
		assert.Error(t, err)
		assert.True(t, IsSilentExit(err))
	})

	t.Run("canceled prompt exits silently non-zero", func(t *testing.T) {
		err := handleErrors(workflow.ErrPromptCanceled)
		assert.Error(t, err)
		assert.True(t, IsSilentExit(err))
	})

	t.Run("backend failures pass through", func(t *testing.T) {
		err := handleErrors(assert.AnError)
		assert.ErrorIs(t, err, assert.AnError)
		assert.False(t, IsSilentExit(err))
	})
}

func TestValidateConfigKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
	}{
		{name: "remote", key: "remote", value: "upstream", wantErr: false},
		{name: "default type", key: "default_type", value: "fix", wantErr: false},
		{name: "suggest model", key: "suggest.model", value: "gpt-4o", wantErr: false},
		{name: "unknown key", key: "color", value: "red", wantErr: true},
		{name: "empty value", key: "remote", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfigKey(tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
