package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgup/cmd/pkgup/commands"
	"go.trai.ch/pkgup/internal/app"
	"go.trai.ch/pkgup/internal/build"
)

type mockApp struct {
	updateFunc func(ctx context.Context, dir string, opts app.UpdateOptions) error
}

func (m *mockApp) Update(ctx context.Context, dir string, opts app.UpdateOptions) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, dir, opts)
	}
	return nil
}

func TestCommands_Update(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.UpdateOptions
		called := false

		mock := &mockApp{
			updateFunc: func(_ context.Context, dir string, opts app.UpdateOptions) error {
				assert.Equal(t, ".", dir)
				capturedOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{
			"update", "pkg-core@2.0.0",
			"--next", "--force", "--dry-run",
			"--registry", "https://registry.example.com",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, []string{"pkg-core@2.0.0"}, capturedOpts.Packages)
		assert.True(t, capturedOpts.Next)
		assert.True(t, capturedOpts.Force)
		assert.True(t, capturedOpts.DryRun)
		assert.Equal(t, "https://registry.example.com", capturedOpts.Registry)
	})

	t.Run("wires migrate-only flags", func(t *testing.T) {
		var capturedOpts app.UpdateOptions

		mock := &mockApp{
			updateFunc: func(_ context.Context, _ string, opts app.UpdateOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{
			"update", "pkg-core",
			"--migrate-only", "--from", "1.2.0", "--to", "1.4.0",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, capturedOpts.MigrateOnly)
		assert.Equal(t, "1.2.0", capturedOpts.From)
		assert.Equal(t, "1.4.0", capturedOpts.To)
	})

	t.Run("no arguments runs report mode", func(t *testing.T) {
		var capturedOpts app.UpdateOptions
		called := false

		mock := &mockApp{
			updateFunc: func(_ context.Context, _ string, opts app.UpdateOptions) error {
				capturedOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"update"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Empty(t, capturedOpts.Packages)
		assert.False(t, capturedOpts.All)
	})

	t.Run("returns error on update failure", func(t *testing.T) {
		mock := &mockApp{
			updateFunc: func(_ context.Context, _ string, _ app.UpdateOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"update", "pkg-core"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("configure callback receives global flags", func(t *testing.T) {
		var gotVerbose, gotJSON bool

		mock := &mockApp{}
		cli := commands.New(mock, func(verbose, json bool) {
			gotVerbose = verbose
			gotJSON = json
		})
		cli.SetArgs([]string{"update", "--verbose", "--json"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, gotVerbose)
		assert.True(t, gotJSON)
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
