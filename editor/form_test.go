package editor_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/headercommenter/editor"
	"go.jacobcolvin.com/headercommenter/header"
)

func TestFormRoundTrip(t *testing.T) {
	t.Parallel()

	tests := map[string]*header.Record{
		"template": editor.Template(),
		"empty":    header.NewRecord(),
		"special characters": {
			TeamName:    "Team: #1",
			Website:     "https://example.com/a?b=c",
			Description: []string{"Uses 'quotes' and \"double quotes\".", "- not a list"},
			Authors: []header.Author{
				{Percent: "33.3", Name: "Zoë O'Neil", Email: "z.oneil", Points: []string{"[bracketed]", "a: b"}},
			},
		},
	}

	for name, rec := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			b, err := editor.EncodeForm(rec)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(b, []byte("# ")))

			got, err := editor.DecodeForm(b)
			require.NoError(t, err)

			if diff := cmp.Diff(rec, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("form round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeFormErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]string{
		"unknown key":  "team: a\ncolour: red\n",
		"wrong type":   "authors: nope\n",
		"invalid yaml": "team: [\n",
	}

	for name, input := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := editor.DecodeForm([]byte(input))
			require.ErrorIs(t, err, editor.ErrForm)
		})
	}
}

func TestEditorCommand(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	assert.Equal(t, editor.DefaultEditor, editor.EditorCommand())

	t.Setenv("EDITOR", "nano")
	assert.Equal(t, "nano", editor.EditorCommand())

	t.Setenv("VISUAL", "code --wait")
	assert.Equal(t, "code --wait", editor.EditorCommand())
}

func TestFormCommand(t *testing.T) {
	t.Parallel()

	f := &editor.Form{Path: "/tmp/form.yaml"}

	cmd := f.Command(context.Background(), "code --wait")
	assert.Equal(t, []string{"code", "--wait", "/tmp/form.yaml"}, cmd.Args)

	cmd = f.Command(context.Background(), "  ")
	assert.Equal(t, []string{editor.DefaultEditor, "/tmp/form.yaml"}, cmd.Args)
}

func TestEditForm(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the editor")
	}

	script := filepath.Join(t.TempDir(), "fake-editor")
	require.NoError(t, os.WriteFile(script, []byte(
		"#!/bin/sh\nsed 's/team: Team Name/team: Renamed/' \"$1\" > \"$1.tmp\" && mv \"$1.tmp\" \"$1\"\n",
	), 0o755))

	var stderr strings.Builder

	got, err := editor.EditForm(t.Context(), editor.Template(), script, nil, nil, &stderr)
	require.NoError(t, err, stderr.String())
	assert.Equal(t, "Renamed", got.TeamName)
	assert.Len(t, got.Authors, 2)
}

func TestEditFormEditorFails(t *testing.T) {
	t.Parallel()

	_, err := editor.EditForm(t.Context(), header.NewRecord(),
		filepath.Join(t.TempDir(), "no-such-editor"), nil, nil, nil)
	require.ErrorIs(t, err, editor.ErrForm)
}

func TestFormLifecycle(t *testing.T) {
	t.Parallel()

	f, err := editor.NewForm(editor.Template())
	require.NoError(t, err)

	got, err := f.Read()
	require.NoError(t, err)
	assert.Equal(t, "Team Name", got.TeamName)

	require.NoError(t, f.Close())

	_, err = os.Stat(f.Path)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = f.Read()
	require.ErrorIs(t, err, editor.ErrForm)
}
