package editor_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/headercommenter/editor"
	"go.jacobcolvin.com/headercommenter/header"
	"go.jacobcolvin.com/headercommenter/stringtest"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	messy := stringtest.JoinLF(
		"//   Team Rocket   [rocket.example]",
		"// old-name.cpp",
		"//",
		"// Handles",
		"// input.",
		"//",
		"// AUTHORS",
		"// [60] Jessie Smith (jessie.s\\@digipen.edu)",
		"//  - Input system",
		"// [40%]   James Doe (james.d@digipen.edu)",
		"//    - Rendering",
		"// Copyright (c) 2023 DigiPen, All rights reserved.",
		"int main() {}",
	)

	tcs := map[string]struct {
		input       string
		want        string
		year        int
		wantChanged bool
		noHeader    bool
	}{
		"formatted file is unchanged": {
			input: rocketFile,
			want:  rocketFile,
		},
		"messy header is normalized and keeps its year": {
			input:       messy,
			want:        rocketFile,
			wantChanged: true,
		},
		"explicit year": {
			input:       rocketFile,
			year:        2030,
			want:        rocketFile[:len(rocketHeader)-len("2023 DigiPen, All rights reserved.")] + "2030 DigiPen, All rights reserved.\n\nint main() {}\n",
			wantChanged: true,
		},
		"no header": {
			input:    "int main() {}\n",
			want:     "int main() {}\n",
			noHeader: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, "main.cpp", tc.input)

			res, err := editor.Format(path, header.DefaultStyle(), tc.year)
			require.NoError(t, err)

			assert.Equal(t, tc.want, res.New)
			assert.Equal(t, tc.input, res.Old)
			assert.Equal(t, tc.wantChanged, res.Changed())
			assert.Equal(t, tc.noHeader, res.NoHeader)
			assert.Empty(t, res.Diagnostics)

			require.NoError(t, res.Write())
			assert.Equal(t, tc.want, readFile(t, path))

			// Formatting again changes nothing.
			again, err := editor.Format(path, header.DefaultStyle(), tc.year)
			require.NoError(t, err)
			assert.False(t, again.Changed())
		})
	}
}

func TestFormatDiagnostics(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "a.cpp", stringtest.Commented(
		"T [w]",
		"a.cpp",
		"",
		"AUTHORS",
		"[50 broken",
		"  - orphan",
		"",
		"Copyright (c) 2023 DigiPen, All rights reserved.",
	))

	res, err := editor.Format(path, header.DefaultStyle(), 0)
	require.NoError(t, err)
	require.Len(t, res.Diagnostics, 2)
	require.ErrorIs(t, res.Diagnostics[0], header.ErrMalformedAuthor)
	require.ErrorIs(t, res.Diagnostics[1], header.ErrOrphanPoint)
}

func TestFormatHeaderWithoutAuthors(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "a.cpp", "// Copyright (c) 2020 DigiPen, All rights reserved.\nint x;")

	res, err := editor.Format(path, header.DefaultStyle(), 0)
	require.NoError(t, err)
	assert.True(t, res.Changed())
	assert.Equal(t, stringtest.Commented(
		" []",
		"a.cpp",
		"",
		"",
		"AUTHORS",
		"[%]  (@digipen.edu)",
		"",
		"Copyright (c) 2020 DigiPen, All rights reserved.",
	)+"\n\nint x;\n", res.New)

	// The formatted file matches what a session would save.
	s := editor.NewSession(editor.WithYear(2020))
	require.NoError(t, s.Open(path))

	head, _ := header.Split(res.New)
	assert.Equal(t, head, s.Preview())
}

func TestFormatMissingFile(t *testing.T) {
	t.Parallel()

	_, err := editor.Format("/nonexistent/a.cpp", header.DefaultStyle(), 0)
	require.ErrorIs(t, err, editor.ErrRead)
}

func TestInit(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "widget.h", "\n#pragma once\n")

	res, err := editor.Init(path, header.DefaultStyle(), 2024)
	require.NoError(t, err)
	assert.True(t, res.NoHeader)
	assert.True(t, res.Changed())

	want := stringtest.Commented(
		"Team Name [website]",
		"widget.h",
		"",
		"Description goes here, will automatically wrap at 80 characters when",
		"displaying in the editor. You can use multiple lines for the description.",
		"",
		"AUTHORS",
		"[50%] First Last (first.l@digipen.edu)",
		"  - Contribution description point",
		"[50%] First Last (first.l@digipen.edu)",
		"  - Contribution description point",
		"",
		"Copyright (c) 2024 DigiPen, All rights reserved.",
	) + "\n\n#pragma once\n"
	assert.Equal(t, want, res.New)

	require.NoError(t, res.Write())

	// A second init leaves the file alone.
	again, err := editor.Init(path, header.DefaultStyle(), 2024)
	require.NoError(t, err)
	assert.False(t, again.NoHeader)
	assert.False(t, again.Changed())
}

func TestInitCurrentYear(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "empty.c", "")

	res, err := editor.Init(path, header.DefaultStyle(), 0)
	require.NoError(t, err)
	assert.Contains(t, res.New, "Copyright (c) "+strconv.Itoa(time.Now().Year())+" DigiPen")
	assert.Equal(t, byte('\n'), res.New[len(res.New)-1])
}

func TestTemplate(t *testing.T) {
	t.Parallel()

	rec := editor.Template()
	require.NoError(t, rec.Validate(header.DefaultStyle()))
	assert.Empty(t, rec.Lint(header.DefaultStyle()))

	rec.Authors[0].Points[0] = "changed"
	assert.Equal(t, "Contribution description point", rec.Authors[1].Points[0])
}
