package header_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/headercommenter/header"
	"go.jacobcolvin.com/headercommenter/stringtest"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		rec      *header.Record
		style    func(*header.Style)
		filename string
		want     string
	}{
		"example": {
			rec: &header.Record{
				TeamName:    "Alpha",
				Website:     "alpha.dev",
				Description: []string{"Hello world."},
				Authors: []header.Author{
					{Percent: "100", Name: "Jane Doe", Email: "jane.d", Points: []string{"Did everything"}},
				},
			},
			filename: "foo.h",
			want: stringtest.Commented(
				"Alpha [alpha.dev]",
				"foo.h",
				"",
				"Hello world.",
				"",
				"AUTHORS",
				"[100%] Jane Doe (jane.d@digipen.edu)",
				"  - Did everything",
				"",
				"Copyright (c) 2024 DigiPen, All rights reserved.",
			),
		},
		"empty description keeps the separator": {
			rec: &header.Record{
				TeamName: "Alpha",
				Authors:  []header.Author{{Percent: "100", Name: "A", Email: "a"}},
			},
			filename: "a.c",
			want: stringtest.Commented(
				"Alpha []",
				"a.c",
				"",
				"",
				"AUTHORS",
				"[100%] A (a@digipen.edu)",
				"",
				"Copyright (c) 2024 DigiPen, All rights reserved.",
			),
		},
		"placeholder filename and blank points": {
			rec: &header.Record{
				Authors: []header.Author{
					{Percent: " 50 ", Name: " A ", Email: " a ", Points: []string{"", "  ", " one "}},
					{Percent: "50", Name: "B", Email: "b"},
				},
			},
			want: stringtest.JoinLF(
				"//  []",
				"// filename.ext",
				"//",
				"//",
				"// AUTHORS",
				"// [50%] A (a@digipen.edu)",
				"//   - one",
				"// [50%] B (b@digipen.edu)",
				"//",
				"// Copyright (c) 2024 DigiPen, All rights reserved.",
			),
		},
		"wraps long description": {
			rec: &header.Record{
				TeamName: "T",
				Website:  "w",
				Description: []string{
					strings.Repeat("lorem ", 20) + "end.",
					"Second line.",
				},
				Authors: []header.Author{{Percent: "100", Name: "A", Email: "a"}},
			},
			filename: "x.cpp",
			want: stringtest.Commented(
				"T [w]",
				"x.cpp",
				"",
				strings.TrimSpace(strings.Repeat("lorem ", 12)),
				strings.TrimSpace(strings.Repeat("lorem ", 8))+" end.",
				"Second line.",
				"",
				"AUTHORS",
				"[100%] A (a@digipen.edu)",
				"",
				"Copyright (c) 2024 DigiPen, All rights reserved.",
			),
		},
		"custom style": {
			rec: &header.Record{
				TeamName: "T",
				Website:  "w",
				Authors:  []header.Author{{Percent: "100", Name: "A", Email: "a"}},
			},
			style: func(s *header.Style) {
				s.Domain = "example.com"
				s.Organization = "Example"
				s.EscapeAt = true
			},
			filename: "x.h",
			want: stringtest.Commented(
				"T [w]",
				"x.h",
				"",
				"",
				"AUTHORS",
				`[100%] A (a\@example.com)`,
				"",
				"Copyright (c) 2024 Example, All rights reserved.",
			),
		},
		"no authors renders an empty section": {
			rec:      &header.Record{TeamName: "T", Website: "w"},
			filename: "x.h",
			want: stringtest.Commented(
				"T [w]",
				"x.h",
				"",
				"",
				"AUTHORS",
				"",
				"Copyright (c) 2024 DigiPen, All rights reserved.",
			),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := header.DefaultStyle()
			if tc.style != nil {
				tc.style(&s)
			}

			assert.Equal(t, tc.want, s.Render(tc.rec, tc.filename, 2024))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := map[string]*header.Record{
		"single author": {
			TeamName:    "Alpha",
			Website:     "alpha.dev",
			Description: []string{"Hello world."},
			Authors: []header.Author{
				{Percent: "100", Name: "Jane Doe", Email: "jane.d", Points: []string{"Did everything"}},
			},
		},
		"long description re-flows": {
			TeamName: "Team Rocket",
			Website:  "https://rocket.example",
			Description: []string{
				"This engine component handles input mapping across keyboards, gamepads and " +
					"touch devices, translating raw events into semantic actions consumed by gameplay code.",
				"It also records input for replays!",
				"Is it fast?",
			},
			Authors: []header.Author{
				{Percent: "70", Name: "Jane Doe", Email: "jane.d", Points: []string{"Input mapping", "Replays"}},
				{Percent: "30", Name: "John Roe", Email: "john.r", Points: []string{"Gamepad support"}},
			},
		},
	}

	for name, rec := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			text := header.Render(rec, "input.cpp", 2024)

			got, diags := header.Parse(text)
			assert.Empty(t, diags)

			if diff := cmp.Diff(rec, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}

			// Rendering again is stable.
			assert.Equal(t, text, header.Render(got, "input.cpp", 2024))
		})
	}
}
