/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package kindpath

import (
	"encoding"
	"errors"
	"strings"
	"testing"

	"dirpx.dev/errkind"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Error", "error"},
		{"DatabaseError", "database_error"},
		{"HTTPError", "http_error"},
		{"IOError", "io_error"},
		{"dbError", "db_error"},
		{"K3", "k3"},
		{"fs.PathError", "fs_path_error"},
		{"errors.errorString", "errors_error_string"},
		{"404Error", "x_404_error"},
		{"Bad--Name__", "bad_name"},
		{"", ""},
		{"...", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Segment(tt.in); got != tt.want {
				t.Fatalf("Segment(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOf(t *testing.T) {
	got := Of([]string{"QueryError", "DatabaseError", "Error"})
	if want := Path("error.database_error.query_error"); got != want {
		t.Fatalf("Of() = %q, want %q", got, want)
	}
	if err := Validate(got); err != nil {
		t.Fatalf("Validate(%q) unexpected error: %v", got, err)
	}
	if got := Of(nil); got != Empty {
		t.Fatalf("Of(nil) = %q, want Empty", got)
	}
}

func TestOfKindAndError(t *testing.T) {
	db := errkind.New("DatabaseError", nil)
	query := db.Extend("QueryError")
	server := errkind.New("ServerError", nil)

	if got, want := OfKind(query), Path("error.database_error.query_error"); got != want {
		t.Fatalf("OfKind() = %q, want %q", got, want)
	}
	if got := OfKind(nil); got != Empty {
		t.Fatalf("OfKind(nil) = %q, want Empty", got)
	}

	// Causes do not contribute to the path.
	e := server.Must(query.Must("boom"))
	if got, want := OfError(e), Path("error.server_error"); got != want {
		t.Fatalf("OfError() = %q, want %q", got, want)
	}
	if got, want := OfError(errors.New("x")), Path("error.errors_error_string"); got != want {
		t.Fatalf("OfError(foreign) = %q, want %q", got, want)
	}
	if got := OfError(nil); got != Empty {
		t.Fatalf("OfError(nil) = %q, want Empty", got)
	}
	if got, want := OfKind(errkind.Base), Path("error"); got != want {
		t.Fatalf("OfKind(Base) = %q, want %q", got, want)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim+lower", "  Error.Database_Error  ", "error.database_error"},
		{"slash to dot", "error/database_error", "error.database_error"},
		{"dash to underscore", "error.query-error", "error.query_error"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	valid := []struct {
		in   string
		want Path
	}{
		{"error", "error"},
		{"Error/Database_Error", "error.database_error"},
		{"error.database_error.query-x", "error.database_error.query_x"},
		{"", Empty},
	}
	for _, tt := range valid {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	invalid := []struct {
		in   string
		want error
	}{
		{"error..database", ErrPathInvalidFormat},
		{"1error", ErrPathInvalidFormat},
		{"error.", ErrPathInvalidFormat},
		{".error", ErrPathInvalidFormat},
		{"error.*", ErrPathInvalidFormat},
		{"er", ErrPathInvalidLength},
		{strings.Repeat("a.", MaxSegments) + "a", ErrPathInvalidLength},
	}
	for _, tt := range invalid {
		got, err := Parse(tt.in)
		if !errors.Is(err, tt.want) {
			t.Fatalf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
		}
		if got != Empty {
			t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
		}
	}
}

func TestMustParse(t *testing.T) {
	if got := MustParse("error.database_error"); got != "error.database_error" {
		t.Fatalf("MustParse = %q", got)
	}
	for _, in := range []string{"", "error..x"} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Fatalf("MustParse(%q) must panic", in)
				}
			}()
			_ = MustParse(in)
		}()
	}
}

func TestPath_Segments(t *testing.T) {
	got := Path("error.database_error.query_error").Segments()
	want := []string{"error", "database_error", "query_error"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("Segments() = %v, want %v", got, want)
	}
	if Empty.Segments() != nil {
		t.Fatal("Empty.Segments() must be nil")
	}
}

func TestPath_HasPrefix(t *testing.T) {
	p := Path("error.database_error.query_error")
	tests := []struct {
		prefix Path
		want   bool
	}{
		{Empty, true},
		{"error", true},
		{"error.database_error", true},
		{p, true},
		{"error.database", false},
		{"error.database_error.query_error.x", false},
	}
	for _, tt := range tests {
		if got := p.HasPrefix(tt.prefix); got != tt.want {
			t.Fatalf("HasPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestText(t *testing.T) {
	var p Path
	var u encoding.TextUnmarshaler = &p
	if err := u.UnmarshalText([]byte("  Error/Server_Error ")); err != nil {
		t.Fatalf("UnmarshalText unexpected error: %v", err)
	}
	if p != "error.server_error" {
		t.Fatalf("UnmarshalText = %q", p)
	}

	b, err := p.MarshalText()
	if err != nil || string(b) != "error.server_error" {
		t.Fatalf("MarshalText = %q, %v", b, err)
	}

	if _, err := Path("Bad..Path").MarshalText(); err == nil {
		t.Fatal("MarshalText must reject invalid paths")
	}
	if err := u.UnmarshalText([]byte("bad..path")); err == nil {
		t.Fatal("UnmarshalText must reject invalid paths")
	}
}
