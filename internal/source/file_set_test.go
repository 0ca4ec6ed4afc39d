package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetAddAndGet(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.AddVirtual("A.java", []byte("class A {}\n"))
	if id1 != 0 {
		t.Fatalf("first FileID = %d, want 0", id1)
	}
	id2 := fs.AddVirtual("B.java", []byte("class B {}\n"))
	if id2 != 1 {
		t.Fatalf("second FileID = %d, want 1", id2)
	}
	if fs.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", fs.Len())
	}

	a := fs.Get(id1)
	if a.Path != "A.java" || string(a.Content) != "class A {}\n" {
		t.Errorf("Get(%d) = %q %q", id1, a.Path, a.Content)
	}
	if a.Flags&FileVirtual == 0 {
		t.Error("AddVirtual should set FileVirtual")
	}
	if a.Hash == fs.Get(id2).Hash {
		t.Error("distinct contents should hash differently")
	}
}

func TestFileSetReAddKeepsBothVersions(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("T.java", []byte("class T {}\n"), 0)
	id2 := fs.Add("T.java", []byte("class T { int x; }\n"), 0)
	if id1 == id2 {
		t.Fatal("re-adding a path must mint a fresh FileID")
	}

	latest, ok := fs.GetLatest("T.java")
	if !ok || latest != id2 {
		t.Errorf("GetLatest = %d, %v; want %d, true", latest, ok, id2)
	}
	if string(fs.Get(id1).Content) != "class T {}\n" {
		t.Error("old version should stay readable under its old ID")
	}

	byPath, ok := fs.GetByPath("T.java")
	if !ok || byPath.ID != id2 {
		t.Errorf("GetByPath returned ID %d, want %d", byPath.ID, id2)
	}
}

func TestFileSetLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Crlf.java")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("class C {\r\n}\r\n")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "class C {\n}\n" {
		t.Errorf("content = %q, want BOM stripped and CRLF rewritten", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Error("FileHadBOM should be set")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("FileNormalizedCRLF should be set")
	}
}

func TestFileSetLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "Nope.java")); err == nil {
		t.Fatal("Load of a missing file should fail")
	}
}

func TestFileSetCharsetDecoding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Latin.java")
	// "caf\xE9" is "café" in ISO-8859-1.
	if err := os.WriteFile(path, []byte("// caf\xE9\nclass L {}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	if err := fs.SetCharset("ISO-8859-1"); err != nil {
		t.Fatalf("SetCharset: %v", err)
	}
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "// café\nclass L {}\n" {
		t.Errorf("content = %q, want UTF-8 decoded text", f.Content)
	}
	if f.Flags&FileTranscoded == 0 {
		t.Error("FileTranscoded should be set")
	}
}

func TestFileSetCharsetNames(t *testing.T) {
	tests := []struct {
		name    string
		charset string
		wantErr bool
	}{
		{"empty means utf-8", "", false},
		{"utf-8 alias", "UTF-8", false},
		{"latin-1", "ISO-8859-1", false},
		{"windows codepage", "windows-1252", false},
		{"nonsense", "KOI-900", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewFileSet()
			err := fs.SetCharset(tt.charset)
			if (err != nil) != tt.wantErr {
				t.Errorf("SetCharset(%q) error = %v, wantErr %v", tt.charset, err, tt.wantErr)
			}
		})
	}
}

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("R.java", []byte("class R {\n  int x;\n}\n"))

	start, end := fs.Resolve(Span{File: id, Start: 12, End: 17})
	if start != (LineCol{Line: 2, Col: 3}) {
		t.Errorf("start = %+v, want line 2 col 3", start)
	}
	if end != (LineCol{Line: 2, Col: 8}) {
		t.Errorf("end = %+v, want line 2 col 8", end)
	}
	if got := fs.ResolveStart(Span{File: id, Start: 12, End: 17}); got != start {
		t.Errorf("ResolveStart = %+v, want %+v", got, start)
	}
}

func TestFileGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("G.java", []byte("class G {\n  int x;\n}"))
	f := fs.Get(id)

	tests := []struct {
		name string
		line uint32
		want string
	}{
		{"first line", 1, "class G {"},
		{"middle line", 2, "  int x;"},
		{"last line without newline", 3, "}"},
		{"zero is out of range", 0, ""},
		{"past the end", 4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.GetLine(tt.line); got != tt.want {
				t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestFormatPath(t *testing.T) {
	long := filepath.Join(string(filepath.Separator)+"home", "dev", "project", "src", "main", "java", "com", "example", "Account.java")
	f := &File{Path: long}

	if got := f.FormatPath("basename", ""); got != "Account.java" {
		t.Errorf("basename = %q", got)
	}
	if got := f.FormatPath("auto", ""); got != "Account.java" {
		t.Errorf("auto should shorten long absolute paths, got %q", got)
	}

	short := &File{Path: "Account.java"}
	if got := short.FormatPath("auto", ""); got != "Account.java" {
		t.Errorf("auto should keep short relative paths, got %q", got)
	}
	if got := short.FormatPath("unknown-mode", ""); got != "Account.java" {
		t.Errorf("unknown mode should fall back to the stored path, got %q", got)
	}
}

func TestFormatPathRelative(t *testing.T) {
	base := t.TempDir()
	f := &File{Path: filepath.Join(base, "src", "A.java")}

	got := f.FormatPath("relative", base)
	want := filepath.Join("src", "A.java")
	if got != want {
		t.Errorf("relative = %q, want %q", got, want)
	}
}
