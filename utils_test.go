package timeago

import (
	"errors"
	"io/fs"
	"reflect"
	"testing"
	"testing/fstest"

	"github.com/snapcore/go-timeago/lang"
)

func assertEqual(t *testing.T, expected, got string) {
	t.Helper()
	if expected != got {
		t.Logf("%q != %q", expected, got)
		t.Fail()
	}
}

func assertDeepEqual(t *testing.T, expected, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(expected, got) {
		t.Logf("%v != %v", expected, got)
		t.Fail()
	}
}

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertLocaleNotFound(t *testing.T, err error) {
	t.Helper()
	if !errors.Is(err, ErrLocaleNotFound) {
		t.Fatalf("expected ErrLocaleNotFound, got %v", err)
	}
}

// copyLocales builds a directory holding bundled catalogues under new
// names, keyed by target name.
func copyLocales(t *testing.T, names map[string]string) fstest.MapFS {
	t.Helper()
	fsys := fstest.MapFS{}
	for target, source := range names {
		data, err := fs.ReadFile(lang.FS, source+".yaml")
		assertNoError(t, err)
		fsys[target+".yaml"] = &fstest.MapFile{Data: data}
	}
	return fsys
}
