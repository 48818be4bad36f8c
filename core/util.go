package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DateLayout is the format of every date field exchanged with the backend.
const DateLayout = "2006-01-02"

var NowFunc = time.Now // mockable

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// Today returns the current date formatted with DateLayout.
func Today() string {
	return NowFunc().Format(DateLayout)
}

// CurrentYear returns the current calendar year.
func CurrentYear() int {
	return NowFunc().Year()
}

// ProjectRoot tries to find the directory holding go.mod.
// go-test changes the working directory to the test package being run during tests,
// so config files have to be looked up from the module root.
// The working directory is returned when no go.mod is found (e.g. deployed binaries).
func ProjectRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	currDir := wd
	for {
		if fi, err := os.Stat(filepath.Join(currDir, "go.mod")); err == nil && !fi.IsDir() {
			return currDir
		}
		newDir := filepath.Dir(currDir)
		if newDir == string(os.PathSeparator) || newDir == currDir {
			return wd
		}
		currDir = newDir
	}
}
