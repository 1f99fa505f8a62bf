package userdata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/agentx-labs/seltrack/internal/platform"
)

// CheckState validates the directory and permissions of the state file at
// path. When fix is true, it attempts to repair issues.
func CheckState(w io.Writer, path string, fix bool) error {
	if path == "" {
		p, err := GetStatePath()
		if err != nil {
			return err
		}
		path = p
	}

	fmt.Fprintln(w, "State check:")
	checkDirWithPerm(w, filepath.Dir(path), DirPermSecure, fix)
	checkFileWithPerm(w, path, FilePermSecure, fix)
	return nil
}

func checkDirWithPerm(w io.Writer, path string, expectedPerm os.FileMode, fix bool) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		if fix {
			if mkErr := os.MkdirAll(path, expectedPerm); mkErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not create %s: %v\n", path, mkErr)
				return
			}
			platform.Chmod(path, expectedPerm)
			fmt.Fprintf(w, "  [FIX ] Created %s with %o\n", path, expectedPerm)
		}
		return
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	}
	if !info.IsDir() {
		fmt.Fprintf(w, "  [WARN] %s exists but is not a directory\n", path)
		return
	}
	checkPerm(w, path, info.Mode().Perm(), expectedPerm, fix)
}

func checkFileWithPerm(w io.Writer, path string, expectedPerm os.FileMode, fix bool) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist (written on first save)\n", path)
		return
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	}
	checkPerm(w, path, info.Mode().Perm(), expectedPerm, fix)
}

func checkPerm(w io.Writer, path string, actualPerm, expectedPerm os.FileMode, fix bool) {
	if actualPerm == expectedPerm {
		fmt.Fprintf(w, "  [ OK ] %s (permissions %o)\n", path, actualPerm)
		return
	}
	fmt.Fprintf(w, "  [WARN] %s has permissions %o (expected %o)\n", path, actualPerm, expectedPerm)
	if !fix {
		return
	}
	if chErr := platform.Chmod(path, expectedPerm); chErr != nil {
		fmt.Fprintf(w, "  [FAIL] Could not fix permissions on %s: %v\n", path, chErr)
		return
	}
	fmt.Fprintf(w, "  [FIX ] Fixed permissions on %s to %o\n", path, expectedPerm)
}
