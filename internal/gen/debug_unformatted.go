package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output so the template error can be inspected.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	// the .txt suffix keeps the broken file out of the package build
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.txt"

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
