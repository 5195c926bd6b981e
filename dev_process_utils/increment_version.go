// dev_process_utils/increment_version.go
package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	pflag "github.com/spf13/pflag"
)

// versionLine matches: const Version = "major.minor.patch"
var versionLine = regexp.MustCompile(`^const Version\s*=\s*(['"]?)(\d+\.\d+\.)(\d+)(['"]?.*)$`)

var errVersionNotFound = errors.New("const Version not found")

// bumpPatch increments the patch number of every `const Version` line in
// content and returns the result together with the new version string.
func bumpPatch(content string) (string, string, error) {
	lines := strings.Split(content, "\n")
	newVersion := ""
	for i, line := range lines {
		matches := versionLine.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		quote, prePatch, patchStr, rest := matches[1], matches[2], matches[3], matches[4]
		patch, err := strconv.Atoi(patchStr)
		if err != nil {
			return "", "", fmt.Errorf("invalid patch number %q: %w", patchStr, err)
		}
		newVersion = fmt.Sprintf("%s%d", prePatch, patch+1)
		lines[i] = fmt.Sprintf("const Version = %s%s%s", quote, newVersion, rest)
	}
	if newVersion == "" {
		return "", "", errVersionNotFound
	}
	return strings.Join(lines, "\n"), newVersion, nil
}

func updateVersionInFile(versionFile string) (string, error) {
	content, err := os.ReadFile(versionFile)
	if err != nil {
		return "", fmt.Errorf("error reading '%s': %w", versionFile, err)
	}
	updated, newVersion, err := bumpPatch(string(content))
	if err != nil {
		return "", fmt.Errorf("%s: %w", versionFile, err)
	}
	if err := os.WriteFile(versionFile, []byte(updated), 0644); err != nil {
		return "", fmt.Errorf("could not write to '%s': %w", versionFile, err)
	}
	return newVersion, nil
}

func main() {
	versionFile := pflag.StringP("file", "f", "cmd/dirstructure/main.go", "Go file holding the Version constant.")
	pflag.Parse()

	newVersion, err := updateVersionInFile(*versionFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Version updated to %s in %s\n", newVersion, *versionFile)
}
