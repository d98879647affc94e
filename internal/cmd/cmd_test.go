package cmd

import (
	"bytes"
	"path/filepath"
	"testing"
)

// executeRoot runs the root command with args against an isolated HOME and
// a config path that does not exist unless the test writes it.
func executeRoot(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SKEL_CONFIG", filepath.Join(home, ".skel", "config.yaml"))
	t.Setenv("SKEL_OUTPUT", "")
	t.Setenv("SKEL_GIT_INIT", "")
	t.Setenv("SKEL_LOG_TIMESTAMPS", "")

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err = root.Execute()
	return out.String(), errOut.String(), err
}
