package command

import (
	"context"
	"io"
	"os/exec"

	"mvdan.cc/sh/v3/expand"
)

// Output runs the command in dir with the given environment and returns its stdout
func Output(ctx context.Context, dir string, environ expand.Environ, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = execEnv(environ)
	return cmd.Output()
}

// CombinedOutput runs the command in dir with the given environment and returns
// its combined stdout and stderr
func CombinedOutput(ctx context.Context, dir string, environ expand.Environ, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = execEnv(environ)
	return cmd.CombinedOutput()
}

// Run runs the command in dir and streams stdout and stderr to the given writers
func Run(ctx context.Context, dir string, environ expand.Environ, stdout, stderr io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = execEnv(environ)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Exists checks if the given command is available in the current environment
func Exists(ctx context.Context, environ expand.Environ, name string, args ...string) bool {
	_, err := Output(ctx, "", environ, name, args...)
	return err == nil
}

func execEnv(environ expand.Environ) []string {
	env := []string{}
	environ.Each(func(name string, vr expand.Variable) bool {
		if vr.Exported && vr.Kind == expand.String {
			env = append(env, name+"="+vr.String())
		}
		return true
	})

	return env
}
