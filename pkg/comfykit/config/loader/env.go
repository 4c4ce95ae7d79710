package loader

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/comfykit/comfykit/pkg/comfykit/config"
	"github.com/comfykit/comfykit/pkg/comfykit/config/constants"
	"github.com/pkg/errors"
	"mvdan.cc/sh/v3/syntax"
)

// Environment projects the resolved config into environment variable
// assignments. Variables that are already set in the process environment are
// respected and not part of the result, the config only fills in what is
// currently absent.
func Environment(resolved *config.Config) map[string]string {
	env := map[string]string{}
	for k, v := range resolved.EnvVars {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}

		env[k] = v
	}

	if _, ok := os.LookupEnv(constants.EnvConfigName); !ok {
		env[constants.EnvConfigName] = resolved.Name
	}

	return env
}

// ApplyEnvironment sets the projected environment on the current process
func ApplyEnvironment(resolved *config.Config) error {
	for k, v := range Environment(resolved) {
		err := os.Setenv(k, v)
		if err != nil {
			return errors.Wrapf(err, "set %s", k)
		}
	}

	return nil
}

// WriteSourceable writes the environment as shell sourceable export lines in
// stable key order
func WriteSourceable(writer io.Writer, env map[string]string) error {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		quoted, err := syntax.Quote(env[k], syntax.LangBash)
		if err != nil {
			return errors.Wrapf(err, "quote value of %s", k)
		}

		_, err = fmt.Fprintf(writer, "export %s=%s\n", k, quoted)
		if err != nil {
			return err
		}
	}

	return nil
}
