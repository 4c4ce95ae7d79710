package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/comfykit/comfykit/pkg/comfykit/config"
	"github.com/comfykit/comfykit/pkg/util/downloader"
	"github.com/comfykit/comfykit/pkg/util/log"
	"github.com/pkg/errors"
)

// ConfigLoader is the base interface for loading and resolving configs
type ConfigLoader interface {
	// Load locates the source and parses it into a config document
	Load(ctx context.Context, source string) (*config.Config, error)

	// Resolve flattens the parent chain of the given document
	Resolve(ctx context.Context, doc *config.Config) (*config.Config, error)

	// Resolved loads the source and resolves it in one step
	Resolved(ctx context.Context, source string) (*config.Config, error)

	// ConfigDir returns the directory named configs are resolved against
	ConfigDir() string

	// Names lists the names of all configs in the config directory
	Names() ([]string, error)
}

type configLoader struct {
	configDir  string
	downloader downloader.Downloader

	cache map[string]*config.Config
	log   log.Logger
}

// NewConfigLoader creates a new config loader for the given config directory
func NewConfigLoader(configDir string, log log.Logger) ConfigLoader {
	return &configLoader{
		configDir:  configDir,
		downloader: downloader.NewDownloader(log),
		cache:      map[string]*config.Config{},
		log:        log,
	}
}

// ConfigDir implements interface
func (l *configLoader) ConfigDir() string {
	return l.configDir
}

// Load locates source in this priority order: explicit url, explicit file
// path, a name matched against the config directory, a path relative to the
// working directory
func (l *configLoader) Load(ctx context.Context, source string) (*config.Config, error) {
	if cached, ok := l.cache[source]; ok {
		return cached.Clone(), nil
	}

	data, err := l.read(ctx, source)
	if err != nil {
		return nil, err
	}

	doc, err := parseConfig(data, source)
	if err != nil {
		return nil, err
	}

	l.cache[source] = doc
	return doc.Clone(), nil
}

func (l *configLoader) read(ctx context.Context, source string) ([]byte, error) {
	if isURL(source) {
		l.log.Debugf("Fetching config from %s", source)
		data, err := l.downloader.Get(ctx, source)
		if err != nil {
			return nil, errors.Wrap(err, "fetch remote config")
		}

		return data, nil
	}

	if filepath.IsAbs(source) {
		data, err := os.ReadFile(source)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &ConfigNotFoundError{Source: source}
			}

			// the file exists but cannot be read, don't mask that as absence
			return nil, errors.Wrapf(err, "read config %s", source)
		}

		return data, nil
	}

	namedPath := filepath.Join(l.configDir, configName(source)+".yaml")
	if data, err := os.ReadFile(namedPath); err == nil {
		return data, nil
	}

	if data, err := os.ReadFile(source); err == nil {
		return data, nil
	}

	return nil, &ConfigNotFoundError{Source: source}
}

// Resolved is a convenience method that loads and resolves a source
func (l *configLoader) Resolved(ctx context.Context, source string) (*config.Config, error) {
	doc, err := l.Load(ctx, source)
	if err != nil {
		return nil, err
	}

	return l.Resolve(ctx, doc)
}

// Names implements interface
func (l *configLoader) Names() ([]string, error) {
	entries, err := os.ReadDir(l.configDir)
	if err != nil {
		return nil, errors.Wrap(err, "read config directory")
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".yaml") || strings.HasSuffix(entry.Name(), ".yml") {
			names = append(names, configName(entry.Name()))
		}
	}

	return names, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// configName converts a source string into the bare config name
func configName(source string) string {
	name := filepath.Base(source)
	name = strings.TrimSuffix(name, ".yaml")
	name = strings.TrimSuffix(name, ".yml")
	return name
}
