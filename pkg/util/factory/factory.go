package factory

import (
	"github.com/comfykit/comfykit/pkg/comfykit/config/loader"
	"github.com/comfykit/comfykit/pkg/comfykit/provision"
	"github.com/comfykit/comfykit/pkg/util/log"
)

// Factory is the main interface for client creations
type Factory interface {
	// NewConfigLoader creates a new config loader
	NewConfigLoader(configDir string, log log.Logger) loader.ConfigLoader

	// NewProvisioner creates a new provisioner
	NewProvisioner(options provision.Options, log log.Logger) *provision.Provisioner

	// GetLog retrieves the log instance
	GetLog() log.Logger
}

// DefaultFactoryImpl is the default factory implementation
type DefaultFactoryImpl struct{}

// DefaultFactory returns the default factory implementation
func DefaultFactory() Factory {
	return &DefaultFactoryImpl{}
}

// NewConfigLoader creates a new config loader
func (f *DefaultFactoryImpl) NewConfigLoader(configDir string, log log.Logger) loader.ConfigLoader {
	return loader.NewConfigLoader(configDir, log)
}

// NewProvisioner creates a new provisioner
func (f *DefaultFactoryImpl) NewProvisioner(options provision.Options, log log.Logger) *provision.Provisioner {
	return provision.New(options, log)
}

// GetLog retrieves the log instance
func (f *DefaultFactoryImpl) GetLog() log.Logger {
	return log.GetInstance()
}
