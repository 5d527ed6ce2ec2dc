package provider

import (
	"fmt"
	"sync"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/api"
)

// Creator is a function that builds a transcriber from configuration.
// The map carries the provider's "auth" and "settings" sections.
type Creator func(config map[string]interface{}) (api.Transcriber, error)

var (
	providerRegistry = make(map[string]Creator)
	registryMutex    sync.RWMutex
)

// Register registers a provider creator function. Providers call this
// from init() so a blank import is enough to make them available.
func Register(providerType string, creator Creator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	providerRegistry[providerType] = creator
}

// GetCreator returns the creator function for a provider type
func GetCreator(providerType string) (Creator, error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	creator, ok := providerRegistry[providerType]
	if !ok {
		return nil, fmt.Errorf("provider type %s not registered", providerType)
	}
	return creator, nil
}

// ListRegistered returns all registered provider types
func ListRegistered() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	var providers []string
	for providerType := range providerRegistry {
		providers = append(providers, providerType)
	}
	return providers
}
