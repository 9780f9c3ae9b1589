// Package iocache is for caching I/O calls.
package iocache

import (
	"sync"

	"github.com/huangsam/chlog/internal/contract"
)

// CacheStoreManager manages the CacheStore instance behind the CLI.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	changelog    contract.CacheStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetChangelogStore returns the changelog CacheStore.
func (mgr *CacheStoreManager) GetChangelogStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.changelog
}
