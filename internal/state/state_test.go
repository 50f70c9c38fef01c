package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marko-lisica/popup/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Content: &config.WebviewContent{URL: "https://example.com"},
		Window:  config.DefaultWindowConfig(),
	}
}

func TestStore_ConfigBeforeSet(t *testing.T) {
	s := NewStore()

	_, err := s.Config()
	assert.ErrorIs(t, err, ErrNoConfig)
}

func TestStore_SetThenConfig(t *testing.T) {
	s := NewStore()
	cfg := testConfig()

	require.NoError(t, s.Set(cfg))

	got, err := s.Config()
	require.NoError(t, err)
	assert.Same(t, cfg, got)
}

func TestStore_SetTwice(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.Set(testConfig()))
	assert.ErrorIs(t, s.Set(testConfig()), ErrAlreadyLoaded)
}

func TestStore_ConcurrentReaders(t *testing.T) {
	s := NewStore()
	cfg := testConfig()
	require.NoError(t, s.Set(cfg))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, err := s.Config()
				assert.NoError(t, err)
				assert.Same(t, cfg, got)
			}
		}()
	}
	wg.Wait()
}
