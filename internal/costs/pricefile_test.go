package costs

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePriceFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prices.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadPriceOverrides(t *testing.T) {
	t.Run("adds a new model row", func(t *testing.T) {
		path := writePriceFile(t, `
acme-reviewer-v2:
  input_per_mtok: 2.00
  output_per_mtok: 8.00
`)
		require.NoError(t, LoadPriceOverrides(path))
		t.Cleanup(func() {
			priceMu.Lock()
			delete(priceTable, "acme-reviewer-v2")
			priceMu.Unlock()
		})

		got := EstimateCost("acme-reviewer-v2", 1_000_000)
		assert.InDelta(t, 0.6*2.00+0.4*8.00, got, 1e-9)
	})

	t.Run("replaces an existing row", func(t *testing.T) {
		priceMu.RLock()
		old := priceTable["gemini-2.5-pro"]
		priceMu.RUnlock()
		t.Cleanup(func() {
			priceMu.Lock()
			priceTable["gemini-2.5-pro"] = old
			priceMu.Unlock()
		})

		path := writePriceFile(t, `
gemini-2.5-pro:
  input_per_mtok: 1.00
  output_per_mtok: 4.00
`)
		require.NoError(t, LoadPriceOverrides(path))

		got := EstimateCost("gemini-2.5-pro", 1_000_000)
		assert.InDelta(t, 0.6*1.00+0.4*4.00, got, 1e-9)
	})

	t.Run("default key replaces the fallback row", func(t *testing.T) {
		priceMu.RLock()
		old := defaultPrice
		priceMu.RUnlock()
		t.Cleanup(func() {
			priceMu.Lock()
			defaultPrice = old
			priceMu.Unlock()
		})

		path := writePriceFile(t, `
default:
  input_per_mtok: 3.00
  output_per_mtok: 9.00
`)
		require.NoError(t, LoadPriceOverrides(path))

		got := EstimateCost("never-heard-of-it", 1_000_000)
		assert.InDelta(t, 0.6*3.00+0.4*9.00, got, 1e-9)
	})

	t.Run("missing file", func(t *testing.T) {
		err := LoadPriceOverrides(filepath.Join(t.TempDir(), "absent.yml"))
		assert.ErrorContains(t, err, "failed to read price table file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writePriceFile(t, "model: [not: a: mapping")
		err := LoadPriceOverrides(path)
		assert.ErrorContains(t, err, "failed to parse price table file")
	})

	t.Run("reload is safe alongside concurrent estimates", func(t *testing.T) {
		path := writePriceFile(t, `
acme-reviewer-v3:
  input_per_mtok: 1.00
  output_per_mtok: 1.00
`)
		t.Cleanup(func() {
			priceMu.Lock()
			delete(priceTable, "acme-reviewer-v3")
			priceMu.Unlock()
		})

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				assert.NoError(t, LoadPriceOverrides(path))
			}()
			go func() {
				defer wg.Done()
				for range 100 {
					EstimateCost("gemini-2.5-flash", 1_000)
				}
			}()
		}
		wg.Wait()
	})
}
