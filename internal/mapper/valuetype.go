package mapper

import (
	"fmt"

	"github.com/verdanthealth/trackrules/internal/store"
	"github.com/verdanthealth/trackrules/internal/types"
	"go.uber.org/zap"
)

// valueTypeCache memoizes data element value-type lookups for one
// translation session. Explicit compute-if-absent: at most one backing
// store query per key, including for elements that turn out not to exist.
type valueTypeCache struct {
	elements store.DataElementStore
	entries  map[types.UID]types.ValueType
	missing  map[types.UID]bool
}

func newValueTypeCache(elements store.DataElementStore) *valueTypeCache {
	return &valueTypeCache{
		elements: elements,
		entries:  make(map[types.UID]types.ValueType),
		missing:  make(map[types.UID]bool),
	}
}

// resolve returns the declared value type of the data element with the
// given UID. A UID not present in the store fails with
// types.ErrDataElementNotFound: a variable or value cannot be typed
// without its element, and the dangling reference must not be papered
// over with a default.
func (c *valueTypeCache) resolve(uid types.UID) (types.ValueType, error) {
	if vt, ok := c.entries[uid]; ok {
		return vt, nil
	}
	if c.missing[uid] {
		return "", fmt.Errorf("data element %s: %w", uid, types.ErrDataElementNotFound)
	}

	de, found, err := c.elements.DataElementByUID(uid)
	if err != nil {
		return "", fmt.Errorf("looking up data element %s: %w", uid, err)
	}
	if !found {
		c.missing[uid] = true
		zap.L().Error("data element not found", zap.String("dataElement", string(uid)))
		return "", fmt.Errorf("data element %s: %w", uid, types.ErrDataElementNotFound)
	}

	c.entries[uid] = de.ValueType
	return de.ValueType, nil
}
