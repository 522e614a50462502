package redis

import (
	"fmt"

	"github.com/mcoot/imposter/internal/model"
)

// Key prefix for all imposter data
const keyPrefix = "imposter"

// categoryIndexKey returns the Redis key for the ordered LIST of category ids
func categoryIndexKey() string {
	return fmt.Sprintf("%s:wordbank:categories", keyPrefix)
}

// categoryKey returns the Redis key for a single category
func categoryKey(id model.CategoryID) string {
	return fmt.Sprintf("%s:wordbank:category:%s", keyPrefix, id)
}

// preferencesKey returns the Redis key for the remembered setup
func preferencesKey() string {
	return fmt.Sprintf("%s:preferences", keyPrefix)
}
