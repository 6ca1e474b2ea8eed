package cache

// SQL schemas for cache tables
// All cache tables use "cache_key" as the primary key column for consistency

// TranslationCacheSchema defines the schema for remote translation results
const TranslationCacheSchema = `
CREATE TABLE IF NOT EXISTS translation_cache (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_translation_cached_at ON translation_cache(cached_at);
`

// TranslationTable is the table backing TranslationStore.
const TranslationTable = "translation_cache"

// AllCacheSchemas contains all cache table schemas for easy initialization
var AllCacheSchemas = []string{
	TranslationCacheSchema,
}

// ValidCacheTableNames is the whitelist of allowed cache table names
// Used to prevent SQL injection when interpolating table names
var ValidCacheTableNames = map[string]bool{
	TranslationTable: true,
}
