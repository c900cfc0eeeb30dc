package domain

// DefaultKeyPrefix namespaces every key written to the store.
const DefaultKeyPrefix = "dinemenu:"
