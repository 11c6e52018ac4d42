// Package pure holds side-effect free helpers: collection and map helpers,
// slug/URL/query-string helpers, dotted namespaces, named errors, Json.NET
// typed-array normalization and memoization.
//
// Several helpers compare values by their printed form (fmt.Sprint). Unique
// and Memoize therefore treat 1 and "1" as the same key; callers that need
// type-distinct keys must make the printed forms differ themselves.
package pure
