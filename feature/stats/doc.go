// Package stats exposes aggregate gallery statistics.
//
// Only the null provider exists: it reports that no statistics are available,
// and GET /stats answers 204. The provider is chosen by SERVER_STATS_PROVIDER.
package stats
