// Package discovery holds the pure ranking and curation logic behind the
// discovery feed: great-circle distance, interest affinity, newcomer
// detection, relative time labels and candidate ranking.
//
// Nothing here touches storage or the network, and every function is safe
// for concurrent use.
package discovery
