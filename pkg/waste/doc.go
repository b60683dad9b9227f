// Package waste implements the waste selector: disposal-priority scoring
// plus a discretized 0/1 knapsack (with a greedy fallback) choosing which
// expired or usage-exhausted items to jettison under a weight/volume
// capacity.
package waste
