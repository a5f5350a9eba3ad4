// Package seq holds two generic slice helpers: SortByFirst reorders a pair
// of parallel slices by the first, and Free resets a value to its zero state
// so the garbage collector can reclaim whatever it referenced.
package seq
