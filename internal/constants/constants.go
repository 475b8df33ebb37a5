package constants

const (
	// DefaultShardCount is the number of shards a shard.Map uses when
	// the caller does not pick one.
	DefaultShardCount = 16
)
