package snowflake

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

// Init creates the process-wide ID node. Node IDs must be unique per
// running instance (0-1023).
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("init snowflake node %d: %w", nodeID, err)
	}
	node = n
	return nil
}

// NextID returns a new unique ID. Init must have been called first.
func NextID() int64 {
	return node.Generate().Int64()
}
