package idgen

import (
	"log"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func Init() {
	var err error
	node, err = snowflake.NewNode(1)
	if err != nil {
		log.Fatalf("Failed to init Snowflake: %v", err)
	}
}

// GenerateID returns a unique id for ledger movement numbers.
func GenerateID() int64 {
	return node.Generate().Int64()
}
